// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads boardcheck settings.
//
// Settings are layered: DefaultConfig, then an optional YAML file, then
// BOARDCHECK_* environment variables. Command-line flags are applied on
// top by the caller before Validate is run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/BoardCheck/pkg/logging"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/validation"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "BOARDCHECK_"

	// DefaultFileName is read from the working directory when Load is
	// given no path and the file exists.
	DefaultFileName = ".boardcheck.yaml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// =============================================================================
// Types
// =============================================================================

// Config holds every boardcheck setting.
type Config struct {
	// SkipChecks disables the named checks.
	SkipChecks []string `yaml:"skip_checks" env:"SKIP_CHECKS" validate:"dive,checkname"`

	// EnableChecks enables checks that are off by default, such as doors.
	EnableChecks []string `yaml:"enable_checks" env:"ENABLE_CHECKS" validate:"dive,checkname"`

	// SkipWarnings drops warning-class findings from every check.
	SkipWarnings bool `yaml:"skip_warnings" env:"SKIP_WARNINGS"`

	// GDriveAPIKey authorizes Google Drive metadata lookups for music
	// mirrors. Without it Drive mirrors are reported as informational.
	GDriveAPIKey string `yaml:"gdrive_api_key" env:"GDRIVE_API_KEY"`

	// Parallelism is the number of boards validated concurrently.
	Parallelism int `yaml:"parallelism" env:"PARALLELISM" validate:"min=1,max=64"`

	// PathSearchBudget caps the path counter's recursive calls per
	// layout. Zero means unbounded.
	PathSearchBudget int64 `yaml:"path_search_budget" env:"PATH_SEARCH_BUDGET" validate:"min=0"`

	MirrorTimeout           time.Duration `yaml:"mirror_timeout" env:"MIRROR_TIMEOUT" validate:"gt=0"`
	MirrorRequestsPerSecond float64       `yaml:"mirror_requests_per_second" env:"MIRROR_REQUESTS_PER_SECOND" validate:"min=0"`

	// LayoutExtensions lists the file extensions decoded as layouts.
	LayoutExtensions []string `yaml:"layout_extensions" env:"LAYOUT_EXTENSIONS" validate:"min=1,dive,startswith=."`

	Log LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json" env:"JSON"`
	Dir   string `yaml:"dir" env:"DIR"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Parallelism:             1,
		MirrorTimeout:           15 * time.Second,
		MirrorRequestsPerSecond: 4,
		LayoutExtensions:        []string{bundle.DefaultLayoutExt},
		Log:                     LogConfig{Level: "info"},
	}
}

// =============================================================================
// Loading
// =============================================================================

// Load builds a Config from defaults, a YAML file and the process
// environment.
//
// Description:
//
//	An empty path reads DefaultFileName when it exists and skips the file
//	layer otherwise. A non-empty path must exist. Load does not validate;
//	call Validate once flag overrides have been applied.
//
// Inputs:
//
//	path - YAML file path, or ""
//
// Outputs:
//
//	Config - The merged configuration
//	error  - Non-nil if the file or environment could not be parsed
func Load(path string) (Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment. A nil environ reads
// the process environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to read the environment: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// Validation
// =============================================================================

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("checkname", validateCheckName)
}

func validateCheckName(fl validator.FieldLevel) bool {
	_, err := check.ParseName(fl.Field().String())
	return err == nil
}

// Validate normalizes the log level and reports every rule the config
// breaks. The returned error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	var problems []string
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s failed the '%s' rule", fe.Namespace(), fe.Tag()))
		}
	}

	skipped := make(map[check.Name]bool, len(c.SkipChecks))
	for _, s := range c.SkipChecks {
		if n, err := check.ParseName(s); err == nil {
			skipped[n] = true
		}
	}
	for _, s := range c.EnableChecks {
		if n, err := check.ParseName(s); err == nil && skipped[n] {
			problems = append(problems, fmt.Sprintf("check %q is both skipped and enabled", n))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// =============================================================================
// Derived settings
// =============================================================================

// Options converts the skip and enable lists into the check options for
// one run.
func (c Config) Options() (check.Options, error) {
	opts := check.DefaultOptions()
	for _, s := range c.SkipChecks {
		n, err := check.ParseName(s)
		if err != nil {
			return check.Options{}, err
		}
		opts = opts.With(false, n)
	}
	for _, s := range c.EnableChecks {
		n, err := check.ParseName(s)
		if err != nil {
			return check.Options{}, err
		}
		opts = opts.With(true, n)
	}
	opts.SkipWarnings = c.SkipWarnings
	return opts, nil
}

// LoggingConfig returns the logger configuration. An unknown level falls
// back to info.
func (c Config) LoggingConfig() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)
	return logging.Config{
		Level:  level,
		LogDir: c.Log.Dir,
		JSON:   c.Log.JSON,
	}
}

// ValidatorOptions returns the validator options implied by the config.
// The fetcher and logger are supplied by the caller.
func (c Config) ValidatorOptions() ([]validation.Option, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return []validation.Option{
		validation.WithOptions(opts),
		validation.WithParallelism(c.Parallelism),
		validation.WithPathBudget(c.PathSearchBudget),
	}, nil
}
