// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/BoardCheck/pkg/logging"
	"github.com/AleutianAI/BoardCheck/pkg/ux"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/config"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/descriptor"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/network"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/report"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/validation"
)

// =============================================================================
// CONSTANTS AND TYPES
// =============================================================================

// Exit codes.
const (
	ExitSuccess = 0
	ExitErrors  = 1
	ExitFailure = 2
)

// errBoardErrors is returned by validate when at least one board has
// errors. It maps to ExitErrors and is not printed.
var errBoardErrors = errors.New("validation found errors")

// app holds the flag values and the state built from them for one
// invocation.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	environ map[string]string

	configPath    string
	jsonOutput    bool
	colorMode     string
	logLevel      string
	logJSON       bool
	parallelism   int
	pathBudget    int64
	skipChecks    []string
	enableChecks  []string
	skipWarnings  bool
	gdriveAPIKey  string
	mirrorTimeout time.Duration
	layoutExts    []string
	offline       bool

	layoutsMode     bool
	descriptorsMode bool

	cfg    config.Config
	logger *logging.Logger
}

// execute runs the CLI and returns the process exit code. A nil environ
// reads the process environment.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, environ map[string]string) int {
	a := &app{stdout: stdout, stderr: stderr, environ: environ, logger: logging.Nop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	_ = a.logger.Close()

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errBoardErrors):
		return ExitErrors
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "boardcheck",
		Short: "Validate Fortune Street custom board bundles",
		Long: `boardcheck loads board bundles (a .yaml descriptor plus its layout files,
screenshots and icon), runs the check catalogue over each board and reports
errors, warnings and informational messages per board.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default .boardcheck.yaml when present)")
	pf.BoolVar(&a.jsonOutput, "json", false, "write JSON instead of tables")
	pf.StringVar(&a.colorMode, "color", string(ux.ModeAuto), "colour output: auto, always or never")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")
	pf.IntVar(&a.parallelism, "parallelism", 1, "boards validated concurrently (1-64)")
	pf.Int64Var(&a.pathBudget, "path-budget", 0, "path search call budget per layout, 0 for unbounded")
	pf.StringSliceVar(&a.layoutExts, "layout-ext", []string{bundle.DefaultLayoutExt}, "layout file extensions")

	root.AddCommand(a.validateCmd(), a.showCmd(), a.pathsCmd())
	return root
}

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Run the check catalogue over board bundles",
		Long: `Validate every bundle found under the given paths (default ".").

With --layouts the arguments are layout files and only the
board-configuration and max-paths checks run. With --descriptors the
arguments are descriptor files and only the music-download and
descriptor-schema checks run.`,
		RunE: a.runValidate,
	}

	f := cmd.Flags()
	f.StringSliceVar(&a.skipChecks, "skip", nil, "checks to skip, e.g. music-download,screenshots")
	f.StringSliceVar(&a.enableChecks, "enable", nil, "checks to enable that are off by default, e.g. doors")
	f.BoolVar(&a.skipWarnings, "skip-warnings", false, "drop warnings from every check")
	f.StringVar(&a.gdriveAPIKey, "gdrive-api-key", "", "Google Drive API key for music mirror lookups")
	f.DurationVar(&a.mirrorTimeout, "mirror-timeout", 15*time.Second, "timeout for one music mirror lookup")
	f.BoolVar(&a.offline, "offline", false, "do not contact music mirrors")
	f.BoolVar(&a.layoutsMode, "layouts", false, "arguments are layout files")
	f.BoolVar(&a.descriptorsMode, "descriptors", false, "arguments are descriptor files")
	cmd.MarkFlagsMutuallyExclusive("layouts", "descriptors")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path...]",
		Short: "Print the attributes of board bundles",
		RunE:  a.runShow,
	}
}

func (a *app) pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths [path...]",
		Short: "Print the max paths value of every layout",
		RunE:  a.runPaths,
	}
}

// =============================================================================
// SETUP
// =============================================================================

// setup merges config file, environment and flags, then builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadWithEnv(a.configPath, a.environ)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism = a.parallelism
	}
	if flags.Changed("path-budget") {
		cfg.PathSearchBudget = a.pathBudget
	}
	if flags.Changed("layout-ext") {
		cfg.LayoutExtensions = a.layoutExts
	}
	if flags.Changed("skip") {
		cfg.SkipChecks = append(cfg.SkipChecks, a.skipChecks...)
	}
	if flags.Changed("enable") {
		cfg.EnableChecks = append(cfg.EnableChecks, a.enableChecks...)
	}
	if flags.Changed("skip-warnings") {
		cfg.SkipWarnings = a.skipWarnings
	}
	if flags.Changed("gdrive-api-key") {
		cfg.GDriveAPIKey = a.gdriveAPIKey
	}
	if flags.Changed("mirror-timeout") {
		cfg.MirrorTimeout = a.mirrorTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := ux.ParseMode(a.colorMode); err != nil {
		return err
	}

	a.cfg = cfg
	logCfg := cfg.LoggingConfig()
	logCfg.Writer = a.stderr
	a.logger = logging.New(logCfg)
	return nil
}

func (a *app) renderer() *report.Renderer {
	mode, _ := ux.ParseMode(a.colorMode)
	return report.NewRenderer(a.stdout, mode)
}

// spinner returns a progress spinner on stderr. It stays silent unless
// stderr is a terminal and tables are being written.
func (a *app) spinner(message string) *ux.Spinner {
	mode, _ := ux.ParseMode(a.colorMode)
	if a.jsonOutput || !ux.IsTerminal(a.stderr) {
		mode = ux.ModePlain
	}
	return ux.NewSpinner(a.stderr, ux.NewTheme(a.stderr, mode), message)
}

func (a *app) validator(extra ...validation.Option) (*validation.Validator, error) {
	opts, err := a.cfg.ValidatorOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, validation.WithLogger(a.logger))
	if !a.offline {
		opts = append(opts, validation.WithFetcher(network.NewHTTPFetcher(
			network.WithTimeout(a.cfg.MirrorTimeout),
			network.WithRateLimit(a.cfg.MirrorRequestsPerSecond),
			network.WithDriveAPIKey(a.cfg.GDriveAPIKey),
		)))
	}
	return validation.New(append(opts, extra...)...), nil
}

func (a *app) loadBundles(args []string) ([]*bundle.Bundle, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	loader := bundle.NewLoader(a.logger, a.cfg.LayoutExtensions...)
	var bundles []*bundle.Bundle
	for _, root := range args {
		found, err := loader.LoadAll(root)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, found...)
	}
	return bundles, nil
}

// =============================================================================
// RUNNERS
// =============================================================================

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	spin := a.spinner("Validating boards")
	v, err := a.validator(validation.WithProgress(spin.SetProgress))
	if err != nil {
		return err
	}
	spin.Start()
	defer spin.Stop()

	var rb validation.ResultBundle
	switch {
	case a.layoutsMode:
		loader := bundle.NewLoader(a.logger, a.cfg.LayoutExtensions...)
		layouts := make([]*board.Board, 0, len(args))
		for _, path := range args {
			l, err := loader.LoadLayout(path)
			if err != nil {
				return err
			}
			layouts = append(layouts, l)
		}
		rb, err = v.ValidateLayouts(cmd.Context(), layouts)

	case a.descriptorsMode:
		descriptors := make([]*descriptor.Descriptor, 0, len(args))
		for _, path := range args {
			d, err := descriptor.Load(path)
			if err != nil {
				return err
			}
			descriptors = append(descriptors, d)
		}
		rb, err = v.ValidateDescriptors(cmd.Context(), descriptors)

	default:
		bundles, err := a.loadBundles(args)
		if err != nil {
			return err
		}
		rb, err = v.ValidateBundles(cmd.Context(), bundles)
		if err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	spin.Stop()

	if a.jsonOutput {
		err = report.WriteJSON(a.stdout, rb)
	} else {
		err = a.renderer().Results(rb)
	}
	if err != nil {
		return err
	}
	if rb.Errors > 0 {
		return errBoardErrors
	}
	return nil
}

func (a *app) runShow(_ *cobra.Command, args []string) error {
	bundles, err := a.loadBundles(args)
	if err != nil {
		return err
	}
	if a.jsonOutput {
		return report.WriteJSON(a.stdout, bundles)
	}
	return a.renderer().Bundles(bundles)
}

func (a *app) runPaths(cmd *cobra.Command, args []string) error {
	bundles, err := a.loadBundles(args)
	if err != nil {
		return err
	}
	spin := a.spinner("Counting paths")
	v, err := a.validator(
		validation.WithOptions(check.NoneEnabled().With(true, check.NameMaxPaths)),
		validation.WithProgress(spin.SetProgress),
	)
	if err != nil {
		return err
	}
	spin.Start()
	rb, err := v.ValidateBundles(cmd.Context(), bundles)
	spin.Stop()
	if err != nil {
		return err
	}

	var rows []report.PathRow
	for i, res := range rb.Boards {
		if data, ok := res.Check(check.NameMaxPaths).Data.(check.MaxPathsData); ok {
			rows = append(rows, report.PathRows(bundles[i], data)...)
		}
	}
	if a.jsonOutput {
		return report.WriteJSON(a.stdout, rows)
	}
	return a.renderer().Paths(rows)
}
