// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package check

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCheck is returned when a check name is not in the catalogue.
var ErrUnknownCheck = errors.New("unknown check")

// Name identifies a check in the catalogue.
type Name string

const (
	NameNaming             Name = "naming"
	NameConsistency        Name = "consistency"
	NameBoardConfiguration Name = "board-configuration"
	NameMaxPaths           Name = "max-paths"
	NameDoors              Name = "doors"
	NameIcon               Name = "icon"
	NameMusicDownload      Name = "music-download"
	NameScreenshots        Name = "screenshots"
	NameVentureCards       Name = "venture-cards"
	NameDescriptorSchema   Name = "descriptor-schema"
)

// Names returns every check name in run order.
func Names() []Name {
	return []Name{
		NameNaming,
		NameConsistency,
		NameBoardConfiguration,
		NameMaxPaths,
		NameDoors,
		NameIcon,
		NameMusicDownload,
		NameScreenshots,
		NameVentureCards,
		NameDescriptorSchema,
	}
}

// ParseName resolves a check name case-insensitively. Underscores are
// accepted in place of dashes.
func ParseName(s string) (Name, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, n := range Names() {
		if string(n) == norm {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCheck, s)
}

// Options is the per-run check configuration. It is built once per
// validation run and passed unchanged to every check.
type Options struct {
	// Enabled holds the enablement of each named check. A name that is
	// absent is disabled.
	Enabled map[Name]bool `json:"enabled"`

	// SkipWarnings suppresses warning-class findings in every check.
	SkipWarnings bool `json:"skip_warnings"`
}

// DefaultOptions enables every check except doors, whose rule the
// board-configuration check already applies.
func DefaultOptions() Options {
	enabled := make(map[Name]bool, len(Names()))
	for _, n := range Names() {
		enabled[n] = n != NameDoors
	}
	return Options{Enabled: enabled}
}

// NoneEnabled returns options with every check disabled.
func NoneEnabled() Options {
	return Options{Enabled: map[Name]bool{}}
}

// IsEnabled reports whether the named check should run.
func (o Options) IsEnabled(n Name) bool {
	return o.Enabled[n]
}

// With returns a copy of o with the given checks switched on or off.
func (o Options) With(on bool, names ...Name) Options {
	enabled := make(map[Name]bool, len(o.Enabled)+len(names))
	for k, v := range o.Enabled {
		enabled[k] = v
	}
	for _, n := range names {
		enabled[n] = on
	}
	o.Enabled = enabled
	return o
}

// Disabled returns the names of the catalogue checks that will not run,
// in run order.
func (o Options) Disabled() []Name {
	var off []Name
	for _, n := range Names() {
		if !o.IsEnabled(n) {
			off = append(off, n)
		}
	}
	return off
}
