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

import "fmt"

// Result is what a check returns.
//
// Status is always derived from the other fields by DeriveStatus; build
// results with Skipped or NewResult rather than by hand.
type Result struct {
	Status   Status   `json:"status"`
	Errors   []string `json:"error_messages"`
	Warnings []string `json:"warning_messages"`
	Info     []string `json:"informational_messages"`

	// Data is the check-specific payload, e.g. MaxPathsData.
	Data any `json:"data,omitempty"`

	// Success is the explicit success flag the check declared. It feeds
	// both the status and the session's success tally.
	Success bool `json:"-"`
}

// Skipped returns the result of a disabled check.
func Skipped() Result {
	return Result{Status: StatusSkipped}
}

// NewResult builds a result and derives its status.
func NewResult(errors, warnings, info []string, data any, success bool) Result {
	return Result{
		Status:   DeriveStatus(false, success, len(errors), len(warnings)),
		Errors:   errors,
		Warnings: warnings,
		Info:     info,
		Data:     data,
		Success:  success,
	}
}

// Skipped reports whether the check did not run.
func (r Result) Skipped() bool {
	return r.Status == StatusSkipped
}

// findings accumulates the messages of one check run.
type findings struct {
	errors   []string
	warnings []string
	info     []string
}

func (f *findings) errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *findings) warnf(format string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *findings) infof(format string, args ...any) {
	f.info = append(f.info, fmt.Sprintf(format, args...))
}

// result finalizes the findings. Warnings are dropped here when the run
// suppresses them, so no check has to test the flag itself.
func (f *findings) result(opts Options, data any) Result {
	warnings := f.warnings
	if opts.SkipWarnings {
		warnings = nil
	}
	return NewResult(f.errors, warnings, f.info, data, false)
}
