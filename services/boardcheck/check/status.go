// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package check defines the check contract, the closed status vocabulary,
// the per-run options, and the catalogue of board checks.
//
// Checks are stateless. Each one inspects a bundle and returns a Result;
// recording findings is the job of the validation session.
package check

import (
	"fmt"
	"strings"
)

// =============================================================================
// STATUS
// =============================================================================

// Status is the outcome of a single check.
type Status int

const (
	// StatusSkipped means the check was disabled and did not run.
	StatusSkipped Status = iota

	// StatusOK means the check ran and found nothing blocking.
	StatusOK

	// StatusError means at least one error message was produced.
	StatusError

	// StatusWarning means warnings, but no errors, were produced.
	StatusWarning
)

var statusNames = [...]string{
	StatusSkipped: "SKIPPED",
	StatusOK:      "OK",
	StatusError:   "ERROR",
	StatusWarning: "WARNING",
}

// String returns the upper-case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown check status %q", text)
}

// DeriveStatus is the single place the status precedence is defined.
//
// Description:
//
//	skip wins over everything. An explicit success marks the check OK even
//	when messages are present. Otherwise errors take precedence over
//	warnings, and a check with neither is OK.
//
// Inputs:
//
//	skip - The check was disabled
//	success - The check declared itself successful
//	errors - Number of error messages
//	warnings - Number of warning messages
//
// Outputs:
//
//	Status - The derived status
func DeriveStatus(skip, success bool, errors, warnings int) Status {
	switch {
	case skip:
		return StatusSkipped
	case success:
		return StatusOK
	case errors > 0:
		return StatusError
	case warnings > 0:
		return StatusWarning
	default:
		return StatusOK
	}
}
