// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/session"
)

// Result is the validation outcome of one board.
//
// It is built once, when the board's session is harvested, and is not
// modified afterwards.
type Result struct {
	BoardName string `json:"board_name"`

	// Checks holds the result of every catalogue check, keyed by name.
	// Checks that did not run are present with status SKIPPED.
	Checks map[check.Name]check.Result `json:"checks"`

	// Paths is the board's max paths value, 0 when it was not computed.
	Paths int `json:"paths"`

	session.Tally
}

// Check returns the named check result, or a skipped result when the
// check is not part of this result.
func (r Result) Check(n check.Name) check.Result {
	if cr, ok := r.Checks[n]; ok {
		return cr
	}
	return check.Skipped()
}

// Passed reports whether the board has neither errors nor warnings.
func (r Result) Passed() bool {
	return r.Issues == 0
}

// ResultBundle is the roll-up of a validation run over many boards.
type ResultBundle struct {
	RunID string `json:"run_id"`

	session.Tally

	Boards []Result `json:"boards"`
}

// Passed reports whether no board has errors or warnings.
func (b ResultBundle) Passed() bool {
	return b.Issues == 0
}

// Aggregate folds per-board results into a bundle.
//
// Description:
//
//	The five counters are summed and the three message lists are
//	concatenated in board order. Messages are not rewritten. The same
//	input order always yields the same output.
//
// Inputs:
//
//	boards - Per-board results in run order
//
// Outputs:
//
//	ResultBundle - The roll-up; RunID is left empty
func Aggregate(boards []Result) ResultBundle {
	out := ResultBundle{
		Tally: session.Tally{
			ErrorMessages:         []string{},
			WarningMessages:       []string{},
			InformationalMessages: []string{},
		},
		Boards: append([]Result(nil), boards...),
	}
	for _, b := range boards {
		out.Errors += b.Errors
		out.Warnings += b.Warnings
		out.Issues += b.Issues
		out.Successes += b.Successes
		out.Total += b.Total
		out.ErrorMessages = append(out.ErrorMessages, b.ErrorMessages...)
		out.WarningMessages = append(out.WarningMessages, b.WarningMessages...)
		out.InformationalMessages = append(out.InformationalMessages, b.InformationalMessages...)
	}
	return out
}
