// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package session provides the per-board issue ledger that accumulates the
// findings of every check run against one board.
package session

import "github.com/AleutianAI/BoardCheck/services/boardcheck/check"

// Tally is a point-in-time copy of a session's counters and messages.
type Tally struct {
	Errors    int `json:"error_count"`
	Warnings  int `json:"warning_count"`
	Successes int `json:"success_count"`

	// Issues is Errors + Warnings.
	Issues int `json:"issue_count"`

	// Total is Issues + Successes.
	Total int `json:"total_count"`

	ErrorMessages         []string `json:"error_messages"`
	WarningMessages       []string `json:"warning_messages"`
	InformationalMessages []string `json:"informational_messages"`
}

// Session is the issue ledger for one board.
//
// A Session is not safe for concurrent use. Boards validated in parallel
// each get their own Session.
type Session struct {
	errors    []string
	warnings  []string
	info      []string
	successes int
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Reset clears every message and counter.
func (s *Session) Reset() {
	s.errors = nil
	s.warnings = nil
	s.info = nil
	s.successes = 0
}

// Record appends one check's findings to the ledger.
//
// Description:
//
//	The error and warning counters grow by the size of the respective
//	lists. The success counter grows by one when success is true or, when
//	it is not, when the call carries neither errors nor warnings.
//	Informational messages never affect the counters.
//
// Inputs:
//
//	errors - Error messages
//	warnings - Warning messages
//	info - Informational messages
//	success - The job declared itself successful
func (s *Session) Record(errors, warnings, info []string, success bool) {
	s.errors = append(s.errors, errors...)
	s.warnings = append(s.warnings, warnings...)
	s.info = append(s.info, info...)
	if success || (len(errors) == 0 && len(warnings) == 0) {
		s.successes++
	}
}

// RecordResult records a check result. Skipped results contribute nothing.
func (s *Session) RecordResult(r check.Result) {
	if r.Skipped() {
		return
	}
	s.Record(r.Errors, r.Warnings, r.Info, r.Success)
}

// Snapshot returns the current totals and copies of the message lists
// without clearing them.
func (s *Session) Snapshot() Tally {
	t := Tally{
		Errors:                len(s.errors),
		Warnings:              len(s.warnings),
		Successes:             s.successes,
		ErrorMessages:         clone(s.errors),
		WarningMessages:       clone(s.warnings),
		InformationalMessages: clone(s.info),
	}
	t.Issues = t.Errors + t.Warnings
	t.Total = t.Issues + t.Successes
	return t
}

// clone returns a copy of msgs, never nil, so snapshots encode as empty
// lists.
func clone(msgs []string) []string {
	return append(make([]string, 0, len(msgs)), msgs...)
}
