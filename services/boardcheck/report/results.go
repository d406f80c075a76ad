// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package report

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/validation"
)

// Results renders a validation run.
//
// Description:
//
//	Prints one status table per board, then the error, warning and
//	informational messages of every board prefixed with "(board name)".
//	When the run has no errors or warnings NoIssuesMessage is printed
//	after the informational messages.
//
// Inputs:
//
//	rb - The result bundle of one run
//
// Outputs:
//
//	error - Non-nil if writing failed
func (r *Renderer) Results(rb validation.ResultBundle) error {
	for _, b := range rb.Boards {
		if err := r.boardTable(b); err != nil {
			return err
		}
	}

	sections := []struct {
		title    string
		messages func(validation.Result) []string
		style    func(...string) string
	}{
		{"Errors", func(b validation.Result) []string { return b.ErrorMessages }, r.theme.Error.Render},
		{"Warnings", func(b validation.Result) []string { return b.WarningMessages }, r.theme.Warning.Render},
		{"Information", func(b validation.Result) []string { return b.InformationalMessages }, r.theme.Muted.Render},
	}
	for _, s := range sections {
		var lines []string
		for _, b := range rb.Boards {
			for _, m := range s.messages(b) {
				lines = append(lines, fmt.Sprintf("(%s) %s", b.BoardName, m))
			}
		}
		if len(lines) == 0 {
			continue
		}
		if err := r.println(r.theme.Title.Render(s.title + ":")); err != nil {
			return err
		}
		for _, l := range lines {
			if err := r.println(s.style(l)); err != nil {
				return err
			}
		}
	}

	if rb.Issues == 0 {
		if err := r.println(r.theme.Success.Render(NoIssuesMessage)); err != nil {
			return err
		}
	}

	return r.println(r.theme.Muted.Render(fmt.Sprintf(
		"%s boards, %d errors, %d warnings, %d of %d checks succeeded",
		humanize.Comma(int64(len(rb.Boards))), rb.Errors, rb.Warnings, rb.Successes, rb.Total)))
}

func (r *Renderer) boardTable(b validation.Result) error {
	t := r.table("Check", "Status")
	for _, n := range check.Names() {
		t.Row(string(n), r.badge(b.Check(n).Status))
	}
	if b.Paths > 0 {
		t.Row("paths", strconv.Itoa(b.Paths))
	}
	if err := r.println(r.theme.Title.Render(b.BoardName)); err != nil {
		return err
	}
	return r.println(t.Render())
}
