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
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/paths"
)

const none = "-"

// Bundles renders one attribute table per bundle.
func (r *Renderer) Bundles(bundles []*bundle.Bundle) error {
	for _, b := range bundles {
		t := r.table("Attribute", "Value")
		t.Rows(bundleRows(b)...)
		if err := r.println(r.theme.Title.Render(b.Label())); err != nil {
			return err
		}
		if err := r.println(t.Render()); err != nil {
			return err
		}
	}
	return nil
}

func bundleRows(b *bundle.Bundle) [][]string {
	rows := [][]string{
		{"Layout files", joinOrNone(b.LayoutFiles())},
		{"Squares", humanize.Comma(int64(b.SquareCount()))},
		{"States", strconv.Itoa(len(b.Layouts))},
		{"Screenshots", strconv.Itoa(len(b.Screenshots()))},
		{"Files", strconv.Itoa(len(b.Files))},
	}
	if b.Dir != "" {
		rows = append([][]string{{"Directory", b.Dir}}, rows...)
	}

	d := b.Descriptor
	if d == nil {
		return rows
	}
	amount := func(n int) string {
		if n == 0 {
			return none
		}
		return humanize.Comma(int64(n))
	}
	return append(rows, [][]string{
		{"Version", strconv.Itoa(d.Version())},
		{"Authors", joinOrNone(d.AuthorNames())},
		{"Venture cards", strconv.Itoa(d.VentureCards.Count)},
		{"Initial cash", amount(d.InitialCash)},
		{"Target amount", amount(d.TargetAmount)},
		{"Base salary", amount(d.BaseSalary)},
		{"Salary increment", amount(d.SalaryIncrement)},
		{"Max dice roll", amount(d.MaxDiceRoll)},
		{"Looping", d.LoopingMode()},
		{"Background", orNone(d.Background)},
		{"Icon", orNone(d.Icon)},
		{"Music mirrors", strconv.Itoa(len(d.MusicMirrors()))},
	}...)
}

// =============================================================================
// Paths
// =============================================================================

// PathRow is the path count of one layout.
type PathRow struct {
	Board  string `json:"board"`
	Layout string `json:"layout"`
	paths.Result
}

// PathRows pairs the per-layout results of a max-paths run with the
// bundle's layout file names.
func PathRows(b *bundle.Bundle, data check.MaxPathsData) []PathRow {
	rows := make([]PathRow, 0, len(data.Layouts))
	for i, res := range data.Layouts {
		layout := none
		if i < len(b.Layouts) {
			layout = b.Layouts[i].FileName
		}
		rows = append(rows, PathRow{Board: b.Label(), Layout: layout, Result: res})
	}
	return rows
}

// Paths renders path counts, one row per layout. Counts that are lower
// bounds are marked with a trailing "+".
func (r *Renderer) Paths(rows []PathRow) error {
	t := r.table("Board", "Layout", "Max paths", "Square", "Depth", "Calls")
	for _, row := range rows {
		count := strconv.Itoa(row.Count)
		if row.Exhausted {
			count += "+"
		}
		square := none
		if row.SquareID >= 0 && row.Count > 0 {
			square = strconv.Itoa(row.SquareID)
		}
		t.Row(row.Board, row.Layout, count, square, strconv.Itoa(row.Depth), humanize.Comma(row.Calls))
	}
	return r.println(t.Render())
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return none
	}
	return strings.Join(s, ", ")
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}
