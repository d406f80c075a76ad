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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/BoardCheck/pkg/ux"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/descriptor"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/paths"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/validation"
)

func boardResult(name string, errs, warns, info []string) validation.Result {
	checks := map[check.Name]check.Result{
		check.NameNaming:      check.NewResult(errs, nil, nil, nil, false),
		check.NameConsistency: check.NewResult(nil, warns, info, nil, false),
	}
	r := validation.Result{BoardName: name, Checks: checks, Paths: 12}
	r.Errors = len(errs)
	r.Warnings = len(warns)
	r.Issues = len(errs) + len(warns)
	r.Total = 2
	r.ErrorMessages = errs
	r.WarningMessages = warns
	r.InformationalMessages = info
	return r
}

func render(t *testing.T, rb validation.ResultBundle) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, ux.ModePlain).Results(rb))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestResults_PrefixesMessagesWithBoard(t *testing.T) {
	rb := validation.Aggregate([]validation.Result{
		boardResult("Castle", []string{"bad name"}, nil, nil),
		boardResult("Harbor", nil, []string{"odd value"}, []string{"fyi"}),
	})

	out := render(t, rb)
	assert.Contains(t, out, "Castle")
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "(Castle) bad name")
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "(Harbor) odd value")
	assert.Contains(t, out, "(Harbor) fyi")
	assert.NotContains(t, out, NoIssuesMessage)
	assert.Less(t, strings.Index(out, "(Castle) bad name"), strings.Index(out, "(Harbor) odd value"))
}

func TestResults_StatusTable(t *testing.T) {
	out := render(t, validation.Aggregate([]validation.Result{
		boardResult("Castle", []string{"bad name"}, nil, nil),
	}))

	for _, n := range check.Names() {
		assert.Contains(t, out, string(n))
	}
	assert.Contains(t, out, "✗ ERROR")
	assert.Contains(t, out, "✓ OK")
	assert.NotContains(t, out, "⚠ WARNING")
	assert.Contains(t, out, "○ SKIPPED")
	assert.Contains(t, out, "paths")
}

func TestResults_WarningStatus(t *testing.T) {
	out := render(t, validation.Aggregate([]validation.Result{
		boardResult("Harbor", nil, []string{"odd value"}, nil),
	}))
	assert.Contains(t, out, "⚠ WARNING")
	assert.NotContains(t, out, "✗ ERROR")
}

func TestResults_NoIssues(t *testing.T) {
	out := render(t, validation.Aggregate([]validation.Result{
		boardResult("Castle", nil, nil, []string{"single mirror"}),
	}))
	assert.Contains(t, out, NoIssuesMessage)
	assert.Contains(t, out, "(Castle) single mirror")
	assert.NotContains(t, out, "Errors:")
}

func TestResults_Empty(t *testing.T) {
	out := render(t, validation.Aggregate(nil))
	assert.Contains(t, out, NoIssuesMessage)
	assert.Contains(t, out, "0 boards")
}

func TestWriteJSON(t *testing.T) {
	rb := validation.Aggregate([]validation.Result{
		boardResult("Castle", []string{"bad name"}, nil, nil),
	})
	rb.RunID = "run-1"

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rb))

	var decoded struct {
		RunID      string `json:"run_id"`
		ErrorCount int    `json:"error_count"`
		Boards     []struct {
			BoardName string `json:"board_name"`
			Checks    map[string]struct {
				Status string `json:"status"`
			} `json:"checks"`
		} `json:"boards"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 1, decoded.ErrorCount)
	require.Len(t, decoded.Boards, 1)
	assert.Equal(t, "ERROR", decoded.Boards[0].Checks["naming"].Status)
}

func showBundle() *bundle.Bundle {
	return &bundle.Bundle{
		Name: "Castle Courtyard",
		Dir:  "/boards/castle",
		Descriptor: &descriptor.Descriptor{
			Name:         descriptor.Localized{EN: "Castle Courtyard"},
			InitialCash:  1500,
			TargetAmount: 12000,
			MaxDiceRoll:  7,
			LayoutFiles:  []string{"Castle.frb", "Castle2.frb"},
			Background:   "bg004",
			Authors:      []descriptor.Author{{Name: "Nikkums"}, {Name: "Ralph"}},
			Changelog:    []descriptor.ChangelogEntry{{Version: 1}, {Version: 3}},
			VentureCards: descriptor.VentureCards{Count: 64},
			Music:        &descriptor.Music{Download: descriptor.StringList{"https://nikkums.io/cswt/castle.zip"}},
		},
		Layouts: []*board.Board{
			{FileName: "Castle.frb", Squares: make([]board.Square, 40)},
			{FileName: "Castle2.frb", Squares: make([]board.Square, 2)},
		},
		Files: []string{"Castle.frb", "Castle.webp", "Castle.yaml", "Castle2.frb"},
	}
}

func TestBundles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, ux.ModePlain).Bundles([]*bundle.Bundle{showBundle()}))
	out := buf.String()

	assert.Contains(t, out, "Castle Courtyard")
	assert.Contains(t, out, "/boards/castle")
	assert.Contains(t, out, "Castle.frb, Castle2.frb")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "Nikkums, Ralph")
	assert.Contains(t, out, "bg004")
	assert.Contains(t, out, "none")
}

func TestBundleRows_WithoutDescriptor(t *testing.T) {
	b := &bundle.Bundle{Name: "loose", Files: []string{"a.frb"}}
	rows := bundleRows(b)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Layout files", "-"}, rows[0])
}

func TestPathRows(t *testing.T) {
	b := showBundle()
	data := check.MaxPathsData{
		Count: 9,
		Layouts: []paths.Result{
			{SquareID: 3, Count: 9, Depth: 16, Calls: 1200},
			{SquareID: 1, Count: 2, Depth: 16, Calls: 40, Exhausted: true},
		},
	}
	rows := PathRows(b, data)
	require.Len(t, rows, 2)
	assert.Equal(t, "Castle.frb", rows[0].Layout)
	assert.Equal(t, "Castle2.frb", rows[1].Layout)
	assert.Equal(t, "Castle Courtyard", rows[1].Board)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, ux.ModePlain).Paths(rows))
	out := buf.String()
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "2+")
	assert.Contains(t, out, "Castle2.frb")
}
