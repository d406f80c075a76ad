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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const castleDescriptor = `
name:
  en: Castle Courtyard
initialCash: 1500
targetAmount: 10000
baseSalary: 250
salaryIncrement: 100
maxDiceRoll: 7
frbFile1: Castle.frb
background: bg004
authors: [Nikkums]
`

const castleLayout = `
boardInfo:
  baseSalary: 250
  initialCash: 1500
  maxDiceRoll: 7
  salaryIncrement: 100
  targetAmount: 10000
squares:
  - type: Bank
    waypoints:
      - entryId: 1
        destinations: [1]
  - type: Property
    waypoints:
      - entryId: 0
        destinations: [0]
`

func writeBoard(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "castle")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, body := range map[string]string{
		"Castle.yaml": castleDescriptor,
		"Castle.frb":  castleLayout,
		"Castle.webp": "",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return root
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr, map[string]string{})
	return code, stdout.String(), stderr.String()
}

func TestValidate_ReportsBoardErrors(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "validate", "--offline", "--color", "never", root)
	assert.Equal(t, ExitErrors, code)
	assert.Contains(t, out, "Castle Courtyard")
	assert.Contains(t, out, "(Castle Courtyard) The .yaml board descriptor does not define a changelog.")
}

func TestValidate_JSON(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "validate", "--offline", "--json", "--skip", "board-configuration,venture-cards,icon", root)
	assert.Equal(t, ExitSuccess, code, out)

	var rb struct {
		RunID      string `json:"run_id"`
		ErrorCount int    `json:"error_count"`
		Boards     []struct {
			BoardName string `json:"board_name"`
			Paths     int    `json:"paths"`
		} `json:"boards"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rb))
	assert.NotEmpty(t, rb.RunID)
	assert.Equal(t, 0, rb.ErrorCount)
	require.Len(t, rb.Boards, 1)
	assert.Equal(t, "Castle Courtyard", rb.Boards[0].BoardName)
	assert.Equal(t, 1, rb.Boards[0].Paths)
}

func TestValidate_LayoutsMode(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "validate", "--offline", "--color", "never", "--layouts",
		filepath.Join(root, "castle", "Castle.frb"))
	assert.NotEqual(t, ExitFailure, code)
	assert.Contains(t, out, "Unknown .frb")
}

func TestValidate_DescriptorsMode(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "validate", "--offline", "--json", "--descriptors",
		filepath.Join(root, "castle", "Castle.yaml"))
	assert.Equal(t, ExitSuccess, code, out)
	assert.Contains(t, out, "Castle Courtyard")
}

func TestValidate_InvalidFlags(t *testing.T) {
	root := writeBoard(t)

	code, _, errOut := runCLI(t, "validate", "--parallelism", "0", root)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "invalid config")

	code, _, errOut = runCLI(t, "validate", "--skip", "spelling", root)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "SkipChecks")

	code, _, _ = runCLI(t, "validate", "--layouts", "--descriptors", root)
	assert.Equal(t, ExitFailure, code)
}

func TestValidate_MissingBundle(t *testing.T) {
	code, _, errOut := runCLI(t, "validate", t.TempDir())
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "no board descriptor found")
}

func TestValidate_EnvironmentConfig(t *testing.T) {
	root := writeBoard(t)
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"validate", "--offline", "--json", root}, &stdout, &stderr,
		map[string]string{"BOARDCHECK_SKIP_CHECKS": "board-configuration,venture-cards,icon"})
	assert.Equal(t, ExitSuccess, code, stdout.String())
}

func TestShow(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "show", "--color", "never", root)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Castle Courtyard")
	assert.Contains(t, out, "Castle.frb")
	assert.Contains(t, out, "1,500")
}

func TestShow_JSON(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "show", "--json", root)
	assert.Equal(t, ExitSuccess, code)

	var bundles []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &bundles))
	require.Len(t, bundles, 1)
	assert.Equal(t, "Castle Courtyard", bundles[0]["name"])
}

func TestPaths_JSON(t *testing.T) {
	root := writeBoard(t)

	code, out, _ := runCLI(t, "paths", "--json", root)
	assert.Equal(t, ExitSuccess, code)

	var rows []struct {
		Board  string `json:"board"`
		Layout string `json:"layout"`
		Count  int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Castle.frb", rows[0].Layout)
	assert.Equal(t, 1, rows[0].Count)
}
