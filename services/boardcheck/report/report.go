// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package report renders loaded bundles and validation results as
// terminal tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AleutianAI/BoardCheck/pkg/ux"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
)

// NoIssuesMessage is printed when a run produced no errors or warnings.
const NoIssuesMessage = "No issues were found."

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat resolves a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q", s)
}

// Renderer writes reports to one output stream.
type Renderer struct {
	w     io.Writer
	theme *ux.Theme
}

// NewRenderer returns a renderer for w. The mode decides whether output
// is styled.
func NewRenderer(w io.Writer, mode ux.Mode) *Renderer {
	return &Renderer{w: w, theme: ux.NewTheme(w, mode)}
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

func (r *Renderer) table(headers ...string) *table.Table {
	cell := r.theme.Renderer().NewStyle().Padding(0, 1)
	header := r.theme.Header.Padding(0, 1)
	return table.New().
		Border(r.theme.TableBorder()).
		BorderStyle(r.theme.Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.w, s)
	return err
}

// badge renders a status with its icon.
func (r *Renderer) badge(s check.Status) string {
	switch s {
	case check.StatusOK:
		return r.theme.Icon(ux.IconSuccess) + " " + r.theme.Success.Render(s.String())
	case check.StatusWarning:
		return r.theme.Icon(ux.IconWarning) + " " + r.theme.Warning.Render(s.String())
	case check.StatusError:
		return r.theme.Icon(ux.IconError) + " " + r.theme.Error.Render(s.String())
	default:
		return r.theme.Icon(ux.IconSkipped) + " " + r.theme.Muted.Render(s.String())
	}
}
