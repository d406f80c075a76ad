// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ux provides terminal styling for the boardcheck CLI.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Palette, deep ocean teals plus the usual semantic colours.
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7")
	ColorTealPrimary = lipgloss.Color("#20B9B4")
	ColorTealDeep    = lipgloss.Color("#16858E")
	ColorSlate       = lipgloss.Color("#2C4A54")

	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#2C4A54")
)

// Icon is a status glyph.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconSkipped Icon = "○"
	IconBullet  Icon = "•"
)

// =============================================================================
// Colour mode
// =============================================================================

// Mode selects between styled and plain output.
type Mode string

const (
	// ModeAuto styles output only when writing to a terminal.
	ModeAuto Mode = "auto"

	// ModeColor always styles output.
	ModeColor Mode = "always"

	// ModePlain never styles output.
	ModePlain Mode = "never"
)

// ParseMode resolves a --color flag value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "color", "colour":
		return ModeColor, nil
	case "never", "plain", "none":
		return ModePlain, nil
	}
	return ModeAuto, fmt.Errorf("unknown colour mode %q", s)
}

// IsTerminal reports whether w is a terminal, Cygwin included.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// =============================================================================
// Theme
// =============================================================================

// Theme holds the styles for one output stream.
type Theme struct {
	renderer *lipgloss.Renderer
	plain    bool

	Title   lipgloss.Style
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
}

// NewTheme builds styles for w. In plain mode, or in auto mode when w is
// not a terminal, every style renders its input unchanged.
func NewTheme(w io.Writer, mode Mode) *Theme {
	r := lipgloss.NewRenderer(w)
	plain := mode == ModePlain || (mode == ModeAuto && !IsTerminal(w))
	if plain {
		r.SetColorProfile(termenv.Ascii)
	} else if mode == ModeColor {
		r.SetColorProfile(termenv.TrueColor)
	}

	return &Theme{
		renderer: r,
		plain:    plain,
		Title:    r.NewStyle().Bold(true).Foreground(ColorTealBright),
		Header:   r.NewStyle().Bold(true).Foreground(ColorTealPrimary),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Success:  r.NewStyle().Foreground(ColorSuccess),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Error:    r.NewStyle().Foreground(ColorError),
		Border:   r.NewStyle().Foreground(ColorTealDeep),
	}
}

// Renderer returns the lipgloss renderer bound to the output stream.
func (t *Theme) Renderer() *lipgloss.Renderer { return t.renderer }

// Plain reports whether styling is disabled.
func (t *Theme) Plain() bool { return t.plain }

// TableBorder returns a rounded border, or an ASCII one in plain mode.
func (t *Theme) TableBorder() lipgloss.Border {
	if t.plain {
		return lipgloss.ASCIIBorder()
	}
	return lipgloss.RoundedBorder()
}

// Icon renders i in its semantic colour.
func (t *Theme) Icon(i Icon) string {
	switch i {
	case IconSuccess:
		return t.Success.Render(string(i))
	case IconWarning:
		return t.Warning.Render(string(i))
	case IconError:
		return t.Error.Render(string(i))
	case IconSkipped:
		return t.Muted.Render(string(i))
	default:
		return string(i)
	}
}
