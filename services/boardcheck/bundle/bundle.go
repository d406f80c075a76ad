// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package bundle models one board's full asset set (descriptor, layout
// files, screenshots and other media) and loads it from a directory.
package bundle

import (
	"path/filepath"
	"strings"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/descriptor"
)

// ScreenshotExt is the extension of board screenshots.
const ScreenshotExt = ".webp"

// Bundle is one board's asset set.
type Bundle struct {
	// Name is the board's English name as the descriptor declares it. It is
	// empty when the descriptor has none.
	Name string `json:"name"`

	// Dir is the directory the bundle was loaded from. Empty for bundles
	// assembled in memory.
	Dir string `json:"dir,omitempty"`

	Descriptor *descriptor.Descriptor `json:"descriptor"`

	// Layouts holds the decoded layout files that were found, in the order
	// the descriptor declares them.
	Layouts []*board.Board `json:"-"`

	// Files lists every file name in the bundle directory, sorted.
	Files []string `json:"files"`
}

// Label returns the name to display for the bundle: its Name, or the
// directory name when the descriptor does not declare one.
func (b *Bundle) Label() string {
	if b.Name != "" || b.Dir == "" {
		return b.Name
	}
	return filepath.Base(b.Dir)
}

// LayoutFiles returns the layout file names the descriptor declares.
func (b *Bundle) LayoutFiles() []string {
	if b.Descriptor == nil {
		return nil
	}
	return b.Descriptor.LayoutFiles
}

// Screenshots returns the bundle's screenshot file names.
func (b *Bundle) Screenshots() []string {
	var shots []string
	for _, f := range b.Files {
		if strings.EqualFold(filepath.Ext(f), ScreenshotExt) {
			shots = append(shots, f)
		}
	}
	return shots
}

// HasFile reports whether name is present exactly as written.
func (b *Bundle) HasFile(name string) bool {
	for _, f := range b.Files {
		if f == name {
			return true
		}
	}
	return false
}

// FindFold returns the bundle file that matches name ignoring case.
func (b *Bundle) FindFold(name string) (string, bool) {
	for _, f := range b.Files {
		if f == name {
			return f, true
		}
	}
	for _, f := range b.Files {
		if strings.EqualFold(f, name) {
			return f, true
		}
	}
	return "", false
}

// SquareCount returns the square count of every layout combined.
func (b *Bundle) SquareCount() int {
	n := 0
	for _, l := range b.Layouts {
		n += l.Len()
	}
	return n
}
