// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package check

import (
	"context"
	"strings"
	"unicode"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
)

const (
	whitespaceError     = "There is a whitespace character in the filename: %s."
	missingFileError    = "The file %s referenced in the board descriptor could not be found in the bundle."
	capitalizationError = "The file %s referenced in the board descriptor is named %s in the bundle. File names must match exactly, including capitalization."
)

// Naming checks that the layout files the descriptor references exist
// with matching capitalization, and that no file name contains whitespace.
type Naming struct{}

func (Naming) Name() Name { return NameNaming }

func (Naming) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings

	for _, ref := range b.LayoutFiles() {
		onDisk, ok := b.FindFold(ref)
		switch {
		case !ok:
			f.errorf(missingFileError, ref)
		case onDisk != ref:
			f.errorf(capitalizationError, ref, onDisk)
		}
	}

	seen := make(map[string]bool)
	names := append(append([]string(nil), b.Files...), b.LayoutFiles()...)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			f.errorf(whitespaceError, name)
		}
	}

	return f.result(opts, nil)
}
