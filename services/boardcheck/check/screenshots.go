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
	"path/filepath"
	"strings"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
)

const missingScreenshotError = "Board file %s does not have a corresponding .webp screenshot."

// Screenshots requires a same-stem screenshot for every layout file.
type Screenshots struct{}

func (Screenshots) Name() Name { return NameScreenshots }

func (Screenshots) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings

	stems := make(map[string]bool)
	for _, s := range b.Screenshots() {
		stems[strings.ToLower(stem(s))] = true
	}
	for _, layout := range b.LayoutFiles() {
		if !stems[strings.ToLower(stem(layout))] {
			f.errorf(missingScreenshotError, layout)
		}
	}

	return f.result(opts, nil)
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
