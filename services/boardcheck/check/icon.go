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
	"fmt"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
)

// IconExt is the extension of map icon images.
const IconExt = ".png"

const (
	customBackgroundNoIconError  = "The board uses the custom background %s but does not define a map icon (mapIcon)."
	iconFileMissingError         = "The map icon %s is declared but %s could not be found in the bundle."
	stockBackgroundNoIconWarning = "The board uses the stock background %s without a map icon. The default icon for that background will be shown."
)

var stockBackgrounds = func() map[string]bool {
	m := make(map[string]bool)
	for i := 1; i <= 19; i++ {
		m[fmt.Sprintf("bg%03d", i)] = true
	}
	for i := 101; i <= 109; i++ {
		m[fmt.Sprintf("bg%03d", i)] = true
	}
	return m
}()

// IsStockBackground reports whether bg ships with the game.
func IsStockBackground(bg string) bool {
	return stockBackgrounds[bg]
}

// Icon checks the map icon against the board background.
type Icon struct{}

func (Icon) Name() Name { return NameIcon }

func (Icon) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings
	d := b.Descriptor
	if d == nil || d.Background == "" {
		return f.result(opts, nil)
	}

	switch {
	case d.Icon != "":
		file := d.Icon + IconExt
		if _, ok := b.FindFold(file); !ok {
			f.errorf(iconFileMissingError, d.Icon, file)
		}
	case IsStockBackground(d.Background):
		f.warnf(stockBackgroundNoIconWarning, d.Background)
	default:
		f.errorf(customBackgroundNoIconError, d.Background)
	}

	return f.result(opts, nil)
}
