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

	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/paths"
)

const (
	maxPathsWarning   = "The Max Paths value of %d is higher than %d."
	lowerBoundMessage = "The path search for %s stopped after %d evaluations, so its Max Paths value of %d is a lower bound."
)

// MaxPathsData is the payload of the max-paths check.
type MaxPathsData struct {
	// Count is the highest path count over every layout.
	Count int `json:"count"`

	// File is the layout that produced Count.
	File string `json:"file,omitempty"`

	// SquareID is the square in File that produced Count.
	SquareID int `json:"square_id"`

	// Layouts holds the search outcome of each layout, in bundle order.
	Layouts []paths.Result `json:"layouts"`
}

// MaxPaths runs the path search on every layout and warns when the highest
// count exceeds paths.WarningThreshold.
type MaxPaths struct {
	// Budget caps the recursive evaluations per layout. Zero is unbounded.
	Budget int64
}

func (MaxPaths) Name() Name { return NameMaxPaths }

func (m MaxPaths) Run(ctx context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings
	data := MaxPathsData{SquareID: board.NoSquare}

	for _, l := range b.Layouts {
		counter := paths.Counter{Budget: m.Budget, Ctx: ctx}
		r := counter.MaxPaths(l.Squares, paths.SearchDepth(l.Len()), paths.DefaultLimit)
		data.Layouts = append(data.Layouts, r)

		if r.Exhausted {
			f.infof(lowerBoundMessage, l.FileName, r.Calls, r.Count)
		}
		if r.Count > data.Count {
			data.Count = r.Count
			data.File = l.FileName
			data.SquareID = r.SquareID
		}
	}

	if data.Count > paths.WarningThreshold {
		f.warnf(maxPathsWarning, data.Count, paths.WarningThreshold)
	}
	return f.result(opts, data)
}
