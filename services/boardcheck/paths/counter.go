// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package paths

import (
	"context"
	"sort"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
)

const (
	// MinSearchDepth is the search horizon used for small boards.
	MinSearchDepth = 16

	// WarningThreshold is the max paths value above which a board is
	// flagged as likely to crash.
	WarningThreshold = 100

	// DefaultLimit is the configured ceiling passed to MaxPaths. It is
	// recorded but not enforced; see Counter.Budget for the enforced bound.
	DefaultLimit = 1000

	// ctxCheckInterval is how many calls pass between context polls.
	ctxCheckInterval = 1 << 14
)

// SearchDepth returns the search horizon for a board of squareCount squares:
// max(16, squareCount/3).
func SearchDepth(squareCount int) int {
	depth := squareCount / 3
	if depth < MinSearchDepth {
		return MinSearchDepth
	}
	return depth
}

// valid reports whether id may be used as a square id in a query: an
// in-range index or the sentinel.
func valid(squares []board.Square, id int) bool {
	return (id >= 0 && id < len(squares)) || id == board.NoSquare
}

// Destinations returns the set of destinations reachable from cur's
// waypoints when the player arrived from prev.
//
// Description:
//
//	A waypoint applies when its EntryID equals prev, or unconditionally
//	when prev is the sentinel (the first step has no previous square).
//	Duplicates are removed and the sentinel is never returned. The result
//	is sorted so enumeration order is deterministic.
//
// Inputs:
//
//	squares - The board's squares
//	prev - The square the player has their back to, or board.NoSquare
//	cur - The square being left
//
// Outputs:
//
//	[]int - Unique destinations; nil when prev or cur is neither an
//	        in-range index nor the sentinel, or when cur is the sentinel
func Destinations(squares []board.Square, prev, cur int) []int {
	if !valid(squares, cur) || !valid(squares, prev) {
		return nil
	}
	if cur == board.NoSquare {
		return nil
	}

	seen := make(map[int]struct{})
	for _, w := range squares[cur].Waypoints {
		if w.EntryID != prev && prev != board.NoSquare {
			continue
		}
		for _, d := range w.Destinations {
			if d == board.NoSquare {
				continue
			}
			seen[d] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]int, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// PathCount returns the number of distinct move sequences of length dice
// that start by leaving cur having arrived from prev.
//
// The base case dice == 0 counts as exactly one path. Destinations outside
// the board are not followed.
func PathCount(squares []board.Square, prev, cur, dice int) int {
	var c Counter
	return c.pathCount(squares, prev, cur, dice)
}

// PathCountFromStart is PathCount with no previous square.
func PathCountFromStart(squares []board.Square, cur, dice int) int {
	return PathCount(squares, board.NoSquare, cur, dice)
}

// MaxPaths evaluates PathCountFromStart for every square and returns the
// square that produced the highest count along with that count.
//
// limit is accepted as the configured ceiling but does not bound the
// search. When no square has any path the result is (board.NoSquare, 0).
func MaxPaths(squares []board.Square, dice, limit int) (squareID, count int) {
	var c Counter
	r := c.MaxPaths(squares, dice, limit)
	return r.SquareID, r.Count
}

// =============================================================================
// COUNTER
// =============================================================================

// Result is the outcome of a max paths search.
type Result struct {
	// SquareID is the square with the highest count, or board.NoSquare.
	SquareID int `json:"square_id"`

	// Count is the highest path count found.
	Count int `json:"count"`

	// Depth is the search depth used.
	Depth int `json:"depth"`

	// Limit is the configured ceiling that was passed in.
	Limit int `json:"limit"`

	// Calls is the number of recursive evaluations performed.
	Calls int64 `json:"calls"`

	// Exhausted is true when the budget or context stopped the search, in
	// which case Count is a lower bound.
	Exhausted bool `json:"exhausted"`
}

// Counter runs path searches with an optional hard ceiling on work.
//
// The zero value is an unbounded counter. A Counter is not safe for
// concurrent use; give each goroutine its own.
type Counter struct {
	// Budget caps the number of recursive evaluations across one MaxPaths
	// call. Zero means unbounded.
	Budget int64

	// Ctx, when set, is polled periodically; cancellation stops the search.
	Ctx context.Context

	calls     int64
	exhausted bool
}

// MaxPaths is the budgeted form of the package-level MaxPaths.
func (c *Counter) MaxPaths(squares []board.Square, dice, limit int) Result {
	c.calls = 0
	c.exhausted = false

	r := Result{SquareID: board.NoSquare, Depth: dice, Limit: limit}
	for i := range squares {
		if c.exhausted {
			break
		}
		n := c.pathCount(squares, board.NoSquare, i, dice)
		if n > r.Count {
			r.Count = n
			r.SquareID = i
		}
	}
	r.Calls = c.calls
	r.Exhausted = c.exhausted
	return r
}

// stop records one evaluation and reports whether the search must end.
func (c *Counter) stop() bool {
	if c.exhausted {
		return true
	}
	c.calls++
	if c.Budget > 0 && c.calls > c.Budget {
		c.exhausted = true
		return true
	}
	if c.Ctx != nil && c.calls%ctxCheckInterval == 0 && c.Ctx.Err() != nil {
		c.exhausted = true
		return true
	}
	return false
}

func (c *Counter) pathCount(squares []board.Square, prev, cur, dice int) int {
	if c.stop() {
		return 0
	}
	if dice == 0 {
		return 1
	}

	count := 0
	for _, d := range Destinations(squares, prev, cur) {
		if d < 0 || d >= len(squares) {
			continue
		}
		count += c.pathCount(squares, cur, d, dice-1)
	}
	return count
}
