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
	"strings"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
)

// Recommended playing field. Squares further out make the in-game minimap
// cover too much of the screen.
const (
	MaxCoordinateX = 672
	MaxCoordinateY = 544
)

// MaxDiceRollLimit is the highest dice roll the game supports.
const MaxDiceRollLimit = 9

const (
	noAuthorsError    = "The .yaml board descriptor does not define any authors."
	noChangelogError  = "The .yaml board descriptor does not define a changelog."
	maxDiceRollError  = "Max Dice Roll must be set to 9 or lower."
	doorsAndDiceError = "The board contains One Way Alley Door squares while its Max Dice Roll is set to 9."
	coordinatesError  = "This board contains squares that exceed the recommended maximum coordinates of +/- 544 Y, 672 X. " +
		"The number of offending squares in each layout file is as follows: %s."
	switchIDError = "At least one of the Switch squares in at least one of your layout files has a Destination Square ID " +
		"that is set incorrectly. This value should match the total number of layout files in your bundle (%d). " +
		"The number of offending Switch squares in each layout file is as follows: %s."
	twoWayDoorsError = "This board uses Two-Way Doors, and Max Dice Roll is > 7. This is a scenario that can cause " +
		"crashes, so please switch to using One-Way Alley Ends (rather than linking Doors directly), or reduce " +
		"Max Dice Roll to be less than or equal to 7."
)

// =============================================================================
// BOARD CONFIGURATION
// =============================================================================

// BoardConfiguration applies the descriptor and layout configuration rules.
//
// Description:
//
//	Descriptor rules (authors, changelog, dice ceiling) run when a
//	descriptor is present. Layout rules (doors and dice, coordinates,
//	switch destinations, two-way doors) run when at least one layout was
//	decoded. The two-way door rule reads the first layout only. Every
//	violation is an error.
type BoardConfiguration struct{}

func (BoardConfiguration) Name() Name { return NameBoardConfiguration }

func (BoardConfiguration) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings

	if d := b.Descriptor; d != nil {
		if len(d.Authors) == 0 {
			f.errorf(noAuthorsError)
		}
		if len(d.Changelog) == 0 {
			f.errorf(noChangelogError)
		}
		if d.MaxDiceRoll > MaxDiceRollLimit {
			f.errorf(maxDiceRollError)
		}
	}

	if len(b.Layouts) > 0 {
		if doorsWithMaxDice(b.Layouts) {
			f.errorf(doorsAndDiceError)
		}
		if counts, bad := coordinateViolations(b.Layouts); bad {
			f.errorf(coordinatesError, counts)
		}
		if counts, bad := switchViolations(b.Layouts); bad {
			f.errorf(switchIDError, len(b.Layouts), counts)
		}
		if hasTwoWayDoors(b.Layouts[0]) {
			f.errorf(twoWayDoorsError)
		}
	}

	return f.result(opts, nil)
}

// =============================================================================
// LAYOUT RULES
// =============================================================================

// doorsWithMaxDice reports whether the board's dice ceiling is 9 while any
// layout contains a one-way alley door. The ceiling is read from the first
// layout, which holds the board settings.
func doorsWithMaxDice(layouts []*board.Board) bool {
	if layouts[0].Info.MaxDiceRoll != MaxDiceRollLimit {
		return false
	}
	for _, l := range layouts {
		if l.CountOf(board.Doors) > 0 {
			return true
		}
	}
	return false
}

// coordinateViolations lists the number of out-of-bounds squares per
// layout file. bad is false when every layout is within bounds.
func coordinateViolations(layouts []*board.Board) (counts string, bad bool) {
	parts := make([]string, 0, len(layouts))
	for _, l := range layouts {
		n := 0
		for _, s := range l.Squares {
			if abs(s.PositionX) > MaxCoordinateX || abs(s.PositionY) > MaxCoordinateY {
				n++
			}
		}
		if n > 0 {
			bad = true
		}
		parts = append(parts, fmt.Sprintf("%s: %d", l.FileName, n))
	}
	return strings.Join(parts, ", "), bad
}

// switchViolations lists, per offending layout file, the number of switch
// squares whose district destination is not the layout count.
func switchViolations(layouts []*board.Board) (counts string, bad bool) {
	var parts []string
	for _, l := range layouts {
		n := 0
		for _, s := range l.Squares {
			if s.Type == board.SwitchSquare && s.DistrictDestinationID != len(layouts) {
				n++
			}
		}
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", l.FileName, n))
		}
	}
	return strings.Join(parts, ", "), len(parts) > 0
}

// hasTwoWayDoors reports whether, with a dice ceiling above 7, any door's
// waypoints on the primary layout name another door as entry or
// destination. NoSquare slots are never looked up.
func hasTwoWayDoors(l *board.Board) bool {
	if l.Info.MaxDiceRoll <= 7 {
		return false
	}
	doors := make(map[int]bool)
	for _, id := range l.IndicesOf(board.Doors) {
		if l.Valid(id) {
			doors[id] = true
		}
	}
	linked := func(self, other int) bool {
		return other != self && l.Valid(other) && doors[other]
	}
	for id := range doors {
		for _, w := range l.Squares[id].Waypoints {
			if linked(id, w.EntryID) {
				return true
			}
			for _, dest := range w.Destinations {
				if linked(id, dest) {
					return true
				}
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
