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
)

// RequiredVentureCards is the number of venture cards a board must enable.
const RequiredVentureCards = 64

const (
	ventureCountError   = "Boards are required to have exactly 64 cards, but %d are enabled."
	ventureCountWarning = "No venture cards have been specified. This will work, but a default assortment of Venture Cards will be activated."
	venture45Error      = "Venture Card 45 is active, but the board does not contain both an Arcade square and a Take-A-Break square."
	venture125Error     = "Venture Card 125 is active, but the board does not contain both an Arcade square and a Boon square."
	venture87Warning    = "Max Dice Roll is set to %d, but Venture Card 87 is enabled. Venture Card 87 makes the player roll " +
		"either a 7 or an 8, which can work, but can also cause issues since this value being higher than the " +
		"Max Dice Roll makes it very hard to test pathing for."
	venture115Warning = "Max Dice Roll is set to %d, but Venture Card 115 is enabled. Venture Card 115 makes the player " +
		"roll an 7, which can work, but can also cause issues since this value being higher than the Max Dice " +
		"Roll makes it very hard to test pathing for."
)

// cardRequirement is a venture card that only works when the board has
// certain square types.
type cardRequirement struct {
	card    int
	types   board.TypeSet
	message string
}

var cardRequirements = []cardRequirement{
	{card: 45, types: board.Types(board.ArcadeSquare, board.TakeABreakSquare), message: venture45Error},
	{card: 125, types: board.Types(board.ArcadeSquare, board.BoonSquare), message: venture125Error},
}

// cardDiceMinimums maps a venture card to the dice ceiling below which it
// is risky.
var cardDiceMinimums = []struct {
	card    int
	minimum int
	message string
}{
	{card: 87, minimum: 8, message: venture87Warning},
	{card: 115, minimum: 7, message: venture115Warning},
}

// VentureCards checks the descriptor's venture card selection. Card square
// requirements are matched against the first layout.
type VentureCards struct{}

func (VentureCards) Name() Name { return NameVentureCards }

func (VentureCards) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings
	d := b.Descriptor
	if d == nil {
		return f.result(opts, nil)
	}
	cards := d.VentureCards

	switch cards.Count {
	case 0:
		f.warnf(ventureCountWarning)
	case RequiredVentureCards:
	default:
		f.errorf(ventureCountError, cards.Count)
	}

	for _, m := range cardDiceMinimums {
		if cards.Enabled(m.card) && d.MaxDiceRoll < m.minimum {
			f.warnf(m.message, d.MaxDiceRoll)
		}
	}

	if len(b.Layouts) > 0 {
		present := b.Layouts[0].PresentTypes()
		for _, req := range cardRequirements {
			if cards.Enabled(req.card) && !containsAll(present, req.types) {
				f.errors = append(f.errors, req.message)
			}
		}
	}

	return f.result(opts, cards)
}

func containsAll(set, want board.TypeSet) bool {
	for t := range want {
		if !set.Contains(t) {
			return false
		}
	}
	return true
}
