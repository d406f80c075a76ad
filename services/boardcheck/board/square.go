// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package board

import (
	"fmt"
	"strconv"
	"strings"
)

// NoSquare is the reserved sentinel meaning "no square" in any square-index
// context.
const NoSquare = 255

// =============================================================================
// SQUARE TYPE
// =============================================================================

// SquareType is the closed set of square variants understood by the game.
//
// The numeric values match the layout file encoding.
type SquareType int

const (
	Property SquareType = iota
	Bank
	VentureSquare
	SuitSquareSpade
	SuitSquareHeart
	SuitSquareDiamond
	SuitSquareClub
	ChangeOfSuitSquareSpade
	ChangeOfSuitSquareHeart
	ChangeOfSuitSquareDiamond
	ChangeOfSuitSquareClub
	TakeABreakSquare
	BoonSquare
	BoomSquare
	StockBrokerSquare
	_ // 15 is unused by the game
	RollOnSquare
	ArcadeSquare
	SwitchSquare
	CannonSquare
	BackStreetSquareA
	BackStreetSquareB
	BackStreetSquareC
	BackStreetSquareD
	BackStreetSquareE
	OneWayAlleyDoorA
	OneWayAlleyDoorB
	OneWayAlleyDoorC
	OneWayAlleyDoorD
	LiftMagmaliceSquareStart
	LiftSquareEnd
	MagmaliceSquare
	OneWayAlleySquare
	EventSquare
	VacantPlot
)

var squareTypeNames = map[SquareType]string{
	Property:                  "Property",
	Bank:                      "Bank",
	VentureSquare:             "VentureSquare",
	SuitSquareSpade:           "SuitSquareSpade",
	SuitSquareHeart:           "SuitSquareHeart",
	SuitSquareDiamond:         "SuitSquareDiamond",
	SuitSquareClub:            "SuitSquareClub",
	ChangeOfSuitSquareSpade:   "ChangeOfSuitSquareSpade",
	ChangeOfSuitSquareHeart:   "ChangeOfSuitSquareHeart",
	ChangeOfSuitSquareDiamond: "ChangeOfSuitSquareDiamond",
	ChangeOfSuitSquareClub:    "ChangeOfSuitSquareClub",
	TakeABreakSquare:          "TakeABreakSquare",
	BoonSquare:                "BoonSquare",
	BoomSquare:                "BoomSquare",
	StockBrokerSquare:         "StockBrokerSquare",
	RollOnSquare:              "RollOnSquare",
	ArcadeSquare:              "ArcadeSquare",
	SwitchSquare:              "SwitchSquare",
	CannonSquare:              "CannonSquare",
	BackStreetSquareA:         "BackStreetSquareA",
	BackStreetSquareB:         "BackStreetSquareB",
	BackStreetSquareC:         "BackStreetSquareC",
	BackStreetSquareD:         "BackStreetSquareD",
	BackStreetSquareE:         "BackStreetSquareE",
	OneWayAlleyDoorA:          "OneWayAlleyDoorA",
	OneWayAlleyDoorB:          "OneWayAlleyDoorB",
	OneWayAlleyDoorC:          "OneWayAlleyDoorC",
	OneWayAlleyDoorD:          "OneWayAlleyDoorD",
	LiftMagmaliceSquareStart:  "LiftMagmaliceSquareStart",
	LiftSquareEnd:             "LiftSquareEnd",
	MagmaliceSquare:           "MagmaliceSquare",
	OneWayAlleySquare:         "OneWayAlleySquare",
	EventSquare:               "EventSquare",
	VacantPlot:                "VacantPlot",
}

// String returns the canonical name of the square type.
func (t SquareType) String() string {
	if name, ok := squareTypeNames[t]; ok {
		return name
	}
	return "SquareType(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a member of the closed square type set.
func (t SquareType) Valid() bool {
	_, ok := squareTypeNames[t]
	return ok
}

// ParseSquareType accepts either a canonical name (case-insensitive) or the
// numeric encoding.
//
// Description:
//
//	Layout exports sometimes carry the numeric id and sometimes the name,
//	so both are accepted. Anything outside the closed set is rejected.
//
// Inputs:
//
//	s - Name or number, e.g. "ArcadeSquare" or "17"
//
// Outputs:
//
//	SquareType - The parsed type
//	error - Wraps ErrUnknownSquareType when s is not recognized
func ParseSquareType(s string) (SquareType, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		t := SquareType(n)
		if !t.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownSquareType, n)
		}
		return t, nil
	}
	for t, name := range squareTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSquareType, s)
}

// =============================================================================
// TYPE SETS
// =============================================================================

// TypeSet is a set of square types. Membership rules are expressed as set
// operations rather than comparisons scattered through callers.
type TypeSet map[SquareType]struct{}

// Types builds a TypeSet from the given members.
func Types(types ...SquareType) TypeSet {
	set := make(TypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// Contains reports whether t is in the set.
func (s TypeSet) Contains(t SquareType) bool {
	_, ok := s[t]
	return ok
}

// Doors is the set of one-way alley door variants.
var Doors = Types(OneWayAlleyDoorA, OneWayAlleyDoorB, OneWayAlleyDoorC, OneWayAlleyDoorD)

// =============================================================================
// SQUARE
// =============================================================================

// Waypoint is a directed transition rule attached to a square.
//
// The rule is valid only when the player arrived from EntryID. Destinations
// may contain NoSquare, which marks an unused slot.
type Waypoint struct {
	EntryID      int   `yaml:"entryId"`
	Destinations []int `yaml:"destinations"`
}

// Square is one cell of the movement graph, identified by its index in the
// owning Board.
type Square struct {
	Type      SquareType `yaml:"type"`
	PositionX int        `yaml:"positionX"`
	PositionY int        `yaml:"positionY"`
	Waypoints []Waypoint `yaml:"waypoints"`

	// DistrictDestinationID is only meaningful for SwitchSquare, where it
	// names the board state the switch flips to.
	DistrictDestinationID int `yaml:"districtDestinationId"`
}

// IsDoor reports whether the square is a one-way alley door.
func (s Square) IsDoor() bool {
	return Doors.Contains(s.Type)
}
