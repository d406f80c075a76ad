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
	"errors"
	"strconv"
	"strings"
)

// ErrUnknownSquareType is returned when a layout names a square type outside
// the closed set.
var ErrUnknownSquareType = errors.New("unknown square type")

// ErrUnknownLoopingMode is returned when a layout names an unsupported
// looping mode.
var ErrUnknownLoopingMode = errors.New("unknown looping mode")

// LoopingMode is the board's Galaxy-style wrap-around setting.
type LoopingMode int

const (
	LoopingNone LoopingMode = iota
	LoopingVertical
	LoopingBoth
)

// String returns the lower-case name used by board descriptors, or
// "unknown" for values outside the set.
func (m LoopingMode) String() string {
	switch m {
	case LoopingNone:
		return "none"
	case LoopingVertical:
		return "vertical"
	case LoopingBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseLoopingMode accepts a descriptor-style name or the numeric encoding.
func ParseLoopingMode(s string) (LoopingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "0":
		return LoopingNone, nil
	case "vertical", "1":
		return LoopingVertical, nil
	case "both", "2":
		return LoopingBoth, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return LoopingMode(n), nil
	}
	return LoopingNone, ErrUnknownLoopingMode
}

// Info holds the board-level settings stored in a layout file.
type Info struct {
	BaseSalary      int         `yaml:"baseSalary"`
	InitialCash     int         `yaml:"initialCash"`
	MaxDiceRoll     int         `yaml:"maxDiceRoll"`
	SalaryIncrement int         `yaml:"salaryIncrement"`
	TargetAmount    int         `yaml:"targetAmount"`
	Looping         LoopingMode `yaml:"galaxyStatus"`
}

// Board is one decoded layout: the ordered squares of a single board state
// plus the board-level settings.
//
// Thread Safety: Immutable after decoding.
type Board struct {
	// FileName is the layout file the board was decoded from, without any
	// directory component.
	FileName string `yaml:"-"`

	Info    Info     `yaml:"boardInfo"`
	Squares []Square `yaml:"squares"`
}

// Len returns the number of squares.
func (b *Board) Len() int {
	return len(b.Squares)
}

// Valid reports whether id is an in-range square index. The sentinel is
// never valid.
func (b *Board) Valid(id int) bool {
	return id >= 0 && id < len(b.Squares) && id != NoSquare
}
