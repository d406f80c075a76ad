// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package paths estimates how many distinct movement paths a player can take
// from any square of a board.
//
// The game engine enumerates every dice-roll sequence when it plans a move.
// Boards with dense waypoint networks make that enumeration explode and are
// known to crash the game, so the maximum path count is used as a crash-risk
// heuristic.
//
// # Algorithm
//
// The search is an exhaustive enumeration of move sequences up to a fixed
// depth. There is no memoization and no cycle detection: the count is the
// number of raw sequences, and a cyclic, highly branching board is
// exponential in the depth. That blow-up is the signal being measured.
//
//	Destinations(prev, cur)   waypoint destinations usable when arriving from prev
//	PathCount(prev, cur, n)   1 when n == 0, else sum over Destinations of PathCount(cur, d, n-1)
//	MaxPaths(n)               max over every square of PathCount(NoSquare, square, n)
//
// # Bounding Cost
//
// Counter carries an optional call budget and a context. When either stops
// the search, the partial count is returned and Result.Exhausted is set, so
// callers can report the value as a lower bound instead of silently changing
// it. A zero budget means unbounded.
package paths
