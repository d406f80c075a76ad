// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package board models a decoded board layout as a movement graph.
//
// A Board is the ordered sequence of Squares for one board state (district).
// Squares are identified by their index in that sequence. Each Square owns
// zero or more Waypoints, and each Waypoint is a directed transition rule that
// only applies when the player arrived from the Waypoint's EntryID.
//
// # The Sentinel
//
// The value 255 (NoSquare) is reserved throughout the graph and means
// "no square", "no previous square" or "no destination" depending on
// context. It is never a valid index and must never be dereferenced.
//
// # Decoding
//
// Binary layout decoding is owned by an external codec. This package only
// defines the Decoder contract and ships YAMLDecoder, which reads the
// documented YAML export of a layout.
//
//	dec := board.YAMLDecoder{}
//	b, err := dec.Decode("Castle.frb", f)
//	if err != nil {
//	    return err
//	}
//	if b.HasAllTypes(board.Types(board.ArcadeSquare, board.BoonSquare)) {
//	    // ...
//	}
//
// # Thread Safety
//
// Board is read-only after decoding and is safe for concurrent readers.
package board
