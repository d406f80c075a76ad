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

// HasType reports whether at least one square has type t.
func (b *Board) HasType(t SquareType) bool {
	for _, s := range b.Squares {
		if s.Type == t {
			return true
		}
	}
	return false
}

// HasAllTypes reports whether every type in types appears at least once
// among the board's squares. An empty set is trivially satisfied.
func (b *Board) HasAllTypes(types TypeSet) bool {
	if len(types) == 0 {
		return true
	}
	present := b.PresentTypes()
	for t := range types {
		if !present.Contains(t) {
			return false
		}
	}
	return true
}

// PresentTypes returns the set of types used by at least one square.
func (b *Board) PresentTypes() TypeSet {
	set := make(TypeSet)
	for _, s := range b.Squares {
		set[s.Type] = struct{}{}
	}
	return set
}

// IndicesOf returns, in ascending order, the index of every square whose
// type is in types.
func (b *Board) IndicesOf(types TypeSet) []int {
	var ids []int
	for i, s := range b.Squares {
		if types.Contains(s.Type) {
			ids = append(ids, i)
		}
	}
	return ids
}

// CountOf returns the number of squares whose type is in types.
func (b *Board) CountOf(types TypeSet) int {
	n := 0
	for _, s := range b.Squares {
		if types.Contains(s.Type) {
			n++
		}
	}
	return n
}
