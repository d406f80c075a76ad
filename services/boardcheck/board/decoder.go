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
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Decoder turns the contents of a layout file into a Board.
//
// The binary layout codec lives outside this module; anything that can
// produce a Board satisfies this contract.
type Decoder interface {
	Decode(name string, r io.Reader) (*Board, error)
}

// YAMLDecoder decodes the YAML export of a layout:
//
//	boardInfo:
//	  baseSalary: 250
//	  initialCash: 1500
//	  maxDiceRoll: 7
//	  salaryIncrement: 100
//	  galaxyStatus: none
//	squares:
//	  - type: Bank
//	    positionX: 0
//	    positionY: 0
//	    waypoints:
//	      - entryId: 255
//	        destinations: [1, 255, 255]
type YAMLDecoder struct{}

var _ Decoder = YAMLDecoder{}

// Decode implements Decoder.
func (YAMLDecoder) Decode(name string, r io.Reader) (*Board, error) {
	var b Board
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decode layout %s: empty document", name)
		}
		return nil, fmt.Errorf("decode layout %s: %w", name, err)
	}
	b.FileName = filepath.Base(name)
	return &b, nil
}

// UnmarshalYAML accepts either the type name or its numeric encoding.
func (t *SquareType) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSquareType(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// MarshalYAML writes the canonical type name.
func (t SquareType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts either the mode name or its numeric encoding.
func (m *LoopingMode) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseLoopingMode(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w: %q", value.Line, err, value.Value)
	}
	*m = parsed
	return nil
}

// MarshalYAML writes the lower-case mode name.
func (m LoopingMode) MarshalYAML() (any, error) {
	return m.String(), nil
}
