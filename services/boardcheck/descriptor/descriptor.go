// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package descriptor models the board's metadata descriptor (the .yaml file
// that ships next to the layout files) and computes its schema-validation
// outcome at load time.
package descriptor

import "strings"

// Localized holds one string per supported language.
type Localized struct {
	EN string `yaml:"en" json:"en"`
	DE string `yaml:"de" json:"de,omitempty"`
	FR string `yaml:"fr" json:"fr,omitempty"`
	IT string `yaml:"it" json:"it,omitempty"`
	JP string `yaml:"jp" json:"jp,omitempty"`
	ES string `yaml:"es" json:"es,omitempty"`
}

// LocalizedList holds one string list per supported language.
type LocalizedList struct {
	EN []string `yaml:"en" json:"en"`
	DE []string `yaml:"de" json:"de,omitempty"`
	FR []string `yaml:"fr" json:"fr,omitempty"`
	IT []string `yaml:"it" json:"it,omitempty"`
	JP []string `yaml:"jp" json:"jp,omitempty"`
	ES []string `yaml:"es" json:"es,omitempty"`
}

// Author is a credited board author.
type Author struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	URL  string `yaml:"url" json:"url,omitempty" validate:"omitempty,url"`
}

// ChangelogEntry is one released version of the board.
type ChangelogEntry struct {
	Version int      `yaml:"version" json:"version" validate:"gte=1"`
	Added   []string `yaml:"added" json:"added,omitempty"`
	Changed []string `yaml:"changed" json:"changed,omitempty"`
	Removed []string `yaml:"removed" json:"removed,omitempty"`
}

// Point is a 2-D coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Looping is the Galaxy-style wrap-around configuration.
type Looping struct {
	Mode                string `yaml:"mode" json:"mode" validate:"required,oneof=None none Vertical vertical Both both"`
	Radius              int    `yaml:"radius" json:"radius"`
	HorizontalPadding   int    `yaml:"horizontalPadding" json:"horizontal_padding"`
	VerticalSquareCount int    `yaml:"verticalSquareCount" json:"vertical_square_count"`
}

// TourMode holds the board's Tour Mode settings.
type TourMode struct {
	BankruptcyLimit int    `yaml:"bankruptcyLimit" json:"bankruptcy_limit"`
	InitialCash     int    `yaml:"initialCash" json:"initial_cash"`
	ClearRank       int    `yaml:"clearRank" json:"clear_rank" validate:"omitempty,min=1,max=4"`
	Opponent1       string `yaml:"opponent1" json:"opponent1"`
	Opponent2       string `yaml:"opponent2" json:"opponent2"`
	Opponent3       string `yaml:"opponent3" json:"opponent3"`
}

// Music is the board's custom music configuration. Download holds the
// mirror URLs, primary mirror first.
type Music struct {
	Download StringList `yaml:"download" json:"download,omitempty" validate:"dive,url"`
	Map      StringList `yaml:"map" json:"map,omitempty"`

	// Remaining keys name the replacement track for a game event.
	Events map[string]string `yaml:",inline" json:"events,omitempty"`
}

// VentureCards is the venture card enablement vector reduced to the
// enabled card count and the 1-based numbers of the enabled cards.
type VentureCards struct {
	Count   int   `json:"count"`
	Numbers []int `json:"numbers,omitempty"`
}

// Enabled reports whether card n is enabled.
func (v VentureCards) Enabled(n int) bool {
	for _, c := range v.Numbers {
		if c == n {
			return true
		}
	}
	return false
}

// Descriptor is a parsed board descriptor.
type Descriptor struct {
	// FileName is the descriptor's file name without directory.
	FileName string `json:"file_name"`

	Name            Localized        `json:"name"`
	Description     Localized        `json:"description"`
	RuleSet         string           `json:"rule_set,omitempty"`
	Theme           string           `json:"theme,omitempty"`
	InitialCash     int              `json:"initial_cash"`
	TargetAmount    int              `json:"target_amount"`
	BaseSalary      int              `json:"base_salary"`
	SalaryIncrement int              `json:"salary_increment"`
	MaxDiceRoll     int              `json:"max_dice_roll"`
	LayoutFiles     []string         `json:"layout_files"`
	Background      string           `json:"background"`
	Icon            string           `json:"icon,omitempty"`
	Music           *Music           `json:"music,omitempty"`
	Looping         *Looping         `json:"looping,omitempty"`
	TourMode        *TourMode        `json:"tour_mode,omitempty"`
	Changelog       []ChangelogEntry `json:"changelog,omitempty"`
	Authors         []Author         `json:"authors,omitempty"`
	VentureCards    VentureCards     `json:"venture_cards"`
	DistrictNames   LocalizedList    `json:"district_names"`
	ShopNames       LocalizedList    `json:"shop_names"`
	RotationOrigins []Point          `json:"switch_rotation_origin_points,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Tags            []string         `json:"tags,omitempty"`

	// SchemaErrors is the schema-validation outcome computed when the
	// descriptor was parsed. Empty means the document is valid.
	SchemaErrors []string `json:"schema_errors,omitempty"`
}

// LoopingMode returns the descriptor's looping mode in lower case, "none"
// when no looping block is declared.
func (d *Descriptor) LoopingMode() string {
	if d.Looping == nil || d.Looping.Mode == "" {
		return "none"
	}
	return strings.ToLower(d.Looping.Mode)
}

// MusicMirrors returns the declared music download mirrors, primary first.
func (d *Descriptor) MusicMirrors() []string {
	if d.Music == nil {
		return nil
	}
	return d.Music.Download
}

// Version returns the most recent changelog version, or 1 when no
// changelog is declared.
func (d *Descriptor) Version() int {
	v := 1
	for _, c := range d.Changelog {
		if c.Version > v {
			v = c.Version
		}
	}
	return v
}

// AuthorNames returns the author names in declaration order.
func (d *Descriptor) AuthorNames() []string {
	names := make([]string, 0, len(d.Authors))
	for _, a := range d.Authors {
		names = append(names, a.Name)
	}
	return names
}
