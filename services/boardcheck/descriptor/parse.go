// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// VentureCardSlots is the length of the venture card enablement vector.
const VentureCardSlots = 128

const (
	formatErrorPrefix = "A yaml format error was encountered:\n"
	schemaErrorFormat = "A yaml schema violation has been found: %s failed the '%s' rule."
)

// document is the on-disk shape of a descriptor. Schema rules are expressed
// as validator tags on this type.
type document struct {
	Name            Localized        `yaml:"name"`
	Description     Localized        `yaml:"desc"`
	RuleSet         string           `yaml:"ruleSet" validate:"omitempty,oneof=Standard Easy"`
	Theme           string           `yaml:"theme" validate:"omitempty,oneof=Mario DragonQuest"`
	InitialCash     int              `yaml:"initialCash" validate:"required,gt=0"`
	TargetAmount    int              `yaml:"targetAmount" validate:"required,gt=0"`
	BaseSalary      int              `yaml:"baseSalary" validate:"gte=0"`
	SalaryIncrement int              `yaml:"salaryIncrement" validate:"gte=0"`
	MaxDiceRoll     int              `yaml:"maxDiceRoll" validate:"required,gte=1"`
	FrbFile1        string           `yaml:"frbFile1"`
	FrbFile2        string           `yaml:"frbFile2"`
	FrbFile3        string           `yaml:"frbFile3"`
	FrbFile4        string           `yaml:"frbFile4"`
	FrbFiles        []string         `yaml:"frbFiles" validate:"omitempty,max=4,dive,required"`
	Background      string           `yaml:"background" validate:"required"`
	MapIcon         string           `yaml:"mapIcon"`
	Music           *Music           `yaml:"music"`
	Looping         *Looping         `yaml:"looping"`
	TourMode        *TourMode        `yaml:"tourMode"`
	Changelog       []ChangelogEntry `yaml:"changelog" validate:"dive"`
	Authors         []Author         `yaml:"authors" validate:"dive"`
	VentureCards    []int            `yaml:"ventureCards" validate:"omitempty,len=128,dive,oneof=0 1"`
	DistrictNames   LocalizedList    `yaml:"districtNames"`
	ShopNames       LocalizedList    `yaml:"shopNames"`
	RotationOrigins []Point          `yaml:"switchRotationOriginPoints"`
	Notes           string           `yaml:"notes"`
	Tags            []string         `yaml:"tags"`
}

// layoutFiles returns frbFiles when present, otherwise the numbered keys in
// order.
func (d *document) layoutFiles() []string {
	if len(d.FrbFiles) > 0 {
		return append([]string(nil), d.FrbFiles...)
	}
	var files []string
	for _, f := range []string{d.FrbFile1, d.FrbFile2, d.FrbFile3, d.FrbFile4} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

var schema = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateDocument, document{})
	return v
}

// validateDocument holds the rules that span more than one field.
func validateDocument(sl validator.StructLevel) {
	doc := sl.Current().Interface().(document)
	if strings.TrimSpace(doc.Name.EN) == "" {
		sl.ReportError(doc.Name.EN, "name.en", "EN", "required", "")
	}
	if len(doc.layoutFiles()) == 0 {
		sl.ReportError(doc.FrbFiles, "frbFiles", "FrbFiles", "required", "")
	}
}

// Parse decodes a descriptor and attaches its schema-validation outcome.
//
// Description:
//
//	Format and schema problems never fail the call. They are recorded in
//	Descriptor.SchemaErrors so the validation run can report them like any
//	other check's findings. A document that cannot be decoded at all yields
//	a Descriptor carrying only FileName and the format error.
//
// Inputs:
//
//	name - File name of the descriptor (directory components are dropped)
//	data - Raw YAML
//
// Outputs:
//
//	*Descriptor - Never nil
func Parse(name string, data []byte) *Descriptor {
	d := &Descriptor{FileName: filepath.Base(name)}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		d.SchemaErrors = []string{formatErrorPrefix + err.Error()}
		return d
	}

	d.SchemaErrors = schemaErrors(doc)
	fill(d, &doc)
	return d
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	return Parse(path, data), nil
}

func schemaErrors(doc document) []string {
	err := schema.Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("A yaml schema violation has been found: %v", err)}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "document.")
		msgs = append(msgs, fmt.Sprintf(schemaErrorFormat, field, fe.Tag()))
	}
	return msgs
}

func fill(d *Descriptor, doc *document) {
	d.Name = doc.Name
	d.Description = doc.Description
	d.RuleSet = doc.RuleSet
	d.Theme = doc.Theme
	d.InitialCash = doc.InitialCash
	d.TargetAmount = doc.TargetAmount
	d.BaseSalary = doc.BaseSalary
	d.SalaryIncrement = doc.SalaryIncrement
	d.MaxDiceRoll = doc.MaxDiceRoll
	d.LayoutFiles = doc.layoutFiles()
	d.Background = doc.Background
	d.Icon = doc.MapIcon
	d.Music = doc.Music
	d.Looping = doc.Looping
	d.TourMode = doc.TourMode
	d.Changelog = doc.Changelog
	d.Authors = doc.Authors
	d.VentureCards = ventureCards(doc.VentureCards)
	d.DistrictNames = doc.DistrictNames
	d.ShopNames = doc.ShopNames
	d.RotationOrigins = doc.RotationOrigins
	d.Notes = doc.Notes
	d.Tags = doc.Tags
}

// ventureCards reduces the enablement vector. Card numbers are 1-based.
func ventureCards(bits []int) VentureCards {
	var v VentureCards
	for i, b := range bits {
		v.Count += b
		if b == 1 {
			v.Numbers = append(v.Numbers, i+1)
		}
	}
	return v
}
