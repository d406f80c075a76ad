// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AleutianAI/BoardCheck/pkg/logging"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/descriptor"
)

// ErrNoDescriptor is returned when a bundle directory holds no descriptor.
var ErrNoDescriptor = errors.New("no board descriptor found")

// ErrMultipleDescriptors is returned when a bundle directory holds more than
// one descriptor.
var ErrMultipleDescriptors = errors.New("more than one board descriptor found")

// ErrNoDecoder is returned by LoadLayout for an unregistered extension.
var ErrNoDecoder = errors.New("no decoder for layout extension")

// DefaultLayoutExt is the extension of layout files.
const DefaultLayoutExt = ".frb"

// Loader reads bundles from disk.
//
// Layout files are decoded by the Decoder registered for their extension.
// Layout files the descriptor declares but that are missing, or whose
// extension has no decoder, are left out of Bundle.Layouts; the consistency
// and naming checks report them.
type Loader struct {
	// Decoders maps a lower-case file extension (with dot) to the decoder
	// for layout files with that extension.
	Decoders map[string]board.Decoder

	Logger *logging.Logger
}

// NewLoader returns a loader that decodes the given layout extensions with
// the YAML layout decoder.
func NewLoader(logger *logging.Logger, layoutExts ...string) *Loader {
	if len(layoutExts) == 0 {
		layoutExts = []string{DefaultLayoutExt}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	decoders := make(map[string]board.Decoder, len(layoutExts))
	for _, ext := range layoutExts {
		decoders[normalizeExt(ext)] = board.YAMLDecoder{}
	}
	return &Loader{Decoders: decoders, Logger: logger}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func isDescriptor(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the bundle in dir.
//
// Description:
//
//	The directory must contain exactly one descriptor (.yaml or .yml). Its
//	declared layout files are decoded in declaration order. Subdirectories
//	are not part of the bundle.
//
// Inputs:
//
//	dir - Bundle directory
//
// Outputs:
//
//	*Bundle - The loaded bundle
//	error - ErrNoDescriptor, ErrMultipleDescriptors, or an I/O or decode error
func (l *Loader) Load(dir string) (*Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read bundle dir: %w", err)
	}

	var files, descriptors []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
		if isDescriptor(e.Name()) {
			descriptors = append(descriptors, e.Name())
		}
	}
	sort.Strings(files)

	switch len(descriptors) {
	case 0:
		return nil, fmt.Errorf("%s: %w", dir, ErrNoDescriptor)
	case 1:
	default:
		return nil, fmt.Errorf("%s: %w: %s", dir, ErrMultipleDescriptors, strings.Join(descriptors, ", "))
	}

	desc, err := descriptor.Load(filepath.Join(dir, descriptors[0]))
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Name:       desc.Name.EN,
		Dir:        dir,
		Descriptor: desc,
		Files:      files,
	}

	for _, name := range desc.LayoutFiles {
		layout, err := l.loadLayout(b, name)
		if err != nil {
			return nil, err
		}
		if layout != nil {
			b.Layouts = append(b.Layouts, layout)
		}
	}

	l.Logger.Debug("Loaded bundle",
		"board", b.Label(),
		"dir", dir,
		"files", len(files),
		"layouts", len(b.Layouts))
	return b, nil
}

func (l *Loader) loadLayout(b *Bundle, name string) (*board.Board, error) {
	dec, ok := l.Decoders[strings.ToLower(filepath.Ext(name))]
	if !ok {
		l.Logger.Warn("No decoder for layout file", "board", b.Label(), "file", name)
		return nil, nil
	}
	onDisk, ok := b.FindFold(name)
	if !ok {
		l.Logger.Debug("Layout file not found", "board", b.Label(), "file", name)
		return nil, nil
	}

	f, err := os.Open(filepath.Join(b.Dir, onDisk))
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	layout, err := dec.Decode(onDisk, f)
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// LoadLayout decodes a single layout file outside of any bundle.
func (l *Loader) LoadLayout(path string) (*board.Board, error) {
	dec, ok := l.Decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDecoder)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return dec.Decode(filepath.Base(path), f)
}

// Discover returns every directory under root that contains a descriptor,
// sorted. root itself is included when it holds one.
func Discover(root string) ([]string, error) {
	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isDescriptor(d.Name()) {
			seen[filepath.Dir(path)] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover bundles: %w", err)
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// LoadAll discovers and loads every bundle under root.
func (l *Loader) LoadAll(root string) ([]*Bundle, error) {
	dirs, err := Discover(root)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoDescriptor)
	}

	bundles := make([]*Bundle, 0, len(dirs))
	for _, dir := range dirs {
		b, err := l.Load(dir)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}
