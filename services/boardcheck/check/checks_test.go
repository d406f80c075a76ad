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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/descriptor"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/paths"
)

// =============================================================================
// FIXTURES
// =============================================================================

// cards enables n venture cards, leaving out the ones with board
// requirements.
func cards(n int) descriptor.VentureCards {
	restricted := map[int]bool{45: true, 87: true, 115: true, 125: true}
	v := descriptor.VentureCards{Count: n}
	for i := 1; len(v.Numbers) < n; i++ {
		if !restricted[i] {
			v.Numbers = append(v.Numbers, i)
		}
	}
	return v
}

func validDescriptor() *descriptor.Descriptor {
	return &descriptor.Descriptor{
		FileName:        "Castle.yaml",
		Name:            descriptor.Localized{EN: "Castle Courtyard"},
		InitialCash:     1500,
		TargetAmount:    10000,
		BaseSalary:      250,
		SalaryIncrement: 100,
		MaxDiceRoll:     7,
		LayoutFiles:     []string{"Castle.frb"},
		Background:      "bg004",
		Icon:            "p_bg_castle",
		Authors:         []descriptor.Author{{Name: "Nikkums"}},
		Changelog:       []descriptor.ChangelogEntry{{Version: 1}},
		VentureCards:    cards(RequiredVentureCards),
	}
}

func layout(name string, dice int, squares ...board.Square) *board.Board {
	return &board.Board{
		FileName: name,
		Info: board.Info{
			BaseSalary:      250,
			InitialCash:     1500,
			MaxDiceRoll:     dice,
			SalaryIncrement: 100,
		},
		Squares: squares,
	}
}

func sq(t board.SquareType) board.Square {
	return board.Square{Type: t}
}

// ringSquares links n property squares into a one-directional loop.
func ringSquares(n int) []board.Square {
	squares := make([]board.Square, n)
	for i := range squares {
		squares[i] = board.Square{
			Type: board.Property,
			Waypoints: []board.Waypoint{
				{EntryID: (i + n - 1) % n, Destinations: []int{(i + 1) % n}},
			},
		}
	}
	return squares
}

// meshSquares fully connects three squares so every move has two choices.
func meshSquares() []board.Square {
	squares := make([]board.Square, 3)
	for i := range squares {
		var wps []board.Waypoint
		var others []int
		for j := 0; j < 3; j++ {
			if j != i {
				others = append(others, j)
			}
		}
		for _, j := range others {
			wps = append(wps, board.Waypoint{EntryID: j, Destinations: others})
		}
		squares[i] = board.Square{Type: board.Property, Waypoints: wps}
	}
	return squares
}

func newBundle(d *descriptor.Descriptor, layouts ...*board.Board) *bundle.Bundle {
	b := &bundle.Bundle{Descriptor: d, Layouts: layouts}
	if d != nil {
		b.Name = d.Name.EN
		b.Files = append(b.Files, d.FileName)
		for _, f := range d.LayoutFiles {
			b.Files = append(b.Files, f, stem(f)+".webp")
		}
		if d.Icon != "" {
			b.Files = append(b.Files, d.Icon+IconExt)
		}
	}
	return b
}

func validBundle() *bundle.Bundle {
	return newBundle(validDescriptor(), layout("Castle.frb", 7, ringSquares(4)...))
}

func run(c Check, b *bundle.Bundle) Result {
	return c.Run(context.Background(), b, DefaultOptions())
}

func TestCatalogue_ValidBundlePasses(t *testing.T) {
	b := validBundle()
	opts := DefaultOptions().With(true, NameDoors)
	for _, c := range Catalogue(nil, 0) {
		r := Run(context.Background(), c, b, opts)
		assert.Equal(t, StatusOK, r.Status, "%s: %v %v", c.Name(), r.Errors, r.Warnings)
	}
}

func TestCatalogue_ToleratesEmptyBundle(t *testing.T) {
	b := &bundle.Bundle{}
	opts := DefaultOptions().With(true, NameDoors)
	for _, c := range Catalogue(nil, 0) {
		assert.NotPanics(t, func() { Run(context.Background(), c, b, opts) }, c.Name())
	}
}

// =============================================================================
// DOORS
// =============================================================================

func TestDoors_MaxDiceNineWithDoorIsOneError(t *testing.T) {
	b := newBundle(nil, layout("Castle.frb", 9,
		sq(board.Bank), sq(board.OneWayAlleyDoorA), sq(board.OneWayAlleyDoorC)))

	r := run(Doors{}, b)
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{doorsAndDiceError}, r.Errors)
}

func TestDoors_OtherDiceIsExplicitSuccess(t *testing.T) {
	b := newBundle(nil, layout("Castle.frb", 8, sq(board.OneWayAlleyDoorA)))

	r := run(Doors{}, b)
	assert.Equal(t, StatusOK, r.Status)
	assert.True(t, r.Success)
	assert.Empty(t, r.Errors)
}

func TestDoors_NineWithoutDoors(t *testing.T) {
	b := newBundle(nil, layout("Castle.frb", 9, sq(board.Bank), sq(board.Property)))

	r := run(Doors{}, b)
	assert.Equal(t, StatusOK, r.Status)
	assert.False(t, r.Success)
}

// =============================================================================
// BOARD CONFIGURATION
// =============================================================================

func TestBoardConfiguration_DescriptorRules(t *testing.T) {
	d := validDescriptor()
	d.Authors = nil
	d.Changelog = nil
	d.MaxDiceRoll = 10

	r := run(BoardConfiguration{}, newBundle(d))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{noAuthorsError, noChangelogError, maxDiceRollError}, r.Errors)
}

func TestBoardConfiguration_DoorsAndDice(t *testing.T) {
	b := newBundle(validDescriptor(), layout("Castle.frb", 9, sq(board.Bank), sq(board.OneWayAlleyDoorB)))

	r := run(BoardConfiguration{}, b)
	assert.Contains(t, r.Errors, doorsAndDiceError)
}

func TestBoardConfiguration_Coordinates(t *testing.T) {
	far := board.Square{Type: board.Property, PositionX: -700}
	tall := board.Square{Type: board.Property, PositionY: 545}
	edge := board.Square{Type: board.Property, PositionX: 672, PositionY: -544}
	b := newBundle(validDescriptor(),
		layout("A.frb", 7, far, tall, edge),
		layout("B.frb", 7, edge))
	b.Descriptor.LayoutFiles = []string{"A.frb", "B.frb"}

	r := run(BoardConfiguration{}, b)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, fmt.Sprintf(coordinatesError, "A.frb: 2, B.frb: 0"), r.Errors[0])
}

func TestBoardConfiguration_SwitchDestinations(t *testing.T) {
	good := board.Square{Type: board.SwitchSquare, DistrictDestinationID: 2}
	bad := board.Square{Type: board.SwitchSquare, DistrictDestinationID: 1}
	b := newBundle(validDescriptor(),
		layout("A.frb", 7, good, bad),
		layout("B.frb", 7, good))

	r := run(BoardConfiguration{}, b)
	require.Len(t, r.Errors, 1)
	assert.Equal(t, fmt.Sprintf(switchIDError, 2, "A.frb: 1"), r.Errors[0])
}

func TestBoardConfiguration_TwoWayDoors(t *testing.T) {
	linked := func(dice int) *board.Board {
		return layout("Castle.frb", dice,
			board.Square{Type: board.OneWayAlleyDoorA, Waypoints: []board.Waypoint{
				{EntryID: board.NoSquare, Destinations: []int{1, board.NoSquare}},
			}},
			board.Square{Type: board.OneWayAlleyDoorB},
		)
	}

	r := run(BoardConfiguration{}, newBundle(validDescriptor(), linked(8)))
	assert.Equal(t, []string{twoWayDoorsError}, r.Errors)

	r = run(BoardConfiguration{}, newBundle(validDescriptor(), linked(7)))
	assert.Empty(t, r.Errors)

	r = run(BoardConfiguration{}, newBundle(validDescriptor(), layout("Plain.frb", 8, sq(board.Property)), linked(8)))
	assert.Empty(t, r.Errors, "only the primary layout is inspected")
}

func TestBoardConfiguration_TwoWayDoorsIgnoreNoSquare(t *testing.T) {
	squares := make([]board.Square, 300)
	for i := range squares {
		squares[i] = sq(board.Property)
	}
	squares[board.NoSquare] = sq(board.OneWayAlleyDoorB)
	squares[10] = board.Square{Type: board.OneWayAlleyDoorA, Waypoints: []board.Waypoint{
		{EntryID: board.NoSquare, Destinations: []int{11, board.NoSquare}},
	}}

	r := run(BoardConfiguration{}, newBundle(validDescriptor(), layout("Big.frb", 8, squares...)))
	assert.NotContains(t, r.Errors, twoWayDoorsError)
}

// =============================================================================
// CONSISTENCY
// =============================================================================

func TestConsistency_Mismatches(t *testing.T) {
	l := layout("Castle.frb", 8, ringSquares(3)...)
	l.Info.BaseSalary = 300
	l.Info.Looping = board.LoopingVertical

	r := run(Consistency{}, newBundle(validDescriptor(), l))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{
		"The value of baseSalary is 250 in the yaml file but 300 in the frb file.",
		"The value of maxDiceRoll is 7 in the yaml file but 8 in the frb file.",
		"The value of looping mode is none in the yaml file but vertical in the frb file.",
	}, r.Errors)
}

func TestConsistency_ZeroValuesAreNotCompared(t *testing.T) {
	l := layout("Castle.frb", 7, ringSquares(3)...)
	l.Info.SalaryIncrement = 0
	d := validDescriptor()
	d.InitialCash = 0

	r := run(Consistency{}, newBundle(d, l))
	assert.Equal(t, StatusOK, r.Status)
}

func TestConsistency_LoopingModeMatchesCaseInsensitively(t *testing.T) {
	l := layout("Castle.frb", 7, ringSquares(3)...)
	l.Info.Looping = board.LoopingBoth
	d := validDescriptor()
	d.Looping = &descriptor.Looping{Mode: "Both"}

	r := run(Consistency{}, newBundle(d, l))
	assert.Equal(t, StatusOK, r.Status)
}

func TestConsistency_NoLayouts(t *testing.T) {
	r := run(Consistency{}, newBundle(validDescriptor()))
	assert.Equal(t, []string{layoutNotFoundError}, r.Errors)
}

// =============================================================================
// MAX PATHS
// =============================================================================

func TestMaxPaths_Ring(t *testing.T) {
	r := run(MaxPaths{}, validBundle())

	assert.Equal(t, StatusOK, r.Status)
	data, ok := r.Data.(MaxPathsData)
	require.True(t, ok)
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, "Castle.frb", data.File)
	require.Len(t, data.Layouts, 1)
	assert.Equal(t, paths.MinSearchDepth, data.Layouts[0].Depth)
}

func TestMaxPaths_WarnsAboveThreshold(t *testing.T) {
	b := newBundle(validDescriptor(), layout("Castle.frb", 7, meshSquares()...))

	r := run(MaxPaths{}, b)
	assert.Equal(t, StatusWarning, r.Status)
	assert.Equal(t, []string{"The Max Paths value of 65536 is higher than 100."}, r.Warnings)
	assert.Equal(t, 65536, r.Data.(MaxPathsData).Count)

	r = MaxPaths{}.Run(context.Background(), b, Options{SkipWarnings: true})
	assert.Equal(t, StatusOK, r.Status)
	assert.Empty(t, r.Warnings)
}

func TestMaxPaths_HighestLayoutWins(t *testing.T) {
	b := newBundle(validDescriptor(),
		layout("A.frb", 7, ringSquares(3)...),
		layout("B.frb", 7, meshSquares()...))

	data := run(MaxPaths{}, b).Data.(MaxPathsData)
	assert.Equal(t, "B.frb", data.File)
	assert.Len(t, data.Layouts, 2)
}

func TestMaxPaths_BudgetIsReported(t *testing.T) {
	b := newBundle(validDescriptor(), layout("Castle.frb", 7, meshSquares()...))

	r := run(MaxPaths{Budget: 50}, b)
	require.Len(t, r.Info, 1)
	assert.Contains(t, r.Info[0], "is a lower bound")
	assert.True(t, r.Data.(MaxPathsData).Layouts[0].Exhausted)
}

func TestMaxPaths_NoLayouts(t *testing.T) {
	r := run(MaxPaths{}, newBundle(validDescriptor()))
	assert.Equal(t, StatusOK, r.Status)
	assert.Equal(t, board.NoSquare, r.Data.(MaxPathsData).SquareID)
}

// =============================================================================
// VENTURE CARDS
// =============================================================================

func TestVentureCards_ExactlySixtyFour(t *testing.T) {
	r := run(VentureCards{}, validBundle())
	assert.Equal(t, StatusOK, r.Status)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestVentureCards_NoneSelected(t *testing.T) {
	d := validDescriptor()
	d.VentureCards = descriptor.VentureCards{}
	b := newBundle(d, layout("Castle.frb", 7, ringSquares(3)...))

	r := run(VentureCards{}, b)
	assert.Equal(t, StatusWarning, r.Status)
	assert.Equal(t, []string{ventureCountWarning}, r.Warnings)
	assert.Empty(t, r.Errors)

	r = VentureCards{}.Run(context.Background(), b, Options{SkipWarnings: true})
	assert.Equal(t, StatusOK, r.Status)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Info)
}

func TestVentureCards_WrongCount(t *testing.T) {
	d := validDescriptor()
	d.VentureCards = cards(10)

	r := run(VentureCards{}, newBundle(d))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{"Boards are required to have exactly 64 cards, but 10 are enabled."}, r.Errors)
}

func TestVentureCards_SquareRequirements(t *testing.T) {
	d := validDescriptor()
	d.VentureCards = descriptor.VentureCards{Count: 64, Numbers: []int{45, 125}}

	r := run(VentureCards{}, newBundle(d, layout("Castle.frb", 7, sq(board.ArcadeSquare), sq(board.BoonSquare))))
	assert.Equal(t, []string{venture45Error}, r.Errors)

	r = run(VentureCards{}, newBundle(d,
		layout("A.frb", 7, sq(board.ArcadeSquare), sq(board.TakeABreakSquare), sq(board.BoonSquare)),
		layout("B.frb", 7, sq(board.Property))))
	assert.Empty(t, r.Errors)
}

func TestVentureCards_SquareRequirementsUsePrimaryLayout(t *testing.T) {
	d := validDescriptor()
	d.VentureCards = descriptor.VentureCards{Count: 64, Numbers: []int{45, 125}}

	r := run(VentureCards{}, newBundle(d,
		layout("A.frb", 7, sq(board.ArcadeSquare)),
		layout("B.frb", 7, sq(board.TakeABreakSquare), sq(board.BoonSquare))))
	assert.Equal(t, []string{venture45Error, venture125Error}, r.Errors)
}

func TestVentureCards_DiceWarnings(t *testing.T) {
	d := validDescriptor()
	d.MaxDiceRoll = 6
	d.VentureCards = descriptor.VentureCards{Count: 64, Numbers: []int{87, 115}}

	r := run(VentureCards{}, newBundle(d))
	assert.Equal(t, StatusWarning, r.Status)
	require.Len(t, r.Warnings, 2)
	assert.Contains(t, r.Warnings[0], "Venture Card 87")
	assert.Contains(t, r.Warnings[1], "Venture Card 115")

	d.MaxDiceRoll = 7
	r = run(VentureCards{}, newBundle(d))
	assert.Len(t, r.Warnings, 1)
}

// =============================================================================
// NAMING, SCREENSHOTS, ICON, SCHEMA
// =============================================================================

func TestNaming(t *testing.T) {
	d := validDescriptor()
	d.LayoutFiles = []string{"Castle.frb", "Castle2.frb", "Castle3.frb"}
	b := &bundle.Bundle{
		Descriptor: d,
		Files:      []string{"Castle.yaml", "Castle.frb", "castle2.FRB", "Castle 1.webp"},
	}

	r := run(Naming{}, b)
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{
		fmt.Sprintf(capitalizationError, "Castle2.frb", "castle2.FRB"),
		fmt.Sprintf(missingFileError, "Castle3.frb"),
		fmt.Sprintf(whitespaceError, "Castle 1.webp"),
	}, r.Errors)
}

func TestNaming_Clean(t *testing.T) {
	assert.Equal(t, StatusOK, run(Naming{}, validBundle()).Status)
}

func TestScreenshots(t *testing.T) {
	d := validDescriptor()
	d.LayoutFiles = []string{"A.frb", "B.frb", "C.frb"}
	b := &bundle.Bundle{Descriptor: d, Files: []string{"a.WEBP", "C.webp", "B.png"}}

	r := run(Screenshots{}, b)
	assert.Equal(t, []string{fmt.Sprintf(missingScreenshotError, "B.frb")}, r.Errors)
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name       string
		background string
		icon       string
		files      []string
		want       Status
	}{
		{name: "stock with icon", background: "bg004", icon: "p_icon", files: []string{"p_icon.png"}, want: StatusOK},
		{name: "icon file case differs", background: "custom", icon: "p_icon", files: []string{"P_Icon.PNG"}, want: StatusOK},
		{name: "stock without icon", background: "bg105", want: StatusWarning},
		{name: "custom without icon", background: "my_background", want: StatusError},
		{name: "icon file missing", background: "bg001", icon: "p_icon", want: StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			d.Background = tt.background
			d.Icon = tt.icon
			b := &bundle.Bundle{Descriptor: d, Files: tt.files}

			assert.Equal(t, tt.want, run(Icon{}, b).Status)
		})
	}
}

func TestIsStockBackground(t *testing.T) {
	assert.True(t, IsStockBackground("bg001"))
	assert.True(t, IsStockBackground("bg019"))
	assert.True(t, IsStockBackground("bg109"))
	assert.False(t, IsStockBackground("bg020"))
	assert.False(t, IsStockBackground("bg100"))
}

func TestDescriptorSchema(t *testing.T) {
	d := validDescriptor()
	assert.Equal(t, StatusOK, run(DescriptorSchema{}, newBundle(d)).Status)

	d.SchemaErrors = []string{"bad one", "bad two"}
	r := run(DescriptorSchema{}, newBundle(d))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{"bad one", "bad two"}, r.Errors)
}

// =============================================================================
// MUSIC DOWNLOAD
// =============================================================================

type fakeFetch struct {
	meta MirrorMetadata
	err  error
}

type fakeFetcher struct {
	byURL map[string]fakeFetch
	calls []string
}

func (f *fakeFetcher) FetchMetadata(_ context.Context, mirrorURL string) (MirrorMetadata, error) {
	f.calls = append(f.calls, mirrorURL)
	r, ok := f.byURL[mirrorURL]
	if !ok {
		return MirrorMetadata{}, errors.New("unexpected url")
	}
	return r.meta, r.err
}

const (
	primaryURL   = "https://nikkums.io/cswt/castle.zip"
	mirrorURL    = "https://mirror.example.com/castle.zip"
	driveURL     = "https://drive.google.com/uc?id=abc&export=download"
	malformedURL = "https://drive.google.com/file/abc"
)

func musicBundle(mirrors ...string) *bundle.Bundle {
	d := validDescriptor()
	d.Music = &descriptor.Music{Download: mirrors}
	return newBundle(d)
}

func TestMusicDownload_NoMusic(t *testing.T) {
	r := run(MusicDownload{}, validBundle())
	assert.Equal(t, StatusOK, r.Status)
	assert.Empty(t, r.Info)
}

func TestMusicDownload_PrimaryPrefix(t *testing.T) {
	r := run(MusicDownload{}, musicBundle(mirrorURL))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{primaryMirrorError}, r.Errors)
	assert.Equal(t, []string{singleMirrorMessage}, r.Info)
}

func TestMusicDownload_SingleMirrorIsInformational(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := run(MusicDownload{Fetcher: fetcher}, musicBundle(primaryURL))

	assert.Equal(t, StatusOK, r.Status)
	assert.Equal(t, []string{singleMirrorMessage}, r.Info)
	assert.Empty(t, fetcher.calls)
}

func TestMusicDownload_SizesMatch(t *testing.T) {
	now := time.Date(2024, 3, 17, 12, 28, 8, 0, time.UTC)
	fetcher := &fakeFetcher{byURL: map[string]fakeFetch{
		primaryURL: {meta: MirrorMetadata{Size: 1 << 20, LastModified: now}},
		mirrorURL:  {meta: MirrorMetadata{Size: 1 << 20, LastModified: now}},
	}}

	r := run(MusicDownload{Fetcher: fetcher}, musicBundle(primaryURL, mirrorURL))
	assert.Equal(t, StatusOK, r.Status)
	assert.Equal(t, []string{primaryURL, mirrorURL}, fetcher.calls)

	reports, ok := r.Data.([]MirrorReport)
	require.True(t, ok)
	require.Len(t, reports, 2)
	assert.Equal(t, "nikkums.io", reports[0].Host)
	assert.Equal(t, now, reports[1].LastModified)
}

func TestMusicDownload_SizeMismatch(t *testing.T) {
	fetcher := &fakeFetcher{byURL: map[string]fakeFetch{
		primaryURL: {meta: MirrorMetadata{Size: 1 << 20}},
		mirrorURL:  {meta: MirrorMetadata{Size: 2 << 20}},
	}}

	r := run(MusicDownload{Fetcher: fetcher}, musicBundle(primaryURL, mirrorURL))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, []string{
		"The music files downloaded from each mirror are not the same. " +
			"The archive from nikkums.io is 1.0 MiB, but the archive from mirror.example.com is 2.0 MiB.",
	}, r.Errors)
}

func TestMusicDownload_FetchFailures(t *testing.T) {
	fetcher := &fakeFetcher{byURL: map[string]fakeFetch{
		primaryURL:   {meta: MirrorMetadata{Size: 1 << 20}},
		mirrorURL:    {err: errors.New("503 Service Unavailable")},
		driveURL:     {err: fmt.Errorf("drive: %w", ErrMirrorCredentials)},
		malformedURL: {err: fmt.Errorf("no id: %w", ErrMalformedMirrorLink)},
	}}

	r := run(MusicDownload{Fetcher: fetcher}, musicBundle(primaryURL, mirrorURL, driveURL, malformedURL))

	assert.Equal(t, StatusError, r.Status)
	require.Len(t, r.Errors, 2)
	assert.Contains(t, r.Errors[0], "could not be downloaded")
	assert.Contains(t, r.Errors[0], "503 Service Unavailable")
	assert.Contains(t, r.Errors[1], "is malformed")
	assert.Equal(t, []string{fmt.Sprintf(credentialsMessage, driveURL)}, r.Info)
}

func TestMusicDownload_CredentialsOnlyIsNotAnError(t *testing.T) {
	fetcher := &fakeFetcher{byURL: map[string]fakeFetch{
		primaryURL: {meta: MirrorMetadata{Size: 10}},
		driveURL:   {err: ErrMirrorCredentials},
	}}

	r := run(MusicDownload{Fetcher: fetcher}, musicBundle(primaryURL, driveURL))
	assert.Equal(t, StatusOK, r.Status)
	assert.Len(t, r.Info, 1)
}

func TestMusicDownload_NoFetcher(t *testing.T) {
	r := run(MusicDownload{}, musicBundle(primaryURL, mirrorURL))
	assert.Equal(t, StatusOK, r.Status)
	assert.Equal(t, []string{noFetcherMessage}, r.Info)
}
