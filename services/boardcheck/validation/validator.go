// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/BoardCheck/pkg/logging"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/board"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/descriptor"
	"github.com/AleutianAI/BoardCheck/services/boardcheck/session"
)

// ErrInvalidInput is returned for a nil context.
var ErrInvalidInput = errors.New("invalid input")

// UnknownLayoutName is the board name used for layout-only validation.
const UnknownLayoutName = "Unknown .frb"

// MaxParallelism bounds WithParallelism.
const MaxParallelism = 64

// exemptBoards are the reference boards shipped with the game. They bypass
// every check.
var exemptBoards = map[string]bool{
	"Yoshi's Island":             true,
	"Mario Circuit":              true,
	"Peach's Castle":             true,
	"Mario Stadium":              true,
	"Delfino Plaza":              true,
	"Super Mario Bros.":          true,
	"Bowser's Castle":            true,
	"Starship Mario":             true,
	"Good Egg Galaxy":            true,
	"Castle Trodain":             true,
	"Ghost Ship":                 true,
	"Colossus":                   true,
	"Mt Magmageddon":             true,
	"Slimenia":                   true,
	"Robbin' Hood Ruins":         true,
	"Alefgard":                   true,
	"Alltrades Abbey":            true,
	"The Observatory":            true,
	"Colossus (Wii Easy)":        true,
	"Good Egg Galaxy (Wii Easy)": true,
	"Bowser's Castle (Wii Easy)": true,
	"Event Spiral":               true,
	"Shop Texture Test Board":    true,
}

// IsExempt reports whether a board with this name bypasses every check.
// Boards without a name are exempt.
func IsExempt(name string) bool {
	return name == "" || exemptBoards[name]
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator runs the check catalogue over boards and rolls up the results.
//
// Description:
//
//	Every board gets a freshly reset session. Checks run in catalogue
//	order, each result is recorded in the session, and the session is
//	harvested into the board's Result. With parallelism above one, boards
//	are validated concurrently, each with its own session; results keep
//	input order either way.
//
// Thread Safety: Safe for concurrent use if the injected checks are.
type Validator struct {
	checks       []check.Check
	customChecks bool
	opts         check.Options
	fetcher      check.MetadataFetcher
	pathBudget   int64
	parallelism  int
	logger       *logging.Logger
	progress     func(done, total int)
}

// Option configures the Validator.
type Option func(*Validator)

// WithOptions sets the check options used for every run.
func WithOptions(opts check.Options) Option {
	return func(v *Validator) {
		v.opts = opts
	}
}

// WithFetcher sets the mirror metadata fetcher of the music-download check.
func WithFetcher(f check.MetadataFetcher) Option {
	return func(v *Validator) {
		v.fetcher = f
	}
}

// WithPathBudget caps the path search per layout. Zero is unbounded.
func WithPathBudget(budget int64) Option {
	return func(v *Validator) {
		v.pathBudget = budget
	}
}

// WithParallelism sets how many boards are validated at once. Values are
// clamped to [1, MaxParallelism].
func WithParallelism(n int) Option {
	return func(v *Validator) {
		v.parallelism = min(max(n, 1), MaxParallelism)
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithProgress registers fn to be called after each board is validated.
// With parallelism above 1, fn is called from several goroutines.
func WithProgress(fn func(done, total int)) Option {
	return func(v *Validator) {
		v.progress = fn
	}
}

// WithChecks replaces the check catalogue.
func WithChecks(checks ...check.Check) Option {
	return func(v *Validator) {
		v.checks = checks
		v.customChecks = true
	}
}

// New creates a validator with the default options and catalogue.
func New(opts ...Option) *Validator {
	v := &Validator{
		opts:        check.DefaultOptions(),
		parallelism: 1,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if !v.customChecks {
		v.checks = check.Catalogue(v.fetcher, v.pathBudget)
	}
	return v
}

// job is one board to validate with the options that apply to it.
type job struct {
	bundle *bundle.Bundle
	opts   check.Options
}

// ValidateBundles validates complete board bundles.
//
// Description:
//
//	Exempt boards run with every check disabled. Bundles without decoded
//	layouts skip board-configuration and max-paths and report 0 paths.
//
// Inputs:
//
//	ctx - Context for cancellation
//	bundles - Bundles to validate, in report order
//
// Outputs:
//
//	ResultBundle - The roll-up of every board
//	error - ErrInvalidInput, or the context error if the run was cancelled
func (v *Validator) ValidateBundles(ctx context.Context, bundles []*bundle.Bundle) (ResultBundle, error) {
	jobs := make([]job, 0, len(bundles))
	for _, b := range bundles {
		opts := v.opts
		switch {
		case IsExempt(b.Name):
			opts = check.NoneEnabled()
		case len(b.Layouts) == 0:
			opts = opts.With(false, check.NameBoardConfiguration, check.NameMaxPaths)
		}
		jobs = append(jobs, job{bundle: b, opts: opts})
	}
	return v.run(ctx, "ValidateBundles", jobs)
}

// ValidateLayouts validates bare layout files with the board-configuration
// and max-paths checks. Boards are reported as UnknownLayoutName.
func (v *Validator) ValidateLayouts(ctx context.Context, layouts []*board.Board) (ResultBundle, error) {
	opts := v.only(check.NameBoardConfiguration, check.NameMaxPaths)
	jobs := make([]job, 0, len(layouts))
	for _, l := range layouts {
		b := &bundle.Bundle{Name: UnknownLayoutName, Layouts: []*board.Board{l}}
		jobs = append(jobs, job{bundle: b, opts: opts})
	}
	return v.run(ctx, "ValidateLayouts", jobs)
}

// ValidateDescriptors validates bare descriptors with the music-download
// check and their schema-validation outcome.
func (v *Validator) ValidateDescriptors(ctx context.Context, descriptors []*descriptor.Descriptor) (ResultBundle, error) {
	opts := v.only(check.NameMusicDownload, check.NameDescriptorSchema)
	jobs := make([]job, 0, len(descriptors))
	for _, d := range descriptors {
		b := &bundle.Bundle{Name: d.Name.EN, Descriptor: d}
		jobs = append(jobs, job{bundle: b, opts: opts})
	}
	return v.run(ctx, "ValidateDescriptors", jobs)
}

// only returns the run options restricted to the named checks. A named
// check the run options disable stays disabled.
func (v *Validator) only(names ...check.Name) check.Options {
	opts := check.NoneEnabled()
	opts.SkipWarnings = v.opts.SkipWarnings
	for _, n := range names {
		if v.opts.IsEnabled(n) {
			opts = opts.With(true, n)
		}
	}
	return opts
}

func (v *Validator) run(ctx context.Context, entry string, jobs []job) (ResultBundle, error) {
	if ctx == nil {
		return ResultBundle{}, fmt.Errorf("%w: ctx must not be nil", ErrInvalidInput)
	}

	runID := uuid.NewString()
	ctx, span := startRunSpan(ctx, entry, runID, len(jobs))
	defer span.End()

	logger := v.logger.With("run_id", runID)
	logger.Debug("Validation run started", "entry", entry, "boards", len(jobs), "parallelism", v.parallelism)

	results := make([]Result, len(jobs))
	var done atomic.Int64
	finished := func() {
		if v.progress != nil {
			v.progress(int(done.Add(1)), len(jobs))
		}
	}

	if v.parallelism <= 1 {
		sess := session.New()
		for i, j := range jobs {
			if err := ctx.Err(); err != nil {
				return ResultBundle{}, err
			}
			results[i] = v.validateBoard(ctx, logger, sess, j)
			finished()
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(v.parallelism)
		for i, j := range jobs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = v.validateBoard(gctx, logger, session.New(), j)
				finished()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return ResultBundle{}, err
		}
	}

	out := Aggregate(results)
	out.RunID = runID
	logger.Info("Validation run finished",
		"entry", entry,
		"boards", len(results),
		"errors", out.Errors,
		"warnings", out.Warnings,
		"successes", out.Successes)
	return out, nil
}

// validateBoard runs the check sequence for one board in sess.
func (v *Validator) validateBoard(ctx context.Context, logger *logging.Logger, sess *session.Session, j job) Result {
	start := time.Now()
	ctx, span := startBoardSpan(ctx, j.bundle.Label())
	defer span.End()

	logger = logger.With("board", j.bundle.Label())
	logger.Debug("Validating board", "disabled", j.opts.Disabled())

	sess.Reset()
	defer sess.Reset()

	res := Result{
		BoardName: j.bundle.Label(),
		Checks:    make(map[check.Name]check.Result, len(v.checks)),
	}
	for _, c := range v.checks {
		r := check.Run(ctx, c, j.bundle, j.opts)
		res.Checks[c.Name()] = r
		sess.RecordResult(r)
		recordCheckMetrics(ctx, c.Name(), r.Status)
		logger.Debug("Check finished", "check", c.Name(), "status", r.Status)
	}

	if data, ok := res.Check(check.NameMaxPaths).Data.(check.MaxPathsData); ok {
		res.Paths = data.Count
	}
	res.Tally = sess.Snapshot()

	setBoardSpanResult(span, res)
	recordBoardMetrics(ctx, time.Since(start), res)
	logger.Info("Board validated",
		"errors", res.Errors,
		"warnings", res.Warnings,
		"successes", res.Successes,
		"paths", res.Paths)
	return res
}
