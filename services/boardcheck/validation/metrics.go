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
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
)

// Package-level tracer and meter for validation runs.
var (
	tracer = otel.Tracer("boardcheck.validation")
	meter  = otel.Meter("boardcheck.validation")
)

// Metrics for validation runs.
var (
	checksTotal   metric.Int64Counter
	maxPaths      metric.Int64Histogram
	boardDuration metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		checksTotal, err = meter.Int64Counter(
			"boardcheck_checks_total",
			metric.WithDescription("Total number of board checks evaluated"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		maxPaths, err = meter.Int64Histogram(
			"boardcheck_max_paths",
			metric.WithDescription("Max paths value per validated board"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		boardDuration, err = meter.Float64Histogram(
			"boardcheck_board_duration_seconds",
			metric.WithDescription("Duration of one board's check sequence"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startRunSpan creates a span for one validation entry point.
func startRunSpan(ctx context.Context, entry, runID string, boards int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Validator."+entry,
		trace.WithAttributes(
			attribute.String("validation.run_id", runID),
			attribute.Int("validation.boards", boards),
		),
	)
}

// startBoardSpan creates a span for one board's check sequence.
func startBoardSpan(ctx context.Context, board string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Validator.board",
		trace.WithAttributes(attribute.String("validation.board", board)),
	)
}

// setBoardSpanResult sets the result attributes on a board span.
func setBoardSpanResult(span trace.Span, r Result) {
	span.SetAttributes(
		attribute.Int("validation.error_count", r.Errors),
		attribute.Int("validation.warning_count", r.Warnings),
		attribute.Int("validation.paths", r.Paths),
	)
}

// recordCheckMetrics counts one evaluated check.
func recordCheckMetrics(ctx context.Context, name check.Name, status check.Status) {
	if err := initMetrics(); err != nil {
		return
	}
	checksTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("check", string(name)),
		attribute.String("status", status.String()),
	))
}

// recordBoardMetrics records the outcome of one board.
func recordBoardMetrics(ctx context.Context, duration time.Duration, r Result) {
	if err := initMetrics(); err != nil {
		return
	}
	boardDuration.Record(ctx, duration.Seconds())
	if !r.Check(check.NameMaxPaths).Skipped() {
		maxPaths.Record(ctx, int64(r.Paths))
	}
}
