// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command boardcheck validates Fortune Street custom board bundles.
//
// Usage:
//
//	boardcheck validate ./boards
//	boardcheck validate --json --skip music-download ./boards/castle
//	boardcheck validate --layouts Castle1.frb Castle2.frb
//	boardcheck validate --descriptors Castle.yaml
//	boardcheck show ./boards
//	boardcheck paths --path-budget 50000000 ./boards
//
// Settings are read from .boardcheck.yaml (or --config), then BOARDCHECK_*
// environment variables, then flags.
//
// Exit codes: 0 when no errors were found, 1 when at least one board has
// errors, 2 when the run itself failed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
	stop()
	os.Exit(code)
}
