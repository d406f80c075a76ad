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

	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
)

// Check is one named rule set evaluated against a bundle.
//
// Implementations never return errors and never panic on incomplete
// bundles: a missing descriptor or missing layouts simply leaves the rules
// that need them unevaluated. Collaborator failures become messages.
type Check interface {
	Name() Name
	Run(ctx context.Context, b *bundle.Bundle, opts Options) Result
}

// Run evaluates c against b, or returns a skipped result when opts
// disables it. Disabled checks do no work.
func Run(ctx context.Context, c Check, b *bundle.Bundle, opts Options) Result {
	if !opts.IsEnabled(c.Name()) {
		return Skipped()
	}
	return c.Run(ctx, b, opts)
}

// Catalogue returns every check in run order. fetcher backs the
// music-download check and may be nil; budget caps the path search per
// layout, zero meaning unbounded.
func Catalogue(fetcher MetadataFetcher, budget int64) []Check {
	return []Check{
		Naming{},
		Consistency{},
		BoardConfiguration{},
		MaxPaths{Budget: budget},
		Doors{},
		Icon{},
		MusicDownload{Fetcher: fetcher},
		Screenshots{},
		VentureCards{},
		DescriptorSchema{},
	}
}
