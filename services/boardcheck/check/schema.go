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

// DescriptorSchema surfaces the schema-validation outcome computed when
// the descriptor was parsed. Every schema message is an error.
type DescriptorSchema struct{}

func (DescriptorSchema) Name() Name { return NameDescriptorSchema }

func (DescriptorSchema) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings
	if b.Descriptor != nil {
		f.errors = append(f.errors, b.Descriptor.SchemaErrors...)
	}
	return f.result(opts, nil)
}
