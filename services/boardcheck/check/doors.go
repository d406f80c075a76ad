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

// Doors is the standalone doors-and-dice rule. Boards whose dice ceiling is
// not 9 pass without further inspection.
type Doors struct{}

func (Doors) Name() Name { return NameDoors }

func (Doors) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	if len(b.Layouts) == 0 || b.Layouts[0].Info.MaxDiceRoll != MaxDiceRollLimit {
		return NewResult(nil, nil, nil, nil, true)
	}

	var f findings
	if doorsWithMaxDice(b.Layouts) {
		f.errorf(doorsAndDiceError)
	}
	return f.result(opts, nil)
}
