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

const (
	layoutNotFoundError = "The board file(s) specified in the (.yaml) board descriptor could not be found."
	mismatchError       = "The value of %s is %v in the yaml file but %v in the frb file."
)

// Consistency compares the board settings stored in the first layout file
// with the ones the descriptor declares. A value that is unset (zero) on
// either side is not compared.
type Consistency struct{}

func (Consistency) Name() Name { return NameConsistency }

func (Consistency) Run(_ context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings
	d := b.Descriptor
	if d == nil {
		return f.result(opts, nil)
	}
	if len(b.Layouts) == 0 {
		f.errorf(layoutNotFoundError)
		return f.result(opts, nil)
	}

	info := b.Layouts[0].Info
	compareInt(&f, "baseSalary", d.BaseSalary, info.BaseSalary)
	compareInt(&f, "initialCash", d.InitialCash, info.InitialCash)
	compareInt(&f, "maxDiceRoll", d.MaxDiceRoll, info.MaxDiceRoll)
	compareInt(&f, "salaryIncrement", d.SalaryIncrement, info.SalaryIncrement)
	if want, got := d.LoopingMode(), info.Looping.String(); want != got {
		f.errorf(mismatchError, "looping mode", want, got)
	}

	return f.result(opts, nil)
}

func compareInt(f *findings, attribute string, descriptorValue, layoutValue int) {
	if descriptorValue == 0 || layoutValue == 0 {
		return
	}
	if descriptorValue != layoutValue {
		f.errorf(mismatchError, attribute, descriptorValue, layoutValue)
	}
}
