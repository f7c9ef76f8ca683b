// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package deriv bundles a free-energy surface with its first and second
// composition derivatives, as required by phase-field drivers
package deriv

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// Set holds one surface and its gradient and Hessian with respect to the
// independent mole fractions
type Set struct {
	F     sym.Expr // free energy
	FCr   sym.Expr // dF/dXCR
	FNb   sym.Expr // dF/dXNB
	FCrCr sym.Expr // d2F/dXCR2
	FCrNb sym.Expr // d2F/dXCRdXNB
	FNbCr sym.Expr // d2F/dXNBdXCR
	FNbNb sym.Expr // d2F/dXNB2
}

// Generate differentiates e through second order. The mixed partial is
// computed in both orders and the two results are cross-checked numerically
// over sample compositions, then a single expression serves both slots so
// the emitted d2/dCrNb and d2/dNbCr functions are verbatim identical.
// Constant folding is order sensitive at the last ULP, so a string
// comparison of the two orders would reject surfaces whose mixed partials
// agree to machine precision.
func Generate(e sym.Expr) (*Set, error) {
	if e == nil {
		return nil, chk.Err("deriv: cannot differentiate a nil surface")
	}
	o := new(Set)
	o.F = e
	o.FCr = sym.Diff(e, "XCR")
	o.FNb = sym.Diff(e, "XNB")
	o.FCrCr = sym.Diff(o.FCr, "XCR")
	o.FCrNb = sym.Diff(o.FCr, "XNB")
	o.FNbNb = sym.Diff(o.FNb, "XNB")
	if err := checkMixed(o.FCrNb, sym.Diff(o.FNb, "XCR")); err != nil {
		return nil, err
	}
	o.FNbCr = o.FCrNb
	return o, nil
}

// sample compositions for the cross-order check; surfaces with restricted
// domains are NaN at some of these and those points are skipped
var mixedSamples = [][]float64{
	{0.05, 0.05}, {0.15, 0.0525}, {0.10, 0.20}, {0.05, 0.49},
	{0.30, 0.02}, {0.35, 0.20}, {0.45, 0.45},
}

// checkMixed verifies that the two differentiation orders agree numerically
// wherever both are defined
func checkMixed(ab, ba sym.Expr) error {
	compared := 0
	for _, pt := range mixedSamples {
		at := map[string]float64{"XCR": pt[0], "XNB": pt[1]}
		u, err := sym.Eval(ab, at)
		if err != nil {
			return err
		}
		v, err := sym.Eval(ba, at)
		if err != nil {
			return err
		}
		if math.IsNaN(u) || math.IsInf(u, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		compared++
		scale := 1.0 + math.Abs(u) + math.Abs(v)
		if math.Abs(u-v) > 1e-10*scale {
			return chk.Err("deriv: mixed partials disagree at (%g,%g): %v vs %v", pt[0], pt[1], u, v)
		}
	}
	if compared == 0 {
		return chk.Err("deriv: mixed partials could not be compared at any sample composition")
	}
	return nil
}
