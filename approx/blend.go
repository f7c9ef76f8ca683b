// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package approx

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jumpingyu/phasefield-precipitate-aging/phase"
	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// coordExpr maps a bound coordinate to its expression in the independent
// mole fractions. XNI is eliminated through the balance constraint.
func coordExpr(coord string) sym.Expr {
	switch coord {
	case "XCR":
		return sym.V("XCR")
	case "XNB":
		return sym.V("XNB")
	case "XNI":
		return sym.Sum(sym.N(1), sym.Neg(sym.V("XCR")), sym.Neg(sym.V("XNB")))
	}
	chk.Panic("approx: unknown bound coordinate %q", coord)
	return nil
}

// Psi is the sigmoidal switch of one boundary: approximately 0 on the
// admissible side, approximately 1 beyond the bound, transitioning over a
// width alpha. The alpha/2 offset places the midpoint of the transition
// half a width inside the admissible region, so the switch is already
// close to 1 at the threshold itself.
func Psi(coord string, hi bool, val, alpha float64) sym.Expr {
	excess := sym.Minus(coordExpr(coord), sym.N(val))
	if !hi {
		excess = sym.Neg(excess)
	}
	arg := sym.Prod(sym.N(2*math.Pi/alpha), sym.Sum(excess, sym.N(alpha/2)))
	return sym.Prod(sym.N(0.5), sym.Sum(sym.N(1), sym.Tanh(arg)))
}

// Funnel is the paraboloid-free linear ramp substituted for the energy
// beyond one boundary: a fixed intercept plus a slope times the distance
// past the threshold, driving compositions back toward the domain.
func Funnel(coord string, hi bool, val, slope, inter float64) sym.Expr {
	dist := sym.Minus(coordExpr(coord), sym.N(val))
	if !hi {
		dist = sym.Neg(dist)
	}
	return sym.Sum(sym.N(inter), sym.Prod(sym.N(slope), dist))
}

// Regularize blends the raw surface e with boundary funnels so the result
// is defined and well behaved over the whole Gibbs simplex. Inside the
// domain the core weight is near 1 and the raw surface dominates; past a
// boundary the matching funnel takes over. Where two boundaries in
// different directions overlap, pairwise products restore the weight lost
// by double counting, and each funnel is tapered by cornerwt times the
// switches of the crossing direction.
func Regularize(e sym.Expr, bounds []phase.Bound, alpha, slope, inter, cornerwt float64) (sym.Expr, error) {
	if e == nil {
		return nil, chk.Err("approx: cannot regularize a nil surface")
	}
	if alpha <= 0 {
		return nil, chk.Err("approx: blend width alpha must be positive; %g is invalid", alpha)
	}
	n := len(bounds)
	psis := make([]sym.Expr, n)
	for i, b := range bounds {
		psis[i] = Psi(b.Coord, b.Hi, b.Val, alpha)
	}

	// core weight: inclusion-exclusion over boundary switches
	core := []sym.Expr{sym.N(1)}
	for i := 0; i < n; i++ {
		core = append(core, sym.Neg(psis[i]))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if bounds[i].Coord != bounds[j].Coord {
				core = append(core, sym.Prod(psis[i], psis[j]))
			}
		}
	}

	terms := []sym.Expr{sym.Prod(sym.Sum(core...), e)}

	// funnel terms, each tapered near corners shared with other directions
	for i, b := range bounds {
		taper := []sym.Expr{sym.N(1)}
		for j := 0; j < n; j++ {
			if bounds[j].Coord != b.Coord {
				taper = append(taper, sym.Prod(sym.N(-cornerwt), psis[j]))
			}
		}
		f := Funnel(b.Coord, b.Hi, b.Val, slope, inter)
		terms = append(terms, sym.Prod(psis[i], sym.Sum(taper...), f))
	}

	res := sym.Sum(terms...)
	for _, name := range sym.FreeVars(res) {
		if name != "XCR" && name != "XNB" {
			return nil, chk.Err("approx: regularized surface retains unresolved symbol %q", name)
		}
	}
	return res, nil
}
