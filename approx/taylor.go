// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package approx builds local polynomial expansions of reduced energy
// surfaces and their globally defined, smoothly blended representations
package approx

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// Taylor returns the truncated Taylor expansion of e about (x0, y0) up to
// total degree order. The coefficient of (x-x0)^a (y-y0)^b is the mixed
// partial of e at the anchor divided by a!b!, so the polynomial matches the
// value and every partial derivative of e up to the given order there.
// Order 0 gives the constant e(x0, y0); otherwise orders 2 to 4 are allowed.
func Taylor(e sym.Expr, x0, y0 float64, order int) (sym.Expr, error) {
	if order != 0 && (order < 2 || order > 4) {
		return nil, chk.Err("approx: taylor order must be 0 or within [2,4]; %d is invalid", order)
	}
	dtable, err := derivTable(e, order)
	if err != nil {
		return nil, err
	}
	at := map[string]float64{"XCR": x0, "XNB": y0}
	dx := sym.Minus(sym.V("XCR"), sym.N(x0))
	dy := sym.Minus(sym.V("XNB"), sym.N(y0))
	var terms []sym.Expr
	for a := 0; a <= order; a++ {
		for b := 0; a+b <= order; b++ {
			c, err := coefAt(dtable[a][b], at, x0, y0)
			if err != nil {
				return nil, err
			}
			c /= float64(fact(a) * fact(b))
			if c == 0 {
				continue
			}
			terms = append(terms, sym.Prod(sym.N(c),
				sym.Power(dx, sym.N(float64(a))),
				sym.Power(dy, sym.N(float64(b)))))
		}
	}
	return sym.Sum(terms...), nil
}

// Parabola returns the curvature-only quadratic well of e centered at
// (x0, y0): zero value and slope at the center, with the curvatures of e
// there. This is the crudest representation, anchored at the equilibrium
// corner rather than the expansion point.
func Parabola(e sym.Expr, x0, y0 float64) (sym.Expr, error) {
	dtable, err := derivTable(e, 2)
	if err != nil {
		return nil, err
	}
	at := map[string]float64{"XCR": x0, "XNB": y0}
	dx := sym.Minus(sym.V("XCR"), sym.N(x0))
	dy := sym.Minus(sym.V("XNB"), sym.N(y0))
	cxx, err := coefAt(dtable[2][0], at, x0, y0)
	if err != nil {
		return nil, err
	}
	cxy, err := coefAt(dtable[1][1], at, x0, y0)
	if err != nil {
		return nil, err
	}
	cyy, err := coefAt(dtable[0][2], at, x0, y0)
	if err != nil {
		return nil, err
	}
	return sym.Sum(
		sym.Prod(sym.N(cxx/2), sym.Power(dx, sym.N(2))),
		sym.Prod(sym.N(cxy), dx, dy),
		sym.Prod(sym.N(cyy/2), sym.Power(dy, sym.N(2))),
	), nil
}

// derivTable computes dtable[a][b] = d^{a+b} e / dXCR^a dXNB^b for all
// a+b <= order
func derivTable(e sym.Expr, order int) ([][]sym.Expr, error) {
	if e == nil {
		return nil, chk.Err("approx: cannot expand a nil surface")
	}
	dtable := make([][]sym.Expr, order+1)
	for a := 0; a <= order; a++ {
		dtable[a] = make([]sym.Expr, order+1-a)
		if a == 0 {
			dtable[0][0] = e
		} else {
			dtable[a][0] = sym.Diff(dtable[a-1][0], "XCR")
		}
		for b := 1; a+b <= order; b++ {
			dtable[a][b] = sym.Diff(dtable[a][b-1], "XNB")
		}
	}
	return dtable, nil
}

// coefAt evaluates a derivative at the anchor, rejecting anchors where the
// surface or its derivatives are undefined
func coefAt(d sym.Expr, at map[string]float64, x0, y0 float64) (float64, error) {
	c, err := sym.Eval(d, at)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, chk.Err("approx: anchor (%g,%g) is outside the surface's domain", x0, y0)
	}
	return c, nil
}

func fact(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
