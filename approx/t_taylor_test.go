// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package approx

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jumpingyu/phasefield-precipitate-aging/db"
	"github.com/jumpingyu/phasefield-precipitate-aging/phase"
	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// evalAt evaluates at a composition or fails the test
func evalAt(tst *testing.T, e sym.Expr, x, y float64) float64 {
	v, err := sym.Eval(e, map[string]float64{"XCR": x, "XNB": y})
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
	}
	return v
}

func Test_taylor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("taylor01. quadratic expansion of a quadratic is exact")

	x, y := sym.V("XCR"), sym.V("XNB")
	e := sym.Sum(
		sym.N(2),
		sym.Prod(sym.N(3), x),
		sym.Prod(x, y),
		sym.Power(y, sym.N(2)),
	)
	t2, err := Taylor(e, 0.2, 0.1, 2)
	if err != nil {
		tst.Errorf("Taylor failed: %v\n", err)
		return
	}
	io.Pforan("t2 = %v\n", t2)
	for _, pt := range [][]float64{{0, 0}, {0.2, 0.1}, {0.7, 0.3}, {-1, 2}} {
		chk.Float64(tst, io.Sf("t2(%g,%g)", pt[0], pt[1]), 1e-13,
			evalAt(tst, t2, pt[0], pt[1]), evalAt(tst, e, pt[0], pt[1]))
	}
}

func Test_taylor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("taylor02. expansion matches surface and derivatives at the anchor")

	x, y := sym.V("XCR"), sym.V("XNB")
	e := sym.Sum(
		sym.Prod(x, sym.Log(x)),
		sym.Prod(y, sym.Log(y)),
		sym.Prod(sym.N(-3), x, y),
	)
	x0, y0 := 0.15, 0.0525
	t2, err := Taylor(e, x0, y0, 2)
	if err != nil {
		tst.Errorf("Taylor failed: %v\n", err)
		return
	}

	// value and all partials up to second order agree at the anchor
	names := []string{"f", "fx", "fy", "fxx", "fxy", "fyy"}
	pairs := [][2]sym.Expr{
		{e, t2},
		{sym.Diff(e, "XCR"), sym.Diff(t2, "XCR")},
		{sym.Diff(e, "XNB"), sym.Diff(t2, "XNB")},
		{sym.Diff(sym.Diff(e, "XCR"), "XCR"), sym.Diff(sym.Diff(t2, "XCR"), "XCR")},
		{sym.Diff(sym.Diff(e, "XCR"), "XNB"), sym.Diff(sym.Diff(t2, "XCR"), "XNB")},
		{sym.Diff(sym.Diff(e, "XNB"), "XNB"), sym.Diff(sym.Diff(t2, "XNB"), "XNB")},
	}
	for i, p := range pairs {
		chk.Float64(tst, names[i], 1e-8,
			evalAt(tst, p[1], x0, y0), evalAt(tst, p[0], x0, y0))
	}

	// remainder grows away from the anchor but stays small nearby
	d := evalAt(tst, t2, x0+0.01, y0+0.01) - evalAt(tst, e, x0+0.01, y0+0.01)
	io.Pforan("remainder at +0.01 = %v\n", d)
	if d < -0.05 || d > 0.05 {
		tst.Errorf("second-order remainder %g is too large near the anchor\n", d)
	}
}

func Test_taylor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("taylor03. anchor and order validation")

	y := sym.V("XNB")
	e := sym.Log(sym.Sum(sym.N(1), sym.Prod(sym.N(-4), y)))

	// log argument is negative at xNb = 0.3
	if _, err := Taylor(e, 0.1, 0.3, 2); err == nil {
		tst.Errorf("Taylor must fail for an anchor outside the surface domain\n")
		return
	}

	// order 0 collapses to the anchor value
	t0, err := Taylor(e, 0.1, 0.1, 0)
	if err != nil {
		tst.Errorf("Taylor failed: %v\n", err)
		return
	}
	chk.Float64(tst, "order 0", 1e-14, evalAt(tst, t0, 0.9, 0.9), evalAt(tst, e, 0.1, 0.1))

	// unsupported order
	if _, err := Taylor(e, 0.1, 0.1, 1); err == nil {
		tst.Errorf("Taylor must reject order 1\n")
		return
	}
	if _, err := Taylor(e, 0.1, 0.1, 5); err == nil {
		tst.Errorf("Taylor must reject order 5\n")
	}
}

func Test_taylor04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("taylor04. expansion of the reduced gamma energy")

	dbase := db.Read("")
	g, err := dbase.Gibbs("FCC_A1")
	if err != nil {
		tst.Errorf("Gibbs failed: %v\n", err)
		return
	}
	mdl, err := phase.Get("gam")
	if err != nil {
		tst.Errorf("Get failed: %v\n", err)
		return
	}
	e, err := mdl.Reduce(g, 1143.15, 1e-5)
	if err != nil {
		tst.Errorf("Reduce failed: %v\n", err)
		return
	}
	x0, y0 := 0.15, 0.0525
	t2, err := Taylor(e, x0, y0, 2)
	if err != nil {
		tst.Errorf("Taylor failed: %v\n", err)
		return
	}

	// value, gradient and Hessian of an O(1e10) J/m3 surface agree at the
	// anchor to relative precision
	names := []string{"f", "fx", "fy", "fxx", "fxy", "fyy"}
	pairs := [][2]sym.Expr{
		{e, t2},
		{sym.Diff(e, "XCR"), sym.Diff(t2, "XCR")},
		{sym.Diff(e, "XNB"), sym.Diff(t2, "XNB")},
		{sym.Diff(sym.Diff(e, "XCR"), "XCR"), sym.Diff(sym.Diff(t2, "XCR"), "XCR")},
		{sym.Diff(sym.Diff(e, "XCR"), "XNB"), sym.Diff(sym.Diff(t2, "XCR"), "XNB")},
		{sym.Diff(sym.Diff(e, "XNB"), "XNB"), sym.Diff(sym.Diff(t2, "XNB"), "XNB")},
	}
	for i, p := range pairs {
		ref := evalAt(tst, p[0], x0, y0)
		chk.Float64(tst, names[i], 1e-10*(1+math.Abs(ref)), evalAt(tst, p[1], x0, y0), ref)
	}
}

func Test_parab01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parab01. curvature-only well")

	x, y := sym.V("XCR"), sym.V("XNB")
	e := sym.Sum(
		sym.N(7),
		sym.Prod(sym.N(5), x),
		sym.Power(x, sym.N(2)),
		sym.Prod(x, y),
		sym.Prod(sym.N(2), sym.Power(y, sym.N(2))),
	)
	x0, y0 := 0.3, 0.2
	p, err := Parabola(e, x0, y0)
	if err != nil {
		tst.Errorf("Parabola failed: %v\n", err)
		return
	}
	io.Pforan("p = %v\n", p)

	// zero value and slope at the center
	chk.Float64(tst, "p(x0,y0)", 1e-15, evalAt(tst, p, x0, y0), 0)
	chk.Float64(tst, "px(x0,y0)", 1e-15, evalAt(tst, sym.Diff(p, "XCR"), x0, y0), 0)
	chk.Float64(tst, "py(x0,y0)", 1e-15, evalAt(tst, sym.Diff(p, "XNB"), x0, y0), 0)

	// curvatures of the source surface
	chk.Float64(tst, "pxx", 1e-14, evalAt(tst, sym.Diff(sym.Diff(p, "XCR"), "XCR"), x0, y0), 2)
	chk.Float64(tst, "pxy", 1e-14, evalAt(tst, sym.Diff(sym.Diff(p, "XCR"), "XNB"), x0, y0), 1)
	chk.Float64(tst, "pyy", 1e-14, evalAt(tst, sym.Diff(sym.Diff(p, "XNB"), "XNB"), x0, y0), 4)
}
