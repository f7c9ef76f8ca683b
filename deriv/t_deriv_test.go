// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

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

func Test_deriv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deriv01. full derivative set of a polynomial")

	x, y := sym.V("XCR"), sym.V("XNB")
	e := sym.Sum(
		sym.Prod(sym.N(3), sym.Power(x, sym.N(2)), y),
		sym.Power(y, sym.N(3)),
	)
	s, err := Generate(e)
	if err != nil {
		tst.Errorf("Generate failed: %v\n", err)
		return
	}

	at := map[string]float64{"XCR": 0.4, "XNB": 0.3}
	evalE := func(d sym.Expr) float64 {
		v, err := sym.Eval(d, at)
		if err != nil {
			tst.Errorf("eval failed: %v\n", err)
		}
		return v
	}
	// e   = 3 x2 y + y3
	// ex  = 6 x y         exx = 6 y    exy = 6 x
	// ey  = 3 x2 + 3 y2   eyy = 6 y
	chk.Float64(tst, "f", 1e-15, evalE(s.F), 3*0.16*0.3+0.027)
	chk.Float64(tst, "fcr", 1e-15, evalE(s.FCr), 6*0.4*0.3)
	chk.Float64(tst, "fnb", 1e-15, evalE(s.FNb), 3*0.16+3*0.09)
	chk.Float64(tst, "fcrcr", 1e-15, evalE(s.FCrCr), 6*0.3)
	chk.Float64(tst, "fcrnb", 1e-15, evalE(s.FCrNb), 6*0.4)
	chk.Float64(tst, "fnbnb", 1e-15, evalE(s.FNbNb), 6*0.3)

	// the two mixed partials are one and the same expression
	if !sym.Identical(s.FCrNb, s.FNbCr) {
		tst.Errorf("mixed partials must be identical\n")
	}
}

func Test_deriv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deriv02. transcendental surface against numerical derivatives")

	x, y := sym.V("XCR"), sym.V("XNB")
	e := sym.Sum(
		sym.Prod(x, sym.Log(x)),
		sym.Tanh(sym.Prod(x, y)),
		sym.Exp(sym.Prod(sym.N(-3), y)),
	)
	s, err := Generate(e)
	if err != nil {
		tst.Errorf("Generate failed: %v\n", err)
		return
	}

	xat, yat := 0.35, 0.15
	at := map[string]float64{"XCR": xat, "XNB": yat}
	gcr, err := sym.Eval(s.FCr, at)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	gnb, err := sym.Eval(s.FNb, at)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.DerivScaSca(tst, "dF/dxcr", 1e-6, gcr, xat, 1e-3, chk.Verbose, func(z float64) float64 {
		v, err := sym.Eval(e, map[string]float64{"XCR": z, "XNB": yat})
		if err != nil {
			tst.Errorf("eval failed: %v\n", err)
		}
		return v
	})
	chk.DerivScaSca(tst, "dF/dxnb", 1e-6, gnb, yat, 1e-3, chk.Verbose, func(z float64) float64 {
		v, err := sym.Eval(e, map[string]float64{"XCR": xat, "XNB": z})
		if err != nil {
			tst.Errorf("eval failed: %v\n", err)
		}
		return v
	})

	// nil surface
	if _, err := Generate(nil); err == nil {
		tst.Errorf("Generate must reject a nil surface\n")
	}
}

func Test_deriv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deriv03. mixed partials of the reduced delta energy")

	// constant folding renders the two differentiation orders of this
	// surface as strings differing in the last ULP of one coefficient;
	// Generate must accept it and emit one shared mixed partial
	dbase := db.Read("")
	g, err := dbase.Gibbs("D0A_NBNI3")
	if err != nil {
		tst.Errorf("Gibbs failed: %v\n", err)
		return
	}
	mdl, err := phase.Get("del")
	if err != nil {
		tst.Errorf("Get failed: %v\n", err)
		return
	}
	e, err := mdl.Reduce(g, 1143.15, 1e-5)
	if err != nil {
		tst.Errorf("Reduce failed: %v\n", err)
		return
	}
	s, err := Generate(e)
	if err != nil {
		tst.Errorf("Generate failed: %v\n", err)
		return
	}
	if !sym.Identical(s.FCrNb, s.FNbCr) {
		tst.Errorf("emitted mixed partials must be one expression\n")
	}

	// both differentiation orders agree in value
	at := map[string]float64{"XCR": 0.10, "XNB": 0.20}
	u, err := sym.Eval(s.FCrNb, at)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	v, err := sym.Eval(sym.Diff(s.FNb, "XCR"), at)
	if err != nil {
		tst.Errorf("eval failed: %v\n", err)
		return
	}
	chk.Float64(tst, "d2G cross-order", 1e-10*(1+math.Abs(u)), u, v)
}
