// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase maps multi-sublattice Gibbs expressions onto the two
// independent system-composition variables XCR and XNB of each phase
package phase

import (
	"github.com/cpmech/gosl/chk"

	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// Bound is one face of a phase's physical composition domain
type Bound struct {
	Coord string  // bounded coordinate: "XCR", "XNB" or "XNI"
	Hi    bool    // upper bound; lower otherwise
	Val   float64 // threshold composition
}

// Model holds the fixed reduction recipe of one phase: the algebraic map
// from sublattice fractions to system compositions and its validity domain.
// Models are constructed once at startup and never modified.
type Model struct {
	Name   string              // short name used in emitted symbols, e.g. "gam"
	Dbname string              // phase name in the thermodynamic database
	Subs   map[string]sym.Expr // sublattice fraction -> expression in XCR, XNB
	Bounds []Bound             // validity domain of the substitution
}

// registry of the fixed phase set
var models = map[string]*Model{}

// Names returns the registered model names in emission order
func Names() []string {
	return []string{"gam", "del", "mu", "lav"}
}

// Get returns a registered phase model
func Get(name string) (*Model, error) {
	if m, ok := models[name]; ok {
		return m, nil
	}
	return nil, chk.Err("phase: model %q is not registered", name)
}

// Reduce eliminates every sublattice fraction from g, fixes the temperature
// at temp and converts from energy per mole to energy per unit volume using
// the molar volume vmol. The result depends on XCR and XNB only; a database
// constituent with no entry in the substitution map is a configuration error.
func (o *Model) Reduce(g sym.Expr, temp, vmol float64) (sym.Expr, error) {
	if temp <= 0 || vmol <= 0 {
		return nil, chk.Err("phase: %s: temperature %g and molar volume %g must be positive", o.Name, temp, vmol)
	}
	repl := make(map[string]sym.Expr, len(o.Subs)+1)
	for k, v := range o.Subs {
		repl[k] = v
	}
	repl["T"] = sym.N(temp)
	r := sym.Prod(sym.N(1/vmol), sym.Subs(g, repl))
	for _, name := range sym.FreeVars(r) {
		if name != "XCR" && name != "XNB" {
			return nil, chk.Err("phase: %s: database constituent %q is not covered by the substitution map", o.Name, name)
		}
	}
	return r, nil
}

// CheckDomain reports whether the composition (xcr, xnb) satisfies every
// domain constraint of the phase
func (o *Model) CheckDomain(xcr, xnb float64) error {
	for _, b := range o.Bounds {
		c := CoordValue(b.Coord, xcr, xnb)
		if b.Hi && c > b.Val {
			return chk.Err("phase: %s: %s = %g violates upper bound %g", o.Name, b.Coord, c, b.Val)
		}
		if !b.Hi && c < b.Val {
			return chk.Err("phase: %s: %s = %g violates lower bound %g", o.Name, b.Coord, c, b.Val)
		}
	}
	return nil
}

// CoordValue computes a coordinate from the two independent compositions;
// XNI is always the dependent one
func CoordValue(coord string, xcr, xnb float64) float64 {
	switch coord {
	case "XCR":
		return xcr
	case "XNB":
		return xnb
	case "XNI":
		return 1 - xcr - xnb
	}
	chk.Panic("phase: unknown coordinate %q", coord)
	return 0
}

// Xni returns the dependent coordinate 1 - XCR - XNB as an expression
func Xni() sym.Expr {
	return sym.Sum(sym.N(1), sym.Neg(sym.V("XCR")), sym.Neg(sym.V("XNB")))
}
