// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/jumpingyu/phasefield-precipitate-aging/sym"

// gamma matrix: single (Cr,Nb,Ni) sublattice, identity mapping
//   y'Cr = xCr,  y'Nb = xNb,  y'Ni = 1 - xCr - xNb
func init() {
	xcr, xnb := sym.V("XCR"), sym.V("XNB")
	models["gam"] = &Model{
		Name:   "gam",
		Dbname: "FCC_A1",
		Subs: map[string]sym.Expr{
			"FCC_A10CR": xcr,
			"FCC_A10NB": xnb,
			"FCC_A10NI": Xni(),
		},
		Bounds: []Bound{
			{Coord: "XCR", Hi: false, Val: 0},
			{Coord: "XNB", Hi: false, Val: 0},
			{Coord: "XNI", Hi: false, Val: 0},
		},
	}
}
