// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/jumpingyu/phasefield-precipitate-aging/sym"

// delta: (Nb,Ni)1(Cr,Ni)3 with Nb confined to the first sublattice and Cr
// to the second
//   y'Nb  = 4 xNb        y'Ni  = 1 - 4 xNb
//   y''Cr = 4/3 xCr      y''Ni = 1 - 4/3 xCr
// valid for xNb <= 1/4 and xCr <= 3/4
func init() {
	xcr, xnb := sym.V("XCR"), sym.V("XNB")
	one := sym.N(1)
	models["del"] = &Model{
		Name:   "del",
		Dbname: "D0A_NBNI3",
		Subs: map[string]sym.Expr{
			"D0A_NBNI30NB": sym.Prod(sym.N(4), xnb),
			"D0A_NBNI30NI": sym.Minus(one, sym.Prod(sym.N(4), xnb)),
			"D0A_NBNI31CR": sym.Prod(sym.N(4.0/3.0), xcr),
			"D0A_NBNI31NI": sym.Minus(one, sym.Prod(sym.N(4.0/3.0), xcr)),
		},
		Bounds: []Bound{
			{Coord: "XCR", Hi: false, Val: 0},
			{Coord: "XCR", Hi: true, Val: 3.0 / 4.0},
			{Coord: "XNB", Hi: false, Val: 0},
			{Coord: "XNB", Hi: true, Val: 1.0 / 4.0},
		},
	}
}
