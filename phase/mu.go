// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/jumpingyu/phasefield-precipitate-aging/sym"

// mu: (Nb)6(Cr,Nb,Ni)7 with the first sublattice frozen at pure Nb
//   y'Nb  = 1
//   y''Cr = 13/7 xCr     y''Nb = 13/7 xNb - 6/7     y''Ni = 13/7 xNi
// valid for xCr <= 7/13, xNb >= 6/13 and xNi >= 0 (xNi <= 7/13 follows)
func init() {
	xcr, xnb := sym.V("XCR"), sym.V("XNB")
	models["mu"] = &Model{
		Name:   "mu",
		Dbname: "D85_NI7NB6",
		Subs: map[string]sym.Expr{
			"D85_NI7NB60NB": sym.N(1),
			"D85_NI7NB61CR": sym.Prod(sym.N(13.0/7.0), xcr),
			"D85_NI7NB61NB": sym.Minus(sym.Prod(sym.N(13.0/7.0), xnb), sym.N(6.0/7.0)),
			"D85_NI7NB61NI": sym.Prod(sym.N(13.0/7.0), Xni()),
		},
		Bounds: []Bound{
			{Coord: "XCR", Hi: false, Val: 0},
			{Coord: "XCR", Hi: true, Val: 7.0 / 13.0},
			{Coord: "XNB", Hi: false, Val: 6.0 / 13.0},
			{Coord: "XNI", Hi: false, Val: 0},
		},
	}
}
