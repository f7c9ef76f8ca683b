// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "github.com/jumpingyu/phasefield-precipitate-aging/sym"

// Laves: (Cr,Ni)2(Cr,Nb)1 with Nb eliminated from the first sublattice
//   y'Cr  = 1 - 3/2 xNi      y'Ni  = 3/2 xNi
//   y''Cr = 1 - 3 xNb        y''Nb = 3 xNb
// valid for 0 <= xNi <= 2/3 and 0 <= xNb <= 1/3
func init() {
	xnb := sym.V("XNB")
	one := sym.N(1)
	models["lav"] = &Model{
		Name:   "lav",
		Dbname: "C14_LAVES",
		Subs: map[string]sym.Expr{
			"C14_LAVES0CR": sym.Minus(one, sym.Prod(sym.N(3.0/2.0), Xni())),
			"C14_LAVES0NI": sym.Prod(sym.N(3.0/2.0), Xni()),
			"C14_LAVES1CR": sym.Minus(one, sym.Prod(sym.N(3), xnb)),
			"C14_LAVES1NB": sym.Prod(sym.N(3), xnb),
		},
		Bounds: []Bound{
			{Coord: "XNB", Hi: false, Val: 0},
			{Coord: "XNB", Hi: true, Val: 1.0 / 3.0},
			{Coord: "XNI", Hi: false, Val: 0},
			{Coord: "XNI", Hi: true, Val: 2.0 / 3.0},
		},
	}
}
