// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

// Default returns the built-in ternary Cr-Nb-Ni assessment with the four
// phases competing in alloy 625: the fcc matrix and the delta, mu and Laves
// precipitates. Parameter magnitudes follow the Du-Liu-Chang-Yang (2005)
// assessment; the delta model is the simplified one with Nb eliminated from
// its second sublattice.
func Default() *Database {
	return &Database{Phases: map[string]*Phase{

		// gamma matrix: (Cr,Nb,Ni)1
		"FCC_A1": {
			Name: "FCC_A1",
			Sublattices: []Sublattice{
				{Ratio: 1, Constituents: []string{"CR", "NB", "NI"}},
			},
			Endmembers: []Endmember{
				{Occupants: []string{"CR"}, A: -8856.94, B: 157.48, C: -26.908},
				{Occupants: []string{"NB"}, A: -8519.35, B: 142.045, C: -26.4711},
				{Occupants: []string{"NI"}, A: -5179.159, B: 117.854, C: -22.096},
			},
			Interactions: []Interaction{
				{Subl: 0, Pair: []string{"CR", "NI"}, Order: 0, A: 8030.0, B: -12.8801},
				{Subl: 0, Pair: []string{"CR", "NI"}, Order: 1, A: 33080.0, B: -16.0362},
				{Subl: 0, Pair: []string{"CR", "NB"}, Order: 0, A: 12500.0, B: -6.0},
				{Subl: 0, Pair: []string{"NB", "NI"}, Order: 0, A: -56500.0, B: 18.2},
				{Subl: 0, Pair: []string{"NB", "NI"}, Order: 1, A: 10000.0, B: -5.0},
			},
		},

		// delta: (Nb,Ni)1(Cr,Ni)3
		"D0A_NBNI3": {
			Name: "D0A_NBNI3",
			Sublattices: []Sublattice{
				{Ratio: 1, Constituents: []string{"NB", "NI"}},
				{Ratio: 3, Constituents: []string{"CR", "NI"}},
			},
			Endmembers: []Endmember{
				{Occupants: []string{"NB", "CR"}, A: 64000.0, B: -10.0, C: -105.0},
				{Occupants: []string{"NB", "NI"}, A: -145000.0, B: 25.2, C: -104.9},
				{Occupants: []string{"NI", "CR"}, A: 35000.0, B: -8.0, C: -104.0},
				{Occupants: []string{"NI", "NI"}, A: -20716.6, B: 471.4, C: -88.4},
			},
			Interactions: []Interaction{
				{Subl: 0, Pair: []string{"NB", "NI"}, Fixed: []string{"NI"}, Order: 0, A: -8000.0, B: 2.0},
				{Subl: 1, Pair: []string{"CR", "NI"}, Fixed: []string{"NB"}, Order: 0, A: 20000.0, B: -5.0},
			},
		},

		// mu: (Nb)6(Cr,Nb,Ni)7
		"D85_NI7NB6": {
			Name: "D85_NI7NB6",
			Sublattices: []Sublattice{
				{Ratio: 6, Constituents: []string{"NB"}},
				{Ratio: 7, Constituents: []string{"CR", "NB", "NI"}},
			},
			Endmembers: []Endmember{
				{Occupants: []string{"NB", "CR"}, A: 150000.0, B: -20.0, C: -345.0},
				{Occupants: []string{"NB", "NB"}, A: 95000.0, B: -12.0, C: -344.1},
				{Occupants: []string{"NB", "NI"}, A: -320000.0, B: 55.0, C: -300.4},
			},
			Interactions: []Interaction{
				{Subl: 1, Pair: []string{"CR", "NI"}, Fixed: []string{"NB"}, Order: 0, A: -35000.0, B: 8.0},
				{Subl: 1, Pair: []string{"NB", "NI"}, Fixed: []string{"NB"}, Order: 0, A: 12000.0, B: -3.0},
			},
		},

		// Laves: (Cr,Ni)2(Cr,Nb)1
		"C14_LAVES": {
			Name: "C14_LAVES",
			Sublattices: []Sublattice{
				{Ratio: 2, Constituents: []string{"CR", "NI"}},
				{Ratio: 1, Constituents: []string{"CR", "NB"}},
			},
			Endmembers: []Endmember{
				{Occupants: []string{"CR", "CR"}, A: 27000.0, B: -5.0, C: -81.0},
				{Occupants: []string{"CR", "NB"}, A: -85000.0, B: 12.0, C: -80.2},
				{Occupants: []string{"NI", "CR"}, A: 55000.0, B: -8.0, C: -79.4},
				{Occupants: []string{"NI", "NB"}, A: -62000.0, B: 9.0, C: -78.1},
			},
			Interactions: []Interaction{
				{Subl: 0, Pair: []string{"CR", "NI"}, Fixed: []string{"NB"}, Order: 0, A: -15000.0, B: 3.0},
				{Subl: 1, Pair: []string{"CR", "NB"}, Fixed: []string{"CR"}, Order: 0, A: 30000.0, B: -7.0},
			},
		},
	}}
}
