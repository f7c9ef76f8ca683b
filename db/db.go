// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package db supplies the thermodynamic-model collaborator: sublattice phase
// descriptions and their Gibbs-energy expressions in sublattice-fraction
// variables. The assembled expressions are what the reduction stage consumes;
// database file parsing proper is outside this pipeline.
package db

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// R is the gas constant, J/mol/K
const R = 8.3144598

// Sublattice is one crystallographic site set of a phase
type Sublattice struct {
	Ratio        float64  `json:"ratio"`        // stoichiometric site ratio
	Constituents []string `json:"constituents"` // species occupying this site set
}

// Endmember holds the Gibbs energy of one stoichiometric compound,
// G = a + b*T + c*T*ln(T), J/mol of formula unit
type Endmember struct {
	Occupants []string `json:"occupants"` // one species per sublattice
	A         float64  `json:"a"`
	B         float64  `json:"b"`
	C         float64  `json:"c"`
}

// Interaction is one Redlich-Kister excess term, L = a + b*T
type Interaction struct {
	Subl  int      `json:"subl"`  // sublattice carrying the interacting pair
	Pair  []string `json:"pair"`  // the two interacting species
	Fixed []string `json:"fixed"` // occupant of each other sublattice, in order
	Order int      `json:"order"` // Redlich-Kister order
	A     float64  `json:"a"`
	B     float64  `json:"b"`
}

// Phase is one multi-sublattice phase model
type Phase struct {
	Name         string        `json:"name"`
	Sublattices  []Sublattice  `json:"sublattices"`
	Endmembers   []Endmember   `json:"endmembers"`
	Interactions []Interaction `json:"interactions"`
}

// Database holds all phase models
type Database struct {
	Phases map[string]*Phase `json:"phases"`
}

// Read reads a database from a JSON file; an empty path gives the built-in
// Cr-Nb-Ni assessment
func Read(path string) *Database {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		chk.Panic("db: cannot read database file %q", path)
	}
	var o Database
	if err := json.Unmarshal(b, &o); err != nil {
		chk.Panic("db: cannot unmarshal database file %q: %v", path, err)
	}
	return &o
}

// Yvar returns the conventional name of a sublattice-fraction variable:
// phase name, sublattice index, species
func Yvar(phasename string, subl int, species string) string {
	return io.Sf("%s%d%s", phasename, subl, species)
}

// Gibbs assembles the Gibbs energy of the named phase per mole of sites, as
// a function of its sublattice-fraction variables and the temperature T
func (o *Database) Gibbs(name string) (sym.Expr, error) {
	ph, ok := o.Phases[name]
	if !ok {
		return nil, chk.Err("db: phase %q is not in the database", name)
	}
	T := sym.V("T")
	nsites := 0.0
	for _, s := range ph.Sublattices {
		nsites += s.Ratio
	}
	if nsites <= 0 {
		return nil, chk.Err("db: phase %q has no sites", name)
	}
	yvar := func(subl int, species string) sym.Expr {
		return sym.V(Yvar(ph.Name, subl, species))
	}

	var terms []sym.Expr

	// reference surface
	for _, em := range ph.Endmembers {
		if len(em.Occupants) != len(ph.Sublattices) {
			return nil, chk.Err("db: phase %q: endmember %v must name one occupant per sublattice", name, em.Occupants)
		}
		fac := []sym.Expr{gfun(em.A, em.B, em.C, T)}
		for i, sp := range em.Occupants {
			fac = append(fac, yvar(i, sp))
		}
		terms = append(terms, sym.Prod(fac...))
	}

	// ideal mixing entropy
	for i, s := range ph.Sublattices {
		if len(s.Constituents) < 2 {
			continue
		}
		for _, sp := range s.Constituents {
			y := yvar(i, sp)
			terms = append(terms, sym.Prod(sym.N(R*s.Ratio), T, y, sym.Log(y)))
		}
	}

	// Redlich-Kister excess
	for _, in := range ph.Interactions {
		if len(in.Pair) != 2 {
			return nil, chk.Err("db: phase %q: interaction must name exactly two species; has %v", name, in.Pair)
		}
		if len(in.Fixed) != len(ph.Sublattices)-1 {
			return nil, chk.Err("db: phase %q: interaction %v must fix one occupant per remaining sublattice", name, in.Pair)
		}
		yi := yvar(in.Subl, in.Pair[0])
		yj := yvar(in.Subl, in.Pair[1])
		fac := []sym.Expr{yi, yj, sym.Sum(sym.N(in.A), sym.Prod(sym.N(in.B), T))}
		k := 0
		for i := range ph.Sublattices {
			if i == in.Subl {
				continue
			}
			fac = append(fac, yvar(i, in.Fixed[k]))
			k++
		}
		if in.Order > 0 {
			fac = append(fac, sym.Power(sym.Minus(yi, yj), sym.N(float64(in.Order))))
		}
		terms = append(terms, sym.Prod(fac...))
	}

	return sym.Prod(sym.N(1/nsites), sym.Sum(terms...)), nil
}

// gfun builds a + b*T + c*T*ln(T)
func gfun(a, b, c float64, T sym.Expr) sym.Expr {
	return sym.Sum(sym.N(a), sym.Prod(sym.N(b), T), sym.Prod(sym.N(c), T, sym.Log(T)))
}
