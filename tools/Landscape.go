// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jumpingyu/phasefield-precipitate-aging/db"
	"github.com/jumpingyu/phasefield-precipitate-aging/gen"
	"github.com/jumpingyu/phasefield-precipitate-aging/inp"
	"github.com/jumpingyu/phasefield-precipitate-aging/out"
	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	prmfn := io.ArgToString(0, "")
	nx := io.ArgToInt(1, 101)
	ny := io.ArgToInt(2, 101)
	fname := io.ArgToString(3, "landscape.dat")
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"parameters file (empty => defaults)", "prmfn", prmfn,
		"grid points along xCr", "nx", nx,
		"grid points along xNb", "ny", ny,
		"output table filename", "fname", fname,
	))

	// build regularized surfaces
	prm := inp.ReadParams(prmfn)
	all, err := gen.Build(prm, db.Read(""))
	if err != nil {
		chk.Panic("landscape construction failed:\n%v", err)
	}

	// compile to plain functions
	var surfs []out.Surface
	for _, o := range all {
		fcn, err := sym.Compile(o.Safe.F, "XCR", "XNB")
		if err != nil {
			chk.Panic("compilation of %q failed:\n%v", o.Name, err)
		}
		surfs = append(surfs, out.Surface{Name: "g_" + o.Name, Fcn: fcn})
	}

	// sample the Gibbs simplex and write the table
	recs, err := out.Sample(surfs, 0, 1, 0, 1, nx, ny)
	if err != nil {
		chk.Panic("sampling failed:\n%v", err)
	}
	out.WriteTable(prm.DirOut, fname, surfs, recs)
}
