// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jumpingyu/phasefield-precipitate-aging/db"
	"github.com/jumpingyu/phasefield-precipitate-aging/gen"
	"github.com/jumpingyu/phasefield-precipitate-aging/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	prmfn := io.ArgToString(0, "")
	dbfn := io.ArgToString(1, "")
	force := io.ArgToBool(2, false)
	verbose := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nGibbs625 -- free energy landscapes for alloy 625\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"parameters file (empty => defaults)", "prmfn", prmfn,
			"database file (empty => built-in)", "dbfn", dbfn,
			"overwrite existing output", "force", force,
			"show messages", "verbose", verbose,
		))
	}

	// parameters and thermodynamic database
	prm := inp.ReadParams(prmfn)
	dbase := db.Read(dbfn)

	// construct all representations
	all, err := gen.Build(prm, dbase)
	if err != nil {
		chk.Panic("landscape construction failed:\n%v", err)
	}

	// emit C translation units
	groups, err := gen.Groups(prm, all)
	if err != nil {
		chk.Panic("group assembly failed:\n%v", err)
	}
	for _, g := range groups {
		if err := g.WriteC(prm.DirOut, force); err != nil {
			chk.Panic("emission failed:\n%v", err)
		}
	}
	if verbose {
		io.Pf("\nwrote %d groups to %s\n", len(groups), prm.DirOut)
	}
}
