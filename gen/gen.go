// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gen drives the full landscape construction: database to reduced
// surfaces, local expansions, regularized blends and emission groups
package gen

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/jumpingyu/phasefield-precipitate-aging/approx"
	"github.com/jumpingyu/phasefield-precipitate-aging/db"
	"github.com/jumpingyu/phasefield-precipitate-aging/deriv"
	"github.com/jumpingyu/phasefield-precipitate-aging/emit"
	"github.com/jumpingyu/phasefield-precipitate-aging/inp"
	"github.com/jumpingyu/phasefield-precipitate-aging/phase"
	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// PhaseSurfaces holds the four representations of one phase's free energy,
// each with first and second derivatives
type PhaseSurfaces struct {
	Name     string
	Raw      *deriv.Set // reduced CALPHAD surface, undefined outside the domain
	Safe     *deriv.Set // regularized blend, defined over the whole simplex
	Taylor   *deriv.Set // truncated expansion about the expansion anchor
	Parabola *deriv.Set // curvature-only well at the equilibrium anchor
}

// Build constructs all four representations for every registered phase.
// Both anchors of every phase must lie inside that phase's composition
// domain; a misconfigured anchor aborts the run before any expansion.
func Build(prm *inp.Params, dbase *db.Database) ([]*PhaseSurfaces, error) {
	var all []*PhaseSurfaces
	for _, name := range phase.Names() {
		mdl, err := phase.Get(name)
		if err != nil {
			return nil, err
		}
		pp, err := prm.Phase(name)
		if err != nil {
			return nil, err
		}
		if err := mdl.CheckDomain(pp.XeCr, pp.XeNb); err != nil {
			return nil, chk.Err("gen: equilibrium anchor of %q: %v", name, err)
		}
		if err := mdl.CheckDomain(pp.XtCr, pp.XtNb); err != nil {
			return nil, chk.Err("gen: expansion anchor of %q: %v", name, err)
		}

		g, err := dbase.Gibbs(mdl.Dbname)
		if err != nil {
			return nil, err
		}
		raw, err := mdl.Reduce(g, prm.Temp, prm.Vm)
		if err != nil {
			return nil, err
		}

		taylor, err := approx.Taylor(raw, pp.XtCr, pp.XtNb, prm.Order)
		if err != nil {
			return nil, chk.Err("gen: phase %q: %v", name, err)
		}
		parab, err := approx.Parabola(raw, pp.XeCr, pp.XeNb)
		if err != nil {
			return nil, chk.Err("gen: phase %q: %v", name, err)
		}
		safe, err := approx.Regularize(raw, mdl.Bounds, pp.Alpha, pp.Slope, pp.Inter, prm.CornerWt)
		if err != nil {
			return nil, chk.Err("gen: phase %q: %v", name, err)
		}

		o := &PhaseSurfaces{Name: name}
		if o.Raw, err = deriv.Generate(raw); err != nil {
			return nil, chk.Err("gen: phase %q (raw): %v", name, err)
		}
		if o.Safe, err = deriv.Generate(safe); err != nil {
			return nil, chk.Err("gen: phase %q (regularized): %v", name, err)
		}
		if o.Taylor, err = deriv.Generate(taylor); err != nil {
			return nil, chk.Err("gen: phase %q (taylor): %v", name, err)
		}
		if o.Parabola, err = deriv.Generate(parab); err != nil {
			return nil, chk.Err("gen: phase %q (parabola): %v", name, err)
		}
		all = append(all, o)
	}
	return all, nil
}

// Groups assembles the four emission groups: raw energies, regularized
// blends, Taylor expansions and parabolic wells. Each group carries the
// anchors it was built from as zero-argument functions so downstream codes
// need no side-channel for them.
func Groups(prm *inp.Params, all []*PhaseSurfaces) ([]*emit.Group, error) {
	energy := &emit.Group{Prefix: "energy625", Project: prm.Project}
	spline := &emit.Group{Prefix: "spline625", Project: prm.Project}
	taylor := &emit.Group{Prefix: "taylor625", Project: prm.Project}
	parab := &emit.Group{Prefix: "parabola625", Project: prm.Project}

	energy.Add("Vm", sym.N(prm.Vm))
	energy.Add("RT", sym.N(db.R*prm.Temp))

	addSet := func(g *emit.Group, name string, s *deriv.Set) {
		g.Add("g_"+name, s.F)
		g.Add("dg_"+name+"_dxCr", s.FCr)
		g.Add("dg_"+name+"_dxNb", s.FNb)
		g.Add("d2g_"+name+"_dxCrCr", s.FCrCr)
		g.Add("d2g_"+name+"_dxCrNb", s.FCrNb)
		g.Add("d2g_"+name+"_dxNbCr", s.FNbCr)
		g.Add("d2g_"+name+"_dxNbNb", s.FNbNb)
	}
	for _, o := range all {
		pp, err := prm.Phase(o.Name)
		if err != nil {
			return nil, err
		}
		mdl, err := phase.Get(o.Name)
		if err != nil {
			return nil, err
		}

		addSet(energy, o.Name, o.Raw)
		energy.Add("xe_"+o.Name+"_Cr", sym.N(pp.XeCr))
		energy.Add("xe_"+o.Name+"_Nb", sym.N(pp.XeNb))

		addSet(spline, o.Name, o.Safe)
		spline.Add("xe_"+o.Name+"_Cr", sym.N(pp.XeCr))
		spline.Add("xe_"+o.Name+"_Nb", sym.N(pp.XeNb))
		spline.Add("alpha_"+o.Name, sym.N(pp.Alpha))
		for _, b := range mdl.Bounds {
			spline.Add(boundName(b, o.Name), sym.N(b.Val))
		}

		addSet(taylor, o.Name, o.Taylor)
		taylor.Add("xt_"+o.Name+"_Cr", sym.N(pp.XtCr))
		taylor.Add("xt_"+o.Name+"_Nb", sym.N(pp.XtNb))

		addSet(parab, o.Name, o.Parabola)
		parab.Add("xe_"+o.Name+"_Cr", sym.N(pp.XeCr))
		parab.Add("xe_"+o.Name+"_Nb", sym.N(pp.XeNb))
	}
	return []*emit.Group{energy, spline, taylor, parab}, nil
}

// boundName labels a domain bound constant, e.g. xcr_del_hi
func boundName(b phase.Bound, name string) string {
	side := "lo"
	if b.Hi {
		side = "hi"
	}
	return strings.ToLower(b.Coord) + "_" + name + "_" + side
}
