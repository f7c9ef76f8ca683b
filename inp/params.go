// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input parameters read from a (.json) file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// PhaseParams holds the per-phase expansion and regularization constants
type PhaseParams struct {
	Alpha float64 `json:"alpha"` // blend transition width at domain boundaries
	XeCr  float64 `json:"xecr"`  // equilibrium corner: Cr mole fraction
	XeNb  float64 `json:"xenb"`  // equilibrium corner: Nb mole fraction
	XtCr  float64 `json:"xtcr"`  // Taylor expansion point: Cr mole fraction
	XtNb  float64 `json:"xtnb"`  // Taylor expansion point: Nb mole fraction
	Slope float64 `json:"slope"` // funnel slope, J/m3 per unit composition
	Inter float64 `json:"inter"` // funnel intercept at the domain boundary, J/m3
}

// Params holds all pipeline parameters
type Params struct {

	// global
	Desc     string  `json:"desc"`     // description of parameter set
	Temp     float64 `json:"temp"`     // operating temperature, K
	Vm       float64 `json:"vm"`       // molar volume, m3/mol
	CornerWt float64 `json:"cornerwt"` // corner double-count correction weight
	Order    int     `json:"order"`    // Taylor expansion order
	DirOut   string  `json:"dirout"`   // directory for emitted sources
	Project  string  `json:"project"`  // project tag stamped on emitted artifacts

	// phases
	Gam PhaseParams `json:"gam"` // gamma matrix
	Del PhaseParams `json:"del"` // delta precipitate
	Mu  PhaseParams `json:"mu"`  // mu precipitate
	Lav PhaseParams `json:"lav"` // Laves precipitate
}

// SetDefault sets the IN625 constants: 870 degC operating point, funnel
// ranges read off the CALPHAD landscapes at that temperature
func (o *Params) SetDefault() {
	o.Desc = "ternary Cr-Nb-Ni representation of alloy 625 at 1143.15 K"
	o.Temp = 870 + 273.15
	o.Vm = 1.0e-5
	o.CornerWt = 0.25
	o.Order = 2
	o.DirOut = "/tmp/gibbs625"
	o.Project = "ALLOY625"
	o.Gam = PhaseParams{
		Alpha: 1e-5,
		XeCr:  0.490, XeNb: 0.025,
		XtCr: 0.40, XtNb: 0.20,
		Slope: 16 * 18e9, Inter: 10e9,
	}
	o.Del = PhaseParams{
		Alpha: 1e-5,
		XeCr:  0.015, XeNb: 0.245,
		XtCr: 0.10, XtNb: 0.2375,
		Slope: 8 * 28e9, Inter: 20e9,
	}
	o.Mu = PhaseParams{
		Alpha: 1e-5,
		XeCr:  0.050, XeNb: 0.4950,
		XtCr: 0.050, XtNb: 0.4900,
		Slope: 12 * 30e9, Inter: 18e9,
	}
	o.Lav = PhaseParams{
		Alpha: 1e-5,
		XeCr:  0.300, XeNb: 1.0/3.0 - 0.005,
		XtCr: 0.35, XtNb: 0.20,
		Slope: 16 * 25e9, Inter: 15e9,
	}
}

// Phase returns the parameter block of the named phase
func (o *Params) Phase(name string) (*PhaseParams, error) {
	switch name {
	case "gam":
		return &o.Gam, nil
	case "del":
		return &o.Del, nil
	case "mu":
		return &o.Mu, nil
	case "lav":
		return &o.Lav, nil
	}
	return nil, chk.Err("inp: there are no parameters for phase %q", name)
}

// ReadParams reads all pipeline parameters from a JSON file. An empty path
// gives the defaults; a bad file is fatal.
func ReadParams(path string) *Params {
	var o Params
	o.SetDefault()
	if path == "" {
		return &o
	}
	b, err := os.ReadFile(path)
	if err != nil {
		chk.Panic("inp: cannot read parameters file %q", path)
	}
	if err := json.Unmarshal(b, &o); err != nil {
		chk.Panic("inp: cannot unmarshal parameters file %q: %v", path, err)
	}
	if o.Temp <= 0 {
		chk.Panic("inp: temperature must be positive; %g is invalid", o.Temp)
	}
	if o.Vm <= 0 {
		chk.Panic("inp: molar volume must be positive; %g is invalid", o.Vm)
	}
	for _, name := range []string{"gam", "del", "mu", "lav"} {
		p, _ := o.Phase(name)
		if p.Alpha <= 0 {
			chk.Panic("inp: %s: blend width alpha must be positive; %g is invalid", name, p.Alpha)
		}
	}
	return &o
}
