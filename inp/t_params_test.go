// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. defaults")

	prm := ReadParams("")
	chk.Float64(tst, "temp", 1e-15, prm.Temp, 1143.15)
	chk.Float64(tst, "vm", 1e-20, prm.Vm, 1e-5)
	chk.Float64(tst, "cornerwt", 1e-17, prm.CornerWt, 0.25)
	if prm.Order != 2 {
		tst.Errorf("default expansion order must be 2; got %d\n", prm.Order)
		return
	}
	chk.String(tst, prm.Project, "ALLOY625")

	// per-phase blocks
	for _, name := range []string{"gam", "del", "mu", "lav"} {
		p, err := prm.Phase(name)
		if err != nil {
			tst.Errorf("Phase(%q) failed: %v\n", name, err)
			return
		}
		if p.Alpha <= 0 || p.Slope <= 0 || p.Inter <= 0 {
			tst.Errorf("phase %q must have positive blend and funnel constants\n", name)
			return
		}
	}
	chk.Float64(tst, "gam xecr", 1e-17, prm.Gam.XeCr, 0.490)
	chk.Float64(tst, "del xenb", 1e-17, prm.Del.XeNb, 0.245)
	chk.Float64(tst, "lav xenb", 1e-15, prm.Lav.XeNb, 1.0/3.0-0.005)

	// unknown phase
	if _, err := prm.Phase("sigma"); err == nil {
		tst.Errorf("Phase must fail for an unknown name\n")
	}
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. file overrides defaults field by field")

	dir := tst.TempDir()
	var buf bytes.Buffer
	io.Ff(&buf, `{
		"desc" : "override test",
		"temp" : 1200.0,
		"gam"  : { "alpha":2e-5, "xecr":0.5, "xenb":0.03, "xtcr":0.4, "xtnb":0.2, "slope":1e10, "inter":1e9 }
	}`)
	io.WriteFileD(dir, "prms.json", &buf)

	prm := ReadParams(filepath.Join(dir, "prms.json"))
	chk.String(tst, prm.Desc, "override test")
	chk.Float64(tst, "temp", 1e-15, prm.Temp, 1200.0)
	chk.Float64(tst, "gam alpha", 1e-20, prm.Gam.Alpha, 2e-5)

	// untouched fields keep their defaults
	chk.Float64(tst, "vm", 1e-20, prm.Vm, 1e-5)
	chk.Float64(tst, "del xenb", 1e-17, prm.Del.XeNb, 0.245)
}

func Test_params03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params03. invalid inputs are fatal")

	dir := tst.TempDir()

	// missing file
	func() {
		defer func() {
			if err := recover(); err == nil {
				tst.Errorf("ReadParams must panic on a missing file\n")
			}
		}()
		ReadParams(filepath.Join(dir, "nosuchfile.json"))
	}()

	// non-positive temperature
	var buf bytes.Buffer
	io.Ff(&buf, `{ "temp" : -300.0 }`)
	io.WriteFileD(dir, "bad.json", &buf)
	func() {
		defer func() {
			if err := recover(); err == nil {
				tst.Errorf("ReadParams must panic on a non-positive temperature\n")
			}
		}()
		ReadParams(filepath.Join(dir, "bad.json"))
	}()
}
