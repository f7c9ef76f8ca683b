// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
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

func Test_sample01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample01. grid evaluation with the worker pool")

	surfs := []Surface{
		{Name: "plane", Fcn: func(x, y float64) float64 { return x + 2*y }},
		{Name: "bowl", Fcn: func(x, y float64) float64 { return x*x + y*y }},
	}
	recs, err := Sample(surfs, 0, 1, 0, 0.3, 5, 4)
	if err != nil {
		tst.Errorf("Sample failed: %v\n", err)
		return
	}
	if len(recs) != 20 {
		tst.Errorf("expected 5*4 = 20 records; got %d\n", len(recs))
		return
	}

	// records are sorted by xCr then xNb
	chk.Float64(tst, "first xcr", 1e-15, recs[0].XCr, 0)
	chk.Float64(tst, "first xnb", 1e-15, recs[0].XNb, 0)
	chk.Float64(tst, "last xcr", 1e-15, recs[19].XCr, 1)
	chk.Float64(tst, "last xnb", 1e-15, recs[19].XNb, 0.3)
	for i := 1; i < len(recs); i++ {
		a, b := recs[i-1], recs[i]
		if b.XCr < a.XCr || (b.XCr == a.XCr && b.XNb < a.XNb) {
			tst.Errorf("records are not sorted at %d\n", i)
			return
		}
	}

	// values recompute exactly
	for _, r := range recs {
		chk.Float64(tst, "plane", 1e-15, r.Vals[0], r.XCr+2*r.XNb)
		chk.Float64(tst, "bowl", 1e-15, r.Vals[1], r.XCr*r.XCr+r.XNb*r.XNb)
	}
}

func Test_sample02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample02. input validation and table output")

	surfs := []Surface{{Name: "plane", Fcn: func(x, y float64) float64 { return x - y }}}

	if _, err := Sample(nil, 0, 1, 0, 1, 5, 5); err == nil {
		tst.Errorf("Sample must require at least one surface\n")
		return
	}
	if _, err := Sample(surfs, 0, 1, 0, 1, 1, 5); err == nil {
		tst.Errorf("Sample must reject a degenerate grid\n")
		return
	}

	recs, err := Sample(surfs, 0, 1, 0, 1, 3, 3)
	if err != nil {
		tst.Errorf("Sample failed: %v\n", err)
		return
	}
	dir := tst.TempDir()
	WriteTable(dir, "landscape.dat", surfs, recs)

	b, err := os.ReadFile(filepath.Join(dir, "landscape.dat"))
	if err != nil {
		tst.Errorf("cannot read table: %v\n", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 10 {
		tst.Errorf("expected header plus 9 rows; got %d lines\n", len(lines))
		return
	}
	if !strings.Contains(lines[0], "xcr") || !strings.Contains(lines[0], "plane") {
		tst.Errorf("table header misses column names\n")
	}
}
