// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out samples compiled energy surfaces over composition grids and
// writes tabular results for plotting
package out

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// number of concurrent evaluation goroutines
var npool = 6

// Surface is one compiled scalar field over the composition plane
type Surface struct {
	Name string
	Fcn  func(xcr, xnb float64) float64
}

// Record holds all surface values at one grid node
type Record struct {
	XCr  float64
	XNb  float64
	Vals []float64 // one value per surface, in input order
}

// Sample evaluates all surfaces on an nx by ny grid spanning the given
// composition rectangle. Rows are computed concurrently; the returned
// records are sorted by XCr then XNb regardless of completion order.
func Sample(surfs []Surface, xlo, xhi, ylo, yhi float64, nx, ny int) ([]Record, error) {
	if len(surfs) < 1 {
		return nil, chk.Err("out: at least one surface is required")
	}
	if nx < 2 || ny < 2 {
		return nil, chk.Err("out: grid must have at least 2 points per direction; got %d x %d", nx, ny)
	}
	xvals := utl.LinSpace(xlo, xhi, nx)
	yvals := utl.LinSpace(ylo, yhi, ny)

	jobs := make(chan int, nx)
	results := make(chan []Record, nx)
	for w := 0; w < npool; w++ {
		go func() {
			for i := range jobs {
				row := make([]Record, ny)
				for j, y := range yvals {
					r := Record{XCr: xvals[i], XNb: y, Vals: make([]float64, len(surfs))}
					for k, s := range surfs {
						r.Vals[k] = s.Fcn(xvals[i], y)
					}
					row[j] = r
				}
				results <- row
			}
		}()
	}
	for i := 0; i < nx; i++ {
		jobs <- i
	}
	close(jobs)

	recs := make([]Record, 0, nx*ny)
	for i := 0; i < nx; i++ {
		recs = append(recs, <-results...)
	}
	sort.Slice(recs, func(a, b int) bool {
		if recs[a].XCr != recs[b].XCr {
			return recs[a].XCr < recs[b].XCr
		}
		return recs[a].XNb < recs[b].XNb
	})
	return recs, nil
}

// WriteTable writes the sampled records as a whitespace-separated table
// with one header line naming the columns
func WriteTable(dirout, fname string, surfs []Surface, recs []Record) {
	var buf bytes.Buffer
	io.Ff(&buf, "%23s %23s", "xcr", "xnb")
	for _, s := range surfs {
		io.Ff(&buf, " %23s", s.Name)
	}
	io.Ff(&buf, "\n")
	for _, r := range recs {
		io.Ff(&buf, "%23.15e %23.15e", r.XCr, r.XNb)
		for _, v := range r.Vals {
			io.Ff(&buf, " %23.15e", v)
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileVD(dirout, fname, &buf)
}
