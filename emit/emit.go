// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package emit renders expression groups as compilable C translation units
// with matching headers, one pair of files per group
package emit

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jumpingyu/phasefield-precipitate-aging/sym"
)

// Entry is one exported C function: a name and the expression forming its
// body. Expressions with no free symbols become zero-argument functions.
type Entry struct {
	Name string
	Expr sym.Expr
}

// Group collects the entries of one translation unit
type Group struct {
	Prefix  string  // base name of the .c/.h pair
	Project string  // project tag stamped into banners and include guards
	Entries []Entry // functions, emitted in order
}

// Add appends one entry
func (o *Group) Add(name string, e sym.Expr) {
	o.Entries = append(o.Entries, Entry{name, e})
}

// WriteC writes prefix.c and prefix.h under dirout. Existing files are
// refused unless force is true. Every entry may reference XCR and XNB only;
// any other surviving symbol aborts the whole group before anything is
// written.
func (o *Group) WriteC(dirout string, force bool) error {
	for _, ent := range o.Entries {
		if ent.Expr == nil {
			return chk.Err("emit: entry %q has no expression", ent.Name)
		}
		for _, name := range sym.FreeVars(ent.Expr) {
			if name != "XCR" && name != "XNB" {
				return chk.Err("emit: entry %q retains unresolved symbol %q", ent.Name, name)
			}
		}
	}
	cfn := o.Prefix + ".c"
	hfn := o.Prefix + ".h"
	if !force {
		for _, fn := range []string{cfn, hfn} {
			if _, err := os.Stat(filepath.Join(dirout, fn)); err == nil {
				return chk.Err("emit: %q exists already; use force to overwrite", filepath.Join(dirout, fn))
			}
		}
	}

	var bufc, bufh bytes.Buffer
	banner(&bufc, o.Project)
	banner(&bufh, o.Project)

	io.Ff(&bufc, "#include \"%s\"\n#include <math.h>\n", hfn)
	guard := strings.ToUpper(o.Project) + "__" + strings.ToUpper(o.Prefix) + "__H"
	io.Ff(&bufh, "\n#ifndef %s\n#define %s\n", guard, guard)

	for _, ent := range o.Entries {
		sig := io.Sf("double %s(%s)", ent.Name, argList(ent.Expr))
		io.Ff(&bufc, "\n%s {\n\n\tdouble %s_result;\n\t%s_result = %s;\n\treturn %s_result;\n\n}\n",
			sig, ent.Name, ent.Name, cexpr(ent.Expr), ent.Name)
		io.Ff(&bufh, "double %s(%s);\n", ent.Name, argList(ent.Expr))
	}
	io.Ff(&bufh, "\n#endif\n")

	io.WriteFileVD(dirout, cfn, &bufc)
	io.WriteFileVD(dirout, hfn, &bufh)
	return nil
}

// banner writes the generated-code warning block
func banner(buf *bytes.Buffer, project string) {
	line := func(s string) {
		pad := 76 - len(s)
		l := pad / 2
		io.Ff(buf, " *%s%s%s*\n", strings.Repeat(" ", l), s, strings.Repeat(" ", pad-l))
	}
	io.Ff(buf, "/******************************************************************************\n")
	line("Code generated by phasefield-precipitate-aging")
	line("")
	line("Do not edit; rerun the generator instead.")
	line("")
	line(io.Sf("This file is part of '%s'", project))
	io.Ff(buf, " ******************************************************************************/\n")
}

// argList lists the arguments actually used by the expression
func argList(e sym.Expr) string {
	vars := sym.FreeVars(e)
	args := make([]string, len(vars))
	for i, name := range vars {
		args[i] = "double " + name
	}
	return strings.Join(args, ", ")
}

// cexpr renders an expression as C source. Parentheses follow precedence,
// so top-level sums and nested atoms carry none.
func cexpr(e sym.Expr) string {
	return render(e, 0)
}

// precedence levels: 0 statement, 1 sum, 2 product, 3 atom
func render(e sym.Expr, outer int) string {
	var s string
	lvl := 3
	switch o := e.(type) {
	case *sym.Num:
		s = cnum(o.V)
		if o.V < 0 {
			lvl = 2
		}
	case *sym.Var:
		s = o.Name
	case *sym.Add:
		lvl = 1
		parts := make([]string, 0, len(o.Args))
		for i, a := range o.Args {
			t := render(a, 1)
			if i > 0 {
				if strings.HasPrefix(t, "-") {
					t = "- " + t[1:]
				} else {
					t = "+ " + t
				}
			}
			parts = append(parts, t)
		}
		s = strings.Join(parts, " ")
	case *sym.Mul:
		lvl = 2
		parts := make([]string, len(o.Args))
		for i, a := range o.Args {
			if i == 0 {
				parts[i] = render(a, 1) // leading minus needs no parens
			} else {
				parts[i] = render(a, 2)
			}
		}
		s = strings.Join(parts, "*")
	case *sym.Pow:
		s = io.Sf("pow(%s, %s)", render(o.Base, 0), render(o.Exp, 0))
	case *sym.Call:
		s = io.Sf("%s(%s)", o.Name, render(o.Arg, 0))
	default:
		chk.Panic("emit: cannot render %T as C", e)
	}
	if lvl < 3 && lvl <= outer {
		return "(" + s + ")"
	}
	return s
}

// cnum formats a float as a C double literal, keeping full precision and
// always marking it as floating point
func cnum(v float64) string {
	s := strconv.FormatFloat(v, 'g', 17, 64)
	if !strings.ContainsAny(s, ".en") {
		s += ".0"
	}
	return s
}
