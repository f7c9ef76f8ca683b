// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Subs replaces every symbol named in repl, simultaneously, and returns the
// rebuilt canonical tree
func Subs(e Expr, repl map[string]Expr) Expr {
	switch t := e.(type) {
	case *Num:
		return e
	case *Var:
		if r, ok := repl[t.Name]; ok {
			return r
		}
		return e
	case *Add:
		args := make([]Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = Subs(a, repl)
		}
		return Sum(args...)
	case *Mul:
		args := make([]Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = Subs(a, repl)
		}
		return Prod(args...)
	case *Pow:
		return Power(Subs(t.Base, repl), Subs(t.Exp, repl))
	case *Call:
		return Fn(t.Name, Subs(t.Arg, repl))
	}
	chk.Panic("sym: cannot substitute into expression of type %T", e)
	return nil
}

// Eval computes the numeric value of e with the given bindings. Unknown
// symbols are an error. Out-of-domain operations (log of a negative number)
// return NaN, not an error: callers decide whether a NaN is acceptable.
// An exact zero factor annihilates a product even when another factor is
// undefined; blended surfaces rely on this to suppress the raw energy where
// its clamped weight vanishes.
func Eval(e Expr, vals map[string]float64) (res float64, err error) {
	switch t := e.(type) {

	case *Num:
		return t.V, nil

	case *Var:
		if v, ok := vals[t.Name]; ok {
			return v, nil
		}
		return 0, chk.Err("sym: symbol %q has no value", t.Name)

	case *Add:
		for _, a := range t.Args {
			v, e1 := Eval(a, vals)
			if e1 != nil {
				return 0, e1
			}
			res += v
		}
		return

	case *Mul:
		res = 1
		zero := false
		for _, a := range t.Args {
			v, e1 := Eval(a, vals)
			if e1 != nil {
				return 0, e1
			}
			if v == 0 {
				zero = true
				continue
			}
			res *= v
		}
		if zero {
			return 0, nil
		}
		return

	case *Pow:
		b, e1 := Eval(t.Base, vals)
		if e1 != nil {
			return 0, e1
		}
		x, e2 := Eval(t.Exp, vals)
		if e2 != nil {
			return 0, e2
		}
		return math.Pow(b, x), nil

	case *Call:
		a, e1 := Eval(t.Arg, vals)
		if e1 != nil {
			return 0, e1
		}
		switch t.Name {
		case "log":
			return math.Log(a), nil
		case "exp":
			return math.Exp(a), nil
		case "tanh":
			return math.Tanh(a), nil
		}
		return 0, chk.Err("sym: cannot evaluate unknown function %q", t.Name)
	}
	return 0, chk.Err("sym: cannot evaluate expression of type %T", e)
}

// Compile turns e into a fast closure of the two given symbols. Every other
// symbol must have been substituted away already.
func Compile(e Expr, xname, yname string) (fcn func(x, y float64) float64, err error) {
	for _, name := range FreeVars(e) {
		if name != xname && name != yname {
			return nil, chk.Err("sym: cannot compile: unresolved symbol %q", name)
		}
	}
	return compile(e, xname, yname), nil
}

func compile(e Expr, xname, yname string) func(x, y float64) float64 {
	switch t := e.(type) {

	case *Num:
		v := t.V
		return func(x, y float64) float64 { return v }

	case *Var:
		if t.Name == xname {
			return func(x, y float64) float64 { return x }
		}
		return func(x, y float64) float64 { return y }

	case *Add:
		fs := make([]func(x, y float64) float64, len(t.Args))
		for i, a := range t.Args {
			fs[i] = compile(a, xname, yname)
		}
		return func(x, y float64) (res float64) {
			for _, f := range fs {
				res += f(x, y)
			}
			return
		}

	case *Mul:
		fs := make([]func(x, y float64) float64, len(t.Args))
		for i, a := range t.Args {
			fs[i] = compile(a, xname, yname)
		}
		return func(x, y float64) float64 {
			res, zero := 1.0, false
			for _, f := range fs {
				v := f(x, y)
				if v == 0 {
					zero = true
					continue
				}
				res *= v
			}
			if zero {
				return 0
			}
			return res
		}

	case *Pow:
		fb := compile(t.Base, xname, yname)
		fe := compile(t.Exp, xname, yname)
		return func(x, y float64) float64 { return math.Pow(fb(x, y), fe(x, y)) }

	case *Call:
		fa := compile(t.Arg, xname, yname)
		switch t.Name {
		case "log":
			return func(x, y float64) float64 { return math.Log(fa(x, y)) }
		case "exp":
			return func(x, y float64) float64 { return math.Exp(fa(x, y)) }
		case "tanh":
			return func(x, y float64) float64 { return math.Tanh(fa(x, y)) }
		}
	}
	chk.Panic("sym: cannot compile expression of type %T", e)
	return nil
}
