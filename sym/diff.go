// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import "github.com/cpmech/gosl/chk"

// Diff returns the exact partial derivative of e with respect to the symbol
// called name. No numerical differencing is involved; the result is a new
// canonical tree.
func Diff(e Expr, name string) Expr {
	switch t := e.(type) {

	case *Num:
		return N(0)

	case *Var:
		if t.Name == name {
			return N(1)
		}
		return N(0)

	case *Add:
		d := make([]Expr, len(t.Args))
		for i, a := range t.Args {
			d[i] = Diff(a, name)
		}
		return Sum(d...)

	case *Mul:
		terms := make([]Expr, len(t.Args))
		for i := range t.Args {
			fac := make([]Expr, len(t.Args))
			for j, a := range t.Args {
				if i == j {
					fac[j] = Diff(a, name)
				} else {
					fac[j] = a
				}
			}
			terms[i] = Prod(fac...)
		}
		return Sum(terms...)

	case *Pow:
		if n, ok := t.Exp.(*Num); ok {
			return Prod(N(n.V), Power(t.Base, N(n.V-1)), Diff(t.Base, name))
		}
		// u^v => u^v * (v' log(u) + v u'/u)
		u, v := t.Base, t.Exp
		return Prod(e, Sum(
			Prod(Diff(v, name), Log(u)),
			Prod(v, Diff(u, name), Power(u, N(-1))),
		))

	case *Call:
		da := Diff(t.Arg, name)
		switch t.Name {
		case "log":
			return Prod(da, Power(t.Arg, N(-1)))
		case "exp":
			return Prod(da, Exp(t.Arg))
		case "tanh":
			return Prod(da, Minus(N(1), Power(Tanh(t.Arg), N(2))))
		}
		chk.Panic("sym: cannot differentiate unknown function %q", t.Name)
	}
	chk.Panic("sym: cannot differentiate expression of type %T", e)
	return nil
}
