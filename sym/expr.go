// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements immutable symbolic expression trees over float64
// constants, with exact differentiation, substitution and evaluation.
// Expressions are kept in a canonical form (constants folded, like terms and
// repeated factors combined, commutative operands sorted) so that equal
// derivations produce byte-identical renderings.
package sym

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Expr is an immutable symbolic expression. Every operation on expressions
// returns a new tree; none mutates its input.
type Expr interface {
	String() string
}

// Num is a numeric constant
type Num struct {
	V float64
}

// Var is a free symbol
type Var struct {
	Name string
}

// Add is an n-ary sum in canonical form: at most one leading constant,
// like terms combined, remaining terms sorted
type Add struct {
	Args []Expr
	str  string // cached rendering
}

// Mul is an n-ary product in canonical form: at most one leading constant,
// repeated factors combined into powers, factors sorted
type Mul struct {
	Args []Expr
	str  string // cached rendering
}

// Pow is base raised to exponent
type Pow struct {
	Base, Exp Expr
	str       string // cached rendering
}

// Call is the application of a known unary function: "log", "exp" or "tanh"
type Call struct {
	Name string
	Arg  Expr
	str  string // cached rendering
}

// N returns a numeric constant
func N(v float64) Expr { return &Num{V: v} }

// V returns a free symbol
func V(name string) Expr { return &Var{Name: name} }

// fold sums constants in a fixed order regardless of the order they were
// collected in, so that commuted derivations of the same expression fold to
// bit-identical values
func foldSum(vals []float64) (res float64) {
	sort.Float64s(vals)
	for _, v := range vals {
		res += v
	}
	return
}

func foldProd(vals []float64) (res float64) {
	sort.Float64s(vals)
	res = 1
	for _, v := range vals {
		res *= v
	}
	return
}

// splitCoef splits a canonical non-constant expression into its numeric
// coefficient and the remaining term
func splitCoef(e Expr) (coef float64, term Expr) {
	if m, ok := e.(*Mul); ok {
		if n, ok2 := m.Args[0].(*Num); ok2 {
			rest := m.Args[1:]
			if len(rest) == 1 {
				return n.V, rest[0]
			}
			return n.V, &Mul{Args: rest}
		}
	}
	return 1, e
}

// mulCoef rebuilds coefficient times term without re-canonicalizing
func mulCoef(coef float64, term Expr) Expr {
	if coef == 1 {
		return term
	}
	if m, ok := term.(*Mul); ok {
		args := make([]Expr, 0, len(m.Args)+1)
		args = append(args, &Num{V: coef})
		args = append(args, m.Args...)
		return &Mul{Args: args}
	}
	return &Mul{Args: []Expr{&Num{V: coef}, term}}
}

// Sum builds the canonical sum of args
func Sum(args ...Expr) Expr {

	// flatten nested sums and collect constants
	var nums []float64
	var flat []Expr
	for _, a := range args {
		switch t := a.(type) {
		case *Num:
			nums = append(nums, t.V)
		case *Add:
			for _, b := range t.Args {
				if n, ok := b.(*Num); ok {
					nums = append(nums, n.V)
				} else {
					flat = append(flat, b)
				}
			}
		default:
			flat = append(flat, a)
		}
	}
	con := foldSum(nums)

	// combine like terms
	coefs := make(map[string][]float64)
	terms := make(map[string]Expr)
	var keys []string
	for _, a := range flat {
		c, t := splitCoef(a)
		k := t.String()
		if _, ok := terms[k]; !ok {
			keys = append(keys, k)
			terms[k] = t
		}
		coefs[k] = append(coefs[k], c)
	}
	sort.Strings(keys)

	// rebuild
	res := make([]Expr, 0, len(keys)+1)
	if con != 0 {
		res = append(res, &Num{V: con})
	}
	for _, k := range keys {
		c := foldSum(coefs[k])
		if c == 0 {
			continue
		}
		res = append(res, mulCoef(c, terms[k]))
	}
	switch len(res) {
	case 0:
		return &Num{V: 0}
	case 1:
		return res[0]
	}
	return &Add{Args: res}
}

// Prod builds the canonical product of args
func Prod(args ...Expr) Expr {

	// flatten nested products and collect constants
	var nums []float64
	var flat []Expr
	for _, a := range args {
		switch t := a.(type) {
		case *Num:
			nums = append(nums, t.V)
		case *Mul:
			for _, b := range t.Args {
				if n, ok := b.(*Num); ok {
					nums = append(nums, n.V)
				} else {
					flat = append(flat, b)
				}
			}
		default:
			flat = append(flat, a)
		}
	}
	con := foldProd(nums)
	if con == 0 {
		return &Num{V: 0}
	}

	// combine repeated factors into powers
	expos := make(map[string][]float64)
	bases := make(map[string]Expr)
	var keys []string
	addFactor := func(base Expr, e float64) {
		k := base.String()
		if _, ok := bases[k]; !ok {
			keys = append(keys, k)
			bases[k] = base
		}
		expos[k] = append(expos[k], e)
	}
	for _, a := range flat {
		if p, ok := a.(*Pow); ok {
			if n, ok2 := p.Exp.(*Num); ok2 {
				addFactor(p.Base, n.V)
				continue
			}
		}
		addFactor(a, 1)
	}
	sort.Strings(keys)

	// rebuild
	res := make([]Expr, 0, len(keys)+1)
	if con != 1 {
		res = append(res, &Num{V: con})
	}
	for _, k := range keys {
		e := foldSum(expos[k])
		if e == 0 {
			continue
		}
		if e == 1 {
			res = append(res, bases[k])
			continue
		}
		res = append(res, &Pow{Base: bases[k], Exp: &Num{V: e}})
	}
	switch len(res) {
	case 0:
		return &Num{V: 1}
	case 1:
		return res[0]
	}
	return &Mul{Args: res}
}

// Power builds base raised to exponent
func Power(base, exp Expr) Expr {
	if n, ok := exp.(*Num); ok {
		if n.V == 0 {
			return &Num{V: 1}
		}
		if n.V == 1 {
			return base
		}
		if b, ok2 := base.(*Num); ok2 {
			return &Num{V: math.Pow(b.V, n.V)}
		}
		if p, ok2 := base.(*Pow); ok2 {
			if m, ok3 := p.Exp.(*Num); ok3 {
				return Power(p.Base, &Num{V: m.V * n.V})
			}
		}
	}
	if b, ok := base.(*Num); ok {
		if b.V == 1 {
			return &Num{V: 1}
		}
	}
	return &Pow{Base: base, Exp: exp}
}

// Fn applies a known unary function, folding constant arguments where the
// result is defined. Out-of-domain constants (e.g. log of a non-positive
// number) stay symbolic and evaluate to NaN.
func Fn(name string, arg Expr) Expr {
	if n, ok := arg.(*Num); ok {
		switch name {
		case "log":
			if n.V > 0 {
				return &Num{V: math.Log(n.V)}
			}
		case "exp":
			return &Num{V: math.Exp(n.V)}
		case "tanh":
			return &Num{V: math.Tanh(n.V)}
		}
	}
	return &Call{Name: name, Arg: arg}
}

// Neg returns -a
func Neg(a Expr) Expr { return Prod(N(-1), a) }

// Minus returns a - b
func Minus(a, b Expr) Expr { return Sum(a, Neg(b)) }

// Div returns a / b
func Div(a, b Expr) Expr { return Prod(a, Power(b, N(-1))) }

// Log returns the natural logarithm of a
func Log(a Expr) Expr { return Fn("log", a) }

// Exp returns the exponential of a
func Exp(a Expr) Expr { return Fn("exp", a) }

// Tanh returns the hyperbolic tangent of a
func Tanh(a Expr) Expr { return Fn("tanh", a) }

// Simplify rebuilds e in canonical form. Trees produced by the package
// constructors are canonical already; Simplify is idempotent on them.
func Simplify(e Expr) Expr {
	switch t := e.(type) {
	case *Num, *Var:
		return e
	case *Add:
		args := make([]Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = Simplify(a)
		}
		return Sum(args...)
	case *Mul:
		args := make([]Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = Simplify(a)
		}
		return Prod(args...)
	case *Pow:
		return Power(Simplify(t.Base), Simplify(t.Exp))
	case *Call:
		return Fn(t.Name, Simplify(t.Arg))
	}
	return e
}

// Identical reports whether a and b have the same canonical rendering
func Identical(a, b Expr) bool {
	return a.String() == b.String()
}

// FreeVars returns the sorted list of distinct symbols in e
func FreeVars(e Expr) (names []string) {
	set := make(map[string]bool)
	collectVars(e, set)
	for k := range set {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func collectVars(e Expr, set map[string]bool) {
	switch t := e.(type) {
	case *Var:
		set[t.Name] = true
	case *Add:
		for _, a := range t.Args {
			collectVars(a, set)
		}
	case *Mul:
		for _, a := range t.Args {
			collectVars(a, set)
		}
	case *Pow:
		collectVars(t.Base, set)
		collectVars(t.Exp, set)
	case *Call:
		collectVars(t.Arg, set)
	}
}

// rendering ///////////////////////////////////////////////////////////////////////////////////////

func (o *Num) String() string {
	return strconv.FormatFloat(o.V, 'g', -1, 64)
}

func (o *Var) String() string { return o.Name }

func (o *Add) String() string {
	if o.str == "" {
		s := make([]string, len(o.Args))
		for i, a := range o.Args {
			s[i] = a.String()
		}
		o.str = "(" + strings.Join(s, " + ") + ")"
	}
	return o.str
}

func (o *Mul) String() string {
	if o.str == "" {
		s := make([]string, len(o.Args))
		for i, a := range o.Args {
			s[i] = a.String()
		}
		o.str = "(" + strings.Join(s, "*") + ")"
	}
	return o.str
}

func (o *Pow) String() string {
	if o.str == "" {
		o.str = paren(o.Base) + "**" + paren(o.Exp)
	}
	return o.str
}

func (o *Call) String() string {
	if o.str == "" {
		o.str = o.Name + "(" + o.Arg.String() + ")"
	}
	return o.str
}

// paren wraps e in parentheses unless it renders unambiguously bare
func paren(e Expr) string {
	switch t := e.(type) {
	case *Var, *Call:
		return e.String()
	case *Num:
		if t.V >= 0 {
			return e.String()
		}
	}
	return "(" + e.String() + ")"
}
