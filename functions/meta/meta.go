// Package meta builds new functions out of existing ones.
//
// Every combinator is an immutable value over one or two child functions.
// Evaluation is pure and only delegates to the children.
package meta

import (
	"math"

	"github.com/on-the-ground/tabulated_go/functions"
)

var (
	_ functions.Function = Shifted{}
	_ functions.Function = Scaled{}
	_ functions.Function = Powered{}
	_ functions.Function = Summed{}
	_ functions.Function = Multiplied{}
	_ functions.Function = Composed{}
)

// Shifted is f(x + dx) + dy.
type Shifted struct {
	f      functions.Function
	dx, dy float64
}

func Shift(f functions.Function, dx, dy float64) Shifted {
	return Shifted{f: f, dx: dx, dy: dy}
}

func (s Shifted) LeftDomainBorder() float64  { return s.f.LeftDomainBorder() - s.dx }
func (s Shifted) RightDomainBorder() float64 { return s.f.RightDomainBorder() - s.dx }
func (s Shifted) Evaluate(x float64) float64 { return s.f.Evaluate(x+s.dx) + s.dy }

// Scaled is f(x * sx) * sy.
type Scaled struct {
	f      functions.Function
	sx, sy float64
}

func Scale(f functions.Function, sx, sy float64) Scaled {
	return Scaled{f: f, sx: sx, sy: sy}
}

// LeftDomainBorder accounts for a negative sx mirroring the domain.
func (s Scaled) LeftDomainBorder() float64 {
	return math.Min(s.f.LeftDomainBorder()/s.sx, s.f.RightDomainBorder()/s.sx)
}

func (s Scaled) RightDomainBorder() float64 {
	return math.Max(s.f.LeftDomainBorder()/s.sx, s.f.RightDomainBorder()/s.sx)
}

func (s Scaled) Evaluate(x float64) float64 { return s.f.Evaluate(x*s.sx) * s.sy }

// Powered is f(x) ^ p.
type Powered struct {
	f functions.Function
	p float64
}

func Power(f functions.Function, p float64) Powered {
	return Powered{f: f, p: p}
}

func (pw Powered) LeftDomainBorder() float64  { return pw.f.LeftDomainBorder() }
func (pw Powered) RightDomainBorder() float64 { return pw.f.RightDomainBorder() }
func (pw Powered) Evaluate(x float64) float64 { return math.Pow(pw.f.Evaluate(x), pw.p) }

// pair is defined where both children are.
type pair struct {
	f, g functions.Function
}

func (p pair) LeftDomainBorder() float64 {
	return math.Max(p.f.LeftDomainBorder(), p.g.LeftDomainBorder())
}

func (p pair) RightDomainBorder() float64 {
	return math.Min(p.f.RightDomainBorder(), p.g.RightDomainBorder())
}

// Summed is f(x) + g(x).
type Summed struct{ pair }

func Sum(f, g functions.Function) Summed {
	return Summed{pair{f: f, g: g}}
}

func (s Summed) Evaluate(x float64) float64 { return s.f.Evaluate(x) + s.g.Evaluate(x) }

// Multiplied is f(x) * g(x).
type Multiplied struct{ pair }

func Mult(f, g functions.Function) Multiplied {
	return Multiplied{pair{f: f, g: g}}
}

func (m Multiplied) Evaluate(x float64) float64 { return m.f.Evaluate(x) * m.g.Evaluate(x) }

// Composed is outer(inner(x)), defined on inner's domain.
type Composed struct {
	outer, inner functions.Function
}

func Composition(outer, inner functions.Function) Composed {
	return Composed{outer: outer, inner: inner}
}

func (c Composed) LeftDomainBorder() float64  { return c.inner.LeftDomainBorder() }
func (c Composed) RightDomainBorder() float64 { return c.inner.RightDomainBorder() }
func (c Composed) Evaluate(x float64) float64 { return c.outer.Evaluate(c.inner.Evaluate(x)) }
