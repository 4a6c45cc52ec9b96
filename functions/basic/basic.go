// Package basic provides elementary analytic functions as functions.Function values.
package basic

import (
	"errors"
	"fmt"
	"math"

	"github.com/on-the-ground/tabulated_go/functions"
)

var (
	_ functions.Function = Exp{}
	_ functions.Function = Log{}
	_ functions.Function = Sin{}
	_ functions.Function = Cos{}
	_ functions.Function = Tan{}
)

// ErrInvalidBase is returned for a logarithm base that is not positive or equals 1.
var ErrInvalidBase = errors.New("logarithm base must be > 0 and != 1")

// whole is embedded by functions defined on the entire real line.
type whole struct{}

func (whole) LeftDomainBorder() float64  { return -math.MaxFloat64 }
func (whole) RightDomainBorder() float64 { return math.MaxFloat64 }

type Exp struct{ whole }

func (Exp) Evaluate(x float64) float64 { return math.Exp(x) }

// Log is the logarithm to a fixed base, defined on [0, +MaxFloat64].
// Evaluate returns -Inf at 0 and NaN for negative x.
type Log struct {
	base float64
	lnB  float64
}

func NewLog(base float64) (Log, error) {
	if !(base > 0) || base == 1 || math.IsInf(base, 1) {
		return Log{}, fmt.Errorf("%w: got %v", ErrInvalidBase, base)
	}
	return Log{base: base, lnB: math.Log(base)}, nil
}

// MustLog is the panic-on-failure variant of NewLog.
func MustLog(base float64) Log {
	l, err := NewLog(base)
	if err != nil {
		panic(err)
	}
	return l
}

// NaturalLog returns Log with base e.
func NaturalLog() Log {
	return Log{base: math.E, lnB: 1}
}

func (l Log) Base() float64 { return l.base }

func (Log) LeftDomainBorder() float64  { return 0 }
func (Log) RightDomainBorder() float64 { return math.MaxFloat64 }

func (l Log) Evaluate(x float64) float64 {
	return math.Log(x) / l.lnB
}

type Sin struct{ whole }

func (Sin) Evaluate(x float64) float64 { return math.Sin(x) }

type Cos struct{ whole }

func (Cos) Evaluate(x float64) float64 { return math.Cos(x) }

type Tan struct{ whole }

func (Tan) Evaluate(x float64) float64 { return math.Tan(x) }
