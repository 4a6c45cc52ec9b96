package pure

import (
	"math"

	"github.com/on-the-ground/tabulated_go/functions"
)

var _ functions.Function = (*Tableized)(nil)

// Tableized memoizes a Function by the exact bit pattern of x.
// Domain borders are delegated to the wrapped function every time.
type Tableized struct {
	fn    functions.Function
	table *Table[uint64, float64]
}

// Tableize wraps fn so each distinct x is evaluated at most once while it
// stays in a table of maxTableSize recent entries per generation.
//
// fn must be pure. Wrapping a TabulatedFunction that is later mutated
// returns stale values.
func Tableize(fn functions.Function, maxTableSize uint32) *Tableized {
	return &Tableized{fn: fn, table: NewTable[uint64, float64](maxTableSize)}
}

func (t *Tableized) LeftDomainBorder() float64  { return t.fn.LeftDomainBorder() }
func (t *Tableized) RightDomainBorder() float64 { return t.fn.RightDomainBorder() }

func (t *Tableized) Evaluate(x float64) float64 {
	key := math.Float64bits(x)
	if y, ok := t.table.Load(key); ok {
		return y
	}
	y := t.fn.Evaluate(x)
	t.table.Store(key, y)
	return y
}

// Unwrap returns the memoized function.
func (t *Tableized) Unwrap() functions.Function { return t.fn }
