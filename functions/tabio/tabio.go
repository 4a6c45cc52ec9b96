// Package tabio reads and writes tabulated functions in two flat layouts.
//
// Binary: a big-endian int32 point count followed by count pairs of
// big-endian float64 x and y, in point order. There is no header.
//
// Text: the decimal point count followed by count "x y" pairs, all separated
// by arbitrary whitespace. Numbers use the shortest form that round-trips.
//
// Both layouts preserve every bit of every coordinate, so a decoded function
// is Equal to the encoded one. Decoded functions are array-backed.
package tabio

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/tabulated_go/functions"
)

// ErrMalformed is returned for streams that cannot be decoded into a valid
// tabulated function. It wraps the underlying I/O, parse or validation error.
var ErrMalformed = errors.New("malformed tabulated function stream")

// maxPrealloc caps how many points are reserved up front from an untrusted count.
const maxPrealloc = 1 << 16

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}

func build(points []functions.Point) (*functions.ArrayTabulatedFunction, error) {
	f, err := functions.NewArrayTabulatedFunctionFromPoints(points)
	if err != nil {
		return nil, malformed(err)
	}
	return f, nil
}
