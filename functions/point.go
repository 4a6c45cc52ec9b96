package functions

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Point is a single (x, y) sample. It is a plain value: assigning it copies it.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String formats the point as "(x; y)" with the shortest decimal that round-trips.
func (p Point) String() string {
	return "(" + formatFloat(p.X) + "; " + formatFloat(p.Y) + ")"
}

// Equal compares both coordinates bit for bit.
// NaN equals an identical NaN and 0 differs from -0, unlike ==.
func (p Point) Equal(q Point) bool {
	return math.Float64bits(p.X) == math.Float64bits(q.X) &&
		math.Float64bits(p.Y) == math.Float64bits(q.Y)
}

// Hash is consistent with Equal.
func (p Point) Hash() uint64 {
	var buf [16]byte
	p.putBits(buf[:])
	return xxhash.Sum64(buf[:])
}

func (p Point) putBits(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
