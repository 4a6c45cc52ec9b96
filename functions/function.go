package functions

import (
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// EPS is the machine epsilon of 1.0 (2^-52).
// It is the tolerance for every x comparison made by tabulated functions.
const EPS = 0x1p-52

// Function is a real function of one variable defined on
// [LeftDomainBorder, RightDomainBorder].
type Function interface {
	LeftDomainBorder() float64
	RightDomainBorder() float64
	Evaluate(x float64) float64
}

// TabulatedFunction is a Function defined by an ordered set of points.
//
// Invariants held by every implementation:
//   - x is strictly increasing across points.
//   - there are always at least 2 points.
//
// Evaluate returns NaN outside [left-EPS, right+EPS]. Accessors return copies
// and never alias internal storage. Failed mutations leave the function unchanged.
type TabulatedFunction interface {
	Function

	PointsCount() int

	Point(index int) (Point, error)
	SetPoint(index int, p Point) error

	PointX(index int) (float64, error)
	SetPointX(index int, x float64) error

	PointY(index int) (float64, error)
	SetPointY(index int, y float64) error

	AddPoint(p Point) error
	DeletePoint(index int) error

	// Points returns a copy of all points in order.
	Points() []Point

	// Clone returns a deep copy with an empty access cache.
	Clone() TabulatedFunction

	String() string
}

// Equal reports whether a and b hold the same points, compared bit for bit.
// The backing store and access cache do not take part.
func Equal(a, b TabulatedFunction) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.PointsCount() != b.PointsCount() {
		return false
	}
	pa, pb := a.Points(), b.Points()
	for i := range pa {
		if !pa[i].Equal(pb[i]) {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal.
func Hash(f TabulatedFunction) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, p := range f.Points() {
		p.putBits(buf[:])
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func sameX(a, b float64) bool {
	return math.Abs(a-b) < EPS
}

func inDomain(x, left, right float64) bool {
	return x >= left-EPS && x <= right+EPS
}

func interpolate(p1, p2 Point, x float64) float64 {
	return p1.Y + (p2.Y-p1.Y)*(x-p1.X)/(p2.X-p1.X)
}

// fitsBetween reports whether x may replace a point whose neighbours are
// prev and next. A nil neighbour means the point is at that end.
func fitsBetween(x float64, prev, next *Point) bool {
	if math.IsNaN(x) {
		return false
	}
	if prev != nil && (x <= prev.X || sameX(x, prev.X)) {
		return false
	}
	if next != nil && (x >= next.X || sameX(x, next.X)) {
		return false
	}
	return true
}

func orderError(x float64) error {
	return fmt.Errorf("%w: x=%s crosses a neighbour", ErrOrderViolation, formatFloat(x))
}

// evenlySpaced returns count points spread over [left, right] with both
// borders included exactly. ys may be nil for all-zero values.
func evenlySpaced(left, right float64, count int, ys []float64) ([]Point, error) {
	if !(left < right) {
		return nil, fmt.Errorf("%w: left %s >= right %s", ErrInvalidDomainBounds, formatFloat(left), formatFloat(right))
	}
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientPoints, count)
	}
	step := (right - left) / float64(count-1)
	points := make([]Point, count)
	for i := range points {
		x := left + float64(i)*step
		if i == count-1 {
			x = right
		}
		points[i].X = x
		if ys != nil {
			points[i].Y = ys[i]
		}
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	return points, nil
}

func validatePoints(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(points))
	}
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].X, points[i].X
		if sameX(prev, cur) {
			return fmt.Errorf("%w: x=%s at index %d", ErrDuplicateKey, formatFloat(cur), i)
		}
		if !(cur > prev) {
			return fmt.Errorf("%w: x=%s at index %d after %s", ErrOrderViolation, formatFloat(cur), i, formatFloat(prev))
		}
	}
	return nil
}

func formatPoints(points []Point) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
