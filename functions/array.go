package functions

import (
	"fmt"
	"math"
)

var _ TabulatedFunction = (*ArrayTabulatedFunction)(nil)

// ArrayTabulatedFunction stores its points in one contiguous slice.
//
// The last accessed point is remembered in a single-slot cache. The cache is
// not part of the function's value: Equal, Hash and the encoders ignore it.
type ArrayTabulatedFunction struct {
	points []Point

	cachedIndex int // -1 when empty
	cachedPoint Point
}

// NewArrayTabulatedFunction spreads count points evenly over [left, right] with y = 0.
func NewArrayTabulatedFunction(left, right float64, count int) (*ArrayTabulatedFunction, error) {
	points, err := evenlySpaced(left, right, count, nil)
	if err != nil {
		return nil, err
	}
	return newArray(points), nil
}

// NewArrayTabulatedFunctionFromValues spreads len(values) points evenly over
// [left, right] and assigns values to them in order.
func NewArrayTabulatedFunctionFromValues(left, right float64, values []float64) (*ArrayTabulatedFunction, error) {
	points, err := evenlySpaced(left, right, len(values), values)
	if err != nil {
		return nil, err
	}
	return newArray(points), nil
}

// NewArrayTabulatedFunctionFromPoints copies points, which must already be
// sorted by x with no duplicates.
func NewArrayTabulatedFunctionFromPoints(points []Point) (*ArrayTabulatedFunction, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	return newArray(append([]Point(nil), points...)), nil
}

func newArray(points []Point) *ArrayTabulatedFunction {
	return &ArrayTabulatedFunction{points: points, cachedIndex: -1}
}

func (f *ArrayTabulatedFunction) PointsCount() int { return len(f.points) }

func (f *ArrayTabulatedFunction) LeftDomainBorder() float64 { return f.points[0].X }

func (f *ArrayTabulatedFunction) RightDomainBorder() float64 { return f.points[len(f.points)-1].X }

func (f *ArrayTabulatedFunction) Evaluate(x float64) float64 {
	last := len(f.points) - 1
	if !inDomain(x, f.points[0].X, f.points[last].X) {
		return math.NaN()
	}
	for i := 0; i < last; i++ {
		p1, p2 := f.points[i], f.points[i+1]
		if sameX(x, p1.X) {
			return p1.Y
		}
		if sameX(x, p2.X) {
			return p2.Y
		}
		if x > p1.X-EPS && x < p2.X+EPS {
			return interpolate(p1, p2, x)
		}
	}
	if sameX(x, f.points[last].X) {
		return f.points[last].Y
	}
	return math.NaN()
}

func (f *ArrayTabulatedFunction) cached(index int) (Point, error) {
	if err := checkIndex(index, len(f.points)); err != nil {
		return Point{}, err
	}
	if index != f.cachedIndex {
		f.remember(index)
	}
	return f.cachedPoint, nil
}

func (f *ArrayTabulatedFunction) remember(index int) {
	f.cachedIndex = index
	f.cachedPoint = f.points[index]
}

func (f *ArrayTabulatedFunction) forget() {
	f.cachedIndex = -1
	f.cachedPoint = Point{}
}

func (f *ArrayTabulatedFunction) Point(index int) (Point, error) {
	return f.cached(index)
}

func (f *ArrayTabulatedFunction) PointX(index int) (float64, error) {
	p, err := f.cached(index)
	return p.X, err
}

func (f *ArrayTabulatedFunction) PointY(index int) (float64, error) {
	p, err := f.cached(index)
	return p.Y, err
}

func (f *ArrayTabulatedFunction) neighbours(index int) (prev, next *Point) {
	if index > 0 {
		prev = &f.points[index-1]
	}
	if index < len(f.points)-1 {
		next = &f.points[index+1]
	}
	return prev, next
}

func (f *ArrayTabulatedFunction) SetPoint(index int, p Point) error {
	if err := checkIndex(index, len(f.points)); err != nil {
		return err
	}
	prev, next := f.neighbours(index)
	if !fitsBetween(p.X, prev, next) {
		return orderError(p.X)
	}
	f.points[index] = p
	f.remember(index)
	return nil
}

func (f *ArrayTabulatedFunction) SetPointX(index int, x float64) error {
	if err := checkIndex(index, len(f.points)); err != nil {
		return err
	}
	prev, next := f.neighbours(index)
	if !fitsBetween(x, prev, next) {
		return orderError(x)
	}
	f.points[index].X = x
	f.remember(index)
	return nil
}

func (f *ArrayTabulatedFunction) SetPointY(index int, y float64) error {
	if err := checkIndex(index, len(f.points)); err != nil {
		return err
	}
	f.points[index].Y = y
	f.remember(index)
	return nil
}

// AddPoint inserts p before the first point whose x is not less than p.X.
func (f *ArrayTabulatedFunction) AddPoint(p Point) error {
	if math.IsNaN(p.X) {
		return orderError(p.X)
	}
	for _, q := range f.points {
		if sameX(q.X, p.X) {
			return fmt.Errorf("%w: x=%s", ErrDuplicateKey, formatFloat(p.X))
		}
	}

	index := 0
	for index < len(f.points) && f.points[index].X < p.X {
		index++
	}

	f.points = append(f.points, Point{})
	copy(f.points[index+1:], f.points[index:])
	f.points[index] = p
	f.remember(index)
	return nil
}

func (f *ArrayTabulatedFunction) DeletePoint(index int) error {
	if err := checkIndex(index, len(f.points)); err != nil {
		return err
	}
	if len(f.points) <= 2 {
		return fmt.Errorf("%w: cannot delete from %d points", ErrInsufficientPoints, len(f.points))
	}
	copy(f.points[index:], f.points[index+1:])
	f.points[len(f.points)-1] = Point{}
	f.points = f.points[:len(f.points)-1]
	f.forget()
	return nil
}

func (f *ArrayTabulatedFunction) Points() []Point {
	return append([]Point(nil), f.points...)
}

func (f *ArrayTabulatedFunction) Clone() TabulatedFunction {
	return newArray(f.Points())
}

func (f *ArrayTabulatedFunction) String() string {
	return formatPoints(f.points)
}
