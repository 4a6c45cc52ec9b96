package functions

import (
	"fmt"
	"math"
)

var _ TabulatedFunction = (*LinkedListTabulatedFunction)(nil)

type node struct {
	point      Point
	prev, next *node
}

// LinkedListTabulatedFunction stores its points in a circular doubly linked
// list. The sentinel head never holds a point: head.next is the first point
// and head.prev the last, so both domain borders are O(1).
//
// Index lookups walk from the last visited node when the requested index is
// within count/2 of it, and from the first point otherwise. A miss never
// walks backwards from the tail even when that would be shorter.
type LinkedListTabulatedFunction struct {
	head  *node
	count int

	cachedNode  *node // nil when empty
	cachedIndex int
}

// NewLinkedListTabulatedFunction spreads count points evenly over [left, right] with y = 0.
func NewLinkedListTabulatedFunction(left, right float64, count int) (*LinkedListTabulatedFunction, error) {
	points, err := evenlySpaced(left, right, count, nil)
	if err != nil {
		return nil, err
	}
	return newLinkedList(points), nil
}

// NewLinkedListTabulatedFunctionFromValues spreads len(values) points evenly
// over [left, right] and assigns values to them in order.
func NewLinkedListTabulatedFunctionFromValues(left, right float64, values []float64) (*LinkedListTabulatedFunction, error) {
	points, err := evenlySpaced(left, right, len(values), values)
	if err != nil {
		return nil, err
	}
	return newLinkedList(points), nil
}

// NewLinkedListTabulatedFunctionFromPoints copies points, which must already
// be sorted by x with no duplicates.
func NewLinkedListTabulatedFunctionFromPoints(points []Point) (*LinkedListTabulatedFunction, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	return newLinkedList(points), nil
}

func newLinkedList(points []Point) *LinkedListTabulatedFunction {
	head := &node{}
	head.next, head.prev = head, head
	f := &LinkedListTabulatedFunction{head: head, cachedIndex: -1}
	for _, p := range points {
		f.linkBefore(head, p)
	}
	return f
}

// linkBefore inserts a new node holding p right before at and returns it.
func (f *LinkedListTabulatedFunction) linkBefore(at *node, p Point) *node {
	n := &node{point: p, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	f.count++
	return n
}

func (f *LinkedListTabulatedFunction) forget() {
	f.cachedNode = nil
	f.cachedIndex = -1
}

func (f *LinkedListTabulatedFunction) nodeAt(index int) (*node, error) {
	if err := checkIndex(index, f.count); err != nil {
		return nil, err
	}
	n := f.walk(index)
	f.cachedNode = n
	f.cachedIndex = index
	return n, nil
}

// walk finds the node at a valid index without moving the cache.
func (f *LinkedListTabulatedFunction) walk(index int) *node {
	if f.cachedNode != nil && abs(index-f.cachedIndex) <= f.count/2 {
		n := f.cachedNode
		for i := f.cachedIndex; i < index; i++ {
			n = n.next
		}
		for i := f.cachedIndex; i > index; i-- {
			n = n.prev
		}
		return n
	}
	n := f.head.next
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (f *LinkedListTabulatedFunction) PointsCount() int { return f.count }

func (f *LinkedListTabulatedFunction) LeftDomainBorder() float64 { return f.head.next.point.X }

func (f *LinkedListTabulatedFunction) RightDomainBorder() float64 { return f.head.prev.point.X }

func (f *LinkedListTabulatedFunction) Evaluate(x float64) float64 {
	first, last := f.head.next, f.head.prev
	if !inDomain(x, first.point.X, last.point.X) {
		return math.NaN()
	}
	for n := first; n.next != f.head; n = n.next {
		p1, p2 := n.point, n.next.point
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
	if sameX(x, last.point.X) {
		return last.point.Y
	}
	return math.NaN()
}

func (f *LinkedListTabulatedFunction) Point(index int) (Point, error) {
	n, err := f.nodeAt(index)
	if err != nil {
		return Point{}, err
	}
	return n.point, nil
}

func (f *LinkedListTabulatedFunction) PointX(index int) (float64, error) {
	p, err := f.Point(index)
	return p.X, err
}

func (f *LinkedListTabulatedFunction) PointY(index int) (float64, error) {
	p, err := f.Point(index)
	return p.Y, err
}

func (f *LinkedListTabulatedFunction) neighbours(n *node) (prev, next *Point) {
	if n.prev != f.head {
		prev = &n.prev.point
	}
	if n.next != f.head {
		next = &n.next.point
	}
	return prev, next
}

func (f *LinkedListTabulatedFunction) SetPoint(index int, p Point) error {
	n, err := f.nodeAt(index)
	if err != nil {
		return err
	}
	prev, next := f.neighbours(n)
	if !fitsBetween(p.X, prev, next) {
		return orderError(p.X)
	}
	n.point = p
	return nil
}

func (f *LinkedListTabulatedFunction) SetPointX(index int, x float64) error {
	n, err := f.nodeAt(index)
	if err != nil {
		return err
	}
	prev, next := f.neighbours(n)
	if !fitsBetween(x, prev, next) {
		return orderError(x)
	}
	n.point.X = x
	return nil
}

func (f *LinkedListTabulatedFunction) SetPointY(index int, y float64) error {
	n, err := f.nodeAt(index)
	if err != nil {
		return err
	}
	n.point.Y = y
	return nil
}

// AddPoint inserts p before the first point whose x is not less than p.X.
func (f *LinkedListTabulatedFunction) AddPoint(p Point) error {
	if math.IsNaN(p.X) {
		return orderError(p.X)
	}
	for n := f.head.next; n != f.head; n = n.next {
		if sameX(n.point.X, p.X) {
			return fmt.Errorf("%w: x=%s", ErrDuplicateKey, formatFloat(p.X))
		}
	}

	at, index := f.head.next, 0
	for at != f.head && at.point.X < p.X {
		at = at.next
		index++
	}
	f.cachedNode = f.linkBefore(at, p)
	f.cachedIndex = index
	return nil
}

func (f *LinkedListTabulatedFunction) DeletePoint(index int) error {
	if err := checkIndex(index, f.count); err != nil {
		return err
	}
	if f.count <= 2 {
		return fmt.Errorf("%w: cannot delete from %d points", ErrInsufficientPoints, f.count)
	}
	n := f.walk(index)

	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	f.count--

	switch {
	case f.cachedIndex == index:
		f.forget()
	case f.cachedIndex > index:
		f.cachedIndex--
	}
	return nil
}

func (f *LinkedListTabulatedFunction) Points() []Point {
	points := make([]Point, 0, f.count)
	for n := f.head.next; n != f.head; n = n.next {
		points = append(points, n.point)
	}
	return points
}

func (f *LinkedListTabulatedFunction) Clone() TabulatedFunction {
	return newLinkedList(f.Points())
}

func (f *LinkedListTabulatedFunction) String() string {
	return formatPoints(f.Points())
}
