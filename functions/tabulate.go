package functions

import "fmt"

// Tabulate samples f at count evenly spaced points of [left, right], both
// borders included, into a new ArrayTabulatedFunction.
func Tabulate(f Function, left, right float64, count int) (*ArrayTabulatedFunction, error) {
	if left < f.LeftDomainBorder() || right > f.RightDomainBorder() {
		return nil, fmt.Errorf("%w: [%s, %s] out of function domain [%s, %s]",
			ErrInvalidDomainBounds,
			formatFloat(left), formatFloat(right),
			formatFloat(f.LeftDomainBorder()), formatFloat(f.RightDomainBorder()),
		)
	}
	points, err := evenlySpaced(left, right, count, nil)
	if err != nil {
		return nil, err
	}
	for i := range points {
		points[i].Y = f.Evaluate(points[i].X)
	}
	return newArray(points), nil
}
