package functions

import "fmt"

// Integrate approximates the integral of f over [left, right] with the
// composite trapezoid rule.
//
// Full trapezoids of width step are summed while current+step <= right.
// Whatever remains of [left, right] afterwards, however small, is covered by
// one final trapezoid ending exactly at right.
//
// Bounds and step are validated before f is evaluated:
//   - left >= right, or [left, right] outside f's domain: ErrInvalidDomainBounds
//   - step <= 0: ErrInvalidStep
func Integrate(f Function, left, right, step float64) (float64, error) {
	if !(left < right) {
		return 0, fmt.Errorf("%w: left %s >= right %s", ErrInvalidDomainBounds, formatFloat(left), formatFloat(right))
	}
	if left < f.LeftDomainBorder() || right > f.RightDomainBorder() {
		return 0, fmt.Errorf("%w: [%s, %s] out of function domain [%s, %s]",
			ErrInvalidDomainBounds,
			formatFloat(left), formatFloat(right),
			formatFloat(f.LeftDomainBorder()), formatFloat(f.RightDomainBorder()),
		)
	}
	if !(step > 0) {
		return 0, fmt.Errorf("%w: %s is not positive", ErrInvalidStep, formatFloat(step))
	}

	integral := 0.0
	current := left
	for current+step <= right {
		next := current + step
		integral += (f.Evaluate(current) + f.Evaluate(next)) * step / 2
		current = next
	}
	if current < right {
		integral += (f.Evaluate(current) + f.Evaluate(right)) * (right - current) / 2
	}
	return integral, nil
}
