package functions

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a point index is negative or not less than the points count.
	ErrIndexOutOfRange = errors.New("point index out of range")

	// ErrOrderViolation is returned when a point would break the strict x ordering.
	ErrOrderViolation = errors.New("point x out of order")

	// ErrDuplicateKey is returned when a point with the same x (within EPS) already exists.
	ErrDuplicateKey = errors.New("duplicate point x")

	// ErrInsufficientPoints is returned when a function would hold fewer than two points.
	ErrInsufficientPoints = errors.New("tabulated function needs at least 2 points")

	// ErrInvalidDomainBounds is returned for inverted bounds or bounds outside a function's domain.
	ErrInvalidDomainBounds = errors.New("invalid domain bounds")

	// ErrInvalidStep is returned when an integration step is not strictly positive.
	ErrInvalidStep = errors.New("invalid discretization step")
)

func indexError(index, count int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, count)
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return indexError(index, count)
	}
	return nil
}
