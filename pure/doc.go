// Package pure memoizes pure functions.
//
// Tableize is not just a utility to add memoization.
// It forces the caller to ask:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The composite trapezoid rule evaluates every interior node twice, once as
// the right edge of a trapezoid and once as the left edge of the next one.
// Wrapping an expensive integrand with a small table halves those calls:
//
//	f := pure.Tableize(expensive, 2)
//	area, err := functions.Integrate(f, 0, 1, 1e-4)
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc),
// or on tabulated functions that are mutated after wrapping.
package pure
