// Package functions provides one-variable real functions, their tabulated
// (sampled) approximations, and composite-trapezoid integration.
//
// # Function vs TabulatedFunction
//
// A Function is anything with a domain and a pure x -> y mapping.
// A TabulatedFunction is a Function backed by an ordered set of points and
// evaluated by linear interpolation between neighbours.
//
// Two stores implement TabulatedFunction:
//   - ArrayTabulatedFunction: contiguous slice, single-slot access cache.
//   - LinkedListTabulatedFunction: circular doubly linked list with a
//     sentinel node and a cursor cache.
//
// Both keep x strictly increasing and hold at least two points at all times.
// Every mutation either succeeds or leaves the function untouched.
//
// Neither store is safe for concurrent use. Distinct instances share nothing.
//
// Example:
//
//	f, err := functions.NewArrayTabulatedFunctionFromPoints([]functions.Point{
//	    {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4},
//	})
//	if err != nil {
//	    return err
//	}
//	y := f.Evaluate(1.5) // 2.5
//
//	area, err := functions.Integrate(f, 0, 2, 0.01)
package functions
