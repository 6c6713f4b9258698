package fit

import (
	"fmt"
	"math"
)

// Func1D is a scalar function of a single parameter.
type Func1D func(p float64) float64

// Descend minimizes f by fixed-step neighbour comparison starting at
// start. Each iteration, in order:
//
//   - f(p) undefined: step up, away from the invalid region;
//   - f(p+step) improves: step up;
//   - f(p-step) improves: step down;
//   - neither neighbour improves: p is a local minimum on the step grid.
//
// The step size never adapts, so the result is a literal grid minimum:
// f(p) <= f(p+step) and f(p) <= f(p-step). maxIter bounds the walk;
// exceeding it returns ErrNoConvergence.
func Descend(f Func1D, start, step float64, maxIter int) (float64, error) {
	if step <= 0 {
		return 0, ErrBadStep
	}

	p := start
	for i := 0; i < maxIter; i++ {
		switch {
		case math.IsNaN(f(p)):
			p += step
		case f(p+step) < f(p):
			p += step
		case f(p-step) < f(p):
			p -= step
		default:
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: no grid minimum within %d steps", ErrNoConvergence, maxIter)
}
