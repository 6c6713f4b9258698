package fit

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Minimize runs a Nelder-Mead simplex over the objective from the given
// initial guess and returns the minimizing parameter vector. The guess is
// not modified. Any failure to converge is reported as ErrNoConvergence;
// there is no partial result.
func Minimize(obj Objective, guess Params) (Params, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return obj(Params(x))
		},
	}

	result, err := optimize.Minimize(problem, guess.Clone(), nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}
	if err := result.Status.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}

	return Params(result.X).Clone(), nil
}
