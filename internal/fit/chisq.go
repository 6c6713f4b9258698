package fit

import (
	"github.com/montanaflynn/stats"

	"physfit/internal/dataset"
)

// Params is a vector of free physical parameters. Minimizers mutate their
// own working copies; callers always receive a fresh slice.
type Params []float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	copy(c, p)
	return c
}

// Model evaluates the physical model at one point for a candidate
// parameter vector. It may return NaN for physically invalid parameters.
type Model func(x float64, p Params) float64

// Objective is a scalar function of the parameter vector, typically a
// chi-squared closed over a dataset.
type Objective func(p Params) float64

// ChiSquared is the sum of squared uncertainty-normalized residuals of the
// model against the dataset.
func ChiSquared(ds dataset.Dataset, model Model, p Params) float64 {
	total := 0.0
	for _, s := range ds {
		r := (s.Y - model(s.X, p)) / s.Err
		total += r * r
	}
	return total
}

// ReducedChiSquared divides chi-squared by the number of degrees of
// freedom (samples minus free parameters).
func ReducedChiSquared(ds dataset.Dataset, model Model, p Params) float64 {
	dof := len(ds) - len(p)
	return ChiSquared(ds, model, p) / float64(dof)
}

// Residuals returns the uncertainty-normalized residual of every sample.
func Residuals(ds dataset.Dataset, model Model, p Params) []float64 {
	res := make([]float64, len(ds))
	for i, s := range ds {
		res[i] = (s.Y - model(s.X, p)) / s.Err
	}
	return res
}

// ResidualSummary reports the mean and standard deviation of the
// normalized residuals; for a good fit these should be near 0 and 1.
func ResidualSummary(residuals []float64) (mean, stdev float64, err error) {
	mean, err = stats.Mean(residuals)
	if err != nil {
		return 0, 0, err
	}
	stdev, err = stats.StandardDeviation(residuals)
	if err != nil {
		return 0, 0, err
	}
	return mean, stdev, nil
}
