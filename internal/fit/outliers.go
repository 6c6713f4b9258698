package fit

import (
	"math"

	"physfit/internal/dataset"
)

// RemoveOutliers drops every sample whose absolute residual from the model
// is sigma or more standard deviations. This is a single pass against one
// reference fit, not iterated to convergence, so the result never grows
// and a sample within the band is never removed.
func RemoveOutliers(ds dataset.Dataset, model Model, p Params, sigma float64) dataset.Dataset {
	kept := make(dataset.Dataset, 0, len(ds))
	for _, s := range ds {
		if math.Abs(s.Y-model(s.X, p)) < sigma*s.Err {
			kept = append(kept, s)
		}
	}
	return kept
}
