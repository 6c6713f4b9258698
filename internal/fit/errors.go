package fit

import "errors"

// Domain errors for fitting operations.
var (
	// ErrNoConvergence indicates a minimizer could not produce a parameter
	// estimate. Always fatal for the run; no partial results are reported.
	ErrNoConvergence = errors.New("fit: minimizer failed to converge")

	// ErrEmptyDataset indicates a fit was attempted with no valid samples.
	ErrEmptyDataset = errors.New("fit: dataset is empty")

	// ErrContourNotFound indicates the chi-squared surface never crosses
	// the requested level inside the swept grid.
	ErrContourNotFound = errors.New("fit: no chi-squared contour at the requested level")

	// ErrBadStep indicates a non-positive descent step size.
	ErrBadStep = errors.New("fit: step size must be positive")
)
