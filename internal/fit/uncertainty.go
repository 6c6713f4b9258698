package fit

import "math"

// BoundaryError finds the 1-sigma-equivalent uncertainty on a single
// fitted parameter: the distance from the minimum to the nearest point
// where chi-squared has risen by exactly 1. The crossing is located by
// descending
//
//	g(p) = (chi(p) - chi(final) - 1)^2
//
// from the fitted value with the given step (conventionally one tenth of
// the primary fit's step). The descent walks one way from the minimum, so
// a single symmetric error is reported rather than separate bounds.
func BoundaryError(chi Func1D, final, step float64, maxIter int) (float64, error) {
	chiMin := chi(final)
	g := func(p float64) float64 {
		d := chi(p) - chiMin - 1
		return d * d
	}

	boundary, err := Descend(g, final, step, maxIter)
	if err != nil {
		return 0, err
	}
	return math.Abs(boundary - final), nil
}

// ContourErrors derives per-parameter uncertainties from the chi-squared
// min+1 contour: half the extent of the contour along each parameter axis.
// An empty contour means the level was never crossed inside the grid and
// is reported rather than guessed at.
func ContourErrors(points []ContourPoint) (errA, errB float64, err error) {
	if len(points) == 0 {
		return 0, 0, ErrContourNotFound
	}

	minA, maxA := points[0].A, points[0].A
	minB, maxB := points[0].B, points[0].B
	for _, pt := range points[1:] {
		minA = math.Min(minA, pt.A)
		maxA = math.Max(maxA, pt.A)
		minB = math.Min(minB, pt.B)
		maxB = math.Max(maxB, pt.B)
	}

	return (maxA - minA) / 2, (maxB - minB) / 2, nil
}
