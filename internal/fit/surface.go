package fit

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Surface is a chi-squared landscape sampled on a rectangular grid of two
// parameters. A holds the first parameter's axis values, B the second's;
// Chi[i][j] is the objective at (A[j], B[i]).
type Surface struct {
	A   []float64
	B   []float64
	Chi [][]float64
}

// SweepSurface evaluates the objective on a grid spanning ±span (as a
// fraction of each fitted value) around the center, at the given
// resolution per axis. Grid rows are evaluated in parallel; cells are
// independent and the result does not depend on evaluation order.
func SweepSurface(obj Objective, center Params, span float64, resolution int) *Surface {
	s := &Surface{
		A:   linspace(center[0]*(1-span), center[0]*(1+span), resolution),
		B:   linspace(center[1]*(1-span), center[1]*(1+span), resolution),
		Chi: make([][]float64, resolution),
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range s.Chi {
		g.Go(func() error {
			row := make([]float64, resolution)
			for j := range row {
				row[j] = obj(Params{s.A[j], s.B[i]})
			}
			s.Chi[i] = row
			return nil
		})
	}
	// Row evaluation never fails; Wait only synchronizes.
	_ = g.Wait()

	return s
}

func linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}
