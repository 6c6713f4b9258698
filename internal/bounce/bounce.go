package bounce

import (
	"errors"
	"math"
)

// Input validation errors; the messages are shown verbatim when
// re-prompting.
var (
	ErrNonPositiveHeight = errors.New("make sure the heights are greater than 0")
	ErrMinAboveInitial   = errors.New("please set the minimum height to be less than the initial height")
	ErrPerfectBounce     = errors.New("the ball keeps on bouncing indefinitely")
	ErrNoBounce          = errors.New("the ball does not bounce")
	ErrEfficiencyRange   = errors.New("the efficiency must be greater than 0 and less than 1")
	ErrBelowMinimum      = errors.New("there are no bounces above the minimum height")
)

// Inputs are the three quantities describing one bounce experiment.
type Inputs struct {
	Initial    float64 // drop height, meters
	Minimum    float64 // counting threshold, meters
	Efficiency float64 // height retained per bounce, in (0, 1)
}

// Validate returns the first violated input rule, or nil when the inputs
// describe a simulable experiment. The rules are checked in a fixed order
// so the user always sees the same message for the same mistake.
func (in Inputs) Validate() error {
	switch {
	case in.Initial <= 0 || in.Minimum <= 0:
		return ErrNonPositiveHeight
	case in.Minimum >= in.Initial:
		return ErrMinAboveInitial
	case in.Efficiency == 1:
		return ErrPerfectBounce
	case in.Efficiency == 0:
		return ErrNoBounce
	case in.Efficiency > 1 || in.Efficiency < 0:
		return ErrEfficiencyRange
	case in.Initial*in.Efficiency < in.Minimum:
		return ErrBelowMinimum
	}
	return nil
}

// Result holds the outcome of a bounce simulation: every recorded peak
// (starting with the drop point at t=0) and the totals over the counted
// bounces.
type Result struct {
	Bounces   int
	TotalTime float64
	Times     []float64 // time at which each peak is reached, seconds
	Heights   []float64 // height of each peak, meters
}

// Simulate runs the deterministic bounce iteration: while the next peak
// would still clear the minimum, count the bounce, accumulate the
// fall-plus-rise time, and move to the next peak. The bounce is counted
// before the following peak is tested, so the last recorded bounce is the
// one landing exactly at or above the threshold.
func Simulate(in Inputs, gravity float64) Result {
	height := in.Initial
	res := Result{
		Times:   []float64{0},
		Heights: []float64{in.Initial},
	}

	for height*in.Efficiency >= in.Minimum {
		res.Bounces++
		res.TotalTime += peakToPeakTime(height, in.Efficiency, gravity)
		height *= in.Efficiency
		res.Times = append(res.Times, res.TotalTime)
		res.Heights = append(res.Heights, height)
	}

	return res
}

// peakToPeakTime is the time for the ball to fall from a peak and rise to
// the next, lower peak.
func peakToPeakTime(height, efficiency, gravity float64) float64 {
	fall := math.Sqrt(2 * height / gravity)
	rise := math.Sqrt(2 * height * efficiency / gravity)
	return fall + rise
}
