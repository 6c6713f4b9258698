package model

import (
	"math"
	"testing"

	"physfit/internal/config"
)

func TestActivityAtTimeZero(t *testing.T) {
	dec := &Decay{InitialNuclei: config.DefaultInitialNuclei}
	if a := dec.Activity(0, 0.0005, 0.005); a != 0 {
		t.Errorf("expected zero activity at t=0, got %v", a)
	}
}

func TestActivityPositive(t *testing.T) {
	dec := &Decay{InitialNuclei: config.DefaultInitialNuclei}
	for _, tt := range []float64{60, 600, 3600} {
		if a := dec.Activity(tt, 0.0005, 0.005); a <= 0 {
			t.Errorf("t=%v: expected positive activity, got %v", tt, a)
		}
	}
}

func TestActivityDecaysAtLateTimes(t *testing.T) {
	dec := &Decay{InitialNuclei: config.DefaultInitialNuclei}
	early := dec.Activity(2000, 0.0005, 0.005)
	late := dec.Activity(20000, 0.0005, 0.005)
	if late >= early {
		t.Errorf("expected activity to decay: %v vs %v", early, late)
	}
}

func TestHalfLife(t *testing.T) {
	// lambda = ln2 / 60 s^-1 gives a one-minute half-life.
	hl := HalfLife(math.Ln2 / 60)
	if math.Abs(hl-1) > 1e-12 {
		t.Errorf("expected half-life of 1 minute, got %v", hl)
	}
}

func TestHalfLifeErrorPreservesRelativeError(t *testing.T) {
	lambda := 0.0005
	lambdaErr := 2.5e-6

	hl := HalfLife(lambda)
	hlErr := HalfLifeError(hl, lambda, lambdaErr)

	got := hlErr / hl
	want := lambdaErr / lambda
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("relative error not preserved: %v vs %v", got, want)
	}
}
