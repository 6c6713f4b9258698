package fit

import (
	"errors"
	"math"
	"testing"
)

func TestBoundaryErrorAnalytic(t *testing.T) {
	// chi(p) = chiMin + ((p - 2) / 0.5)^2 crosses chiMin+1 at p = 2 ± 0.5.
	chi := func(p float64) float64 {
		d := (p - 2) / 0.5
		return 3 + d*d
	}

	got, err := BoundaryError(chi, 2, 0.001, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.5) > 0.005 {
		t.Errorf("expected boundary error near 0.5, got %v", got)
	}
}

func TestBoundaryErrorNonNegative(t *testing.T) {
	chi := func(p float64) float64 { return 1 + (p-1)*(p-1) }
	got, err := BoundaryError(chi, 1, 0.01, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 0 {
		t.Errorf("boundary error must be non-negative, got %v", got)
	}
}

func TestBoundaryErrorMarksCrossing(t *testing.T) {
	chi := func(p float64) float64 {
		d := (p - 2) / 0.3
		return 7 + d*d
	}

	errP, err := BoundaryError(chi, 2, 0.0005, 1000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The reported error points at a parameter where chi-squared sits one
	// unit above its minimum.
	boundary := 2 + errP
	if math.Abs(chi(boundary)-chi(2)-1) > 0.01 {
		t.Errorf("chi at boundary is %v, expected %v", chi(boundary), chi(2)+1)
	}
}

func TestContourErrorsSpans(t *testing.T) {
	points := []ContourPoint{
		{A: 1.0, B: 5.0},
		{A: 1.4, B: 5.2},
		{A: 1.2, B: 4.8},
	}

	errA, errB, err := ContourErrors(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(errA-0.2) > 1e-12 {
		t.Errorf("expected errA 0.2, got %v", errA)
	}
	if math.Abs(errB-0.2) > 1e-12 {
		t.Errorf("expected errB 0.2, got %v", errB)
	}
}

func TestContourErrorsEmpty(t *testing.T) {
	_, _, err := ContourErrors(nil)
	if !errors.Is(err, ErrContourNotFound) {
		t.Errorf("expected ErrContourNotFound, got %v", err)
	}
}
