package fit

import (
	"math"
	"testing"
)

// bowl is an elliptic paraboloid with 1-sigma half-widths 0.03 and 0.06
// around (1, 2).
func bowl(p Params) float64 {
	da := (p[0] - 1) / 0.03
	db := (p[1] - 2) / 0.06
	return da*da + db*db
}

func TestSweepSurfaceDims(t *testing.T) {
	s := SweepSurface(bowl, Params{1, 2}, 0.05, 61)

	if len(s.A) != 61 || len(s.B) != 61 {
		t.Fatalf("expected 61-point axes, got %d and %d", len(s.A), len(s.B))
	}
	if len(s.Chi) != 61 || len(s.Chi[0]) != 61 {
		t.Fatalf("expected a 61x61 surface")
	}

	if math.Abs(s.A[0]-0.95) > 1e-12 || math.Abs(s.A[60]-1.05) > 1e-12 {
		t.Errorf("A axis should span ±5%%: [%v, %v]", s.A[0], s.A[60])
	}
	if math.Abs(s.B[0]-1.9) > 1e-12 || math.Abs(s.B[60]-2.1) > 1e-12 {
		t.Errorf("B axis should span ±5%%: [%v, %v]", s.B[0], s.B[60])
	}
}

func TestSweepSurfaceValues(t *testing.T) {
	s := SweepSurface(bowl, Params{1, 2}, 0.05, 31)

	for i := range s.B {
		for j := range s.A {
			want := bowl(Params{s.A[j], s.B[i]})
			if s.Chi[i][j] != want {
				t.Fatalf("cell (%d,%d): expected %v, got %v", i, j, want, s.Chi[i][j])
			}
		}
	}
}

func TestTraceContourEllipse(t *testing.T) {
	s := SweepSurface(bowl, Params{1, 2}, 0.05, 201)

	points := s.TraceContour(1)
	if len(points) == 0 {
		t.Fatal("expected a non-empty contour")
	}

	errA, errB, err := ContourErrors(points)
	if err != nil {
		t.Fatal(err)
	}

	// Half-spans of the chi-min+1 ellipse are the 1-sigma half-widths.
	if math.Abs(errA-0.03) > 0.002 {
		t.Errorf("expected errA near 0.03, got %v", errA)
	}
	if math.Abs(errB-0.06) > 0.002 {
		t.Errorf("expected errB near 0.06, got %v", errB)
	}
}

func TestTraceContourLevelNeverCrossed(t *testing.T) {
	// The whole grid sits below the level: nothing to trace.
	s := SweepSurface(bowl, Params{1, 2}, 0.001, 21)

	points := s.TraceContour(1000)
	if len(points) != 0 {
		t.Errorf("expected no contour, got %d points", len(points))
	}

	if _, _, err := ContourErrors(points); err == nil {
		t.Error("expected ContourErrors to reject an empty contour")
	}
}
