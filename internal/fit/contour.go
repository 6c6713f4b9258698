package fit

// ContourPoint is one vertex of a traced level set, in parameter
// coordinates (A along the first axis, B along the second).
type ContourPoint struct {
	A float64
	B float64
}

// TraceContour extracts the vertices where the sampled surface crosses the
// given level, by marching squares with linear interpolation along cell
// edges. Vertices from disjoint contour components are merged into one
// set; the error estimate below only needs the per-axis extent, which is
// insensitive to ordering and component count.
func (s *Surface) TraceContour(level float64) []ContourPoint {
	var points []ContourPoint

	for i := 0; i+1 < len(s.B); i++ {
		for j := 0; j+1 < len(s.A); j++ {
			z00 := s.Chi[i][j]
			z01 := s.Chi[i][j+1]
			z10 := s.Chi[i+1][j]
			z11 := s.Chi[i+1][j+1]

			// Bottom edge: (A[j], B[i]) -> (A[j+1], B[i])
			if t, ok := crossing(z00, z01, level); ok {
				points = append(points, ContourPoint{A: lerp(s.A[j], s.A[j+1], t), B: s.B[i]})
			}
			// Left edge: (A[j], B[i]) -> (A[j], B[i+1])
			if t, ok := crossing(z00, z10, level); ok {
				points = append(points, ContourPoint{A: s.A[j], B: lerp(s.B[i], s.B[i+1], t)})
			}
			// Right and top edges only on the grid boundary; interior
			// ones are the left/bottom edges of neighbouring cells.
			if j+2 == len(s.A) {
				if t, ok := crossing(z01, z11, level); ok {
					points = append(points, ContourPoint{A: s.A[j+1], B: lerp(s.B[i], s.B[i+1], t)})
				}
			}
			if i+2 == len(s.B) {
				if t, ok := crossing(z10, z11, level); ok {
					points = append(points, ContourPoint{A: lerp(s.A[j], s.A[j+1], t), B: s.B[i+1]})
				}
			}
		}
	}

	return points
}

// crossing reports whether the level lies between the two edge endpoint
// values, and where along the edge it falls.
func crossing(z0, z1, level float64) (float64, bool) {
	if (z0 < level) == (z1 < level) {
		return 0, false
	}
	if z1 == z0 {
		return 0.5, true
	}
	return (level - z0) / (z1 - z0), true
}

func lerp(v0, v1, t float64) float64 {
	return v0 + t*(v1-v0)
}
