package regress

// FitOLS — Ordinary Least Squares
//
// Description:
//
//	Fits the closed-form least-squares line through pts using the sums
//	Σx, Σy, Σx², Σxy:
//
//	  slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	  intercept = (Σy − slope·Σx) / n
//
// Edge cases:
//   - Empty input          → Line{0, 0}.
//   - Single point         → Line{0, y} (a flat line through the point).
//   - Zero x-variance      → Line{0, mean(y)}; the denominator collapses,
//     so the best constant fit is reported instead of dividing by zero.
//
// Complexity: O(n) time, O(1) space.
func FitOLS(pts []Point) Line {
	n := len(pts)
	if n == 0 {
		return Line{}
	}

	var sx, sy, sxx, sxy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
		sxx += p.X * p.X
		sxy += p.X * p.Y
	}

	fn := float64(n)
	den := fn*sxx - sx*sx
	if n < 2 || den == 0 {
		// Degenerate: all x identical (or one point). Best constant fit.
		return Line{Slope: 0, Intercept: sy / fn}
	}

	slope := (fn*sxy - sx*sy) / den

	return Line{Slope: slope, Intercept: (sy - slope*sx) / fn}
}
