// SPDX-License-Identifier: MIT
// Package linalg: scalar summary statistics over paired samples.
//
// Purpose:
//   - Provide Mean/Variance/Covariance/Correlation with an explicit
//     degenerate-input policy: empty or single-element samples and
//     zero-variance pairs return 0, never NaN.
//
// Determinism:
//   - Single forward pass per statistic, fixed accumulation order.

package linalg

import "math"

// Finite reports whether v is neither NaN nor ±Inf.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Mean returns the arithmetic mean of xs, or 0 for an empty sample.
//
// Complexity: O(n).
func Mean(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(n)
}

// Variance returns the sample variance (n−1 denominator) of xs.
// Fewer than two observations yield 0 — there is no spread to report.
//
// Complexity: O(n).
func Variance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	mu := Mean(xs)
	sum := 0.0
	var d float64
	for _, x := range xs {
		d = x - mu
		sum += d * d
	}

	return sum / float64(n-1)
}

// Covariance returns the sample covariance of the paired samples xs, ys.
// Mismatched lengths or fewer than two pairs yield 0 (degenerate policy:
// callers always receive a renderable value).
//
// Complexity: O(n).
func Covariance(xs, ys []float64) float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0
	}
	mx, my := Mean(xs), Mean(ys)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (xs[i] - mx) * (ys[i] - my)
	}

	return sum / float64(n-1)
}

// Correlation returns the Pearson correlation of xs, ys.
// Zero variance in either sample yields 0 — the degenerate column is
// treated as carrying no linear signal rather than dividing by zero.
//
// Complexity: O(n).
func Correlation(xs, ys []float64) float64 {
	vx, vy := Variance(xs), Variance(ys)
	if vx == 0 || vy == 0 {
		return 0
	}

	return Covariance(xs, ys) / math.Sqrt(vx*vy)
}

// ColumnMeans returns the per-column mean of the row records.
// Rows shorter than the first row are rejected upstream by validators;
// here an empty input yields an empty slice.
//
// Complexity: O(r*c).
func ColumnMeans(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	c := len(rows[0])
	means := make([]float64, c)
	for _, row := range rows {
		for j := 0; j < c && j < len(row); j++ {
			means[j] += row[j]
		}
	}
	inv := 1.0 / float64(len(rows))
	for j := 0; j < c; j++ {
		means[j] *= inv
	}

	return means
}

// CovarianceMatrix computes the sample covariance matrix of the columns
// of rows: Cov = (Xcᵀ Xc)/(r−1) with Xc column-centered.
//
// Behavior highlights:
//   - Fewer than two rows return ErrEmptyMatrix (no sample denominator).
//   - Ragged rows return ErrDimensionMismatch.
//   - Output is symmetric; the diagonal holds per-column variances.
//
// Complexity: O(r*c²), Space O(c²).
func CovarianceMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyMatrix
	}
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrDimensionMismatch
		}
	}

	means := ColumnMeans(rows)
	cov := NewMatrix(c, c)
	var di, dj float64
	for _, row := range rows { // accumulate centered outer products
		for i := 0; i < c; i++ {
			di = row[i] - means[i]
			for j := i; j < c; j++ {
				dj = row[j] - means[j]
				cov[i][j] += di * dj
			}
		}
	}
	inv := 1.0 / float64(len(rows)-1)
	for i := 0; i < c; i++ {
		for j := i; j < c; j++ {
			cov[i][j] *= inv
			cov[j][i] = cov[i][j] // symmetric fill
		}
	}

	return cov, nil
}

// CorrelationMatrix computes the Pearson correlation matrix of the
// columns of rows.
//
// Behavior highlights:
//   - Zero-variance columns produce zero rows/columns (their diagonal is
//     0, not 1): the degenerate column is excluded from the correlation
//     step rather than divided by zero.
//
// Complexity: O(r*c²), Space O(c²).
func CorrelationMatrix(rows [][]float64) (Matrix, error) {
	cov, err := CovarianceMatrix(rows)
	if err != nil {
		return nil, err
	}
	c := len(cov)
	invStd := make([]float64, c)
	for i := 0; i < c; i++ {
		if cov[i][i] > 0 {
			invStd[i] = 1.0 / math.Sqrt(cov[i][i])
		} // zero-variance column stays 0 → zeroes its row/col below
	}
	corr := NewMatrix(c, c)
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			corr[i][j] = cov[i][j] * invStd[i] * invStd[j]
		}
	}

	return corr, nil
}
