package linalg_test

import (
	"testing"

	"github.com/katalvlaran/statkit/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMean_Basic verifies the arithmetic mean and the empty-sample fallback.
func TestMean_Basic(t *testing.T) {
	assert.Equal(t, 2.0, linalg.Mean([]float64{1, 2, 3}), "mean of 1..3 is 2")
	assert.Equal(t, 0.0, linalg.Mean(nil), "empty sample must yield 0, not NaN")
}

// TestVariance_Sample checks the n-1 denominator and degenerate samples.
func TestVariance_Sample(t *testing.T) {
	assert.InDelta(t, 1.0, linalg.Variance([]float64{1, 2, 3}), 1e-12, "sample variance of 1..3 is 1")
	assert.Equal(t, 0.0, linalg.Variance([]float64{5}), "single observation has no spread")
	assert.Equal(t, 0.0, linalg.Variance(nil), "empty sample must yield 0")
}

// TestCovariance_PerfectLine verifies covariance on a perfectly linear pair.
func TestCovariance_PerfectLine(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{2, 4, 6}
	assert.InDelta(t, 2.0, linalg.Covariance(xs, ys), 1e-12, "cov(x,2x)=2*var(x)")
	assert.Equal(t, 0.0, linalg.Covariance(xs, []float64{1, 2}), "length mismatch yields 0")
}

// TestCorrelation_Degenerate verifies zero-variance inputs yield 0, not NaN.
func TestCorrelation_Degenerate(t *testing.T) {
	xs := []float64{1, 2, 3}
	flat := []float64{4, 4, 4}
	assert.InDelta(t, 1.0, linalg.Correlation(xs, []float64{2, 4, 6}), 1e-12, "perfect positive correlation")
	assert.InDelta(t, -1.0, linalg.Correlation(xs, []float64{6, 4, 2}), 1e-12, "perfect negative correlation")
	assert.Equal(t, 0.0, linalg.Correlation(xs, flat), "zero-variance column carries no signal")
}

// TestCovarianceMatrix_Symmetry checks symmetry and the variance diagonal.
func TestCovarianceMatrix_Symmetry(t *testing.T) {
	rows := [][]float64{{1, 2}, {2, 4}, {3, 6}}
	cov, err := linalg.CovarianceMatrix(rows)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cov[0][0], 1e-12, "var of column 0")
	assert.InDelta(t, 4.0, cov[1][1], 1e-12, "var of column 1")
	assert.Equal(t, cov[0][1], cov[1][0], "covariance matrix must be symmetric")
}

// TestCovarianceMatrix_Errors verifies sentinel errors on bad shapes.
func TestCovarianceMatrix_Errors(t *testing.T) {
	_, err := linalg.CovarianceMatrix([][]float64{{1, 2}})
	assert.ErrorIs(t, err, linalg.ErrEmptyMatrix, "fewer than two rows must error")

	_, err = linalg.CovarianceMatrix([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch, "ragged rows must error")
}

// TestCorrelationMatrix_ZeroVarianceColumn checks that a flat column is
// excluded from the correlation step (zero row/col) instead of dividing by zero.
func TestCorrelationMatrix_ZeroVarianceColumn(t *testing.T) {
	rows := [][]float64{{1, 7}, {2, 7}, {3, 7}}
	corr, err := linalg.CorrelationMatrix(rows)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, corr[0][0], 1e-12, "live column correlates with itself")
	assert.Equal(t, 0.0, corr[1][1], "flat column is zeroed, not NaN")
	assert.Equal(t, 0.0, corr[0][1], "cross term with a flat column is zero")
}
