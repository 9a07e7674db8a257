package regress_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/statkit/regress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separable returns clearly separated binary data around x=5.
func separable() []regress.Point {
	return []regress.Point{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		{X: 6, Y: 1}, {X: 7, Y: 1}, {X: 8, Y: 1}, {X: 9, Y: 1},
	}
}

// TestFitLogistic_SeparableBounded verifies that perfectly separable data
// converges to clamped, finite coefficients within the iteration cap.
func TestFitLogistic_SeparableBounded(t *testing.T) {
	m, err := regress.FitLogistic(separable())
	require.NoError(t, err)
	assert.True(t, m.B1 > 0, "positive association expected")
	assert.LessOrEqual(t, math.Abs(m.B0), 50.0, "B0 must stay within the clamp")
	assert.LessOrEqual(t, math.Abs(m.B1), 50.0, "B1 must stay within the clamp")
	assert.LessOrEqual(t, m.Iterations, 500, "iteration cap must hold")
}

// TestFitLogistic_DecisionBoundary checks that the p=0.5 crossover lands
// between the two classes, and that B1==0 reports no boundary.
func TestFitLogistic_DecisionBoundary(t *testing.T) {
	m, err := regress.FitLogistic(separable())
	require.NoError(t, err)
	x, ok := m.DecisionBoundary()
	require.True(t, ok, "boundary must exist for a non-flat fit")
	assert.Greater(t, x, 3.0, "boundary lies above the 0-class")
	assert.Less(t, x, 7.0, "boundary lies below the 1-class")

	_, ok = regress.LogisticModel{B0: 1, B1: 0}.DecisionBoundary()
	assert.False(t, ok, "B1==0 has no boundary")
}

// TestFitLogistic_ProbMonotone verifies predicted probabilities increase
// with x when B1 > 0.
func TestFitLogistic_ProbMonotone(t *testing.T) {
	m, err := regress.FitLogistic(separable())
	require.NoError(t, err)
	assert.Less(t, m.Prob(1), m.Prob(9), "probability must increase along x")
	assert.Less(t, m.Prob(1), 0.5, "deep in class 0")
	assert.Greater(t, m.Prob(9), 0.5, "deep in class 1")
}

// TestFitLogistic_Errors exercises the sentinel errors.
func TestFitLogistic_Errors(t *testing.T) {
	_, err := regress.FitLogistic(nil)
	assert.ErrorIs(t, err, regress.ErrEmptyInput)

	_, err = regress.FitLogistic([]regress.Point{{X: 1, Y: 2}})
	assert.ErrorIs(t, err, regress.ErrBadLabel)

	_, err = regress.FitLogistic(separable(), regress.WithMaxIter(-1))
	assert.ErrorIs(t, err, regress.ErrBadOptions)
}

// TestFitLogistic_LikelihoodImproves verifies the fitted log-likelihood
// beats the null (β=0) log-likelihood.
func TestFitLogistic_LikelihoodImproves(t *testing.T) {
	pts := separable()
	m, err := regress.FitLogistic(pts)
	require.NoError(t, err)
	// Null model: p=0.5 everywhere → LL = n·log(0.5).
	null := float64(len(pts)) * math.Log(0.5)
	assert.Greater(t, m.LogLikelihood, null, "fit must improve on the null model")
}
