package sem_test

import (
	"testing"

	"github.com/katalvlaran/statkit/linalg"
	"github.com/katalvlaran/statkit/sem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_PerfectFit feeds the model its own implied covariance:
// χ² must vanish and every index must read as a perfect fit.
func TestEvaluate_PerfectFit(t *testing.T) {
	m := oneFactor(t)
	sigma, err := m.ImpliedCovariance()
	require.NoError(t, err)

	fit, err := m.Evaluate(sigma, 100)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, fit.ChiSquare, 1e-12)
	assert.Equal(t, 1, fit.DF, "3 unique moments minus 2 loadings")
	assert.InDelta(t, 1.0, fit.PValue, 1e-12)
	assert.InDelta(t, 1.0, fit.CFI, 1e-12)
	assert.InDelta(t, 0.0, fit.RMSEA, 1e-12)
}

// TestEvaluate_Misfit scores the one-factor model against an identity
// sample (no correlation at all): the single off-diagonal residual 0.48
// drives χ² = 100·0.48² = 23.04, and the model does no better than the
// independence baseline, so CFI = 0.
func TestEvaluate_Misfit(t *testing.T) {
	m := oneFactor(t)

	fit, err := m.Evaluate(linalg.Identity(2), 101)
	require.NoError(t, err)

	assert.InDelta(t, 23.04, fit.ChiSquare, 1e-9)
	assert.Equal(t, 1, fit.DF)
	assert.Less(t, fit.PValue, 0.001, "a residual this large is significant")
	assert.InDelta(t, 0.0, fit.CFI, 1e-9, "no improvement over independence")
	assert.InDelta(t, 0.469468, fit.RMSEA, 1e-5, "√(22.04/100)")
}

// TestEvaluate_Saturated verifies the df ≤ 0 reading: two single-indicator
// latents plus a path spend all three unique moments, so the saturated
// indices are reported regardless of the discrepancy.
func TestEvaluate_Saturated(t *testing.T) {
	m, err := sem.NewModel([]sem.Loading{
		{Latent: "F", Indicator: "X1", Coef: 1},
		{Latent: "G", Indicator: "X2", Coef: 1},
	})
	require.NoError(t, err)
	require.NoError(t, m.SetCovariance("F", "G", 0.25))
	require.Equal(t, 3, m.FreeParameters())

	fit, err := m.Evaluate(linalg.Identity(2), 50)
	require.NoError(t, err)

	assert.Equal(t, 0, fit.DF)
	assert.Equal(t, 1.0, fit.PValue)
	assert.Equal(t, 1.0, fit.CFI)
	assert.Equal(t, 0.0, fit.RMSEA)
}

// TestEvaluate_PathImprovesFit toggles the cross-latent covariance on a
// sample that carries real cross-block correlation and checks every
// index moves in the right direction.
func TestEvaluate_PathImprovesFit(t *testing.T) {
	target := twoFactor(t)
	require.NoError(t, target.SetCovariance("F", "G", 0.3))
	sample, err := target.ImpliedCovariance()
	require.NoError(t, err)

	without := target.Clone()
	without.RemovePath("F", "G")

	fitOff, err := without.Evaluate(sample, 200)
	require.NoError(t, err)
	fitOn, err := target.Evaluate(sample, 200)
	require.NoError(t, err)

	assert.Greater(t, fitOff.ChiSquare, fitOn.ChiSquare)
	assert.Less(t, fitOff.PValue, fitOn.PValue)
	assert.Less(t, fitOff.CFI, fitOn.CFI)
	assert.Greater(t, fitOff.RMSEA, fitOn.RMSEA)
	assert.Equal(t, fitOn.DF+1, fitOff.DF, "dropping the path frees one moment")
	assert.InDelta(t, 1.0, fitOn.CFI, 1e-12, "the generating model fits perfectly")
}

// TestEvaluate_BadSample verifies the shape and sample-size sentinels.
func TestEvaluate_BadSample(t *testing.T) {
	m := oneFactor(t)

	_, err := m.Evaluate(linalg.Identity(3), 100)
	assert.ErrorIs(t, err, sem.ErrBadSample, "wrong dimension")

	_, err = m.Evaluate(linalg.Matrix{{1, 0}, {0}}, 100)
	assert.ErrorIs(t, err, sem.ErrBadSample, "ragged rows")

	_, err = m.Evaluate(linalg.Identity(2), 1)
	assert.ErrorIs(t, err, sem.ErrBadSample, "n below 2")
}
