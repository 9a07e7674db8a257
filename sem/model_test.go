package sem_test

import (
	"testing"

	"github.com/katalvlaran/statkit/sem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneFactor builds F → {X1: 0.8, X2: 0.6}.
func oneFactor(t *testing.T) *sem.Model {
	t.Helper()
	m, err := sem.NewModel([]sem.Loading{
		{Latent: "F", Indicator: "X1", Coef: 0.8},
		{Latent: "F", Indicator: "X2", Coef: 0.6},
	})
	require.NoError(t, err)

	return m
}

// twoFactor builds F → {X1: 0.8, X2: 0.6} and G → {Y1: 0.7, Y2: 0.5}.
func twoFactor(t *testing.T) *sem.Model {
	t.Helper()
	m, err := sem.NewModel([]sem.Loading{
		{Latent: "F", Indicator: "X1", Coef: 0.8},
		{Latent: "F", Indicator: "X2", Coef: 0.6},
		{Latent: "G", Indicator: "Y1", Coef: 0.7},
		{Latent: "G", Indicator: "Y2", Coef: 0.5},
	})
	require.NoError(t, err)

	return m
}

// TestNewModel_Validation verifies the loading and path sentinels.
func TestNewModel_Validation(t *testing.T) {
	_, err := sem.NewModel(nil)
	assert.ErrorIs(t, err, sem.ErrNoLoadings)

	m := twoFactor(t)
	assert.ErrorIs(t, m.SetRegression("F", "F", 0.2), sem.ErrSelfPath)
	assert.ErrorIs(t, m.SetRegression("F", "H", 0.2), sem.ErrUnknownLatent)
	assert.ErrorIs(t, m.SetCovariance("H", "G", 0.2), sem.ErrUnknownLatent)
}

// TestModel_PathExclusivity verifies that a regression and a covariance
// between the same latent pair displace each other.
func TestModel_PathExclusivity(t *testing.T) {
	m := twoFactor(t)
	require.NoError(t, m.SetRegression("F", "G", 0.4))
	require.NoError(t, m.SetCovariance("F", "G", 0.3))

	paths := m.Paths()
	require.Len(t, paths, 1, "the second call must displace the first")
	assert.Equal(t, sem.Covariance, paths[0].Kind)
	assert.Equal(t, 0.3, paths[0].Coef)
	assert.Equal(t, 5, m.FreeParameters(), "four loadings plus one path")

	// And back: re-enabling the regression removes the covariance.
	require.NoError(t, m.SetRegression("G", "F", 0.4))
	paths = m.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, sem.Regression, paths[0].Kind)

	m.RemovePath("F", "G")
	assert.Empty(t, m.Paths(), "RemovePath is order-insensitive")
	assert.Equal(t, 4, m.FreeParameters())
}

// TestModel_Clone verifies that path edits on a clone never leak back.
func TestModel_Clone(t *testing.T) {
	m := twoFactor(t)
	require.NoError(t, m.SetCovariance("F", "G", 0.3))

	c := m.Clone()
	c.RemovePath("F", "G")
	require.NoError(t, c.SetRegression("F", "G", 0.9))

	require.Len(t, m.Paths(), 1)
	assert.Equal(t, sem.Covariance, m.Paths()[0].Kind, "original keeps its covariance")
}

// TestImpliedCovariance_OneFactor verifies Σ = ΛΨΛᵀ + Θ by hand:
// unit diagonal and cov(X1,X2) = 0.8·0.6 = 0.48.
func TestImpliedCovariance_OneFactor(t *testing.T) {
	m := oneFactor(t)
	require.Equal(t, []string{"X1", "X2"}, m.Indicators())

	sigma, err := m.ImpliedCovariance()
	require.NoError(t, err)
	require.Len(t, sigma, 2)

	assert.InDelta(t, 1.0, sigma[0][0], 1e-12, "residuals top each variance to 1")
	assert.InDelta(t, 1.0, sigma[1][1], 1e-12)
	assert.InDelta(t, 0.48, sigma[0][1], 1e-12, "loading product")
	assert.InDelta(t, 0.48, sigma[1][0], 1e-12, "implied covariance is symmetric")
}

// TestImpliedCovariance_CrossBlock verifies that a latent covariance φ
// propagates to the indicators as λ_i·φ·λ_j, identically for a
// regression of the same coefficient.
func TestImpliedCovariance_CrossBlock(t *testing.T) {
	m := twoFactor(t)
	require.NoError(t, m.SetCovariance("F", "G", 0.3))

	sigma, err := m.ImpliedCovariance()
	require.NoError(t, err)
	// Indicator order: X1, X2, Y1, Y2.
	assert.InDelta(t, 0.8*0.3*0.7, sigma[0][2], 1e-12, "X1–Y1")
	assert.InDelta(t, 0.6*0.3*0.5, sigma[1][3], 1e-12, "X2–Y2")
	assert.InDelta(t, 0.48, sigma[0][1], 1e-12, "within-block moment unaffected")

	reg := m.Clone()
	reg.RemovePath("F", "G")
	require.NoError(t, reg.SetRegression("F", "G", 0.3))
	sigmaReg, err := reg.ImpliedCovariance()
	require.NoError(t, err)
	for i := range sigma {
		for j := range sigma[i] {
			assert.InDelta(t, sigma[i][j], sigmaReg[i][j], 1e-12,
				"standardized regression and covariance imply the same moments")
		}
	}
}
