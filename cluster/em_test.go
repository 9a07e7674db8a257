package cluster_test

import (
	"testing"

	"github.com/katalvlaran/statkit/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpectationStep_RowsSumToOne verifies the responsibility invariant:
// each point's posteriors sum to 1 across profiles.
func TestExpectationStep_RowsSumToOne(t *testing.T) {
	pts := twoBlobs()
	profiles, err := cluster.NewProfiles(pts, 2, 3)
	require.NoError(t, err)

	resp := cluster.ExpectationStep(pts, profiles)
	require.Len(t, resp, len(pts))
	for i, row := range resp {
		sum := 0.0
		for _, r := range row {
			assert.GreaterOrEqual(t, r, 0.0)
			sum += r
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "responsibilities of point %d must sum to 1", i)
	}
}

// TestMaximizationStep_WeightsSumToOne verifies the mixture invariant
// after every M-step.
func TestMaximizationStep_WeightsSumToOne(t *testing.T) {
	pts := twoBlobs()
	profiles, err := cluster.NewProfiles(pts, 3, 5)
	require.NoError(t, err)

	for step := 0; step < 5; step++ {
		resp := cluster.ExpectationStep(pts, profiles)
		profiles, err = cluster.MaximizationStep(pts, profiles, resp)
		require.NoError(t, err)

		sum := 0.0
		for _, p := range profiles {
			sum += p.Weight
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "weights must sum to 1 after M-step %d", step)
	}
}

// TestMaximizationStep_RegularizedCovariance verifies the diagonal never
// collapses to zero even on coincident points.
func TestMaximizationStep_RegularizedCovariance(t *testing.T) {
	pts := []cluster.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}}
	profiles, err := cluster.NewProfiles(pts, 1, 0)
	require.NoError(t, err)
	resp := cluster.ExpectationStep(pts, profiles)
	profiles, err = cluster.MaximizationStep(pts, profiles, resp)
	require.NoError(t, err)

	assert.Greater(t, profiles[0].Cov[0][0], 0.0, "regularized variance must stay positive")
	assert.Greater(t, profiles[0].Cov[1][1], 0.0)
}

// TestFitMixture_SeparatesBlobs verifies that EM recovers two separated
// groups: one profile mean per blob, roughly equal weights.
func TestFitMixture_SeparatesBlobs(t *testing.T) {
	res, err := cluster.FitMixture(twoBlobs(), 2)
	require.NoError(t, err)
	require.Len(t, res.Profiles, 2)
	assert.True(t, res.Converged, "well-separated blobs must converge before the cap")

	lowFirst := res.Profiles[0].Mean[0] < res.Profiles[1].Mean[0]
	low, high := res.Profiles[0], res.Profiles[1]
	if !lowFirst {
		low, high = high, low
	}
	assert.InDelta(t, 0.5, low.Mean[0], 0.2, "low profile near the low blob")
	assert.InDelta(t, 10.5, high.Mean[0], 0.2, "high profile near the high blob")
	assert.InDelta(t, 0.5, low.Weight, 0.1, "half the mass per blob")
}

// TestFitMixture_IterationCap verifies the liveness contract: the loop
// ends at MaxIter even with an unreachable tolerance.
func TestFitMixture_IterationCap(t *testing.T) {
	res, err := cluster.FitMixture(twoBlobs(), 2,
		cluster.WithMixtureMaxIter(3), cluster.WithMixtureTol(1e-300))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Iterations, 3, "iteration cap must bound the loop")
}

// TestMaximizationStep_ShapeMismatch exercises the grid-shape sentinel.
func TestMaximizationStep_ShapeMismatch(t *testing.T) {
	pts := twoBlobs()
	profiles, err := cluster.NewProfiles(pts, 2, 0)
	require.NoError(t, err)

	_, err = cluster.MaximizationStep(pts, profiles, [][]float64{{1, 0}})
	assert.ErrorIs(t, err, cluster.ErrProfileMismatch)
}

// TestFitMixture_Errors exercises the sentinel errors.
func TestFitMixture_Errors(t *testing.T) {
	_, err := cluster.FitMixture(nil, 2)
	assert.ErrorIs(t, err, cluster.ErrNoPoints)

	_, err = cluster.FitMixture(twoBlobs(), -1)
	assert.ErrorIs(t, err, cluster.ErrBadK)

	_, err = cluster.FitMixture(twoBlobs(), 2, cluster.WithMixtureTol(-1))
	assert.ErrorIs(t, err, cluster.ErrBadOptions)
}
