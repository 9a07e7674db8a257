package reduce

import (
	"math"

	"github.com/katalvlaran/statkit/linalg"
)

// FactorAnalysis — principal-axis factor extraction
//
// Algorithm outline:
//  1. Validate shape; clamp k to the item count.
//  2. Compute the item-correlation matrix (zero-variance items are
//     excluded by the kernel: their rows/columns are zero).
//  3. Jacobi eigendecomposition; sort by descending eigenvalue.
//  4. Loadings[f] = eigenvector_f · √max(λ_f, 0).
//  5. ExplainedVariance[f] = max(λ_f, 0) / (number of items), the
//     fraction of total standardized variance, consistent with PCA.
//
// This is the principal-axis approximation: it satisfies the loading
// and explained-variance contracts without iterative communality
// refinement.
//
// Errors: ErrTooFewRows, ErrBadComponents, ErrRaggedRows, plus
// linalg.ErrEigenFailed on non-convergence.
func FactorAnalysis(rows [][]float64, k int) (FactorResult, error) {
	if k <= 0 {
		return FactorResult{}, ErrBadComponents
	}
	if len(rows) < 2 {
		return FactorResult{}, ErrTooFewRows
	}
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return FactorResult{}, ErrRaggedRows
		}
	}
	if k > c {
		k = c
	}

	corr, err := linalg.CorrelationMatrix(rows)
	if err != nil {
		return FactorResult{}, err
	}
	pairs, err := linalg.EigenSorted(corr, 0, 0)
	if err != nil {
		return FactorResult{}, err
	}

	res := FactorResult{
		Loadings:          make([][]float64, k),
		Eigenvalues:       make([]float64, k),
		ExplainedVariance: make([]float64, k),
	}
	items := float64(c)
	var lam, scale float64
	for f := 0; f < k; f++ {
		lam = pairs[f].Value
		if lam < 0 {
			lam = 0 // numeric noise below zero carries no variance
		}
		scale = math.Sqrt(lam)
		loading := make([]float64, c)
		for j := 0; j < c; j++ {
			loading[j] = pairs[f].Vector[j] * scale
		}
		res.Loadings[f] = loading
		res.Eigenvalues[f] = lam
		res.ExplainedVariance[f] = lam / items
	}

	return res, nil
}
