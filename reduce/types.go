package reduce

import "errors"

// Sentinel errors shared by PCA and FactorAnalysis.
var (
	// ErrTooFewRows indicates fewer than two data rows.
	ErrTooFewRows = errors.New("reduce: need at least two rows")

	// ErrBadComponents indicates k <= 0.
	ErrBadComponents = errors.New("reduce: component count must be positive")

	// ErrRaggedRows indicates rows of unequal length.
	ErrRaggedRows = errors.New("reduce: rows must share one length")
)

// PCAResult holds the outcome of a principal component analysis.
type PCAResult struct {
	// Components[i] is the i-th principal axis (unit eigenvector),
	// ordered by descending eigenvalue.
	Components [][]float64

	// Eigenvalues are the matching covariance eigenvalues, descending.
	Eigenvalues []float64

	// ExplainedVarianceRatio[i] = Eigenvalues[i] / Σ eigenvalues of the
	// full decomposition (zero-total inputs report all zeros).
	ExplainedVarianceRatio []float64

	// Projected holds the centered data projected onto the kept
	// components, one row per input row.
	Projected [][]float64

	// Means are the column means removed during centering.
	Means []float64
}

// FactorResult holds the outcome of a principal-axis factor analysis.
type FactorResult struct {
	// Loadings[f][j] is the loading of item j on factor f
	// (eigenvector scaled by √λ), factors ordered by descending λ.
	Loadings [][]float64

	// Eigenvalues of the correlation matrix, descending, clamped ≥ 0.
	Eigenvalues []float64

	// ExplainedVariance[f] is λ_f divided by the total number of items,
	// i.e. the fraction of total (standardized) variance, matching the
	// PCA ratio convention.
	ExplainedVariance []float64
}
