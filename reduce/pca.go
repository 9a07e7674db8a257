package reduce

import "github.com/katalvlaran/statkit/linalg"

// PCA — Principal Component Analysis
//
// Algorithm outline:
//  1. Validate shape; clamp k to the column count.
//  2. Center columns; compute the sample covariance matrix.
//  3. Jacobi eigendecomposition; sort pairs by descending eigenvalue.
//  4. Project centered rows onto the top-k eigenvectors.
//  5. explainedVarianceRatio[i] = λᵢ / Σλ over the FULL spectrum.
//
// Errors:
//   - ErrTooFewRows, ErrBadComponents, ErrRaggedRows.
//   - linalg.ErrEigenFailed if the decomposition does not converge; the
//     caller should render an explicit "not enough data" state.
//
// Complexity: O(r·c²) for the covariance plus the eigen cost; c ≤ 10
// in practice.
func PCA(rows [][]float64, k int) (PCAResult, error) {
	if k <= 0 {
		return PCAResult{}, ErrBadComponents
	}
	if len(rows) < 2 {
		return PCAResult{}, ErrTooFewRows
	}
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return PCAResult{}, ErrRaggedRows
		}
	}
	if k > c {
		k = c
	}

	cov, err := linalg.CovarianceMatrix(rows)
	if err != nil {
		return PCAResult{}, err
	}
	pairs, err := linalg.EigenSorted(cov, 0, 0)
	if err != nil {
		return PCAResult{}, err
	}

	// Total variance over the full spectrum; negative numeric noise is
	// clamped so the ratio stays in [0,1].
	total := 0.0
	for _, p := range pairs {
		if p.Value > 0 {
			total += p.Value
		}
	}

	means := linalg.ColumnMeans(rows)
	res := PCAResult{
		Components:             make([][]float64, k),
		Eigenvalues:            make([]float64, k),
		ExplainedVarianceRatio: make([]float64, k),
		Projected:              make([][]float64, len(rows)),
		Means:                  means,
	}
	for i := 0; i < k; i++ {
		res.Components[i] = pairs[i].Vector
		res.Eigenvalues[i] = pairs[i].Value
		if total > 0 && pairs[i].Value > 0 {
			res.ExplainedVarianceRatio[i] = pairs[i].Value / total
		}
	}

	// Project: score = (row − mean) · component.
	centered := make([]float64, c)
	for r, row := range rows {
		for j := 0; j < c; j++ {
			centered[j] = row[j] - means[j]
		}
		proj := make([]float64, k)
		for i := 0; i < k; i++ {
			acc := 0.0
			for j := 0; j < c; j++ {
				acc += centered[j] * res.Components[i][j]
			}
			proj[i] = acc
		}
		res.Projected[r] = proj
	}

	return res, nil
}
