// Package reduce provides dimensionality reduction over small row
// datasets: principal component analysis and a principal-axis
// approximation of factor analysis.
//
// 🚀 What is reduce?
//
//	• PCA            — center, covariance, Jacobi eigendecomposition,
//	  descending sort, projection onto the top-k components; reports
//	  explainedVarianceRatio[i] = λᵢ / Σλ.
//	• FactorAnalysis — item-correlation matrix, eigendecomposition,
//	  loadings = eigenvector · √λ; explained variance reported as a
//	  fraction of total variance, the same convention as PCA.
//
// ✨ Edge-case policy:
//
//   - Zero-variance columns are excluded from the correlation step (the
//     linalg kernel zeroes their rows), never divided by.
//   - k is clamped to the number of columns; k <= 0 errors.
//   - Negative eigenvalue noise is clamped to 0 before the √λ rescale.
//
// Both routines are deterministic compositions over the linalg kernel.
package reduce
