// Package sem evaluates the fit of small structural-equation models:
// it reconstructs the model-implied covariance matrix from a path
// specification and scores it against a target covariance with
// chi-square based fit indices.
//
// 🚀 What is sem?
//
//	• Model             — latent variables with fixed loadings onto
//	  observed indicators, plus user-toggled structural paths
//	  (regressions or covariances) between latents.
//	• ImpliedCovariance — Σ(θ) = Λ Ψ Λᵀ + Θ over the indicators, with
//	  standardized latents (unit variance) and residuals Θ = 1 − Σλ².
//	• Evaluate          — chi-square discrepancy against the sample
//	  covariance, degrees of freedom as observed moments minus free
//	  parameters, p-value from the chi-square upper tail, CFI against
//	  an independence baseline, and RMSEA.
//
// ✨ Path exclusivity:
//
//	A regression and a covariance between the same latent pair cannot
//	be specified simultaneously (the pair's implied moment would be
//	over-parameterized). SetRegression and SetCovariance therefore
//	displace each other: enabling one removes the other for that pair.
//
// FitIndices are always derived jointly from one model and one target —
// never partially computed. Degenerate df ≤ 0 reports the saturated
// reading: p-value 1, CFI 1, RMSEA 0.
package sem
