// Package cluster groups small 2-D point sets: K-Means (Lloyd's
// algorithm) and Gaussian-mixture expectation-maximization, also known
// in this library's home domain as latent profile analysis.
//
// 🚀 What is cluster?
//
//	• KMeans — nearest-centroid assignment (Euclidean, ties to the
//	  lowest centroid index), centroid recomputation as the member mean,
//	  termination on a fixed iteration budget or a stable assignment.
//	• FitMixture — full EM until the summed squared centroid-mean
//	  displacement falls below Tol or MaxIter is reached (the cap is
//	  part of the contract: nearly-degenerate data may never converge).
//	• ExpectationStep / MaximizationStep — exported single steps so a
//	  caller that wants visible intermediate states (step-by-step
//	  animation) can drive the loop itself.
//
// ✨ Edge-case policy:
//
//   - A centroid that receives zero points stays unmoved — it is never
//     deleted or silently reseeded; this is a documented behavior.
//   - Responsibilities that underflow to all-zero densities fall back to
//     the uniform distribution over profiles.
//   - Profile covariance diagonals are regularized (linalg.CovEpsilon)
//     at every M-step so a collapsing cluster keeps a finite density.
//
// Invariants (tested):
//   - Profile weights sum to 1 (±1e-9) after every M-step.
//   - Per-point responsibilities sum to 1.
//   - K-Means inertia (within-cluster squared distance) is
//     non-increasing across iterations.
//
// Randomized initialization is driven by an explicit seed; seed 0 maps
// to a fixed default so zero-value options stay reproducible.
package cluster
