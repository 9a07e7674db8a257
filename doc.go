// Package statkit is your in-memory toolbox for fitting small statistical
// models and reading the results straight off — regression, clustering,
// dimensionality reduction, survival curves and more, all as pure functions.
//
// 🚀 What is statkit?
//
//	A deterministic, zero-dependency library of independent estimators
//	built for interactive teaching datasets (tens to a few hundred rows):
//		• Linear algebra kernel: mean/variance/covariance, Jacobi eigen, Gaussian density
//		• Regression: ordinary least squares, logistic regression
//		• Dimensionality reduction: PCA, factor analysis
//		• Clustering: K-Means, Gaussian-mixture EM (latent profile analysis)
//		• Trees: CART with Gini impurity
//		• Survival: Kaplan-Meier product-limit curves
//		• Structural models: implied covariance + chi-square fit indices (CFI, RMSEA)
//		• Sequences: Markov simulation, lag-sequential z-scores
//		• Topics & attribution: document-topic weights, additive explanations
//
// ✨ Why choose statkit?
//
//   - Renderable results always – degenerate input yields documented
//     fallbacks (zero slope, unmoved centroid), never NaN in a chart
//   - Deterministic – explicit seeds, fixed loop orders, capped iterations
//   - Pure Go – no cgo, no hidden deps, no shared mutable state
//   - Step-wise – EM exposes single E/M steps so callers own the loop
//
// Everything is organized as one package per estimator family:
//
//	linalg/   — numeric kernel shared by the packages above it
//	regress/  — OLS and logistic regression
//	reduce/   — PCA and factor analysis
//	cluster/  — K-Means and mixture-model EM
//	cart/     — binary decision-tree induction
//	survival/ — Kaplan-Meier estimation
//	sem/      — structural-model fit evaluation
//	sequence/ — Markov simulation and lag-sequential analysis
//	topics/   — topic/keyword weight assignment
//	explain/  — per-feature prediction attribution
//
// Every routine reads fully-specified numeric records and returns a fresh
// result record owned by the caller; the library retains nothing between
// calls, so concurrent use from independent call sites is safe by
// construction.
//
//	go get github.com/katalvlaran/statkit
package statkit
