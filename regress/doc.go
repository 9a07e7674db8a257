// Package regress fits single-predictor regression models to small
// point sets: ordinary least squares in closed form and logistic
// regression by capped gradient ascent.
//
// 🚀 What is regress?
//
//	• FitOLS     — slope/intercept from Σx, Σy, Σx², Σxy; residual SS helper
//	• FitLogistic — binary outcome, one predictor; iterative maximum
//	  likelihood with an explicit iteration cap and coefficient clamp so
//	  perfectly separable data cannot diverge
//
// ✨ Edge-case policy:
//
//   - Fewer than 2 points or zero x-variance degrade to slope 0 with the
//     mean of y as intercept (0 when empty) — the line stays renderable.
//   - The logistic decision boundary −β0/β1 is reported only when β1 ≠ 0.
//
// Both fits are deterministic: fixed accumulation order, no randomness.
//
// See example_test.go for usage.
package regress
