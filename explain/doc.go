// Package explain decomposes a linear model's prediction into signed
// per-feature contributions around a reference point.
//
// 🚀 What is explain?
//
//	• Model   — a base value (the prediction at the reference inputs)
//	  plus per-feature weights and reference values.
//	• Explain — scores one input record and reports
//	  contributionᵢ = weightᵢ · (xᵢ − refᵢ) for every feature, with
//	  Prediction == BaseValue + Σ contributions holding exactly.
//
// ✨ Safety:
//
//	A non-finite input (NaN/±Inf) contributes exactly 0 instead of
//	contaminating the sum. Predictions are kept inside [0, 100]; when
//	the raw sum escapes that range, the clamp is reported as an
//	explicit trailing adjustment contribution so the additive
//	invariant survives.
package explain
