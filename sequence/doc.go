// Package sequence provides discrete sequence analysis: a two-state
// hidden Markov simulator and lag-sequential significance testing of
// action transitions.
//
// 🚀 What is sequence?
//
//	• SimulateMarkov — generates a step sequence from a two-state chain
//	  with caller-set self-transition probabilities; each state emits a
//	  symbol from a fixed alphabet via its own emission distribution.
//	  The initial state is drawn from the chain's stationary
//	  distribution (uniform when the chain is degenerate), and the
//	  whole run is deterministic under a seed.
//	• LagSequential — counts observed transitions at lag k across many
//	  sequences, computes expected counts under independence from the
//	  source/target marginals, and scores each pair with an adjusted
//	  residual z = (obs − exp) / √(exp·(1−pFrom)·(1−pTo)). Pairs with
//	  |z| > 1.96 are flagged significant.
//
// ✨ Determinism & safety:
//
//	Same seed ⇒ identical simulated sequence. A transition whose
//	expected count (or residual denominator) is zero reports z = 0
//	rather than NaN, so downstream tables always render.
package sequence
