// Package topics assigns a tokenized corpus to k topics with a
// deterministic generative approximation: an alternating
// centroid/assignment refinement over term-frequency vectors.
//
// 🚀 What is topics?
//
//	• Assign — splits documents across k topics and reports, per topic,
//	  a ranked (keyword, weight) list whose weights sum to ≤ 1, and per
//	  document a topic distribution summing to exactly 1.
//	• Relevance — documents whose topic weight exceeds
//	  RelevanceThreshold (0.1 by default) are listed as relevant to
//	  that topic.
//
// ✨ Determinism:
//
//	Initialization is positional (document i starts in topic i mod k)
//	and every tie breaks toward the lowest index, so the same corpus
//	always produces the same assignment — no RNG involved. Documents
//	with no tokens receive the uniform distribution instead of NaN.
package topics
