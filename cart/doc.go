// Package cart grows CART-style binary classification trees over two
// numeric features and a binary label, using Gini impurity.
//
// 🚀 What is cart?
//
//	• Grow    — recursive binary partitioning; candidate thresholds are
//	  midpoints between sorted distinct feature values; the split
//	  minimizing the weighted child Gini wins, ties breaking to the
//	  lower feature index and then the lower threshold.
//	• Predict — routes a sample down the tree (left when x < threshold).
//
// ✨ Structure:
//
//	Node is a tagged variant — an interface with exactly two
//	implementations, *Split and *Leaf — so the "split xor leaf"
//	invariant is a compile-time property, not a runtime convention.
//	Every node records its Gini impurity and sample count for
//	explanatory display; a leaf's value is the majority class among its
//	samples (ties favor class 0).
//
// Stopping rules: depth reaches MaxDepth, the node holds fewer than
// MinSamplesSplit samples, or the node is already pure.
//
// Trees are owned, acyclic value trees: a parent owns its children
// outright and no node points back up.
package cart
