package cart

import "sort"

// Grow — CART induction
//
// Algorithm outline (per node):
//  1. Stop and emit a leaf when depth == MaxDepth, the node holds fewer
//     than MinSamplesSplit samples, or impurity is already 0.
//  2. For every feature and every midpoint between sorted distinct
//     values, score the split by the sample-weighted child Gini.
//  3. Keep the minimum; ties break to the lower feature index, then the
//     lower threshold. A split that leaves either child empty is skipped.
//  4. Recurse on both partitions one level deeper.
//
// Errors: ErrNoSamples, ErrBadLabel, ErrBadOptions.
// Determinism: fixed feature/threshold scan order.
// Complexity: O(d · n² ) in the worst case for n samples and depth d —
// fine at teaching-dataset scale.
func Grow(samples []Sample, opts ...Option) (Node, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth < 0 || o.MinSamplesSplit < 2 {
		return nil, ErrBadOptions
	}
	for _, s := range samples {
		if s.Label != 0 && s.Label != 1 {
			return nil, ErrBadLabel
		}
	}

	return grow(samples, 0, o), nil
}

// grow builds the subtree for samples at the given depth.
func grow(samples []Sample, depth int, o Options) Node {
	g := gini(samples)
	if depth >= o.MaxDepth || len(samples) < o.MinSamplesSplit || g == 0 {
		return &Leaf{Value: majority(samples), NodeGini: g, NodeSamples: len(samples)}
	}

	feature, threshold, ok := bestSplit(samples)
	if !ok {
		// No usable split (all feature values identical): emit a leaf.
		return &Leaf{Value: majority(samples), NodeGini: g, NodeSamples: len(samples)}
	}

	left, right := partition(samples, feature, threshold)

	return &Split{
		Feature:     feature,
		Threshold:   threshold,
		Left:        grow(left, depth+1, o),
		Right:       grow(right, depth+1, o),
		NodeGini:    g,
		NodeSamples: len(samples),
	}
}

// bestSplit scans every candidate (feature, midpoint threshold) and
// returns the pair minimizing the weighted child impurity. ok is false
// when no candidate separates the samples.
func bestSplit(samples []Sample) (feature int, threshold float64, ok bool) {
	bestScore := 0.0
	n := float64(len(samples))
	values := make([]float64, 0, len(samples))

	for f := 0; f < 2; f++ {
		// Sorted distinct values of feature f.
		values = values[:0]
		for _, s := range samples {
			values = append(values, s.Features[f])
		}
		sort.Float64s(values)

		for i := 1; i < len(values); i++ {
			if values[i] == values[i-1] {
				continue
			}
			mid := (values[i] + values[i-1]) / 2
			left, right := partition(samples, f, mid)
			if len(left) == 0 || len(right) == 0 {
				continue
			}
			score := (float64(len(left))*gini(left) + float64(len(right))*gini(right)) / n
			// Strict < keeps the first (lowest feature, lowest
			// threshold) candidate on ties.
			if !ok || score < bestScore {
				feature, threshold, bestScore, ok = f, mid, score, true
			}
		}
	}

	return feature, threshold, ok
}

// partition splits samples on feature < threshold. Fresh slices; the
// input order is preserved within each side.
func partition(samples []Sample, feature int, threshold float64) (left, right []Sample) {
	for _, s := range samples {
		if s.Features[feature] < threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	return left, right
}

// gini returns the Gini impurity 1 − p0² − p1² of the sample labels.
func gini(samples []Sample) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	ones := 0
	for _, s := range samples {
		ones += s.Label
	}
	p1 := float64(ones) / float64(n)
	p0 := 1 - p1

	return 1 - p0*p0 - p1*p1
}

// majority returns the most common label; exact ties favor class 0.
func majority(samples []Sample) int {
	ones := 0
	for _, s := range samples {
		ones += s.Label
	}
	if 2*ones > len(samples) {
		return 1
	}

	return 0
}

// Predict routes x down the tree and returns the leaf value.
func Predict(n Node, x [2]float64) int {
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Value
		case *Split:
			if x[node.Feature] < node.Threshold {
				n = node.Left
			} else {
				n = node.Right
			}
		default:
			return 0
		}
	}
}

// Depth returns the maximum depth of the tree (a lone leaf has depth 0).
func Depth(n Node) int {
	if s, ok := n.(*Split); ok {
		l, r := Depth(s.Left), Depth(s.Right)
		if r > l {
			l = r
		}

		return l + 1
	}

	return 0
}

// CountLeaves returns the number of leaves in the tree.
func CountLeaves(n Node) int {
	if s, ok := n.(*Split); ok {
		return CountLeaves(s.Left) + CountLeaves(s.Right)
	}

	return 1
}
