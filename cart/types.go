package cart

import "errors"

// Sentinel errors returned by Grow.
var (
	// ErrNoSamples indicates an empty training set.
	ErrNoSamples = errors.New("cart: training samples must be non-empty")

	// ErrBadLabel indicates a label outside {0, 1}.
	ErrBadLabel = errors.New("cart: labels must be 0 or 1")

	// ErrBadOptions indicates MaxDepth < 0 or MinSamplesSplit < 2.
	ErrBadOptions = errors.New("cart: invalid options")
)

// Sample is one training observation: two numeric features and a binary
// class label.
type Sample struct {
	Features [2]float64
	Label    int
}

// Node is one tree node: exactly a *Split or a *Leaf, never both or
// neither. Gini and Samples are recorded on every node for display.
type Node interface {
	// Gini is the node's own Gini impurity over its training samples.
	Gini() float64

	// Samples is the count of training samples routed to the node.
	Samples() int

	isNode()
}

// Split is an internal node: samples with Features[Feature] < Threshold
// descend Left, all others Right.
type Split struct {
	Feature   int // 0 or 1
	Threshold float64
	Left      Node
	Right     Node

	NodeGini    float64
	NodeSamples int
}

// Leaf is a terminal node predicting Value (the majority class).
type Leaf struct {
	Value int

	NodeGini    float64
	NodeSamples int
}

// Gini implements Node.
func (s *Split) Gini() float64 { return s.NodeGini }

// Samples implements Node.
func (s *Split) Samples() int { return s.NodeSamples }

func (s *Split) isNode() {}

// Gini implements Node.
func (l *Leaf) Gini() float64 { return l.NodeGini }

// Samples implements Node.
func (l *Leaf) Samples() int { return l.NodeSamples }

func (l *Leaf) isNode() {}

// Options configures Grow.
//
//	MaxDepth        — depth at which nodes become leaves (root is depth 0).
//	MinSamplesSplit — nodes with fewer samples become leaves.
type Options struct {
	MaxDepth        int
	MinSamplesSplit int
}

// Option is a functional option for configuring Grow.
type Option func(*Options)

// WithMaxDepth overrides the depth limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithMinSamplesSplit overrides the minimum node size for splitting.
func WithMinSamplesSplit(n int) Option {
	return func(o *Options) { o.MinSamplesSplit = n }
}

// DefaultOptions returns the defaults: MaxDepth 3, MinSamplesSplit 2.
func DefaultOptions() Options {
	return Options{MaxDepth: 3, MinSamplesSplit: 2}
}
