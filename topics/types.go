package topics

import "errors"

// Sentinel errors returned by Assign.
var (
	// ErrNoDocs indicates an empty corpus.
	ErrNoDocs = errors.New("topics: corpus must be non-empty")

	// ErrBadK indicates k <= 0.
	ErrBadK = errors.New("topics: k must be positive")

	// ErrBadOptions indicates a non-positive iteration or keyword cap,
	// or a relevance threshold outside [0,1).
	ErrBadOptions = errors.New("topics: invalid options")
)

// Keyword is one ranked vocabulary entry of a topic.
type Keyword struct {
	Word   string
	Weight float64
}

// Topic is a ranked keyword list; weights are sorted descending and sum
// to at most 1 (exactly 1 before truncation to TopKeywords).
type Topic struct {
	Keywords []Keyword
}

// Options configures Assign.
//
//	Iterations         — refinement passes over the corpus.
//	TopKeywords        — keyword list cap per topic.
//	RelevanceThreshold — minimum topic weight for a document to count
//	                     as relevant to that topic.
type Options struct {
	Iterations         int
	TopKeywords        int
	RelevanceThreshold float64
}

// Option is a functional option for configuring Assign.
type Option func(*Options)

// WithIterations overrides the refinement pass count.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithTopKeywords overrides the per-topic keyword cap.
func WithTopKeywords(n int) Option {
	return func(o *Options) { o.TopKeywords = n }
}

// WithRelevanceThreshold overrides the relevance cutoff.
func WithRelevanceThreshold(t float64) Option {
	return func(o *Options) { o.RelevanceThreshold = t }
}

// DefaultOptions returns the defaults: 10 iterations, 10 keywords per
// topic, relevance threshold 0.1.
func DefaultOptions() Options {
	return Options{Iterations: 10, TopKeywords: 10, RelevanceThreshold: 0.1}
}

// Result is the outcome of one assignment.
type Result struct {
	Topics []Topic

	// DocTopics[d][t] is document d's weight on topic t; each row sums
	// to 1 (uniform for documents with no tokens).
	DocTopics [][]float64

	// Relevant[t] lists the ascending indices of documents whose weight
	// on topic t exceeds the relevance threshold.
	Relevant [][]int
}
