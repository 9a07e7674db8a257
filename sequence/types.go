package sequence

import "errors"

// Sentinel errors returned by the sequence routines.
var (
	// ErrBadOptions indicates a non-positive length, a self-transition
	// probability outside [0,1], or an empty/mismatched emission table.
	ErrBadOptions = errors.New("sequence: invalid options")

	// ErrNoSequences indicates input with no lag-k transition at all.
	ErrNoSequences = errors.New("sequence: no transitions to analyze")

	// ErrBadLag indicates lag < 1.
	ErrBadLag = errors.New("sequence: lag must be at least 1")
)

// Step is one simulated observation: the hidden state that produced it
// and the emitted symbol.
type Step struct {
	State  int // 0 or 1
	Symbol string
}

// MarkovOptions configures SimulateMarkov.
//
//	Length    — number of steps to generate (required, > 0).
//	Self      — per-state self-transition probability; the switch
//	            probability is its complement.
//	Alphabet  — emission symbols shared by both states.
//	Emissions — per-state weights over Alphabet; each row is
//	            normalized, so weights need not sum to 1.
//	Seed      — RNG seed; 0 selects the default.
type MarkovOptions struct {
	Length    int
	Self      [2]float64
	Alphabet  []string
	Emissions [2][]float64
	Seed      int64
}

// MarkovOption is a functional option for configuring SimulateMarkov.
type MarkovOption func(*MarkovOptions)

// WithLength overrides the number of generated steps.
func WithLength(n int) MarkovOption {
	return func(o *MarkovOptions) { o.Length = n }
}

// WithSelfTransition sets both states' self-transition probabilities.
func WithSelfTransition(s0, s1 float64) MarkovOption {
	return func(o *MarkovOptions) { o.Self = [2]float64{s0, s1} }
}

// WithEmissions replaces the alphabet and both emission rows.
func WithEmissions(alphabet []string, state0, state1 []float64) MarkovOption {
	return func(o *MarkovOptions) {
		o.Alphabet = alphabet
		o.Emissions = [2][]float64{state0, state1}
	}
}

// WithMarkovSeed sets the RNG seed.
func WithMarkovSeed(seed int64) MarkovOption {
	return func(o *MarkovOptions) { o.Seed = seed }
}

// DefaultMarkovOptions returns the defaults: 100 steps, sticky states
// (self-transition 0.8 each) and mirrored three-symbol emissions.
func DefaultMarkovOptions() MarkovOptions {
	return MarkovOptions{
		Length:    100,
		Self:      [2]float64{0.8, 0.8},
		Alphabet:  []string{"A", "B", "C"},
		Emissions: [2][]float64{{0.7, 0.2, 0.1}, {0.1, 0.2, 0.7}},
	}
}

// Transition is one lag-k source→target pair with its observed count,
// the count expected under independence and the adjusted residual.
type Transition struct {
	From     string
	To       string
	Observed int
	Expected float64

	// Z is the adjusted residual; Significant marks |Z| > 1.96.
	Z           float64
	Significant bool
}

// LagResult is the full transition grid of one lag-sequential analysis,
// ordered by (From, To).
type LagResult struct {
	Lag         int
	Total       int // number of lag-k pairs counted
	Transitions []Transition
}

// Significant returns only the transitions with |z| > 1.96, preserving
// grid order.
func (r LagResult) Significant() []Transition {
	var out []Transition
	for _, tr := range r.Transitions {
		if tr.Significant {
			out = append(out, tr)
		}
	}

	return out
}
