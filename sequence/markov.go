package sequence

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// SimulateMarkov generates opts.Length steps from a two-state Markov
// chain. Each step keeps the current state with probability Self[state]
// and switches otherwise, then emits one alphabet symbol from the
// state's emission distribution. The initial state follows the chain's
// stationary distribution π₀ = (1−s₁) / ((1−s₀)+(1−s₁)); when both
// states are absorbing that ratio is undefined and the draw falls back
// to uniform.
//
// Complexity: O(Length · |Alphabet|).
func SimulateMarkov(options ...MarkovOption) ([]Step, error) {
	opts := DefaultMarkovOptions()
	for _, apply := range options {
		apply(&opts)
	}
	if err := validateMarkov(opts); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}
	rng := rand.New(rand.NewSource(seed))

	state := initialState(opts.Self, rng)
	steps := make([]Step, opts.Length)
	for i := range steps {
		steps[i] = Step{State: state, Symbol: emit(opts.Alphabet, opts.Emissions[state], rng)}
		if rng.Float64() >= opts.Self[state] {
			state = 1 - state
		}
	}

	return steps, nil
}

func validateMarkov(opts MarkovOptions) error {
	if opts.Length <= 0 || len(opts.Alphabet) == 0 {
		return ErrBadOptions
	}
	for _, s := range opts.Self {
		if s < 0 || s > 1 {
			return ErrBadOptions
		}
	}
	for _, row := range opts.Emissions {
		if len(row) != len(opts.Alphabet) {
			return ErrBadOptions
		}
		var sum float64
		for _, w := range row {
			if w < 0 {
				return ErrBadOptions
			}
			sum += w
		}
		if sum == 0 {
			return ErrBadOptions
		}
	}

	return nil
}

// initialState draws the starting state from the stationary
// distribution, uniform when the chain never leaves either state.
func initialState(self [2]float64, rng *rand.Rand) int {
	leave0, leave1 := 1-self[0], 1-self[1]
	p0 := 0.5
	if denom := leave0 + leave1; denom > 0 {
		p0 = leave1 / denom
	}
	if rng.Float64() < p0 {
		return 0
	}

	return 1
}

// emit samples one symbol by cumulative weight; rows are normalized by
// their own sum so callers may pass unnormalized weights.
func emit(alphabet []string, weights []float64, rng *rand.Rand) string {
	var total float64
	for _, w := range weights {
		total += w
	}
	u := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum {
			return alphabet[i]
		}
	}

	return alphabet[len(alphabet)-1] // rounding fallthrough
}
