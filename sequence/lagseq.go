package sequence

import (
	"math"
	"sort"
)

// significanceZ is the two-sided 5% critical value of the standard
// normal, the conventional cutoff in lag-sequential analysis.
const significanceZ = 1.96

// LagSequential counts every (action at i) → (action at i+lag) pair
// across the given sequences and tests each source→target cell against
// independence. Expected counts come from the product of the source and
// target marginals; the adjusted residual is
//
//	z = (observed − expected) / √(expected·(1−pFrom)·(1−pTo))
//
// and cells whose expected count or residual denominator vanishes
// report z = 0. The result grid covers every observed source crossed
// with every observed target, sorted by (From, To), so inhibited
// transitions (observed far below expected) surface alongside excited
// ones.
//
// Complexity: O(total pairs + |sources|·|targets| log).
func LagSequential(sequences [][]string, lag int) (LagResult, error) {
	if lag < 1 {
		return LagResult{}, ErrBadLag
	}

	obs := make(map[[2]string]int)
	fromCount := make(map[string]int)
	toCount := make(map[string]int)
	total := 0
	for _, seq := range sequences {
		for i := 0; i+lag < len(seq); i++ {
			a, b := seq[i], seq[i+lag]
			obs[[2]string{a, b}]++
			fromCount[a]++
			toCount[b]++
			total++
		}
	}
	if total == 0 {
		return LagResult{}, ErrNoSequences
	}

	froms := sortedKeys(fromCount)
	tos := sortedKeys(toCount)

	result := LagResult{Lag: lag, Total: total}
	for _, a := range froms {
		pFrom := float64(fromCount[a]) / float64(total)
		for _, b := range tos {
			pTo := float64(toCount[b]) / float64(total)
			observed := obs[[2]string{a, b}]
			expected := pFrom * pTo * float64(total)

			var z float64
			if denom := math.Sqrt(expected * (1 - pFrom) * (1 - pTo)); denom > 0 {
				z = (float64(observed) - expected) / denom
			}

			result.Transitions = append(result.Transitions, Transition{
				From:        a,
				To:          b,
				Observed:    observed,
				Expected:    expected,
				Z:           z,
				Significant: math.Abs(z) > significanceZ,
			})
		}
	}

	return result, nil
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
