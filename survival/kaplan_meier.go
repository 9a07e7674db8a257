package survival

import "sort"

// Observation is one subject: the time it was observed until, and
// whether the event occurred (Event true) or the subject was censored.
type Observation struct {
	Time  float64
	Event bool
}

// CurvePoint is one step of the survival curve.
type CurvePoint struct {
	Time     float64
	Survival float64
}

// KaplanMeier — product-limit estimator
//
// Algorithm outline:
//  1. Sort observations by ascending time (stable; input not mutated).
//  2. Walk distinct times. With n subjects at risk just before time t
//     and d events at t: S ← S · (1 − d/n). Events and censorings both
//     leave the at-risk set afterwards; only events change S.
//  3. Emit one point per distinct time plus the anchor (0, 1).
//
// Edge cases:
//   - Empty input yields just the anchor point (0, 1) — renderable.
//   - Negative times are treated as occurring at their stated value;
//     the anchor stays at time 0 by the estimator's convention.
//
// Determinism: stable sort keeps tied times in input order (the curve
// value does not depend on intra-tie order).
// Complexity: O(n log n).
func KaplanMeier(obs []Observation) []CurvePoint {
	curve := []CurvePoint{{Time: 0, Survival: 1}}
	if len(obs) == 0 {
		return curve
	}

	sorted := make([]Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	atRisk := len(sorted)
	s := 1.0
	i := 0
	var t float64
	var events, leaving int
	for i < len(sorted) {
		t = sorted[i].Time
		events, leaving = 0, 0
		for i < len(sorted) && sorted[i].Time == t {
			if sorted[i].Event {
				events++
			}
			leaving++
			i++
		}
		if events > 0 && atRisk > 0 {
			s *= 1 - float64(events)/float64(atRisk)
		}
		curve = append(curve, CurvePoint{Time: t, Survival: s})
		atRisk -= leaving
	}

	return curve
}
