package sem

import (
	"math"

	"github.com/katalvlaran/statkit/linalg"
)

// Evaluate scores the model against a sample covariance matrix computed
// from n observations. The five indices are always derived together:
//
//   - ChiSquare — (n−1) times the least-squares discrepancy between the
//     sample and the model-implied covariance, summed over the p(p+1)/2
//     unique moments.
//   - DF        — unique moments minus FreeParameters().
//   - PValue    — chi-square upper-tail probability at DF.
//   - CFI       — improvement over the independence baseline (all
//     off-diagonal moments zero), clipped to [0,1].
//   - RMSEA     — √(max(χ²−df, 0) / (df·(n−1))).
//
// A saturated or over-parameterized model (DF ≤ 0) reports PValue 1,
// CFI 1 and RMSEA 0. The sample must be p×p over the model's
// Indicators() order with n ≥ 2, otherwise ErrBadSample.
func (m *Model) Evaluate(sample linalg.Matrix, n int) (FitIndices, error) {
	p := len(m.indicators)
	if n < 2 || len(sample) != p {
		return FitIndices{}, ErrBadSample
	}
	for _, row := range sample {
		if len(row) != p {
			return FitIndices{}, ErrBadSample
		}
	}

	implied, err := m.ImpliedCovariance()
	if err != nil {
		return FitIndices{}, err
	}

	// Discrepancies over unique moments only; doubling off-diagonal terms
	// would bias the model χ² and the baseline χ² identically, so the
	// single-count convention is used throughout.
	scale := float64(n - 1)
	var fit, base float64
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			d := sample[i][j] - implied[i][j]
			fit += d * d
			if i != j {
				base += sample[i][j] * sample[i][j]
			}
		}
	}

	chi := scale * fit
	df := p*(p+1)/2 - m.FreeParameters()

	out := FitIndices{ChiSquare: chi, DF: df}
	if df <= 0 {
		out.PValue, out.CFI, out.RMSEA = 1, 1, 0

		return out, nil
	}

	out.PValue = chiSquareTail(chi, df)
	out.RMSEA = math.Sqrt(math.Max(chi-float64(df), 0) / (float64(df) * scale))

	// CFI compares non-centrality against the independence model, whose
	// only free parameters are the p variances.
	chiNull := scale * base
	dfNull := p * (p - 1) / 2
	num := math.Max(chi-float64(df), 0)
	den := math.Max(chiNull-float64(dfNull), num)
	if den == 0 {
		out.CFI = 1
	} else {
		out.CFI = 1 - num/den
	}

	return out, nil
}
