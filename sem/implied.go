package sem

import "github.com/katalvlaran/statkit/linalg"

// ImpliedCovariance reconstructs the model-implied covariance matrix
// Σ(θ) = Λ Ψ Λᵀ + Θ over the indicators, in Indicators() order.
//
// Conventions (standardized solution):
//   - Latents have unit variance: diag(Ψ) = 1.
//   - A covariance path sets Ψ[a][b] to its value; a regression path
//     From→To implies Ψ[from][to] = coefficient (cov(βX, X) = β for a
//     unit-variance predictor). This shared moment is why the two path
//     kinds are mutually exclusive per pair.
//   - Residual variances are Θ[j][j] = max(1 − Σ_f λ_fj², 0), so each
//     indicator's implied variance stays 1 unless loadings oversubscribe
//     it.
//
// Complexity: O(p²·m) for p indicators and m latents.
func (m *Model) ImpliedCovariance() (linalg.Matrix, error) {
	if len(m.loadings) == 0 {
		return nil, ErrNoLoadings
	}
	nl, p := len(m.latents), len(m.indicators)

	latentIdx := make(map[string]int, nl)
	for i, l := range m.latents {
		latentIdx[l] = i
	}
	indIdx := make(map[string]int, p)
	for j, ind := range m.indicators {
		indIdx[ind] = j
	}

	// Λ: p×m loading matrix.
	lambda := linalg.NewMatrix(p, nl)
	for _, l := range m.loadings {
		lambda[indIdx[l.Indicator]][latentIdx[l.Latent]] += l.Coef
	}

	// Ψ: latent covariance with unit diagonal; both path kinds fill the
	// same off-diagonal moment.
	psi := linalg.Identity(nl)
	for _, path := range m.paths {
		i, j := latentIdx[path.From], latentIdx[path.To]
		psi[i][j] = path.Coef
		psi[j][i] = path.Coef
	}

	// Σ = Λ Ψ Λᵀ + Θ.
	lp, err := linalg.Mul(lambda, psi)
	if err != nil {
		return nil, err
	}
	lt, err := linalg.Transpose(lambda)
	if err != nil {
		return nil, err
	}
	sigma, err := linalg.Mul(lp, lt)
	if err != nil {
		return nil, err
	}
	for j := 0; j < p; j++ {
		resid := 1 - sigma[j][j]
		if resid > 0 {
			sigma[j][j] += resid // Θ tops the variance back up to 1
		}
	}

	return sigma, nil
}
