package cluster

import "github.com/katalvlaran/statkit/linalg"

// NewProfiles builds K initial mixture profiles from the points:
// means from a short seeded K-Means pass, the pooled dataset covariance
// for every profile, and equal weights 1/K.
//
// Errors: ErrNoPoints, ErrBadK.
// Complexity: O(n·K) for the init pass.
func NewProfiles(pts []Point, k int, seed int64) ([]Profile, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	if k <= 0 {
		return nil, ErrBadK
	}

	km, err := KMeans(pts, k, WithKMeansSeed(seed), WithKMeansMaxIter(10))
	if err != nil {
		return nil, err
	}

	pooled := pooledCovariance(pts)
	profiles := make([]Profile, k)
	w := 1.0 / float64(k)
	for c := 0; c < k; c++ {
		profiles[c] = Profile{
			Mean:   []float64{km.Centroids[c].X, km.Centroids[c].Y},
			Cov:    linalg.Clone(pooled),
			Weight: w,
		}
	}

	return profiles, nil
}

// ExpectationStep computes the responsibility of every profile for every
// point: posterior ∝ weight × density(point; mean, cov), normalized per
// point to sum to 1. When all densities underflow to zero for a point,
// the uniform distribution over profiles is used so no row is NaN.
//
// The inputs are read-only; the returned grid is freshly allocated.
//
// Complexity: O(n·K).
func ExpectationStep(pts []Point, profiles []Profile) [][]float64 {
	k := len(profiles)
	resp := make([][]float64, len(pts))
	var total, dens float64
	for i, p := range pts {
		row := make([]float64, k)
		total = 0
		for c, prof := range profiles {
			dens = prof.Weight * linalg.Gaussian2D(p.coords(), prof.Mean, prof.Cov)
			row[c] = dens
			total += dens
		}
		if total > 0 {
			for c := 0; c < k; c++ {
				row[c] /= total
			}
		} else {
			// Degenerate densities: fall back to uniform membership.
			for c := 0; c < k; c++ {
				row[c] = 1.0 / float64(k)
			}
		}
		resp[i] = row
	}

	return resp
}

// MaximizationStep re-estimates every profile from the responsibilities:
// weight = mean responsibility, mean = responsibility-weighted point
// average, covariance = responsibility-weighted outer-product scatter
// with the diagonal regularized by linalg.CovEpsilon to avoid collapse.
//
// Because every responsibility row sums to 1, the new weights sum to 1
// by construction (±float rounding).
//
// Errors: ErrNoPoints, ErrProfileMismatch.
// Complexity: O(n·K).
func MaximizationStep(pts []Point, profiles []Profile, resp [][]float64) ([]Profile, error) {
	n, k := len(pts), len(profiles)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if len(resp) != n {
		return nil, ErrProfileMismatch
	}
	for _, row := range resp {
		if len(row) != k {
			return nil, ErrProfileMismatch
		}
	}

	out := make([]Profile, k)
	var (
		rsum, mx, my float64
		r, dx, dy    float64
	)
	for c := 0; c < k; c++ {
		// Effective membership mass and weighted mean.
		rsum, mx, my = 0, 0, 0
		for i, p := range pts {
			r = resp[i][c]
			rsum += r
			mx += r * p.X
			my += r * p.Y
		}
		if rsum == 0 {
			// No mass: keep the previous profile, weight 0. The profile
			// is retained (not deleted) so the mixture shape is stable.
			prev := profiles[c]
			out[c] = Profile{Mean: append([]float64(nil), prev.Mean...), Cov: linalg.Clone(prev.Cov), Weight: 0}

			continue
		}
		mx /= rsum
		my /= rsum

		// Weighted scatter with diagonal regularization.
		cov := linalg.NewMatrix(2, 2)
		for i, p := range pts {
			r = resp[i][c]
			dx = p.X - mx
			dy = p.Y - my
			cov[0][0] += r * dx * dx
			cov[0][1] += r * dx * dy
			cov[1][1] += r * dy * dy
		}
		cov[0][0] = cov[0][0]/rsum + linalg.CovEpsilon
		cov[1][1] = cov[1][1]/rsum + linalg.CovEpsilon
		cov[0][1] /= rsum
		cov[1][0] = cov[0][1]

		out[c] = Profile{
			Mean:   []float64{mx, my},
			Cov:    cov,
			Weight: rsum / float64(n),
		}
	}

	return out, nil
}

// FitMixture — Gaussian-mixture EM (latent profile analysis)
//
// Runs ExpectationStep / MaximizationStep from NewProfiles until the
// summed squared mean displacement across profiles drops below Tol or
// MaxIter passes ran. The cap is explicit: an uncapped EM loop on
// nearly-degenerate data can fail to converge.
//
// Errors: ErrNoPoints, ErrBadK, ErrBadOptions.
// Complexity: O(MaxIter · n · K).
func FitMixture(pts []Point, k int, opts ...MixtureOption) (MixtureResult, error) {
	if len(pts) == 0 {
		return MixtureResult{}, ErrNoPoints
	}
	if k <= 0 {
		return MixtureResult{}, ErrBadK
	}
	o := DefaultMixtureOptions(k)
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIter <= 0 || o.Tol <= 0 {
		return MixtureResult{}, ErrBadOptions
	}

	profiles, err := NewProfiles(pts, k, o.Seed)
	if err != nil {
		return MixtureResult{}, err
	}

	res := MixtureResult{}
	var (
		next  []Profile
		shift float64
		dx    float64
	)
	for iter := 0; iter < o.MaxIter; iter++ {
		res.Responsibilities = ExpectationStep(pts, profiles)
		next, err = MaximizationStep(pts, profiles, res.Responsibilities)
		if err != nil {
			return MixtureResult{}, err
		}

		// Convergence: Σ over profiles of ‖Δmean‖².
		shift = 0
		for c := 0; c < k; c++ {
			for d := 0; d < 2; d++ {
				dx = next[c].Mean[d] - profiles[c].Mean[d]
				shift += dx * dx
			}
		}
		profiles = next
		res.Iterations = iter + 1
		if shift < o.Tol {
			res.Converged = true

			break
		}
	}

	res.Profiles = profiles

	return res, nil
}

// pooledCovariance returns the sample covariance of the whole dataset,
// used as the shared starting covariance for every profile. A singleton
// dataset gets the identity scaled by the regularization epsilon.
func pooledCovariance(pts []Point) linalg.Matrix {
	if len(pts) < 2 {
		return linalg.Matrix{{linalg.CovEpsilon, 0}, {0, linalg.CovEpsilon}}
	}
	rows := make([][]float64, len(pts))
	for i, p := range pts {
		rows[i] = p.coords()
	}
	cov, err := linalg.CovarianceMatrix(rows)
	if err != nil {
		// Points always form a rectangular 2-column table; unreachable.
		return linalg.Matrix{{linalg.CovEpsilon, 0}, {0, linalg.CovEpsilon}}
	}

	return cov
}
