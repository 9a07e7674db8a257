package regress

import "math"

// LogisticModel is a fitted one-predictor logistic regression:
// P(Y=1|x) = 1/(1+exp(−(B0 + B1·x))).
type LogisticModel struct {
	B0 float64
	B1 float64

	// LogLikelihood is the final log-likelihood of the fit, exposed for
	// goodness-of-fit readouts.
	LogLikelihood float64

	// Iterations is how many ascent steps ran before convergence or cap.
	Iterations int
}

// Prob returns P(Y=1|x) under the model.
func (m LogisticModel) Prob(x float64) float64 {
	return sigmoid(m.B0 + m.B1*x)
}

// DecisionBoundary returns the x where P(Y=1|x)=0.5, i.e. −B0/B1.
// ok is false when B1 == 0 and no boundary exists.
func (m LogisticModel) DecisionBoundary() (x float64, ok bool) {
	if m.B1 == 0 {
		return 0, false
	}

	return -m.B0 / m.B1, true
}

// FitLogistic — logistic regression via gradient ascent
//
// Description:
//
//	Maximizes the Bernoulli log-likelihood
//	  LL(β) = Σ yᵢ·log pᵢ + (1−yᵢ)·log(1−pᵢ)
//	by full-batch gradient ascent on (β0, β1). Iteration stops when the
//	log-likelihood improvement falls below opts.Tol or after
//	opts.MaxIter steps — the cap bounds runtime on perfectly separable
//	data, where the coefficients would otherwise diverge to infinity.
//	As a second safety valve both coefficients are clamped to
//	±opts.CoefBound after every step.
//
// Errors:
//   - ErrEmptyInput — pts is empty.
//   - ErrBadLabel   — some Y is neither 0 nor 1.
//   - ErrBadOptions — non-positive MaxIter, Tol, LearningRate or CoefBound.
//
// Determinism: fixed accumulation order; no randomness.
// Complexity: O(MaxIter · n) time, O(1) space.
func FitLogistic(pts []Point, opts ...LogisticOption) (LogisticModel, error) {
	if len(pts) == 0 {
		return LogisticModel{}, ErrEmptyInput
	}
	o := DefaultLogisticOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIter <= 0 || o.Tol <= 0 || o.LearningRate <= 0 || o.CoefBound <= 0 {
		return LogisticModel{}, ErrBadOptions
	}
	for _, p := range pts {
		if p.Y != 0 && p.Y != 1 {
			return LogisticModel{}, ErrBadLabel
		}
	}

	var (
		b0, b1   float64
		ll       = logLikelihood(pts, 0, 0)
		prevLL   float64
		g0, g1   float64
		p, resid float64
		iter     int
	)
	invN := o.LearningRate / float64(len(pts))
	for iter = 0; iter < o.MaxIter; iter++ {
		// Gradient of the log-likelihood: Σ (y − p) · (1, x).
		g0, g1 = 0, 0
		for _, pt := range pts {
			p = sigmoid(b0 + b1*pt.X)
			resid = pt.Y - p
			g0 += resid
			g1 += resid * pt.X
		}
		b0 = clamp(b0+invN*g0, o.CoefBound)
		b1 = clamp(b1+invN*g1, o.CoefBound)

		prevLL, ll = ll, logLikelihood(pts, b0, b1)
		if math.Abs(ll-prevLL) < o.Tol {
			iter++
			break
		}
	}

	return LogisticModel{B0: b0, B1: b1, LogLikelihood: ll, Iterations: iter}, nil
}

// sigmoid is the standard logistic function with saturation guards.
func sigmoid(z float64) float64 {
	if z > 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)

	return e / (1 + e)
}

// logLikelihood evaluates the Bernoulli log-likelihood at (b0, b1).
// Probabilities are nudged away from {0,1} so the log stays finite on
// saturated fits.
func logLikelihood(pts []Point, b0, b1 float64) float64 {
	const eps = 1e-12
	ll := 0.0
	var p float64
	for _, pt := range pts {
		p = sigmoid(b0 + b1*pt.X)
		if p < eps {
			p = eps
		} else if p > 1-eps {
			p = 1 - eps
		}
		if pt.Y == 1 {
			ll += math.Log(p)
		} else {
			ll += math.Log(1 - p)
		}
	}

	return ll
}

// clamp limits v to the symmetric interval [−bound, bound].
func clamp(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}

	return v
}
