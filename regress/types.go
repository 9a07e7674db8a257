package regress

import "errors"

// Sentinel errors returned by the logistic fit.
var (
	// ErrEmptyInput indicates that no points were supplied where at
	// least one observation is required.
	ErrEmptyInput = errors.New("regress: input points must be non-empty")

	// ErrBadLabel indicates a logistic outcome outside {0, 1}.
	ErrBadLabel = errors.New("regress: logistic labels must be 0 or 1")

	// ErrBadOptions indicates a non-positive tolerance, iteration cap,
	// learning rate, or coefficient bound.
	ErrBadOptions = errors.New("regress: invalid options")
)

// Point is one (x, y) observation. For logistic regression Y must be
// exactly 0 or 1.
type Point struct {
	X float64
	Y float64
}

// Line is a fitted least-squares regression line. It is always defined:
// degenerate input produces {0, mean(y)} rather than NaN.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// ResidualSS returns the sum of squared residuals of the line over pts.
func (l Line) ResidualSS(pts []Point) float64 {
	ss := 0.0
	var r float64
	for _, p := range pts {
		r = p.Y - l.At(p.X)
		ss += r * r
	}

	return ss
}

// LogisticOptions configures FitLogistic.
//
//	MaxIter      — hard cap on ascent iterations (liveness contract).
//	Tol          — stop when the log-likelihood improvement drops below it.
//	LearningRate — gradient ascent step size.
//	CoefBound    — clamp on |β0| and |β1|; bounds separable-data blowup.
type LogisticOptions struct {
	MaxIter      int
	Tol          float64
	LearningRate float64
	CoefBound    float64
}

// LogisticOption is a functional option for configuring FitLogistic.
type LogisticOption func(*LogisticOptions)

// WithMaxIter overrides the iteration cap.
func WithMaxIter(n int) LogisticOption {
	return func(o *LogisticOptions) { o.MaxIter = n }
}

// WithTol overrides the log-likelihood convergence threshold.
func WithTol(tol float64) LogisticOption {
	return func(o *LogisticOptions) { o.Tol = tol }
}

// WithLearningRate overrides the ascent step size.
func WithLearningRate(lr float64) LogisticOption {
	return func(o *LogisticOptions) { o.LearningRate = lr }
}

// WithCoefBound overrides the coefficient magnitude clamp.
func WithCoefBound(b float64) LogisticOption {
	return func(o *LogisticOptions) { o.CoefBound = b }
}

// DefaultLogisticOptions returns the defaults used when no options are
// passed: MaxIter 500, Tol 1e-8, LearningRate 0.1, CoefBound 50.
func DefaultLogisticOptions() LogisticOptions {
	return LogisticOptions{
		MaxIter:      500,
		Tol:          1e-8,
		LearningRate: 0.1,
		CoefBound:    50,
	}
}
