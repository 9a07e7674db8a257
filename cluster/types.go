package cluster

import (
	"errors"

	"github.com/katalvlaran/statkit/linalg"
)

// Sentinel errors returned by the clustering engines.
var (
	// ErrNoPoints indicates an empty dataset.
	ErrNoPoints = errors.New("cluster: input points must be non-empty")

	// ErrBadK indicates k <= 0.
	ErrBadK = errors.New("cluster: k must be positive")

	// ErrBadOptions indicates a non-positive iteration cap or tolerance.
	ErrBadOptions = errors.New("cluster: invalid options")

	// ErrProfileMismatch indicates responsibilities whose shape does not
	// match the points × profiles grid handed to MaximizationStep.
	ErrProfileMismatch = errors.New("cluster: responsibilities shape mismatch")
)

// Point is one 2-D observation.
type Point struct {
	X float64
	Y float64
}

// coords returns the point as a coordinate slice for the linalg kernel.
func (p Point) coords() []float64 { return []float64{p.X, p.Y} }

// Profile is one mixture component: a location, a 2×2 covariance and a
// mixing weight. Weights sum to 1 across a profile set.
type Profile struct {
	Mean   []float64     // length 2
	Cov    linalg.Matrix // 2×2
	Weight float64
}

// KMeansOptions configures KMeans.
//
//	K                — number of clusters (required, > 0).
//	MaxIter          — iteration budget; assignment stability ends earlier.
//	InitialCentroids — optional caller-supplied start; len must be K to
//	                   take effect, otherwise seeded random init is used.
//	Seed             — RNG seed for random init; 0 selects the default.
type KMeansOptions struct {
	K                int
	MaxIter          int
	InitialCentroids []Point
	Seed             int64
}

// KMeansOption is a functional option for configuring KMeans.
type KMeansOption func(*KMeansOptions)

// WithKMeansMaxIter overrides the iteration budget.
func WithKMeansMaxIter(n int) KMeansOption {
	return func(o *KMeansOptions) { o.MaxIter = n }
}

// WithInitialCentroids supplies explicit starting centroids.
func WithInitialCentroids(cs []Point) KMeansOption {
	return func(o *KMeansOptions) { o.InitialCentroids = cs }
}

// WithKMeansSeed sets the RNG seed for random initialization.
func WithKMeansSeed(seed int64) KMeansOption {
	return func(o *KMeansOptions) { o.Seed = seed }
}

// DefaultKMeansOptions returns the defaults for the given k:
// MaxIter 100, random seeded initialization.
func DefaultKMeansOptions(k int) KMeansOptions {
	return KMeansOptions{K: k, MaxIter: 100}
}

// KMeansResult holds the outcome of a K-Means run.
type KMeansResult struct {
	Centroids   []Point
	Assignments []int // Assignments[i] is the centroid index of point i

	// Iterations is the number of full assign/update passes executed.
	Iterations int

	// Inertia is the final total within-cluster squared distance;
	// InertiaHistory records it after every iteration (non-increasing).
	Inertia        float64
	InertiaHistory []float64
}

// MixtureOptions configures FitMixture.
//
//	K       — number of profiles (required, > 0).
//	MaxIter — hard EM iteration cap (liveness contract).
//	Tol     — stop when Σ‖Δmean‖² across profiles falls below it.
//	Seed    — RNG seed for the k-means initialization pass.
type MixtureOptions struct {
	K       int
	MaxIter int
	Tol     float64
	Seed    int64
}

// MixtureOption is a functional option for configuring FitMixture.
type MixtureOption func(*MixtureOptions)

// WithMixtureMaxIter overrides the EM iteration cap.
func WithMixtureMaxIter(n int) MixtureOption {
	return func(o *MixtureOptions) { o.MaxIter = n }
}

// WithMixtureTol overrides the convergence threshold.
func WithMixtureTol(tol float64) MixtureOption {
	return func(o *MixtureOptions) { o.Tol = tol }
}

// WithMixtureSeed sets the RNG seed for initialization.
func WithMixtureSeed(seed int64) MixtureOption {
	return func(o *MixtureOptions) { o.Seed = seed }
}

// DefaultMixtureOptions returns the defaults for the given k:
// MaxIter 200, Tol 1e-6.
func DefaultMixtureOptions(k int) MixtureOptions {
	return MixtureOptions{K: k, MaxIter: 200, Tol: 1e-6}
}

// MixtureResult holds the outcome of an EM fit.
type MixtureResult struct {
	Profiles []Profile

	// Responsibilities[i][k] is the posterior probability that point i
	// belongs to profile k; each row sums to 1.
	Responsibilities [][]float64

	// Iterations is the number of E/M passes executed; Converged is
	// false when the iteration cap ended the loop instead of Tol.
	Iterations int
	Converged  bool
}
