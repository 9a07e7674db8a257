package cluster

// KMeans — Lloyd's algorithm
//
// Algorithm outline:
//  1. Initialize K centroids: caller-supplied when len matches K,
//     otherwise a seeded draw from the points. Assign every point to
//     its nearest starting centroid (Euclidean; exact ties break to
//     the lowest centroid index).
//  2. Update: each centroid moves to the mean of its members; a
//     centroid with zero members stays unmoved (documented edge case —
//     it is never deleted or reseeded silently).
//  3. Reassign against the moved centroids.
//  4. Stop when a reassignment pass changes nothing — a genuine Lloyd
//     fixed point, the assignments match the returned centroids — or
//     after MaxIter passes.
//
// Property: total within-cluster squared distance (inertia) is
// non-increasing across iterations; the history is returned so callers
// can chart it.
//
// Errors: ErrNoPoints, ErrBadK, ErrBadOptions.
// Determinism: fixed point order; seeded initialization.
// Complexity: O(MaxIter · n · K) time, O(n + K) space.
func KMeans(pts []Point, k int, opts ...KMeansOption) (KMeansResult, error) {
	if len(pts) == 0 {
		return KMeansResult{}, ErrNoPoints
	}
	if k <= 0 {
		return KMeansResult{}, ErrBadK
	}
	o := DefaultKMeansOptions(k)
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIter <= 0 {
		return KMeansResult{}, ErrBadOptions
	}

	centroids := make([]Point, k)
	if len(o.InitialCentroids) == k {
		copy(centroids, o.InitialCentroids)
	} else {
		copy(centroids, samplePoints(pts, k, rngFromSeed(o.Seed)))
	}

	assign := make([]int, len(pts))
	counts := make([]int, k)
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	res := KMeansResult{}

	// Pass 0: assign every point to its nearest starting centroid, so the
	// stability check below always compares two real assignment passes.
	for i, p := range pts {
		assign[i], _ = nearest(p, centroids)
	}

	var (
		best     int
		bestDist float64
		changed  bool
		inertia  float64
	)
	for iter := 0; iter < o.MaxIter; iter++ {
		// Update pass: member means; empty clusters stay unmoved.
		for c := 0; c < k; c++ {
			counts[c], sumX[c], sumY[c] = 0, 0, 0
		}
		for i, p := range pts {
			c := assign[i]
			counts[c]++
			sumX[c] += p.X
			sumY[c] += p.Y
		}
		for c := 0; c < k; c++ {
			if counts[c] > 0 {
				centroids[c] = Point{X: sumX[c] / float64(counts[c]), Y: sumY[c] / float64(counts[c])}
			}
		}

		// Reassignment pass against the moved centroids.
		changed = false
		inertia = 0
		for i, p := range pts {
			best, bestDist = nearest(p, centroids)
			if assign[i] != best {
				changed = true
				assign[i] = best
			}
			inertia += bestDist
		}
		res.Iterations = iter + 1
		res.InertiaHistory = append(res.InertiaHistory, inertia)
		res.Inertia = inertia

		if !changed {
			break
		}
	}

	res.Centroids = centroids
	res.Assignments = assign

	return res, nil
}

// nearest returns the index of the centroid closest to p and the squared
// distance to it; exact ties keep the lower index.
func nearest(p Point, centroids []Point) (int, float64) {
	best, bestDist := 0, sqDist(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := sqDist(p, centroids[c]); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist
}

// sqDist is the squared Euclidean distance between two points.
func sqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}
