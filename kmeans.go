package kmeans

import (
	"gonum.org/v1/gonum/floats"

	"github.com/centroidlab/kmeans/distance"
	"github.com/centroidlab/kmeans/matrix"
)

// Fit clusters points into k groups using Lloyd's algorithm and returns the
// k centroids as a k x dim matrix, in seeding order.
//
// Centroids are seeded from the first k points, so the result is fully
// determined by the input order. k must satisfy 1 < k < points.Rows(), and
// the configured iteration cap must satisfy 1 < maxIter < MaxIterationLimit.
func Fit(points *matrix.Matrix, k int, opts ...Option) (*matrix.Matrix, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if points == nil || points.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	if n := points.Rows(); k <= 1 || k >= n {
		return nil, &ErrClusterCount{K: k, N: n}
	}
	if o.maxIter <= 1 || o.maxIter >= MaxIterationLimit {
		return nil, &ErrIterationBound{MaxIter: o.maxIter}
	}

	centroids := points.Slice(0, k).Clone()
	logger := o.logger.WithK(k).WithDimension(points.Cols()).WithCount(points.Rows())

	lloyd(points, centroids, o.maxIter, o.eps, logger)

	return centroids, nil
}

// FitWithCentroids runs Lloyd's algorithm starting from caller-supplied
// centroids instead of the first-k-points seed. It is the embedded surface:
// no default substitution (the caller supplies maxIter and eps explicitly),
// and beyond a cheap width check the inputs are trusted. The result has the
// same shape as centroids; the input matrices are not mutated.
func FitWithCentroids(points, centroids *matrix.Matrix, maxIter int, eps float64) (*matrix.Matrix, error) {
	if points == nil || points.Rows() == 0 {
		return nil, ErrEmptyInput
	}
	if centroids == nil || centroids.Rows() == 0 {
		return nil, &ErrClusterCount{K: 0, N: points.Rows()}
	}
	if centroids.Cols() != points.Cols() {
		return nil, &ErrDimensionMismatch{Expected: points.Cols(), Actual: centroids.Cols()}
	}

	out := centroids.Clone()
	lloyd(points, out, maxIter, eps, NoopLogger())

	return out, nil
}

// lloyd refines centroids in place. Each iteration assigns every point to its
// nearest centroid, replaces each centroid with the mean of its assigned
// points, and stops once the largest centroid displacement drops below eps.
// The converged update is committed before the loop exits; exhausting the
// cap is not an error and returns the last committed update.
func lloyd(points, centroids *matrix.Matrix, maxIter int, eps float64, logger *Logger) {
	n := points.Rows()
	k := centroids.Rows()

	next := matrix.New(k, centroids.Cols())
	counts := make([]int, k)
	assign := make([]int, n)

	for iter := 0; iter < maxIter; iter++ {
		// Assignment step. Strict less-than keeps exact-distance ties on
		// the lowest centroid index.
		for i := 0; i < n; i++ {
			p := points.Row(i)
			best := 0
			bestDist := distance.Euclidean(p, centroids.Row(0))
			for j := 1; j < k; j++ {
				if d := distance.Euclidean(p, centroids.Row(j)); d < bestDist {
					bestDist = d
					best = j
				}
			}
			assign[i] = best
		}

		// Update step.
		for j := 0; j < k; j++ {
			row := next.Row(j)
			for d := range row {
				row[d] = 0
			}
			counts[j] = 0
		}
		for i := 0; i < n; i++ {
			floats.Add(next.Row(assign[i]), points.Row(i))
			counts[assign[i]]++
		}

		maxShift := 0.0
		for j := 0; j < k; j++ {
			if counts[j] == 0 {
				// An empty cluster keeps its previous centroid.
				copy(next.Row(j), centroids.Row(j))
			} else {
				floats.Scale(1/float64(counts[j]), next.Row(j))
			}
			if shift := distance.Euclidean(centroids.Row(j), next.Row(j)); shift > maxShift {
				maxShift = shift
			}
		}

		// Commit the update, then test convergence: the converged state is
		// materialized, never discarded.
		for j := 0; j < k; j++ {
			copy(centroids.Row(j), next.Row(j))
		}

		logger.Debug("iteration completed", "iteration", iter+1, "max_shift", maxShift)

		if maxShift < eps {
			logger.Debug("converged", "iterations", iter+1, "max_shift", maxShift)
			return
		}
	}

	logger.Debug("iteration cap reached", "iterations", maxIter)
}
