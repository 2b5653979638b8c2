// Package kmeans provides K-means clustering of n-dimensional float64
// observations using Lloyd's algorithm.
//
// The engine is deterministic: centroids are seeded from the first K points
// in input order, assignment ties go to the lowest-index centroid, and a
// cluster that loses all its points keeps its previous centroid. Iteration
// stops when the largest centroid displacement falls below the convergence
// threshold, or when the iteration cap is reached.
//
// # Quick Start
//
//	points, _ := matrix.FromRows([][]float64{
//		{1, 1}, {1, 2}, {10, 10}, {10, 11},
//	})
//	centroids, err := kmeans.Fit(points, 2)
//
// Callers that already hold initial centroids (for example a host bridge
// passing pre-parsed data) use FitWithCentroids, which trusts its inputs and
// applies no defaults:
//
//	out, err := kmeans.FitWithCentroids(points, seed, 400, 1e-3)
package kmeans
