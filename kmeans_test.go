package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centroidlab/kmeans/distance"
	"github.com/centroidlab/kmeans/matrix"
)

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestFit_TwoClusters(t *testing.T) {
	points := mustMatrix(t, [][]float64{
		{1, 1}, {1, 2}, {10, 10}, {10, 11},
	})

	centroids, err := Fit(points, 2)
	require.NoError(t, err)

	require.Equal(t, 2, centroids.Rows())
	require.Equal(t, 2, centroids.Cols())
	assert.InDelta(t, 1.0, centroids.Row(0)[0], 1e-9)
	assert.InDelta(t, 1.5, centroids.Row(0)[1], 1e-9)
	assert.InDelta(t, 10.0, centroids.Row(1)[0], 1e-9)
	assert.InDelta(t, 10.5, centroids.Row(1)[1], 1e-9)
}

func TestFit_OutputShape(t *testing.T) {
	points := mustMatrix(t, [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {5, 5, 5}, {6, 6, 6},
	})

	for _, k := range []int{2, 3, 4, 5} {
		centroids, err := Fit(points, k)
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, k, centroids.Rows(), "k=%d", k)
		assert.Equal(t, 3, centroids.Cols(), "k=%d", k)
	}
}

func TestFit_Deterministic(t *testing.T) {
	rows := make([][]float64, 50)
	for i := range rows {
		// Deterministic but irregular spread.
		x := float64(i*i%17) / 3
		y := float64(i*7%13) / 2
		rows[i] = []float64{x, y}
	}
	points := mustMatrix(t, rows)

	first, err := Fit(points, 5)
	require.NoError(t, err)

	for run := 0; run < 3; run++ {
		again, err := Fit(points, 5)
		require.NoError(t, err)
		for j := 0; j < first.Rows(); j++ {
			assert.Equal(t, first.Row(j), again.Row(j))
		}
	}
}

func TestFit_ClusterCountBounds(t *testing.T) {
	points := mustMatrix(t, [][]float64{{0}, {1}, {2}, {3}})

	tests := []struct {
		name string
		k    int
		ok   bool
	}{
		{name: "k=1 rejected", k: 1, ok: false},
		{name: "k=0 rejected", k: 0, ok: false},
		{name: "negative k rejected", k: -2, ok: false},
		{name: "k=2 accepted", k: 2, ok: true},
		{name: "k=n-1 accepted", k: 3, ok: true},
		{name: "k=n rejected", k: 4, ok: false},
		{name: "k>n rejected", k: 5, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			centroids, err := Fit(points, tt.k)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.k, centroids.Rows())
				return
			}
			var bad *ErrClusterCount
			require.ErrorAs(t, err, &bad)
			assert.Equal(t, tt.k, bad.K)
			assert.Equal(t, 4, bad.N)
		})
	}
}

func TestFit_IterationBounds(t *testing.T) {
	points := mustMatrix(t, [][]float64{{0}, {1}, {2}})

	for _, maxIter := range []int{0, 1, 1000, 1001} {
		_, err := Fit(points, 2, WithMaxIterations(maxIter))
		var bad *ErrIterationBound
		require.ErrorAs(t, err, &bad, "maxIter=%d", maxIter)
		assert.Equal(t, maxIter, bad.MaxIter)
	}

	_, err := Fit(points, 2, WithMaxIterations(2))
	assert.NoError(t, err)
	_, err = Fit(points, 2, WithMaxIterations(999))
	assert.NoError(t, err)
}

func TestFit_EmptyInput(t *testing.T) {
	_, err := Fit(nil, 2)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFit_IdenticalPoints(t *testing.T) {
	// Numerically degenerate input is a fast convergence case, not an error.
	points := mustMatrix(t, [][]float64{{3, 3}, {3, 3}, {3, 3}, {3, 3}})

	centroids, err := Fit(points, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, centroids.Row(0))
	assert.Equal(t, []float64{3, 3}, centroids.Row(1))
}

func TestFit_TieBreakLowestIndex(t *testing.T) {
	// Both seeds coincide, so on the first pass every point is equidistant
	// from both centroids and must land on centroid 0. From there the run
	// settles with centroid 0 on the far point and centroid 1 back on the
	// duplicate; a highest-index tie-break would end in the opposite order.
	points := mustMatrix(t, [][]float64{{2, 2}, {2, 2}, {4, 4}})

	centroids, err := Fit(points, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 4}, centroids.Row(0))
	assert.Equal(t, []float64{2, 2}, centroids.Row(1))
}

func TestFit_EmptyClusterKeepsCentroid(t *testing.T) {
	// Centroid 1 starts far from every point, so no point is ever assigned
	// to it. It must carry its previous value, never reset to the origin.
	points := mustMatrix(t, [][]float64{{0, 0}, {1, 0}, {0, 1}})
	seed := mustMatrix(t, [][]float64{{0, 0}, {100, 100}})

	centroids, err := FitWithCentroids(points, seed, 1, 0)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/3, centroids.Row(0)[0], 1e-9)
	assert.InDelta(t, 1.0/3, centroids.Row(0)[1], 1e-9)
	assert.Equal(t, []float64{100, 100}, centroids.Row(1))
}

func TestFit_DoesNotMutatePoints(t *testing.T) {
	rows := [][]float64{{1, 1}, {1, 2}, {10, 10}, {10, 11}}
	points := mustMatrix(t, rows)

	_, err := Fit(points, 2)
	require.NoError(t, err)

	for i, row := range rows {
		assert.Equal(t, row, points.Row(i))
	}
}

func TestFitWithCentroids_FixedPoint(t *testing.T) {
	points := mustMatrix(t, [][]float64{
		{1, 1}, {1, 2}, {10, 10}, {10, 11},
	})

	converged, err := Fit(points, 2)
	require.NoError(t, err)

	// Feeding a converged result back as the seed must reproduce it.
	again, err := FitWithCentroids(points, converged, DefaultMaxIterations, DefaultEpsilon)
	require.NoError(t, err)

	for j := 0; j < converged.Rows(); j++ {
		for d := 0; d < converged.Cols(); d++ {
			assert.InDelta(t, converged.Row(j)[d], again.Row(j)[d], DefaultEpsilon)
		}
	}
}

func TestFitWithCentroids_DoesNotMutateSeed(t *testing.T) {
	points := mustMatrix(t, [][]float64{{0, 0}, {1, 0}, {10, 10}, {11, 10}})
	seed := mustMatrix(t, [][]float64{{5, 5}, {6, 6}})

	_, err := FitWithCentroids(points, seed, 100, 1e-3)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 5}, seed.Row(0))
	assert.Equal(t, []float64{6, 6}, seed.Row(1))
}

func TestFitWithCentroids_DimensionMismatch(t *testing.T) {
	points := mustMatrix(t, [][]float64{{0, 0}, {1, 1}, {2, 2}})
	seed := mustMatrix(t, [][]float64{{0, 0, 0}, {1, 1, 1}})

	_, err := FitWithCentroids(points, seed, 100, 1e-3)

	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Expected)
	assert.Equal(t, 3, mismatch.Actual)
}

func TestFitWithCentroids_EmptyInput(t *testing.T) {
	seed := mustMatrix(t, [][]float64{{0}})

	_, err := FitWithCentroids(nil, seed, 100, 1e-3)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// totalCost is the sum over all points of the squared distance to the
// nearest of the given centroids.
func totalCost(points, centroids *matrix.Matrix) float64 {
	var cost float64
	for i := 0; i < points.Rows(); i++ {
		best := distance.SquaredEuclidean(points.Row(i), centroids.Row(0))
		for j := 1; j < centroids.Rows(); j++ {
			if d := distance.SquaredEuclidean(points.Row(i), centroids.Row(j)); d < best {
				best = d
			}
		}
		cost += best
	}
	return cost
}

func TestFit_CostNonIncreasing(t *testing.T) {
	rows := make([][]float64, 40)
	for i := range rows {
		rows[i] = []float64{float64(i * 13 % 29), float64(i * 5 % 23), float64(i % 7)}
	}
	points := mustMatrix(t, rows)

	// Drive the iteration one step at a time via the embedded surface and
	// check the standard Lloyd's property at every iteration boundary.
	// eps=0 can never converge, so each call performs exactly one update.
	seed := points.Slice(0, 4).Clone()
	prev := totalCost(points, seed)

	current := seed
	for iter := 0; iter < 25; iter++ {
		next, err := FitWithCentroids(points, current, 1, 0)
		require.NoError(t, err)

		cost := totalCost(points, next)
		assert.LessOrEqual(t, cost, prev+1e-9, "iteration %d increased cost", iter+1)

		prev = cost
		current = next
	}
}
