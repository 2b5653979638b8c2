// Package matrix provides an owned, contiguous row-major float64 matrix.
//
// It is the data carrier between ingestion and the clustering engine: a
// point set or centroid set is one Matrix, one allocation, fixed row length.
package matrix
