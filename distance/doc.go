// Package distance provides the Euclidean distance used for both cluster
// assignment and centroid displacement measurement.
package distance
