// Package textio implements the textual surface of the batch command:
// parsing comma-separated observation rows and formatting centroid rows
// with fixed 4-decimal precision.
package textio
