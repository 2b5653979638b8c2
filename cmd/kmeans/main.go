// Command kmeans clusters comma-separated observation rows from standard
// input into K groups and writes the K centroid rows to standard output,
// each value formatted with 4 decimal digits.
//
// Usage:
//
//	kmeans [-v] K [max_iter]
//
// K must lie strictly between 1 and the number of input rows; max_iter
// (default 400) strictly between 1 and 1000. Any validation failure prints
// a fixed diagnostic to stderr and exits non-zero.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/centroidlab/kmeans"
	"github.com/centroidlab/kmeans/internal/textio"
	"github.com/centroidlab/kmeans/matrix"
)

// Fixed diagnostics; exit status is 1 for every rejected path.
const (
	msgUsage      = "Usage: kmeans K [max_iter]"
	msgBadK       = "Incorrect number of clusters!"
	msgBadMaxIter = "Incorrect maximum iteration!"
	msgBadInput   = "Invalid input format"
	msgNoInput    = "No input provided"
	msgGeneric    = "An Error Has Occurred"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "log iteration progress to stderr")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, msgUsage)
		return 1
	}
	pos := fs.Args()
	if len(pos) < 1 || len(pos) > 2 {
		fmt.Fprintln(stderr, msgUsage)
		return 1
	}

	points, err := textio.ReadPoints(stdin)
	if err != nil {
		if errors.Is(err, matrix.ErrEmpty) {
			fmt.Fprintln(stderr, msgNoInput)
		} else {
			fmt.Fprintln(stderr, msgBadInput)
		}
		return 1
	}

	k, err := strconv.Atoi(pos[0])
	if err != nil {
		fmt.Fprintln(stderr, msgBadK)
		return 1
	}

	maxIter := kmeans.DefaultMaxIterations
	if len(pos) == 2 {
		maxIter, err = strconv.Atoi(pos[1])
		if err != nil {
			fmt.Fprintln(stderr, msgBadMaxIter)
			return 1
		}
	}

	logger := kmeans.NoopLogger()
	if *verbose {
		logger = kmeans.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	centroids, err := kmeans.Fit(points, k,
		kmeans.WithMaxIterations(maxIter),
		kmeans.WithLogger(logger),
	)
	if err != nil {
		var badK *kmeans.ErrClusterCount
		var badIter *kmeans.ErrIterationBound
		switch {
		case errors.As(err, &badK):
			fmt.Fprintln(stderr, msgBadK)
		case errors.As(err, &badIter):
			fmt.Fprintln(stderr, msgBadMaxIter)
		default:
			fmt.Fprintln(stderr, msgGeneric)
		}
		return 1
	}

	if err := textio.WriteCentroids(stdout, centroids); err != nil {
		fmt.Fprintln(stderr, msgGeneric)
		return 1
	}

	return 0
}
