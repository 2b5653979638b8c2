package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/centroidlab/kmeans/matrix"
)

// ErrInvalidNumber indicates a token that does not parse as a real number.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidNumber struct {
	Line  int // one-based input line
	Token string
	cause error
}

func (e *ErrInvalidNumber) Error() string {
	return fmt.Sprintf("line %d: invalid number %q", e.Line, e.Token)
}

func (e *ErrInvalidNumber) Unwrap() error { return e.cause }

// ReadPoints parses observation rows from r: one point per line, fields
// comma-separated, \r\n normalized away, blank lines skipped. Every row must
// have the width of the first; a width mismatch surfaces as
// matrix.ErrRaggedRows and an empty stream as matrix.ErrEmpty.
func ReadPoints(r io.Reader) (*matrix.Matrix, error) {
	var b matrix.Builder

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, &ErrInvalidNumber{Line: line, Token: field, cause: err}
			}
			row[i] = v
		}

		if err := b.AppendRow(row); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}

	return b.Build()
}
