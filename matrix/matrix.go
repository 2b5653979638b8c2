package matrix

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a matrix would have no rows.
var ErrEmpty = errors.New("matrix has no rows")

// ErrRaggedRows indicates a row whose width differs from the first row.
type ErrRaggedRows struct {
	Row      int // zero-based row index
	Expected int
	Actual   int
}

func (e *ErrRaggedRows) Error() string {
	return fmt.Sprintf("ragged rows: row %d has %d values, expected %d", e.Row, e.Actual, e.Expected)
}

// Matrix is a dense row-major float64 matrix backed by a single allocation.
// All rows share one fixed width.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// New creates a zero-valued rows x cols matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{
		data: make([]float64, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// FromRows copies rows into a new Matrix, validating that every row has the
// width of the first. Returns ErrEmpty for zero rows and ErrRaggedRows on a
// width mismatch.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &ErrRaggedRows{Row: i, Expected: cols, Actual: len(row)}
		}
		copy(m.Row(i), row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the row width.
func (m *Matrix) Cols() int { return m.cols }

// Row returns row i as a mutable view into the backing array.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// CopyRow copies row i into dst. dst must have length Cols.
func (m *Matrix) CopyRow(dst []float64, i int) {
	copy(dst, m.Row(i))
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Slice returns a view of rows [from, to). The view shares the backing array.
func (m *Matrix) Slice(from, to int) *Matrix {
	return &Matrix{
		data: m.data[from*m.cols : to*m.cols],
		rows: to - from,
		cols: m.cols,
	}
}

// ToRows converts the matrix back to a nested slice shape. Each row is a
// fresh copy; mutating the result does not affect the matrix.
func (m *Matrix) ToRows() [][]float64 {
	rows := make([][]float64, m.rows)
	for i := range rows {
		rows[i] = make([]float64, m.cols)
		m.CopyRow(rows[i], i)
	}
	return rows
}

// Builder accumulates rows of an initially unknown count. The width is fixed
// by the first appended row; later rows of a different width are rejected.
type Builder struct {
	data []float64
	rows int
	cols int
}

// AppendRow appends one row. The first row fixes the width.
func (b *Builder) AppendRow(row []float64) error {
	if b.rows == 0 {
		b.cols = len(row)
	} else if len(row) != b.cols {
		return &ErrRaggedRows{Row: b.rows, Expected: b.cols, Actual: len(row)}
	}

	b.data = append(b.data, row...)
	b.rows++

	return nil
}

// Build finalizes the accumulated rows into a Matrix.
// Returns ErrEmpty if no row was appended.
func (b *Builder) Build() (*Matrix, error) {
	if b.rows == 0 {
		return nil, ErrEmpty
	}
	return &Matrix{data: b.data, rows: b.rows, cols: b.cols}, nil
}
