package textio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/centroidlab/kmeans/matrix"
)

// WriteCentroids writes one line per centroid row: values formatted with
// exactly 4 decimal digits, comma-joined, newline-terminated.
func WriteCentroids(w io.Writer, m *matrix.Matrix) error {
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, 32)
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.Row(i) {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			buf = strconv.AppendFloat(buf[:0], v, 'f', 4, 64)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
