package matrix

import "fmt"

// NewFromTriplets materializes a dense rows×cols matrix from parallel
// (value, rowIndex, colIndex) arrays; entries not named by a triplet are
// zero. Duplicate (row, col) pairs are last-write-wins in input order.
//
// The triplet form is the build interface producers assemble against:
// design-matrix and constraint-row construction emit only entries whose
// magnitude is significant, and this routine fills in the rest.
//
// Complexity: O(rows*cols + len(values)).
func NewFromTriplets(values []float64, rowIdx, colIdx []int, rows, cols int) (*Dense, error) {
	if len(values) != len(rowIdx) || len(values) != len(colIdx) {
		return nil, fmt.Errorf("lengths %d/%d/%d: %w", len(values), len(rowIdx), len(colIdx), ErrBadTriplets)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		i, j := rowIdx[k], colIdx[k]
		if i < 0 || i >= rows || j < 0 || j >= cols {
			return nil, fmt.Errorf("triplet %d at (%d,%d) outside %dx%d: %w", k, i, j, rows, cols, ErrBadTriplets)
		}
		m.data[i*cols+j] = v
	}

	return m, nil
}
