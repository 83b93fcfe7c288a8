// Package spmatrix provides a sparse constraint matrix stored once in
// compressed row form, with a transpose index built at construction so the
// same entries can be enumerated column by column. Every coefficient has
// exactly one authoritative storage slot; writes through SetValue are
// visible to both orderings immediately, so row-major and column-major
// views cannot drift apart mid-update.
package spmatrix

import (
	"fmt"
)

// Matrix is a numRows x numCols sparse matrix in compressed row storage.
//
// Canonical storage (row-major):
//
//	entries of row i occupy values[rowStart[i]:rowStart[i+1]], in the
//	order the row's entries were supplied at construction; colIndex[k]
//	and rowIndex[k] give the position of values[k].
//
// Transpose index (column-major):
//
//	colEntry[colStart[j]:colStart[j+1]] lists the canonical entry
//	indices of column j, rows ascending. It indexes into values rather
//	than duplicating them.
//
// Entries whose value has been reduced to exactly zero remain stored; they
// are structural zeros pending compaction by a later pass.
type Matrix struct {
	numRows  int
	numCols  int
	rowStart []int
	rowIndex []int
	colIndex []int
	values   []float64
	colStart []int
	colEntry []int
}

// NewFromTriplets builds a Matrix from parallel triplet slices, one
// (rowIndices[n], colIndices[n], entries[n]) triplet per stored entry.
// Within each row, entries keep the order in which the triplets supplied
// them. Duplicate positions are rejected: a position must have exactly one
// storage slot for in-place updates to be unambiguous.
func NewFromTriplets(
	numRows, numCols int, rowIndices, colIndices []int, entries []float64,
) (*Matrix, error) {
	const caller = "NewFromTriplets"
	if numRows < 0 || numCols < 0 {
		return nil, fmt.Errorf(
			"%s: dimensions %dx%d are invalid", caller, numRows, numCols,
		)
	}
	if (len(rowIndices) != len(colIndices)) || (len(rowIndices) != len(entries)) {
		return nil, fmt.Errorf(
			"%s: triplet slice lengths differ: %d rows, %d columns, %d entries",
			caller, len(rowIndices), len(colIndices), len(entries),
		)
	}
	numEntries := len(entries)
	for n := 0; n < numEntries; n++ {
		if (rowIndices[n] < 0) || (numRows <= rowIndices[n]) {
			return nil, fmt.Errorf(
				"%s: row index %d of entry %d is not in {0,...,%d}",
				caller, rowIndices[n], n, numRows-1,
			)
		}
		if (colIndices[n] < 0) || (numCols <= colIndices[n]) {
			return nil, fmt.Errorf(
				"%s: column index %d of entry %d is not in {0,...,%d}",
				caller, colIndices[n], n, numCols-1,
			)
		}
	}

	m := &Matrix{
		numRows:  numRows,
		numCols:  numCols,
		rowStart: make([]int, numRows+1),
		rowIndex: make([]int, numEntries),
		colIndex: make([]int, numEntries),
		values:   make([]float64, numEntries),
	}

	// Bucket triplets by row, preserving per-row input order.
	for n := 0; n < numEntries; n++ {
		m.rowStart[rowIndices[n]+1]++
	}
	for i := 0; i < numRows; i++ {
		m.rowStart[i+1] += m.rowStart[i]
	}
	next := make([]int, numRows)
	copy(next, m.rowStart[:numRows])
	for n := 0; n < numEntries; n++ {
		i := rowIndices[n]
		k := next[i]
		next[i]++
		m.rowIndex[k] = i
		m.colIndex[k] = colIndices[n]
		m.values[k] = entries[n]
	}

	// A duplicate position would give one coefficient two storage slots.
	for i := 0; i < numRows; i++ {
		begin, end := m.rowStart[i], m.rowStart[i+1]
		seen := make(map[int]bool, end-begin)
		for k := begin; k < end; k++ {
			if seen[m.colIndex[k]] {
				return nil, fmt.Errorf(
					"%s: duplicate entry at row %d, column %d", caller, i, m.colIndex[k],
				)
			}
			seen[m.colIndex[k]] = true
		}
	}

	m.buildTranspose()
	return m, nil
}

// buildTranspose computes colStart and colEntry from the canonical row
// storage. Done once; SetValue never invalidates it because the index maps
// positions, not values.
func (m *Matrix) buildTranspose() {
	numEntries := len(m.values)
	m.colStart = make([]int, m.numCols+1)
	m.colEntry = make([]int, numEntries)
	for k := 0; k < numEntries; k++ {
		m.colStart[m.colIndex[k]+1]++
	}
	for j := 0; j < m.numCols; j++ {
		m.colStart[j+1] += m.colStart[j]
	}
	next := make([]int, m.numCols)
	copy(next, m.colStart[:m.numCols])
	// Canonical entries are visited in row order and a column holds at most
	// one entry per row, so each column's slots fill with rows ascending.
	for k := 0; k < numEntries; k++ {
		j := m.colIndex[k]
		m.colEntry[next[j]] = k
		next[j]++
	}
}

// NumRows returns the number of rows.
func (m *Matrix) NumRows() int {
	return m.numRows
}

// NumCols returns the number of columns.
func (m *Matrix) NumCols() int {
	return m.numCols
}

// NumEntries returns the number of stored entries, including structural
// zeros.
func (m *Matrix) NumEntries() int {
	return len(m.values)
}

// RowRange returns the half-open canonical entry range [begin, end) of row i.
func (m *Matrix) RowRange(i int) (int, int) {
	return m.rowStart[i], m.rowStart[i+1]
}

// ColRange returns the half-open slot range [begin, end) of column j in the
// transpose index; pass slots in this range to ColEntry.
func (m *Matrix) ColRange(j int) (int, int) {
	return m.colStart[j], m.colStart[j+1]
}

// ColEntry maps a transpose slot to its canonical entry index.
func (m *Matrix) ColEntry(slot int) int {
	return m.colEntry[slot]
}

// Row returns the row of canonical entry k.
func (m *Matrix) Row(k int) int {
	return m.rowIndex[k]
}

// Column returns the column of canonical entry k.
func (m *Matrix) Column(k int) int {
	return m.colIndex[k]
}

// Value returns the coefficient stored at canonical entry k.
func (m *Matrix) Value(k int) float64 {
	return m.values[k]
}

// SetValue overwrites the coefficient at canonical entry k. Both the
// row-major and column-major orderings observe the new value, since they
// share the one storage slot.
func (m *Matrix) SetValue(k int, v float64) {
	m.values[k] = v
}

// Get returns the stored coefficient at (i, j) and whether a stored entry
// exists there. A stored structural zero yields (0, true); an absent entry
// yields (0, false).
func (m *Matrix) Get(i, j int) (float64, bool) {
	if (i < 0) || (m.numRows <= i) || (j < 0) || (m.numCols <= j) {
		return 0, false
	}
	for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
		if m.colIndex[k] == j {
			return m.values[k], true
		}
	}
	return 0, false
}

// Dense expands the matrix to a dense [][]float64, for tests and debugging.
func (m *Matrix) Dense() [][]float64 {
	dense := make([][]float64, m.numRows)
	for i := 0; i < m.numRows; i++ {
		dense[i] = make([]float64, m.numCols)
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			dense[i][m.colIndex[k]] = m.values[k]
		}
	}
	return dense
}
