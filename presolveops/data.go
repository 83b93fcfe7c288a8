// Package presolveops implements presolve reductions over a shared mutable
// problem state. The one reduction provided is coefficient strengthening:
// tightening a constraint's coefficient and right-hand side for an integer
// variable using integrality, without changing the integer-feasible region.
package presolveops

import (
	"fmt"
	"math"

	"github.com/gomip/presolve/spmatrix"
)

// VariableType discriminates continuous from integer-valued columns. Binary
// columns are Integer columns with bounds [0, 1]; the reduction treats the
// two identically.
type VariableType int

const (
	Continuous VariableType = iota
	Integer
)

// PresolveData is the mutable working state a presolve pass operates on. It
// wraps the constraint matrix with the current column and row bounds,
// column type and activity flags, and per-row/per-column counts of
// logically nonzero entries.
//
// Bounds use math.Inf as the no-bound sentinel: a row with URow[i] = +Inf
// has no upper side, one with LRow[i] = -Inf no lower side. A row with both
// bounds finite is ranged; with neither finite, free.
//
// The strengthening pass mutates coefficients, row bounds, and nonzero
// counters in place. It never creates or destroys the state, and it never
// deactivates rows or columns: a counter reaching zero is left for a later
// pass to act on.
type PresolveData struct {
	A           *spmatrix.Matrix
	LCol, UCol  []float64
	LRow, URow  []float64
	VarTypes    []VariableType
	ColActive   []bool
	RowNonzeros []int
	ColNonzeros []int
}

// NewPresolveData wraps a built constraint matrix with working arrays for a
// presolve pass. All columns start active; nonzero counters are derived
// from the stored entries. The slices are retained, not copied.
func NewPresolveData(
	a *spmatrix.Matrix, lcol, ucol, lrow, urow []float64, varTypes []VariableType,
) (*PresolveData, error) {
	const caller = "NewPresolveData"
	numRows, numCols := a.NumRows(), a.NumCols()
	if (len(lcol) != numCols) || (len(ucol) != numCols) || (len(varTypes) != numCols) {
		return nil, fmt.Errorf(
			"%s: column arrays have lengths %d, %d, %d; matrix has %d columns",
			caller, len(lcol), len(ucol), len(varTypes), numCols,
		)
	}
	if (len(lrow) != numRows) || (len(urow) != numRows) {
		return nil, fmt.Errorf(
			"%s: row bound arrays have lengths %d, %d; matrix has %d rows",
			caller, len(lrow), len(urow), numRows,
		)
	}

	pd := &PresolveData{
		A:           a,
		LCol:        lcol,
		UCol:        ucol,
		LRow:        lrow,
		URow:        urow,
		VarTypes:    varTypes,
		ColActive:   make([]bool, numCols),
		RowNonzeros: make([]int, numRows),
		ColNonzeros: make([]int, numCols),
	}
	for j := 0; j < numCols; j++ {
		pd.ColActive[j] = true
	}
	for i := 0; i < numRows; i++ {
		begin, end := a.RowRange(i)
		for k := begin; k < end; k++ {
			if a.Value(k) != 0 {
				pd.RowNonzeros[i]++
				pd.ColNonzeros[a.Column(k)]++
			}
		}
	}
	return pd, nil
}

// Validate checks the preconditions the strengthening pass assumes but does
// not verify on its own: consistent bounds on active columns and nonzero
// counters agreeing with the stored entries. Intended for tests and debug
// builds; the pass itself never calls it.
func (pd *PresolveData) Validate() error {
	const caller = "Validate"
	numRows, numCols := pd.A.NumRows(), pd.A.NumCols()
	for j := 0; j < numCols; j++ {
		if pd.ColActive[j] && (pd.LCol[j] > pd.UCol[j]) {
			return fmt.Errorf(
				"%s: active column %d has bounds [%f, %f]",
				caller, j, pd.LCol[j], pd.UCol[j],
			)
		}
	}
	for i := 0; i < numRows; i++ {
		if math.IsNaN(pd.LRow[i]) || math.IsNaN(pd.URow[i]) {
			return fmt.Errorf("%s: row %d has a NaN bound", caller, i)
		}
		nonzeros := 0
		begin, end := pd.A.RowRange(i)
		for k := begin; k < end; k++ {
			if pd.A.Value(k) != 0 {
				nonzeros++
			}
		}
		if nonzeros != pd.RowNonzeros[i] {
			return fmt.Errorf(
				"%s: row %d stores %d nonzeros but RowNonzeros[%d] = %d",
				caller, i, nonzeros, i, pd.RowNonzeros[i],
			)
		}
	}
	for j := 0; j < numCols; j++ {
		nonzeros := 0
		begin, end := pd.A.ColRange(j)
		for s := begin; s < end; s++ {
			if pd.A.Value(pd.A.ColEntry(s)) != 0 {
				nonzeros++
			}
		}
		if nonzeros != pd.ColNonzeros[j] {
			return fmt.Errorf(
				"%s: column %d stores %d nonzeros but ColNonzeros[%d] = %d",
				caller, j, nonzeros, j, pd.ColNonzeros[j],
			)
		}
	}
	return nil
}
