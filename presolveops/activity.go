package presolveops

import (
	"github.com/gomip/presolve/spmatrix"
)

// MaximalActivity returns the supremum of row i's linear expression over
// the box given by lcol and ucol: each positive coefficient contributes at
// the column's upper bound, each negative one at the lower bound. An
// infinite contributing bound makes the result +Inf; no explicit branch is
// needed because every infinite contribution to the supremum is +Inf.
// Stored structural zeros are skipped, since 0 times an infinite bound is
// NaN rather than the zero contribution they logically make.
func MaximalActivity(a *spmatrix.Matrix, i int, lcol, ucol []float64) float64 {
	activity := 0.0
	begin, end := a.RowRange(i)
	for k := begin; k < end; k++ {
		coef := a.Value(k)
		j := a.Column(k)
		if coef > 0 {
			activity += coef * ucol[j]
		} else if coef < 0 {
			activity += coef * lcol[j]
		}
	}
	return activity
}

// MinimalActivity is the mirror of MaximalActivity: the infimum of row i's
// linear expression, with positive coefficients contributing at the lower
// bound and negative ones at the upper bound.
func MinimalActivity(a *spmatrix.Matrix, i int, lcol, ucol []float64) float64 {
	activity := 0.0
	begin, end := a.RowRange(i)
	for k := begin; k < end; k++ {
		coef := a.Value(k)
		j := a.Column(k)
		if coef > 0 {
			activity += coef * lcol[j]
		} else if coef < 0 {
			activity += coef * ucol[j]
		}
	}
	return activity
}
