package presolveops

import (
	"math"
)

// Stats summarizes one strengthening pass. The mutated PresolveData is the
// real output; these counts exist for pipeline reporting only.
type Stats struct {
	CoefficientsTightened int // accepted coefficient changes
	EntriesZeroed         int // accepted changes whose new coefficient is exactly zero
}

// strengthenUpper computes the candidate tightening of coefficient a of an
// integer column in a row of the form a*x + (rest) <= u, where u is finite.
//
// maxActivityExcl is the maximal activity of the row with the column's own
// contribution removed. Because the column is integer, its feasible values
// step by 1, and the slack recoverable at the feasible value nearest the
// relevant column bound is
//
//	a > 0:  d = u - maxActivityExcl - a*(ucol - 1)
//	a < 0:  d = u - maxActivityExcl - a*(lcol + 1)
//
// The change is accepted only under the strict guard |a| >= d > 0: d <= 0
// recovers nothing (d = 0 exactly is excluded as degenerate), and d > |a|
// would flip the coefficient's sign and enlarge the feasible region. The
// guard is written with strict comparisons on d so that a NaN d, which
// arises when the excluded activity is Inf - Inf, fails it.
//
// On acceptance the new coefficient moves toward zero by d and the bound
// tightens to compensate at the column bound:
//
//	a > 0:  a' = a - d,  u' = u - d*ucol
//	a < 0:  a' = a + d,  u' = u + d*lcol
//
// Either way the integer points satisfying a*x + (rest) <= u within the
// current bounds are exactly those satisfying a'*x + (rest) <= u'.
func strengthenUpper(a, u, lcol, ucol, maxActivityExcl float64) (float64, float64, bool) {
	if a > 0 {
		d := u - maxActivityExcl - a*(ucol-1)
		if (0 < d) && (d <= a) {
			return a - d, u - d*ucol, true
		}
		return a, u, false
	}
	d := u - maxActivityExcl - a*(lcol+1)
	if (0 < d) && (d <= -a) {
		return a + d, u + d*lcol, true
	}
	return a, u, false
}

// strengthenLower is the mirror of strengthenUpper for a row of the form
// l <= a*x + (rest) with l finite, using the minimal activity of the row
// excluding the column:
//
//	a > 0:  d = -l + minActivityExcl + a*(lcol + 1),  a' = a - d,  l' = l - d*lcol
//	a < 0:  d = -l + minActivityExcl + a*(ucol - 1),  a' = a + d,  l' = l + d*ucol
//
// accepted under the same strict guard |a| >= d > 0.
func strengthenLower(a, l, lcol, ucol, minActivityExcl float64) (float64, float64, bool) {
	if a > 0 {
		d := -l + minActivityExcl + a*(lcol+1)
		if (0 < d) && (d <= a) {
			return a - d, l - d*lcol, true
		}
		return a, l, false
	}
	d := -l + minActivityExcl + a*(ucol-1)
	if (0 < d) && (d <= -a) {
		return a + d, l + d*ucol, true
	}
	return a, l, false
}

// StrengthenCoefficients applies coefficient strengthening, in place, to
// every eligible row and integer column of pd. Rows visited in index
// order; within a row, columns in storage order. The pass is deterministic,
// performs no I/O, and never fails: every rejection is an algebraic guard
// that silently leaves the entry unchanged.
//
// Eligibility: ranged rows (both bounds finite) are skipped outright, as
// two-sided tightening is deferred to other techniques. Rows whose every
// column is continuous have no integrality to exploit. Free rows, with
// neither bound finite, are an explicit no-op. Within a row, structural
// zeros, continuous columns, and inactive columns are passed over.
//
// A coefficient reduced to exactly zero stays stored but decrements the
// row's and column's nonzero counters once each; deactivation on a counter
// reaching zero is a downstream concern.
//
// The caller must guarantee exclusive access to pd for the duration of the
// pass.
func StrengthenCoefficients(pd *PresolveData) Stats {
	var stats Stats
	a := pd.A
	for i := 0; i < a.NumRows(); i++ {
		hasUpper := !math.IsInf(pd.URow[i], 0)
		hasLower := !math.IsInf(pd.LRow[i], 0)
		if hasUpper && hasLower {
			// Ranged row.
			continue
		}
		if !rowHasIntegerColumn(pd, i) {
			continue
		}
		switch {
		case hasUpper:
			strengthenRowUpper(pd, i, &stats)
		case hasLower:
			strengthenRowLower(pd, i, &stats)
		default:
			// Free row: neither side to tighten against.
		}
	}
	return stats
}

func rowHasIntegerColumn(pd *PresolveData, i int) bool {
	begin, end := pd.A.RowRange(i)
	for k := begin; k < end; k++ {
		if pd.VarTypes[pd.A.Column(k)] == Integer {
			return true
		}
	}
	return false
}

// strengthenRowUpper processes the upper-bounded side of row i. The row's
// maximal activity is computed once and thereafter maintained
// incrementally: each accepted change shifts it by the coefficient delta,
// so later columns in the same row see the already-tightened activity and
// bound rather than the originals.
func strengthenRowUpper(pd *PresolveData, i int, stats *Stats) {
	a := pd.A
	sup := MaximalActivity(a, i, pd.LCol, pd.UCol)
	u := pd.URow[i]
	begin, end := a.RowRange(i)
	for k := begin; k < end; k++ {
		coef := a.Value(k)
		j := a.Column(k)
		if (coef == 0) || (pd.VarTypes[j] != Integer) || !pd.ColActive[j] {
			continue
		}
		// The column contributes at its upper bound when coef > 0, lower
		// bound otherwise. Subtracting that contribution from the cached
		// supremum gives the excluded activity in O(1); if both are
		// infinite the difference is NaN and the guard below rejects.
		bound := pd.UCol[j]
		if coef < 0 {
			bound = pd.LCol[j]
		}
		newCoef, newBound, ok := strengthenUpper(coef, u, pd.LCol[j], pd.UCol[j], sup-coef*bound)
		if !ok {
			continue
		}
		a.SetValue(k, newCoef)
		pd.URow[i] = newBound
		u = newBound
		sup += (newCoef - coef) * bound
		stats.CoefficientsTightened++
		if newCoef == 0 {
			pd.RowNonzeros[i]--
			pd.ColNonzeros[j]--
			stats.EntriesZeroed++
		}
	}
}

// strengthenRowLower is the mirror of strengthenRowUpper for the
// lower-bounded side, maintaining the row's minimal activity.
func strengthenRowLower(pd *PresolveData, i int, stats *Stats) {
	a := pd.A
	inf := MinimalActivity(a, i, pd.LCol, pd.UCol)
	l := pd.LRow[i]
	begin, end := a.RowRange(i)
	for k := begin; k < end; k++ {
		coef := a.Value(k)
		j := a.Column(k)
		if (coef == 0) || (pd.VarTypes[j] != Integer) || !pd.ColActive[j] {
			continue
		}
		// Mirror of the upper side: the column contributes to the infimum
		// at its lower bound when coef > 0, upper bound otherwise.
		bound := pd.LCol[j]
		if coef < 0 {
			bound = pd.UCol[j]
		}
		newCoef, newBound, ok := strengthenLower(coef, l, pd.LCol[j], pd.UCol[j], inf-coef*bound)
		if !ok {
			continue
		}
		a.SetValue(k, newCoef)
		pd.LRow[i] = newBound
		l = newBound
		inf += (newCoef - coef) * bound
		stats.CoefficientsTightened++
		if newCoef == 0 {
			pd.RowNonzeros[i]--
			pd.ColNonzeros[j]--
			stats.EntriesZeroed++
		}
	}
}
