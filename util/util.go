// Package util holds slow-but-sure dense helpers for verifying the sparse
// presolve code in tests: dense activities, pointwise constraint
// satisfaction, and enumeration of the integer lattice inside a box.
package util

import (
	"fmt"
	"math"
)

// DenseActivity returns the dot product of a dense coefficient row with a
// point x.
func DenseActivity(coefs, x []float64) (float64, error) {
	if len(coefs) != len(x) {
		return 0, fmt.Errorf(
			"DenseActivity: %d coefficients but %d point components", len(coefs), len(x),
		)
	}
	activity := 0.0
	for j := 0; j < len(coefs); j++ {
		if coefs[j] != 0 {
			activity += coefs[j] * x[j]
		}
	}
	return activity, nil
}

// DenseMaximalActivity returns the supremum of a dense coefficient row over
// the box [lcol, ucol]. It is the dense reference the sparse activity
// calculator is tested against.
func DenseMaximalActivity(coefs, lcol, ucol []float64) float64 {
	activity := 0.0
	for j := 0; j < len(coefs); j++ {
		if coefs[j] > 0 {
			activity += coefs[j] * ucol[j]
		} else if coefs[j] < 0 {
			activity += coefs[j] * lcol[j]
		}
	}
	return activity
}

// DenseMinimalActivity is the mirror of DenseMaximalActivity: the infimum
// of a dense coefficient row over the box.
func DenseMinimalActivity(coefs, lcol, ucol []float64) float64 {
	activity := 0.0
	for j := 0; j < len(coefs); j++ {
		if coefs[j] > 0 {
			activity += coefs[j] * lcol[j]
		} else if coefs[j] < 0 {
			activity += coefs[j] * ucol[j]
		}
	}
	return activity
}

// SatisfiesRow reports whether the point x satisfies lrow <= coefs.x <= urow,
// with infinite bounds never binding.
func SatisfiesRow(coefs, x []float64, lrow, urow float64) (bool, error) {
	activity, err := DenseActivity(coefs, x)
	if err != nil {
		return false, fmt.Errorf("SatisfiesRow: %s", err.Error())
	}
	if !math.IsInf(urow, 0) && (activity > urow) {
		return false, nil
	}
	if !math.IsInf(lrow, 0) && (activity < lrow) {
		return false, nil
	}
	return true, nil
}

// EnumerateLattice calls visit with every point of the integer lattice
// inside the box [lcol, ucol], restricted to the coordinates listed in
// dims; the other coordinates of the visited point keep the values they
// have in base. The box must be finite in every enumerated coordinate. The
// point passed to visit is reused between calls; visit must not retain it.
func EnumerateLattice(
	base, lcol, ucol []float64, dims []int, visit func(x []float64),
) error {
	const caller = "EnumerateLattice"
	point := make([]float64, len(base))
	copy(point, base)
	for _, j := range dims {
		if (j < 0) || (len(base) <= j) {
			return fmt.Errorf("%s: dimension %d is not in {0,...,%d}", caller, j, len(base)-1)
		}
		if math.IsInf(lcol[j], 0) || math.IsInf(ucol[j], 0) {
			return fmt.Errorf("%s: dimension %d has an infinite bound", caller, j)
		}
	}
	var recurse func(depth int)
	recurse = func(depth int) {
		if depth == len(dims) {
			visit(point)
			return
		}
		j := dims[depth]
		for v := math.Ceil(lcol[j]); v <= math.Floor(ucol[j]); v++ {
			point[j] = v
			recurse(depth + 1)
		}
	}
	recurse(0)
	return nil
}
