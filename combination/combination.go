// Package combination enumerates the candidate progress variables: every
// non-empty subset of the test species, encoded as 0/1 coefficient columns.
package combination

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaxSpecies bounds k. The full search allocates (k+1) x 2^k float64s.
const MaxSpecies = 20

var (
	ErrNoSpecies      = errors.New("combination: at least one test species is required")
	ErrTooManySpecies = fmt.Errorf("combination: at most %d test species are supported", MaxSpecies)
)

// TotalCombinations returns the number of non-empty subsets of k species.
func TotalCombinations(k int) int {
	if k < 1 {
		return 0
	}
	return 1<<uint(k) - 1
}

// Generate builds the (k+1) x (C+1) combinations matrix. Element [0,0] is the
// bias that carries the stoichiometric reference value through the product
// untouched; rows 1..k of column j hold the coefficients of candidate j.
//
// With skip set, C is 1 and the single candidate sums every species.
// Otherwise candidate j includes species i when bit i of j is set, so for
// species (A, B) the candidates are A, B and A+B, in that order.
func Generate(k int, skip bool) (*mat.Dense, error) {
	if k < 1 {
		return nil, ErrNoSpecies
	}
	if k > MaxSpecies {
		return nil, ErrTooManySpecies
	}

	if skip {
		combos := mat.NewDense(k+1, 2, nil)
		combos.Set(0, 0, 1)
		for i := 0; i < k; i++ {
			combos.Set(i+1, 1, 1)
		}
		return combos, nil
	}

	total := TotalCombinations(k)
	combos := mat.NewDense(k+1, total+1, nil)
	combos.Set(0, 0, 1)
	for j := 1; j <= total; j++ {
		for i := 0; i < k; i++ {
			if j&(1<<uint(i)) != 0 {
				combos.Set(i+1, j, 1)
			}
		}
	}

	return combos, nil
}

// Subset returns the 0-based species indices with coefficient 1 in column col.
func Subset(combos mat.Matrix, col int) []int {
	rows, _ := combos.Dims()

	out := make([]int, 0, rows-1)
	for i := 1; i < rows; i++ {
		if combos.At(i, col) == 1 {
			out = append(out, i-1)
		}
	}

	return out
}

// Coefficients returns the species coefficients of column col, bias excluded.
func Coefficients(combos mat.Matrix, col int) []float64 {
	rows, _ := combos.Dims()

	out := make([]float64, rows-1)
	for i := 1; i < rows; i++ {
		out[i-1] = combos.At(i, col)
	}

	return out
}
