package monocheck

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrFlagLength             = errors.New("monocheck: flag vector length does not match column count")
	ErrBadColumn              = errors.New("monocheck: reference column out of range")
	ErrReferenceNotIncreasing = errors.New("monocheck: reference column is not strictly increasing")
)

// MonoCheck checks the columns of a matrix whose rows are already sorted by
// the reference column.
type MonoCheck struct {
	progVar mat.Matrix
}

func New(progVar mat.Matrix) *MonoCheck {
	return &MonoCheck{progVar: progVar}
}

// CheckStrictMonotonicity sets flags[j] to BestMonotonic when column j is
// strictly increasing or strictly decreasing with respect to column col, and
// to Excluded otherwise. The reference column itself is always Excluded.
func (c *MonoCheck) CheckStrictMonotonicity(flags []Flag, col int) error {
	nrows, ncols := c.progVar.Dims()
	if len(flags) != ncols {
		return fmt.Errorf("%w: %d flags for %d columns", ErrFlagLength, len(flags), ncols)
	}
	if col < 0 || col >= ncols {
		return fmt.Errorf("%w: column %d must lie within [0, %d)", ErrBadColumn, col, ncols)
	}

	domain := mat.Col(nil, col, c.progVar)
	for i := 1; i < nrows; i++ {
		if !(domain[i] > domain[i-1]) {
			return fmt.Errorf("%w: column %d, rows %d and %d (%g, %g)", ErrReferenceNotIncreasing, col, i-1, i, domain[i-1], domain[i])
		}
	}

	for j := 0; j < ncols; j++ {
		if j == col {
			flags[j] = Excluded
			continue
		}

		if StrictlyMonotonic(mat.Col(nil, j, c.progVar)) {
			flags[j] = BestMonotonic
		} else {
			flags[j] = Excluded
		}
	}

	return nil
}

// StrictlyMonotonic reports whether every consecutive step of values rises,
// or every consecutive step falls.
func StrictlyMonotonic(values []float64) bool {
	bigger, smaller := Steps(values)
	return bigger == len(values)-1 || smaller == len(values)-1
}

// Steps counts the consecutive rises and falls in values. Flat steps count as
// neither.
func Steps(values []float64) (bigger, smaller int) {
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			bigger++
		} else if values[i] < values[i-1] {
			smaller++
		}
	}
	return bigger, smaller
}
