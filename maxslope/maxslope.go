// Package maxslope picks the most monotonic of several strictly monotonic
// progress variables: the one whose slope against the reference column has
// the largest magnitude.
package maxslope

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/carbocation/progvar/monocheck"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrUnknownTest = errors.New("maxslope: unknown maximum slope test")
	ErrFlagLength  = errors.New("maxslope: flag vector length does not match column count")
	ErrBadColumn   = errors.New("maxslope: reference column out of range")
	ErrNoMonotonic = errors.New("maxslope: no progress variable is monotonic")
	ErrFlatDomain  = errors.New("maxslope: reference column has no spread, slope is undefined")
)

// Scorer rewrites a flag vector so that exactly one BestMonotonic column
// survives and every other BestMonotonic column becomes OtherMonotonic.
type Scorer interface {
	MostMonotonic(flags []monocheck.Flag, col int) error
}

// slopeFunc returns the slope of c against the reference values t.
type slopeFunc func(t, c []float64) (float64, error)

// Tests maps each accepted max_slope_test value to its constructor.
var Tests = map[string]func(progVar mat.Matrix) Scorer{
	"linear_regression": NewLinRegression,
	"end_point_slope":   NewEndPointSlope,
}

// TestNames lists the accepted test names in a stable order.
func TestNames() []string {
	out := make([]string, 0, len(Tests))
	for name := range Tests {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// New returns the Scorer named by test, bound to progVar.
func New(test string, progVar mat.Matrix) (Scorer, error) {
	constructor, exists := Tests[test]
	if !exists {
		return nil, fmt.Errorf("%w %q, valid tests include: %s", ErrUnknownTest, test, strings.Join(TestNames(), ", "))
	}

	return constructor(progVar), nil
}

// slopeScorer holds what both tests share; only the slope differs.
type slopeScorer struct {
	progVar mat.Matrix
	slope   slopeFunc

	// Slopes holds the slope of every column after MostMonotonic. Columns
	// that were not BestMonotonic on entry hold 0.
	Slopes []float64
}

func (s *slopeScorer) MostMonotonic(flags []monocheck.Flag, col int) error {
	_, ncols := s.progVar.Dims()
	if len(flags) != ncols {
		return fmt.Errorf("%w: %d flags for %d columns", ErrFlagLength, len(flags), ncols)
	}
	if col < 0 || col >= ncols {
		return fmt.Errorf("%w: column %d must lie within [0, %d)", ErrBadColumn, col, ncols)
	}

	domain := mat.Col(nil, col, s.progVar)

	s.Slopes = make([]float64, ncols)
	index := -1
	for j := 0; j < ncols; j++ {
		if flags[j] != monocheck.BestMonotonic {
			continue
		}

		slope, err := s.slope(domain, mat.Col(nil, j, s.progVar))
		if err != nil {
			return err
		}
		s.Slopes[j] = slope

		// Strictly greater, so the lowest column wins a tie.
		if index < 0 || math.Abs(slope) > math.Abs(s.Slopes[index]) {
			index = j
		}
	}

	if index < 0 {
		return ErrNoMonotonic
	}

	for j := range flags {
		if j != index && flags[j] == monocheck.BestMonotonic {
			flags[j] = monocheck.OtherMonotonic
		}
	}

	return nil
}
