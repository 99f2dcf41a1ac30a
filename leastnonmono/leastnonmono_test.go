package leastnonmono

import (
	"testing"

	"github.com/carbocation/progvar/monocheck"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	x = monocheck.Excluded
	l = monocheck.LeastNonMonotonic
)

// Column 1 has one small dip, column 2 has one large dip and column 3 is flat.
func candidates() *mat.Dense {
	return mat.NewDense(5, 4, []float64{
		1000, 0.10, 0.10, 0.5,
		1100, 0.20, 0.50, 0.5,
		1200, 0.19, 0.20, 0.5,
		1300, 0.40, 0.60, 0.5,
		1400, 0.50, 0.70, 0.5,
	})
}

func TestSimplePicksFewestOffendingSteps(t *testing.T) {
	m := mat.NewDense(5, 3, []float64{
		1000, 0.1, 0.1,
		1100, 0.2, 0.3,
		1200, 0.1, 0.2,
		1300, 0.3, 0.1,
		1400, 0.4, 0.4,
	})

	scorer, err := New("simple", m)
	require.NoError(t, err)

	flags := []monocheck.Flag{x, x, x}
	require.NoError(t, scorer.LeastNonMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, l, x}, flags)
	require.Equal(t, []float64{-1, 1, 2}, scorer.(*Simple).Scores)
}

func TestSimpleTieKeepsLowestColumn(t *testing.T) {
	scorer := NewSimple(candidates())

	flags := []monocheck.Flag{x, x, x, x}
	require.NoError(t, scorer.LeastNonMonotonic(flags, 0))

	// Columns 1 and 2 each have a single falling step.
	require.Equal(t, []monocheck.Flag{x, l, x, x}, flags)
	require.Equal(t, 4.0, scorer.(*Simple).Scores[3])
}

func TestAdvancedWeighsStepSize(t *testing.T) {
	scorer := NewAdvanced(candidates())

	flags := []monocheck.Flag{x, x, x, x}
	require.NoError(t, scorer.LeastNonMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, l, x, x}, flags)

	scores := scorer.(*Advanced).Scores
	require.InDelta(t, 0.01/0.42, scores[1], 1e-12)
	require.InDelta(t, 0.3/1.2, scores[2], 1e-12)
	require.Equal(t, 1.0, scores[3])
}

func TestAdvancedForgivesTinyDips(t *testing.T) {
	m := mat.NewDense(5, 3, []float64{
		1000, 0.0, 0.0,
		1100, 1.0, 0.5,
		1200, 0.2, 0.4999,
		1300, 1.5, 0.9,
		1400, 2.0, 0.8999,
	})

	flags := []monocheck.Flag{x, x, x}
	require.NoError(t, NewAdvanced(m).LeastNonMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, x, l}, flags)

	flags = []monocheck.Flag{x, x, x}
	require.NoError(t, NewSimple(m).LeastNonMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, l, x}, flags)
}

func TestErrors(t *testing.T) {
	_, err := New("fancy", candidates())
	require.ErrorIs(t, err, ErrUnknownCheck)
	require.Contains(t, err.Error(), "fancy")

	scorer := NewSimple(candidates())
	require.ErrorIs(t, scorer.LeastNonMonotonic(make([]monocheck.Flag, 2), 0), ErrFlagLength)
	require.ErrorIs(t, scorer.LeastNonMonotonic(make([]monocheck.Flag, 4), -1), ErrBadColumn)

	single := NewSimple(mat.NewDense(2, 1, []float64{1, 2}))
	require.ErrorIs(t, single.LeastNonMonotonic(make([]monocheck.Flag, 1), 0), ErrNoCandidates)
}
