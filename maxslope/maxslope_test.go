package maxslope

import (
	"testing"

	"github.com/carbocation/progvar/monocheck"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	x = monocheck.Excluded
	o = monocheck.OtherMonotonic
	b = monocheck.BestMonotonic
)

func TestSteepestMagnitudeWins(t *testing.T) {
	m := mat.NewDense(4, 4, []float64{
		1000, 0.1, 0.9, 0.1,
		1200, 0.2, 0.7, 0.3,
		1400, 0.3, 0.5, 0.2,
		1600, 0.4, 0.3, 0.4,
	})

	for _, test := range TestNames() {
		t.Run(test, func(t *testing.T) {
			scorer, err := New(test, m)
			require.NoError(t, err)

			flags := []monocheck.Flag{x, b, b, x}
			require.NoError(t, scorer.MostMonotonic(flags, 0))

			// The falling column has twice the slope magnitude.
			require.Equal(t, []monocheck.Flag{x, o, b, x}, flags)
			require.Equal(t, 1, monocheck.Count(flags, b))
		})
	}
}

func TestRegressionAndEndPointCanDisagree(t *testing.T) {
	m := mat.NewDense(4, 3, []float64{
		1000, 0, 0,
		1200, 0.001, 0.5,
		1400, 0.002, 0.9,
		1600, 1.0, 0.95,
	})

	lin := NewLinRegression(m)
	flags := []monocheck.Flag{x, b, b}
	require.NoError(t, lin.MostMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, o, b}, flags)
	require.InDelta(t, 0.0015005, lin.(*LinRegression).Slopes[1], 1e-9)
	require.InDelta(t, 0.001625, lin.(*LinRegression).Slopes[2], 1e-9)

	end := NewEndPointSlope(m)
	flags = []monocheck.Flag{x, b, b}
	require.NoError(t, end.MostMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, b, o}, flags)
}

func TestTieKeepsLowestColumn(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 1, 1,
		2, 2, 2,
		3, 3, 3,
	})

	scorer, err := New("linear_regression", m)
	require.NoError(t, err)

	flags := []monocheck.Flag{x, b, b}
	require.NoError(t, scorer.MostMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, b, o}, flags)
}

func TestNonMonotonicColumnsAreIgnored(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 1, 100,
		2, 2, -100,
		3, 3, 100,
	})

	scorer, err := New("end_point_slope", m)
	require.NoError(t, err)

	flags := []monocheck.Flag{x, b, x}
	require.NoError(t, scorer.MostMonotonic(flags, 0))
	require.Equal(t, []monocheck.Flag{x, b, x}, flags)
}

func TestErrors(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 1, 1, 2})

	_, err := New("steepest", m)
	require.ErrorIs(t, err, ErrUnknownTest)
	require.Contains(t, err.Error(), "steepest")

	scorer, err := New("linear_regression", m)
	require.NoError(t, err)
	require.ErrorIs(t, scorer.MostMonotonic([]monocheck.Flag{x, x}, 0), ErrNoMonotonic)
	require.ErrorIs(t, scorer.MostMonotonic([]monocheck.Flag{x}, 0), ErrFlagLength)
	require.ErrorIs(t, scorer.MostMonotonic([]monocheck.Flag{x, b}, 5), ErrBadColumn)
	require.ErrorIs(t, scorer.MostMonotonic([]monocheck.Flag{x, b}, 0), ErrFlatDomain)
}
