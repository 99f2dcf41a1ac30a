package monocheck

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCheckStrictMonotonicity(t *testing.T) {
	m := mat.NewDense(4, 5, []float64{
		// T     rising falling bumpy flat
		1000, 0.1, 0.9, 0.1, 0.5,
		1200, 0.2, 0.8, 0.3, 0.5,
		1400, 0.3, 0.7, 0.2, 0.5,
		1600, 0.4, 0.6, 0.4, 0.5,
	})

	flags := make([]Flag, 5)
	require.NoError(t, New(m).CheckStrictMonotonicity(flags, 0))
	require.Equal(t, []Flag{Excluded, BestMonotonic, BestMonotonic, Excluded, Excluded}, flags)
	require.Zero(t, Sum(flags)%3)
	require.Equal(t, 2, Count(flags, BestMonotonic))
}

func TestCheckRejectsUnsortedReference(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1000, 0.1,
		1000, 0.2,
		1200, 0.3,
	})

	flags := make([]Flag, 2)
	err := New(m).CheckStrictMonotonicity(flags, 0)
	require.ErrorIs(t, err, ErrReferenceNotIncreasing)
}

func TestCheckRejectsBadArguments(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	require.ErrorIs(t, New(m).CheckStrictMonotonicity(make([]Flag, 3), 0), ErrFlagLength)
	require.ErrorIs(t, New(m).CheckStrictMonotonicity(make([]Flag, 2), 2), ErrBadColumn)
}

func TestSteps(t *testing.T) {
	bigger, smaller := Steps([]float64{1, 2, 2, 1, 3})
	require.Equal(t, 2, bigger)
	require.Equal(t, 1, smaller)

	require.True(t, StrictlyMonotonic([]float64{3, 2, 1}))
	require.False(t, StrictlyMonotonic([]float64{1, 1, 2}))
}

func TestFlagString(t *testing.T) {
	require.Equal(t, "best monotonic", BestMonotonic.String())
	require.Equal(t, "invalid", Flag(7).String())
}
