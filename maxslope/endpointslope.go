package maxslope

import "gonum.org/v1/gonum/mat"

// EndPointSlope scores each column by the secant through its first and last
// rows, (C_n-C_1)/(T_n-T_1).
type EndPointSlope struct {
	slopeScorer
}

func NewEndPointSlope(progVar mat.Matrix) Scorer {
	return &EndPointSlope{slopeScorer{progVar: progVar, slope: endPointSlope}}
}

func endPointSlope(t, c []float64) (float64, error) {
	last := len(t) - 1
	if last < 1 || t[last] == t[0] {
		return 0, ErrFlatDomain
	}

	return (c[last] - c[0]) / (t[last] - t[0]), nil
}
