package maxslope

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LinRegression scores each column by the slope of its least squares line
//
//	sum((C_i-C_ave)(T_i-T_ave)) / sum((T_i-T_ave)^2)
type LinRegression struct {
	slopeScorer
}

func NewLinRegression(progVar mat.Matrix) Scorer {
	return &LinRegression{slopeScorer{progVar: progVar, slope: regressionSlope}}
}

func regressionSlope(t, c []float64) (float64, error) {
	if stat.Variance(t, nil) == 0 {
		return 0, ErrFlatDomain
	}

	_, beta := stat.LinearRegression(t, c, nil, false)

	return beta, nil
}
