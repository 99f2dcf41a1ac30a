package findprogvar

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Summary matrix columns.
const (
	SummaryProgVar = iota
	SummaryFileIndex
	SummaryTemperature
	summaryCols
)

// BuildMatrices lays the samples out as the interpolated data matrix (files x
// species+1) and the file summary matrix (files x 3). Summary column 0 starts
// as the stoichiometric temperature and is replaced by the chosen progress
// variable once one is selected.
func BuildMatrices(samples []Sample, species int) (interp, summary *mat.Dense, err error) {
	if len(samples) == 0 {
		return nil, nil, ErrTooFewSamples
	}

	interp = mat.NewDense(len(samples), species+1, nil)
	summary = mat.NewDense(len(samples), summaryCols, nil)

	for i, s := range samples {
		if len(s.Row) != species+1 {
			return nil, nil, fmt.Errorf("%w: %s has %d interpolated values, expected %d", ErrDimensionMismatch, s.File, len(s.Row), species+1)
		}
		interp.SetRow(i, s.Row)

		summary.Set(i, SummaryProgVar, s.Row[0])
		summary.Set(i, SummaryFileIndex, float64(i))
		summary.Set(i, SummaryTemperature, s.Row[0])
	}

	return interp, summary, nil
}

// Evaluate returns interp x combos: entry (i, j) is the value of candidate j
// in file i, and column 0 carries the stoichiometric reference through.
func Evaluate(interp, combos mat.Matrix) (*mat.Dense, error) {
	files, cols := interp.Dims()
	rows, candidates := combos.Dims()
	if cols != rows {
		return nil, fmt.Errorf("%w: interpolated data has %d columns but combinations have %d rows", ErrDimensionMismatch, cols, rows)
	}

	out := mat.NewDense(files, candidates, nil)
	out.Mul(interp, combos)

	return out, nil
}
