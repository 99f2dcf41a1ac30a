package flamelet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/interp"
)

var (
	ErrUnknownMethod            = errors.New("flamelet: unknown interpolation method")
	ErrTooFewRows               = errors.New("flamelet: at least two rows are needed to interpolate")
	ErrDuplicateMixtureFraction = errors.New("flamelet: mixture fraction values must be distinct")
	ErrOutOfRange               = errors.New("flamelet: mixture fraction outside the tabulated range")
)

// Columns names the independent and reference columns of a table.
type Columns struct {
	MixtureFraction string
	Temperature     string
}

var DefaultColumns = Columns{
	MixtureFraction: "Z",
	Temperature:     "temperature",
}

// Methods maps each accepted interp_method value to a fresh predictor.
var Methods = map[string]func() interp.FittablePredictor{
	"linear":          func() interp.FittablePredictor { return &interp.PiecewiseLinear{} },
	"constant":        func() interp.FittablePredictor { return &interp.PiecewiseConstant{} },
	"akima":           func() interp.FittablePredictor { return &interp.AkimaSpline{} },
	"fritsch_butland": func() interp.FittablePredictor { return &interp.FritschButland{} },
}

// MethodNames lists the accepted method names in a stable order.
func MethodNames() []string {
	out := make([]string, 0, len(Methods))
	for m := range Methods {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}

// Interpolated is one table evaluated at a single mixture fraction.
type Interpolated struct {
	// Row is [T(z), Y_1(z), ..., Y_k(z)].
	Row []float64

	// Locs holds the column index of each species in the table.
	Locs []int
}

// Interpolate evaluates the temperature and each species column at mixture
// fraction z.
func (t *Table) Interpolate(cols Columns, species []string, z float64, method string) (Interpolated, error) {
	out := Interpolated{}

	newPredictor, exists := Methods[method]
	if !exists {
		return out, fmt.Errorf("%w %q, valid methods include: %s", ErrUnknownMethod, method, strings.Join(MethodNames(), ", "))
	}

	zCol, err := t.Column(cols.MixtureFraction)
	if err != nil {
		return out, err
	}
	tCol, err := t.Column(cols.Temperature)
	if err != nil {
		return out, err
	}

	out.Locs = make([]int, len(species))
	for i, s := range species {
		if out.Locs[i], err = t.Column(s); err != nil {
			return out, err
		}
	}

	order, xs, err := t.mixtureFractionOrder(zCol)
	if err != nil {
		return out, err
	}
	if z < xs[0] || z > xs[len(xs)-1] {
		return out, fmt.Errorf("%w: %g not in [%g, %g] in %s", ErrOutOfRange, z, xs[0], xs[len(xs)-1], t.Path)
	}

	out.Row = make([]float64, 0, len(species)+1)
	for _, j := range append([]int{tCol}, out.Locs...) {
		ys := make([]float64, len(order))
		for i, row := range order {
			ys[i] = t.Rows[row][j]
		}

		p := newPredictor()
		if err := p.Fit(xs, ys); err != nil {
			return out, fmt.Errorf("%s: column %q: %w", t.Path, t.Titles[j], err)
		}
		out.Row = append(out.Row, p.Predict(z))
	}

	return out, nil
}

// mixtureFractionOrder returns the row order that sorts the table by mixture
// fraction, and the sorted mixture fractions themselves.
func (t *Table) mixtureFractionOrder(zCol int) ([]int, []float64, error) {
	if len(t.Rows) < 2 {
		return nil, nil, fmt.Errorf("%w: %s has %d", ErrTooFewRows, t.Path, len(t.Rows))
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return t.Rows[order[i]][zCol] < t.Rows[order[j]][zCol]
	})

	xs := make([]float64, len(order))
	for i, row := range order {
		xs[i] = t.Rows[row][zCol]
		if i > 0 && !(xs[i] > xs[i-1]) {
			return nil, nil, fmt.Errorf("%w: %g repeats in %s", ErrDuplicateMixtureFraction, xs[i], t.Path)
		}
	}

	return order, xs, nil
}
