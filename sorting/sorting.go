// Package sorting reorders the rows of a matrix by ascending value of a
// reference column. Every strategy is stable, so all of them produce the same
// matrix for the same input; the choice only matters for speed and debugging.
package sorting

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrUnknownMethod = errors.New("sorting: unknown sort method")
	ErrBadColumn     = errors.New("sorting: reference column out of range")
	ErrNaN           = errors.New("sorting: reference column contains NaN")
)

// Sorter sorts the matrix it was constructed with in place.
type Sorter interface {
	Sort() error
}

// Method constructs a Sorter for m keyed on column refCol.
type Method func(m *mat.Dense, refCol int) Sorter

// Methods maps each accepted sort_method value to its constructor.
var Methods = map[string]Method{
	"bubble":   NewBubbleSort,
	"standard": NewStandardSort,
	"brute":    NewBruteSort,
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

// New returns the Sorter named by method.
func New(method string, m *mat.Dense, refCol int) (Sorter, error) {
	constructor, exists := Methods[method]
	if !exists {
		return nil, fmt.Errorf("%w %q, valid methods include: %s", ErrUnknownMethod, method, strings.Join(MethodNames(), ", "))
	}

	if _, cols := m.Dims(); refCol < 0 || refCol >= cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrBadColumn, refCol, cols)
	}

	return constructor(m, refCol), nil
}

// referenceColumn copies column col out of m and rejects NaN, which has no
// place in a total order.
func referenceColumn(m *mat.Dense, col int) ([]float64, error) {
	rows, _ := m.Dims()

	out := mat.Col(make([]float64, rows), col, m)
	if floats.HasNaN(out) {
		return nil, fmt.Errorf("%w in column %d", ErrNaN, col)
	}

	return out, nil
}

// identity returns the permutation 0..n-1.
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// permuteRows rewrites m so that row i holds what was row indices[i].
func permuteRows(m *mat.Dense, indices []int) {
	original := mat.DenseCopyOf(m)
	for i, src := range indices {
		m.SetRow(i, original.RawRowView(src))
	}
}
