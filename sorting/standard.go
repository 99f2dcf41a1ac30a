package sorting

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// StandardSort delegates to the standard library's stable sort.
type StandardSort struct {
	data   *mat.Dense
	refCol int
}

func NewStandardSort(m *mat.Dense, refCol int) Sorter {
	return &StandardSort{data: m, refCol: refCol}
}

func (s *StandardSort) Sort() error {
	ref, err := referenceColumn(s.data, s.refCol)
	if err != nil {
		return err
	}

	indices := identity(len(ref))
	sort.SliceStable(indices, func(i, j int) bool {
		return ref[indices[i]] < ref[indices[j]]
	})

	permuteRows(s.data, indices)

	return nil
}
