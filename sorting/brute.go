package sorting

import "gonum.org/v1/gonum/mat"

// BruteSort ranks every row by comparing it against every other row. It is
// O(n^2) and exists as an independent check on the other strategies.
type BruteSort struct {
	data   *mat.Dense
	refCol int
}

func NewBruteSort(m *mat.Dense, refCol int) Sorter {
	return &BruteSort{data: m, refCol: refCol}
}

func (b *BruteSort) Sort() error {
	ref, err := referenceColumn(b.data, b.refCol)
	if err != nil {
		return err
	}

	indices := make([]int, len(ref))
	for i := range ref {
		rank := 0
		for j := range ref {
			// Equal keys keep their original relative order.
			if ref[j] < ref[i] || (ref[j] == ref[i] && j < i) {
				rank++
			}
		}
		indices[rank] = i
	}

	permuteRows(b.data, indices)

	return nil
}
