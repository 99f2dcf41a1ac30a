package sorting

import "gonum.org/v1/gonum/mat"

// BubbleSort is an exchange sort over an index permutation. Only strictly
// greater neighbours are swapped, which keeps it stable.
type BubbleSort struct {
	data   *mat.Dense
	refCol int
}

func NewBubbleSort(m *mat.Dense, refCol int) Sorter {
	return &BubbleSort{data: m, refCol: refCol}
}

func (b *BubbleSort) Sort() error {
	ref, err := referenceColumn(b.data, b.refCol)
	if err != nil {
		return err
	}
	indices := identity(len(ref))

	swapped := true
	for pass := 1; swapped; pass++ {
		swapped = false
		for i := 0; i < len(ref)-pass; i++ {
			if ref[i] > ref[i+1] {
				ref[i], ref[i+1] = ref[i+1], ref[i]
				indices[i], indices[i+1] = indices[i+1], indices[i]
				swapped = true
			}
		}
	}

	permuteRows(b.data, indices)

	return nil
}
