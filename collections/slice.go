package collections

import (
	"sort"

	"github.com/Invicton-Labs/go-pigudf/constraints"
)

// SortSliceAscendingCopy will return a sorted (in ascending order) copy of the given slice, leaving
// elements with equal values where they are (stable sort). The original slice will not be modified.
func SortSliceAscendingCopy[SliceType constraints.Ordered](in []SliceType) (sorted []SliceType) {
	if in == nil {
		return nil
	}
	sorted = make([]SliceType, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
