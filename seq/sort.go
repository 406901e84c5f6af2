package seq

import (
	"sort"

	"github.com/roach88/riffle/order"
)

// SortStable returns a new sequence sorted ascending under less, never
// mutating the input. Ties (neither less(a, b) nor less(b, a)) keep
// their original relative order.
func SortStable[T any](less order.Less[T], s []T) []T {
	out := append([]T(nil), s...)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// GradeUp returns the permutation of original indices that, applied to
// s via Select, yields the ascending stable sort. The same permutation
// can be applied to a parallel sequence; s itself is never mutated.
func GradeUp[T any](less order.Less[T], s []T) []int {
	return grade(less, s)
}

// GradeDown is GradeUp for the descending stable sort. Tied elements
// keep their original relative order, matching SortStable under a
// reversed comparator.
func GradeDown[T any](less order.Less[T], s []T) []int {
	return grade(order.Reverse(less), s)
}

func grade[T any](less order.Less[T], s []T) []int {
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return less(s[idx[i]], s[idx[j]])
	})
	return idx
}

// Select gathers the elements of s at the given indices, in index order.
// Applying GradeUp's result reproduces SortStable. Fails with
// ErrCodeInvalidArgument on an out-of-range index.
func Select[T any](indices []int, s []T) ([]T, error) {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s) {
			return nil, newInvalidArgument("Select", "index %d out of range [0, %d)", i, len(s))
		}
		out = append(out, s[i])
	}
	return out, nil
}
