package seq

import "github.com/roach88/riffle/order"

// MaxBy returns the maximum element under less: the champion is replaced
// whenever it sorts before the current element, so the earliest of tied
// maxima wins. Fails with ErrCodeEmptyInput on an empty sequence; unlike
// the no-seed folds there is no fallback variant.
func MaxBy[T any](less order.Less[T], s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newEmptyInput("MaxBy")
	}
	return FoldLeft(s[0], s[1:], func(champ, v T) T {
		if less(champ, v) {
			return v
		}
		return champ
	}), nil
}

// MinBy mirrors MaxBy for the minimum: the champion is replaced whenever
// the current element sorts before it, so the earliest of tied minima
// wins. Fails with ErrCodeEmptyInput on an empty sequence.
func MinBy[T any](less order.Less[T], s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newEmptyInput("MinBy")
	}
	return FoldLeft(s[0], s[1:], func(champ, v T) T {
		if less(v, champ) {
			return v
		}
		return champ
	}), nil
}
