package seq

// FoldLeft walks s left to right, threading an accumulator:
// acc0 = seed, acc[i] = combine(acc[i-1], s[i]). On an empty sequence it
// returns seed untouched and never invokes combine.
func FoldLeft[A, T any](seed A, s []T, combine func(A, T) A) A {
	acc := seed
	for _, v := range s {
		acc = combine(acc, v)
	}
	return acc
}

// Reduce is the no-seed left fold: the first element seeds the fold over
// the rest. A single-element sequence returns that element without
// invoking combine. An empty sequence fails with ErrCodeEmptyFold.
func Reduce[T any](s []T, combine func(T, T) T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newEmptyFold("Reduce")
	}
	return FoldLeft(s[0], s[1:], combine), nil
}

// ReduceOr is Reduce with an explicit zero-argument fallback invoked on
// empty input instead of failing.
func ReduceOr[T any](s []T, combine func(T, T) T, fallback func() T) T {
	if len(s) == 0 {
		return fallback()
	}
	return FoldLeft(s[0], s[1:], combine)
}

// FoldRight replaces s with nested right-associated applications of
// combine: for [a, b, c] the result is combine(a, combine(b, combine(c,
// seed))). Iteration runs backwards over the slice, so no recursion and
// no auxiliary stack are involved. On an empty sequence it returns seed.
func FoldRight[A, T any](seed A, s []T, combine func(T, A) A) A {
	acc := seed
	for i := len(s) - 1; i >= 0; i-- {
		acc = combine(s[i], acc)
	}
	return acc
}

// ReduceRight is the no-seed right fold: the last element seeds a right
// fold over the preceding prefix, so for [a, b, c] the result is
// combine(a, combine(b, c)). A single-element sequence returns that
// element without invoking combine. An empty sequence fails with
// ErrCodeEmptyFold.
//
// For associative and commutative combine, ReduceRight agrees with
// FoldLeft seeded with the identity.
func ReduceRight[T any](s []T, combine func(T, T) T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, newEmptyFold("ReduceRight")
	}
	last := len(s) - 1
	return FoldRight(s[last], s[:last], combine), nil
}

// ReduceRightOr is ReduceRight with an explicit zero-argument fallback
// invoked on empty input instead of failing.
func ReduceRightOr[T any](s []T, combine func(T, T) T, fallback func() T) T {
	if len(s) == 0 {
		return fallback()
	}
	last := len(s) - 1
	return FoldRight(s[last], s[:last], combine)
}
