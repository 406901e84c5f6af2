package seq

import "github.com/roach88/riffle/eq"

// Contains reports whether some member of s is equal to v under p.
func Contains[T any](p eq.Predicate[T], s []T, v T) bool {
	for _, member := range s {
		if p(member, v) {
			return true
		}
	}
	return false
}

// Distinct keeps each element the first time its equal-class is seen and
// drops subsequent equal members, preserving first-occurrence order.
//
// Accepted elements are matched by linear scan; see DistinctKey for the
// hash-backed fast path when == is the intended policy.
func Distinct[T any](p eq.Predicate[T], s []T) []T {
	var out []T
	for _, v := range s {
		if !Contains(p, out, v) {
			out = append(out, v)
		}
	}
	return out
}

// DistinctKey is the hash-backed fast path of Distinct for elements with
// a comparable derived key. Only valid when identity equality (==) on
// the key is the intended policy.
func DistinctKey[T any, K comparable](key func(T) K, s []T) []T {
	seen := make(map[K]struct{}, len(s))
	var out []T
	for _, v := range s {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Union returns all of a, in order and including a's own duplicates,
// followed by the elements of b not equal under p to anything already
// accumulated (from a or from b so far).
func Union[T any](p eq.Predicate[T], a, b []T) []T {
	out := append([]T(nil), a...)
	for _, v := range b {
		if !Contains(p, out, v) {
			out = append(out, v)
		}
	}
	return out
}

// Intersection returns the elements of a, in a's order, that are equal
// under p to at least one element of b. Duplicates in a are preserved
// when each instance matches.
func Intersection[T any](p eq.Predicate[T], a, b []T) []T {
	var out []T
	for _, v := range a {
		if Contains(p, b, v) {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the elements of a, in order, with no equal
// counterpart in b under p.
func Difference[T any](p eq.Predicate[T], a, b []T) []T {
	var out []T
	for _, v := range a {
		if !Contains(p, b, v) {
			out = append(out, v)
		}
	}
	return out
}
