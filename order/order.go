// Package order defines the comparator type consumed by the ordering
// operations in package seq, plus stock comparators.
//
// A comparator is a "sorts before" predicate. It must be consistent for
// the duration of a single sort call; ties (neither argument sorts before
// the other) keep their original relative order under every stable
// operation in seq.
package order

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Less reports whether a sorts before b.
type Less[T any] func(a, b T) bool

// Natural returns the natural ascending comparator for ordered types.
func Natural[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// Reverse flips the direction of a comparator.
//
// Note that reversing the comparator does not reverse tie order: stable
// operations still keep tied elements in their original relative order.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// By projects elements through a key function before comparing.
//
//	byAge := order.By(func(u User) int { return u.Age }, order.Natural[int]())
func By[T, K any](key func(T) K, less Less[K]) Less[T] {
	return func(a, b T) bool {
		return less(key(a), key(b))
	}
}

// Collated returns a locale-aware string comparator for the given
// language tag, backed by the Unicode collation algorithm.
//
// The returned comparator owns a collator with internal buffers and is
// not safe for concurrent use; derive one per goroutine.
func Collated(tag language.Tag, opts ...collate.Option) Less[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}
