package eq

import (
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Predicate reports whether two values are equal under some policy.
//
// A Predicate must be reflexive and symmetric for the operations in
// package seq to behave sensibly; transitivity is assumed by Distinct
// and GroupBy when they represent an equivalence class by its first
// member.
type Predicate[T any] func(a, b T) bool

// Deep returns the default policy: deep structural equality.
//
// Slices, maps, and nested structs compare by content. This is the
// policy every seq operation documents as its baseline.
func Deep[T any]() Predicate[T] {
	return func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	}
}

// Same returns identity equality (Go ==) for comparable types.
//
// For pointer types this is reference identity; for value types it is
// shallow field equality.
func Same[T comparable]() Predicate[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// Ref returns reference identity for pointer-shaped values: two values
// are equal only when they share the same underlying pointer, map,
// slice header, channel, or function.
//
// Non-reference kinds fall back to == when the dynamic type is
// comparable, and are never equal otherwise. Slices compare by
// (data pointer, length) so two full views of the same array are equal
// but a subslice is not.
func Ref[T any]() Predicate[T] {
	return func(a, b T) bool {
		ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
		if !ra.IsValid() || !rb.IsValid() {
			return ra.IsValid() == rb.IsValid()
		}
		if ra.Kind() != rb.Kind() {
			return false
		}
		switch ra.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return ra.Pointer() == rb.Pointer()
		case reflect.Slice:
			return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
		}
		if ra.Type() != rb.Type() || !ra.Type().Comparable() {
			return false
		}
		return ra.Interface() == rb.Interface()
	}
}

// NFC returns string equality under Unicode NFC normalization, so
// precomposed and decomposed spellings of the same text compare equal.
func NFC() Predicate[string] {
	return func(a, b string) bool {
		return norm.NFC.String(a) == norm.NFC.String(b)
	}
}

// Fold returns case-insensitive string equality using full Unicode case
// folding, composed with NFC normalization.
func Fold() Predicate[string] {
	return func(a, b string) bool {
		// A cases.Caser is stateful and not safe for concurrent use, so
		// one is built per comparison and reused for both strings.
		folder := cases.Fold()
		return folder.String(norm.NFC.String(a)) == folder.String(norm.NFC.String(b))
	}
}

// By adapts a policy on a derived key into a policy on the source type.
//
//	byName := eq.By(func(u User) string { return u.Name }, eq.Fold())
func By[T, K any](key func(T) K, inner Predicate[K]) Predicate[T] {
	return func(a, b T) bool {
		return inner(key(a), key(b))
	}
}
