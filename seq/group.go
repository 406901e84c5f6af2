package seq

import "github.com/roach88/riffle/eq"

// Group is one bucket produced by grouping: a derived key and the
// original elements that produced it, in their original order.
type Group[K, T any] struct {
	Key   K
	Items []T
}

// GroupBy buckets s by derived key in a single scan. For each element
// the key is computed once, then matched against previously seen keys
// under p; the first match wins, and a miss starts a new group at the
// end of key-insertion order.
//
// Matching is a linear scan over the keys seen so far: an arbitrary
// predicate admits no hash, so the reference algorithm is quadratic in
// the number of distinct keys. When keys are comparable and Go == is the
// intended policy, use GroupByKey instead.
func GroupBy[T, K any](p eq.Predicate[K], key func(T) K, s []T) []Group[K, T] {
	var groups []Group[K, T]
	for _, v := range s {
		k := key(v)
		found := false
		for i := range groups {
			if p(groups[i].Key, k) {
				groups[i].Items = append(groups[i].Items, v)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, Group[K, T]{Key: k, Items: []T{v}})
		}
	}
	return groups
}

// GroupByKey is the hash-backed fast path of GroupBy for comparable
// keys. It is only valid when identity equality (==) is the intended
// policy; group order is still first occurrence of each key.
func GroupByKey[T any, K comparable](key func(T) K, s []T) []Group[K, T] {
	index := make(map[K]int, len(s))
	var groups []Group[K, T]
	for _, v := range s {
		k := key(v)
		if i, ok := index[k]; ok {
			groups[i].Items = append(groups[i].Items, v)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, Group[K, T]{Key: k, Items: []T{v}})
	}
	return groups
}
