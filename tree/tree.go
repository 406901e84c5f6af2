// Package tree implements recursive map/reduce over trees of cons-like
// pairs: values that are plain leaves, true pairs, or nested sequences
// of further trees.
//
// Whether a value is a Pair or an inner node is decided at construction
// time by the tagged Kind, never inferred structurally during traversal.
// A two-element Node and a Pair are therefore distinct values: Map and
// Reduce treat a Pair as a terminal passed whole to the caller's
// function, and recurse into a Node.
//
// Traversal uses plain recursion. Goroutine stacks grow on demand, so
// deep trees need no explicit work stack; the right-folds over a node's
// children iterate backwards with no recursion at all.
package tree

import "fmt"

// Kind discriminates the four tree shapes.
type Kind int

const (
	// KindNil is the empty tree; the zero Tree value.
	KindNil Kind = iota

	// KindLeaf is a single element.
	KindLeaf

	// KindPair is a true two-slot pair, treated as a terminal whole.
	KindPair

	// KindNode is an inner node holding a sequence of subtrees.
	KindNode
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindLeaf:
		return "leaf"
	case KindPair:
		return "pair"
	case KindNode:
		return "node"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Tree is a tagged union over leaf type T. The zero value is Nil.
//
// Trees are values: traversal never mutates them, and every operation
// returns fresh structure.
type Tree[T any] struct {
	kind     Kind
	first    T
	second   T
	children []Tree[T]
}

// Nil returns the empty tree.
func Nil[T any]() Tree[T] {
	return Tree[T]{}
}

// Leaf constructs a leaf holding v.
func Leaf[T any](v T) Tree[T] {
	return Tree[T]{kind: KindLeaf, first: v}
}

// Pair constructs a true pair. It is a terminal for Map and Reduce,
// never recursed into.
func Pair[T any](first, second T) Tree[T] {
	return Tree[T]{kind: KindPair, first: first, second: second}
}

// Node constructs an inner node over the given subtrees.
func Node[T any](children ...Tree[T]) Tree[T] {
	return Tree[T]{kind: KindNode, children: children}
}

// Kind reports which shape this tree is.
func (t Tree[T]) Kind() Kind { return t.kind }

// IsNil reports whether this is the empty tree.
func (t Tree[T]) IsNil() bool { return t.kind == KindNil }

// Value returns the leaf element; valid only for KindLeaf.
func (t Tree[T]) Value() T { return t.first }

// First returns the first pair slot; valid only for KindPair.
func (t Tree[T]) First() T { return t.first }

// Second returns the second pair slot; valid only for KindPair.
func (t Tree[T]) Second() T { return t.second }

// Children returns the subtrees of an inner node. The returned slice
// is the node's own; callers must not mutate it.
func (t Tree[T]) Children() []Tree[T] { return t.children }
