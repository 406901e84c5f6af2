package tree

// Map applies fn to every terminal subtree (Leaf or Pair, passed whole)
// and rebuilds inner nodes element-wise, preserving the nesting shape.
// Nil maps to Nil.
//
// fn receives the terminal subtree and returns its replacement; the
// replacement may be any tree shape, so a mapping can turn leaves into
// pairs or subtrees.
func Map[T any](fn func(Tree[T]) Tree[T], t Tree[T]) Tree[T] {
	switch t.kind {
	case KindNil:
		return t
	case KindLeaf, KindPair:
		return fn(t)
	}
	mapped := make([]Tree[T], len(t.children))
	for i, child := range t.children {
		mapped[i] = Map(fn, child)
	}
	return Tree[T]{kind: KindNode, children: mapped}
}

// Reduce collapses a tree bottom-up. Leaves and Pairs are terminal
// values. An inner node first reduces each child, then right-folds the
// reduced children with combine under the no-seed rule: a node with no
// children yields Nil, and a single child's reduced value passes
// through without invoking combine. Reducing Nil yields Nil.
//
// Children are combined right-associatively: for reduced children
// [a, b, c] the result is combine(a, combine(b, c)).
func Reduce[T any](combine func(Tree[T], Tree[T]) Tree[T], t Tree[T]) Tree[T] {
	switch t.kind {
	case KindNil, KindLeaf, KindPair:
		return t
	}
	if len(t.children) == 0 {
		return Nil[T]()
	}
	reduced := make([]Tree[T], len(t.children))
	for i, child := range t.children {
		reduced[i] = Reduce(combine, child)
	}
	acc := reduced[len(reduced)-1]
	for i := len(reduced) - 2; i >= 0; i-- {
		acc = combine(reduced[i], acc)
	}
	return acc
}

// MapReduce fuses Map and Reduce into a single traversal: fn maps each
// terminal (Leaf or Pair, passed whole) to an R, and every inner node
// right-folds its children's results with combine from seed. An empty
// node yields seed, as does Nil.
//
// MapReduce(fn, combine, seed, t) is equivalent to reducing Map(fn', t)
// with the empty-node result replaced by seed, without paying for the
// intermediate tree.
func MapReduce[T, R any](fn func(Tree[T]) R, combine func(R, R) R, seed R, t Tree[T]) R {
	switch t.kind {
	case KindNil:
		return seed
	case KindLeaf, KindPair:
		return fn(t)
	}
	acc := seed
	for i := len(t.children) - 1; i >= 0; i-- {
		acc = combine(MapReduce(fn, combine, seed, t.children[i]), acc)
	}
	return acc
}
