// Package eq defines the equality policies consulted by the set-algebra
// and grouping operations in package seq.
//
// A policy is a plain predicate value, Predicate[T]. Operations that need
// one take it as an explicit parameter, so an override is scoped exactly
// to the call that receives it: nothing is installed, nothing has to be
// reverted, and concurrent call trees cannot observe each other's policy.
//
// The stock policies:
//
//   - Deep: deep structural equality (the default callers should reach for)
//   - Same: identity equality via ==
//   - Ref:  reference identity for pointer-shaped values
//   - NFC:  Unicode-normalized string equality
//   - Fold: case-folded string equality
//
// By adapts a policy on a derived key into a policy on the source type.
package eq
