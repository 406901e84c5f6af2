// Package seq implements composable operations over in-memory sequences:
// folds, windowed and keyed partitioning, grouping, stable ordering, and
// equality-parameterized set algebra.
//
// ARCHITECTURE:
//
// Pure Functions Over Immutable Inputs:
// Every operation reads its input slice and returns a fresh result; no
// operation mutates or aliases caller state. Output slices, including
// windows and chunks, never share backing arrays with the input.
//
// Deterministic Evaluation:
// All operations are synchronous and single-threaded. Given the same
// input and the same user functions, every operation produces the same
// output. There is no randomness, no concurrency, and no hidden state.
//
// Pluggable Equality:
// Set algebra and grouping consult an eq.Predicate passed explicitly by
// the caller. An arbitrary predicate admits no hash, so those operations
// use linear scans over previously accepted elements; the *Key variants
// (DistinctKey, GroupByKey) are the hash-backed fast path, valid only
// because Go == is the policy there.
//
// Error Discipline:
// Failures are deterministic, synchronous, and typed (OpError with a
// code). Operations never coerce a failure to a default value: the
// no-seed folds fail on empty input unless the caller supplies an
// explicit fallback, and extremum selection always fails on empty input.
// Errors raised inside user-supplied functions propagate unchanged.
package seq
