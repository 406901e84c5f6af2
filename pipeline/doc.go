// Package pipeline compiles declarative sequence pipelines from CUE and
// executes them over scalar values.
//
// A pipeline file names an equality policy and an ordered list of steps:
//
//	pipeline: {
//		name:     "dedupe-and-sort"
//		equality: "fold"
//		steps: [
//			{op: "distinct"},
//			{op: "sort", dir: "asc"},
//			{op: "window", size: 3, step: 3},
//		]
//	}
//
// Compilation parses and validates the CUE value against the embedded
// schema and produces a typed Pipeline; execution applies each step in
// order with the operations from package seq. Steps that change the
// result shape (windowing, chunking, grouping, extrema, folds) may only
// appear last, so the flat value stream threads through every preceding
// step.
//
// Execution is deterministic: same pipeline, same input, same result.
package pipeline
