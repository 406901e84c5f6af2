package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/riffle/eq"
	"github.com/roach88/riffle/order"
	"github.com/roach88/riffle/seq"
)

// ResultKind discriminates the shape of a pipeline result.
type ResultKind string

const (
	// ResultFlat is a flat sequence of scalars.
	ResultFlat ResultKind = "flat"

	// ResultNested is a sequence of sequences (window/chunk output).
	ResultNested ResultKind = "nested"

	// ResultGroups is keyed groups in first-occurrence order.
	ResultGroups ResultKind = "groups"

	// ResultScalar is a single value (extrema, folds, contains).
	ResultScalar ResultKind = "scalar"
)

// GroupResult is one group in a ResultGroups result.
type GroupResult struct {
	Key   Value   `json:"key"`
	Items []Value `json:"items"`
}

// Result is the output of running a pipeline. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Result struct {
	Pipeline string        `json:"pipeline"`
	Kind     ResultKind    `json:"kind"`
	Flat     []Value       `json:"flat,omitempty"`
	Nested   [][]Value     `json:"nested,omitempty"`
	Groups   []GroupResult `json:"groups,omitempty"`
	Scalar   Value         `json:"scalar,omitempty"`
}

// Text renders the result for human-readable output, one row per line.
func (r *Result) Text() string {
	var b strings.Builder
	switch r.Kind {
	case ResultFlat:
		for _, v := range r.Flat {
			fmt.Fprintln(&b, formatValue(v))
		}
	case ResultNested:
		for _, row := range r.Nested {
			fmt.Fprintln(&b, formatRow(row))
		}
	case ResultGroups:
		for _, g := range r.Groups {
			fmt.Fprintf(&b, "%s: %s\n", formatValue(g.Key), formatRow(g.Items))
		}
	case ResultScalar:
		fmt.Fprintln(&b, formatValue(r.Scalar))
	}
	return b.String()
}

func formatRow(row []Value) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Run executes the pipeline over the input values. The input is never
// mutated. Failures carry the step index and op as a RunError wrapping
// the underlying cause unchanged.
//
// The pipeline must have passed Validate; Run re-checks nothing but the
// runtime value kinds each op requires.
func Run(p *Pipeline, in []Value) (*Result, error) {
	policy := policyFor(p.Equality)
	flat := append([]Value(nil), in...)
	result := &Result{Pipeline: p.Name, Kind: ResultFlat}

	for i, step := range p.Steps {
		out, err := applyStep(policy, step, flat)
		if err != nil {
			return nil, &RunError{Step: i, Op: step.Op, Err: err}
		}
		if out.Kind != ResultFlat {
			// Validate guarantees this is the final step.
			out.Pipeline = p.Name
			return out, nil
		}
		flat = out.Flat
	}

	result.Flat = flat
	return result, nil
}

func applyStep(policy eq.Predicate[Value], s Step, in []Value) (*Result, error) {
	switch s.Op {
	case OpDistinct:
		return flatResult(seq.Distinct(policy, in)), nil

	case OpSort:
		less, err := comparatorFor(s)
		if err != nil {
			return nil, err
		}
		return flatResult(seq.SortStable(less, in)), nil

	case OpGrade:
		// comparatorFor already folds Dir into the comparator, so the
		// ascending grade of that comparator is the requested direction.
		less, err := comparatorFor(s)
		if err != nil {
			return nil, err
		}
		idx := seq.GradeUp(less, in)
		out := make([]Value, len(idx))
		for i, n := range idx {
			out[i] = int64(n)
		}
		return flatResult(out), nil

	case OpWindow:
		windows, err := seq.Window(s.Size, s.Stride, in)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultNested, Nested: windows}, nil

	case OpWindowExact:
		windows, err := seq.WindowExact(s.Size, s.Stride, in)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultNested, Nested: windows}, nil

	case OpChunkBy:
		key, err := keyFor(s, in)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultNested, Nested: seq.ChunkBy(policy, key, in)}, nil

	case OpChunkByHeader:
		key, err := keyFor(s, in)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultNested, Nested: seq.ChunkByHeader(policy, key, in)}, nil

	case OpGroupBy:
		key, err := keyFor(s, in)
		if err != nil {
			return nil, err
		}
		groups := seq.GroupBy(policy, key, in)
		out := make([]GroupResult, len(groups))
		for i, g := range groups {
			out[i] = GroupResult{Key: g.Key, Items: g.Items}
		}
		return &Result{Kind: ResultGroups, Groups: out}, nil

	case OpMax:
		v, err := seq.MaxBy(order.Less[Value](lessValue), in)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultScalar, Scalar: v}, nil

	case OpMin:
		v, err := seq.MinBy(order.Less[Value](lessValue), in)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: ResultScalar, Scalar: v}, nil

	case OpSum:
		return sumStep(in)

	case OpConcat:
		return concatStep(s, in)

	case OpUnion:
		return flatResult(seq.Union(policy, in, s.With)), nil

	case OpIntersection:
		return flatResult(seq.Intersection(policy, in, s.With)), nil

	case OpDifference:
		return flatResult(seq.Difference(policy, in, s.With)), nil

	case OpContains:
		return &Result{Kind: ResultScalar, Scalar: seq.Contains(policy, in, s.Value)}, nil
	}

	return nil, fmt.Errorf("unknown op %q", s.Op)
}

func flatResult(vs []Value) *Result {
	return &Result{Kind: ResultFlat, Flat: vs}
}

// sumStep folds numeric input left to right. Integer input stays
// integral; any float widens the sum to float64.
func sumStep(in []Value) (*Result, error) {
	allInts := true
	for i, v := range in {
		switch v.(type) {
		case int64:
		case float64:
			allInts = false
		default:
			return nil, fmt.Errorf("sum requires numeric input, element %d is %T", i, v)
		}
	}
	if allInts {
		total := seq.FoldLeft(int64(0), in, func(acc int64, v Value) int64 {
			return acc + v.(int64)
		})
		return &Result{Kind: ResultScalar, Scalar: total}, nil
	}
	total := seq.FoldLeft(float64(0), in, func(acc float64, v Value) float64 {
		f, _ := asFloat(v)
		return acc + f
	})
	return &Result{Kind: ResultScalar, Scalar: total}, nil
}

func concatStep(s Step, in []Value) (*Result, error) {
	parts := make([]string, len(in))
	for i, v := range in {
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("concat requires string input, element %d is %T", i, v)
		}
		parts[i] = str
	}
	return &Result{Kind: ResultScalar, Scalar: strings.Join(parts, s.Sep)}, nil
}

// policyFor maps an equality name to its predicate over Values. The
// string policies apply to string pairs and fall back to deep equality
// for everything else.
func policyFor(name string) eq.Predicate[Value] {
	switch name {
	case EqualitySame:
		return func(a, b Value) bool { return a == b }
	case EqualityNFC:
		return stringPolicy(eq.NFC())
	case EqualityFold:
		return stringPolicy(eq.Fold())
	}
	return equalValue
}

func stringPolicy(p eq.Predicate[string]) eq.Predicate[Value] {
	return func(a, b Value) bool {
		sa, aok := a.(string)
		sb, bok := b.(string)
		if aok && bok {
			return p(sa, sb)
		}
		return equalValue(a, b)
	}
}

// comparatorFor builds the sort/grade comparator: natural value order,
// optionally locale-collated for strings, optionally reversed.
func comparatorFor(s Step) (order.Less[Value], error) {
	less := order.Less[Value](lessValue)
	if s.Collate != "" {
		tag, err := language.Parse(s.Collate)
		if err != nil {
			return nil, fmt.Errorf("invalid collate tag %q: %w", s.Collate, err)
		}
		collated := order.Collated(tag)
		less = func(a, b Value) bool {
			sa, aok := a.(string)
			sb, bok := b.(string)
			if aok && bok {
				return collated(sa, sb)
			}
			return lessValue(a, b)
		}
	}
	if s.Dir == "desc" {
		less = order.Reverse(less)
	}
	return less, nil
}

// keyFor builds the derived-key function for chunk/group steps after
// checking every input element has the kind the key requires.
func keyFor(s Step, in []Value) (func(Value) Value, error) {
	switch s.Key {
	case "", KeyIdentity:
		return func(v Value) Value { return v }, nil

	case KeyLower:
		if err := requireStrings("key \"lower\"", in); err != nil {
			return nil, err
		}
		lower := cases.Lower(language.Und)
		return func(v Value) Value {
			return lower.String(norm.NFC.String(v.(string)))
		}, nil

	case KeyLength:
		if err := requireStrings("key \"length\"", in); err != nil {
			return nil, err
		}
		return func(v Value) Value {
			return int64(len([]rune(v.(string))))
		}, nil

	case KeyMod:
		for i, v := range in {
			if _, ok := v.(int64); !ok {
				return nil, fmt.Errorf("key \"mod\" requires integer input, element %d is %T", i, v)
			}
		}
		m := s.Modulus
		return func(v Value) Value {
			r := v.(int64) % m
			if r < 0 {
				r += m
			}
			return r
		}, nil
	}
	return nil, fmt.Errorf("unknown key %q", s.Key)
}

func requireStrings(what string, in []Value) error {
	for i, v := range in {
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%s requires string input, element %d is %T", what, i, v)
		}
	}
	return nil
}
