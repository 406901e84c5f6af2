package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Equality policy names accepted by a pipeline.
const (
	EqualityDeep = "deep" // deep equality over normalized values (default)
	EqualitySame = "same" // strict == on kind and value
	EqualityNFC  = "nfc"  // NFC-normalized string equality
	EqualityFold = "fold" // case-folded string equality
)

// ValidEqualities lists the accepted equality policy names.
var ValidEqualities = []string{EqualityDeep, EqualitySame, EqualityNFC, EqualityFold}

// Op names accepted by a step.
const (
	OpDistinct      = "distinct"
	OpSort          = "sort"
	OpGrade         = "grade"
	OpWindow        = "window"
	OpWindowExact   = "window-exact"
	OpChunkBy       = "chunk-by"
	OpChunkByHeader = "chunk-by-header"
	OpGroupBy       = "group-by"
	OpMax           = "max"
	OpMin           = "min"
	OpSum           = "sum"
	OpConcat        = "concat"
	OpUnion         = "union"
	OpIntersection  = "intersection"
	OpDifference    = "difference"
	OpContains      = "contains"
)

// Key function names for chunk/group steps.
const (
	KeyIdentity = "identity"
	KeyLower    = "lower"
	KeyLength   = "length"
	KeyMod      = "mod"
)

// Pipeline is a compiled pipeline definition.
type Pipeline struct {
	// Name identifies the pipeline in output and logs.
	Name string

	// Equality names the policy consulted by distinct/union/intersection/
	// difference/contains and by key matching in chunk/group steps.
	Equality string

	// Steps run in order over the value stream.
	Steps []Step
}

// Step is one operation in a pipeline.
type Step struct {
	Op string

	// Dir is "asc" or "desc" for sort/grade. Empty means "asc".
	Dir string

	// Collate is a BCP 47 language tag enabling locale-aware string
	// comparison for sort/grade. Empty means the natural byte order.
	Collate string

	// Key names the derived-key function for chunk-by, chunk-by-header,
	// and group-by. Empty means "identity".
	Key string

	// Modulus parameterizes the "mod" key function.
	Modulus int64

	// Size and Stride parameterize window and window-exact.
	Size   int
	Stride int

	// Sep joins elements for concat.
	Sep string

	// With is the literal right-hand operand for union/intersection/
	// difference.
	With []Value

	// Value is the probe element for contains.
	Value Value
	// HasValue distinguishes an absent probe from a probe that is
	// itself a zero value.
	HasValue bool
}

// shapeChanging reports whether the op produces something other than a
// flat value stream and therefore must be the final step.
func (s Step) shapeChanging() bool {
	switch s.Op {
	case OpWindow, OpWindowExact, OpChunkBy, OpChunkByHeader, OpGroupBy,
		OpGrade, OpMax, OpMin, OpSum, OpConcat, OpContains:
		return true
	}
	return false
}

// Validate checks a compiled pipeline against the step parameter rules.
// Returns all errors, not just the first.
func (p *Pipeline) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}

	if !contains(ValidEqualities, p.Equality) {
		errs = append(errs, ValidationError{
			Field:   "equality",
			Message: fmt.Sprintf("invalid equality %q, must be one of: %s", p.Equality, strings.Join(ValidEqualities, ", ")),
		})
	}

	if len(p.Steps) == 0 {
		errs = append(errs, ValidationError{Field: "steps", Message: "at least one step is required"})
	}

	for i, s := range p.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		errs = append(errs, validateStep(field, s)...)
		if s.shapeChanging() && i != len(p.Steps)-1 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s changes the result shape and must be the final step", s.Op),
			})
		}
	}

	return errs
}

func validateStep(field string, s Step) []ValidationError {
	var errs []ValidationError

	fail := func(format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch s.Op {
	case OpDistinct, OpMax, OpMin, OpSum:
		// No parameters.
	case OpConcat:
		// Sep is optional.
	case OpSort, OpGrade:
		if s.Dir != "" && s.Dir != "asc" && s.Dir != "desc" {
			fail("invalid dir %q, must be \"asc\" or \"desc\"", s.Dir)
		}
		if s.Collate != "" {
			if _, err := language.Parse(s.Collate); err != nil {
				fail("invalid collate tag %q: %v", s.Collate, err)
			}
		}
	case OpWindow, OpWindowExact:
		if s.Size < 1 {
			fail("size must be >= 1, got %d", s.Size)
		}
		if s.Stride < 1 {
			fail("step must be >= 1, got %d", s.Stride)
		}
	case OpChunkBy, OpChunkByHeader, OpGroupBy:
		switch s.Key {
		case "", KeyIdentity, KeyLower, KeyLength:
			// Modulus not applicable.
		case KeyMod:
			if s.Modulus < 1 {
				fail("key \"mod\" requires modulus >= 1, got %d", s.Modulus)
			}
		default:
			fail("invalid key %q, must be one of: identity, lower, length, mod", s.Key)
		}
	case OpUnion, OpIntersection, OpDifference:
		if s.With == nil {
			fail("%s requires a \"with\" operand list", s.Op)
		}
	case OpContains:
		if !s.HasValue {
			fail("contains requires a \"value\" probe")
		}
	default:
		fail("unknown op %q", s.Op)
	}

	return errs
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
