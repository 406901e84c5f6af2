package pipeline

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// Compile parses a CUE value into a Pipeline.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the pipeline struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`pipeline: { ... }`)
//	p, err := pipeline.Compile(v.LookupPath(cue.ParsePath("pipeline")))
//
// Compile reports structural problems; parameter rules are checked
// separately by Pipeline.Validate.
func Compile(v cue.Value) (*Pipeline, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	p := &Pipeline{}

	// Parse name (required).
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{Field: "name", Message: "name is required", Pos: v.Pos()}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	p.Name = name

	// Parse equality (optional; the schema defaults it to "deep").
	eqVal := v.LookupPath(cue.ParsePath("equality"))
	if eqVal.Exists() {
		p.Equality, err = eqVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
	} else {
		p.Equality = EqualityDeep
	}

	// Parse steps (required, at least one).
	stepsVal := v.LookupPath(cue.ParsePath("steps"))
	if !stepsVal.Exists() {
		return nil, &CompileError{Field: "steps", Message: "steps list is required", Pos: v.Pos()}
	}
	iter, err := stepsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		step, err := compileStep(iter.Value(), i)
		if err != nil {
			return nil, err
		}
		p.Steps = append(p.Steps, step)
	}
	if len(p.Steps) == 0 {
		return nil, &CompileError{Field: "steps", Message: "at least one step is required", Pos: stepsVal.Pos()}
	}

	return p, nil
}

func compileStep(v cue.Value, index int) (Step, error) {
	field := func(name string) string { return fmt.Sprintf("steps[%d].%s", index, name) }
	s := Step{}

	opVal := v.LookupPath(cue.ParsePath("op"))
	if !opVal.Exists() {
		return s, &CompileError{Field: field("op"), Message: "op is required", Pos: v.Pos()}
	}
	op, err := opVal.String()
	if err != nil {
		return s, formatCUEError(err)
	}
	s.Op = op

	if s.Dir, err = optionalString(v, "dir"); err != nil {
		return s, err
	}
	if s.Collate, err = optionalString(v, "collate"); err != nil {
		return s, err
	}
	if s.Key, err = optionalString(v, "key"); err != nil {
		return s, err
	}
	if s.Sep, err = optionalString(v, "sep"); err != nil {
		return s, err
	}
	if s.Modulus, err = optionalInt(v, "modulus"); err != nil {
		return s, err
	}

	size, err := optionalInt(v, "size")
	if err != nil {
		return s, err
	}
	s.Size = int(size)
	stride, err := optionalInt(v, "step")
	if err != nil {
		return s, err
	}
	s.Stride = int(stride)

	withVal := v.LookupPath(cue.ParsePath("with"))
	if withVal.Exists() {
		iter, err := withVal.List()
		if err != nil {
			return s, formatCUEError(err)
		}
		s.With = []Value{}
		for iter.Next() {
			sv, err := compileScalar(iter.Value())
			if err != nil {
				return s, err
			}
			s.With = append(s.With, sv)
		}
	}

	valueVal := v.LookupPath(cue.ParsePath("value"))
	if valueVal.Exists() {
		s.Value, err = compileScalar(valueVal)
		if err != nil {
			return s, err
		}
		s.HasValue = true
	}

	return s, nil
}

// compileScalar converts a concrete CUE scalar into a normalized Value.
func compileScalar(v cue.Value) (Value, error) {
	switch v.Kind() {
	case cue.StringKind:
		return v.String()
	case cue.IntKind:
		return v.Int64()
	case cue.FloatKind, cue.NumberKind:
		return v.Float64()
	case cue.BoolKind:
		return v.Bool()
	}
	return nil, &CompileError{
		Message: fmt.Sprintf("unsupported scalar kind %v", v.Kind()),
		Pos:     v.Pos(),
	}
}

func optionalString(v cue.Value, name string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(name))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func optionalInt(v cue.Value, name string) (int64, error) {
	fv := v.LookupPath(cue.ParsePath(name))
	if !fv.Exists() {
		return 0, nil
	}
	n, err := fv.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return n, nil
}

// LoadFile reads a pipeline definition from a CUE file, unifies it with
// the embedded schema, compiles it, and validates the result.
func LoadFile(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline file: %w", err)
	}
	return LoadBytes(data, path)
}

// LoadBytes is LoadFile over in-memory CUE source; filename is used for
// error positions only.
func LoadBytes(data []byte, filename string) (*Pipeline, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	unified := v.Unify(schema)
	if err := unified.Validate(); err != nil {
		return nil, formatCUEError(err)
	}

	pv := unified.LookupPath(cue.ParsePath("pipeline"))
	if !pv.Exists() {
		return nil, &CompileError{Field: "pipeline", Message: "no pipeline struct found", Pos: v.Pos()}
	}

	p, err := Compile(pv)
	if err != nil {
		return nil, err
	}

	if verrs := p.Validate(); len(verrs) > 0 {
		joined := make([]error, len(verrs))
		for i, ve := range verrs {
			joined[i] = ve
		}
		return nil, fmt.Errorf("invalid pipeline %q: %w", p.Name, errors.Join(joined...))
	}

	return p, nil
}

// formatCUEError converts a CUE error into a CompileError carrying the
// first reported position.
func formatCUEError(err error) error {
	if list := cueerrors.Errors(err); len(list) > 0 {
		first := list[0]
		return &CompileError{
			Message: first.Error(),
			Pos:     first.Position(),
		}
	}
	return &CompileError{Message: err.Error()}
}
