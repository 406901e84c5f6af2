package pipeline

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// ValidationError represents a pipeline validation error with a field
// path and message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompileError represents an error parsing a CUE pipeline definition.
// Pos carries the CUE source position when one is available.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// RunError represents a failure while executing a pipeline step. The
// underlying cause (for example a seq.OpError) is preserved unchanged.
type RunError struct {
	Step int    // zero-based step index
	Op   string // op name
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
