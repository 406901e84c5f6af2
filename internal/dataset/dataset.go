// Package dataset loads input sequences for the riffle CLI.
//
// Two sources are supported: document files (YAML or JSON, holding a
// top-level list of scalars) and read-only SQLite queries producing a
// single column. Both normalize their rows into pipeline Values, so the
// library core never sees driver- or decoder-specific types.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/riffle/pipeline"
)

// Error codes for dataset loading.
const (
	ErrCodeNotFound   = "E_DATASET_NOT_FOUND"
	ErrCodeBadFormat  = "E_DATASET_BAD_FORMAT"
	ErrCodeBadValue   = "E_DATASET_BAD_VALUE"
	ErrCodeQueryError = "E_DATASET_QUERY"
)

// LoadError represents an error that occurred while loading a dataset.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a LoadError with ErrCodeNotFound.
func IsNotFound(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Code == ErrCodeNotFound
}

// LoadFile reads a YAML or JSON document holding a top-level list of
// scalars. JSON is parsed by the YAML decoder (YAML 1.2 is a superset).
func LoadFile(path string) ([]pipeline.Value, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("dataset file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading dataset: %v", err)}
	}
	return Parse(data)
}

// Parse decodes a YAML/JSON document into normalized Values.
func Parse(data []byte) ([]pipeline.Value, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeBadFormat, Message: fmt.Sprintf("dataset must be a list of scalars: %v", err)}
	}
	values, err := pipeline.NormalizeAll(raw)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadValue, Message: err.Error()}
	}
	return values, nil
}
