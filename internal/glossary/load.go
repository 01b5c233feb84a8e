package glossary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed glossary.schema.json
var schemaJSON string

// FieldError is a single schema violation at a JSON field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a glossary document that is not valid JSON or
// does not match the glossary schema.
type ValidationError struct {
	Path   string
	Errors []FieldError
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid glossary %s: %v", e.Path, e.Cause)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid glossary %s:", e.Path)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error { return e.Cause }

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Load reads and validates the glossary file at path.
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read glossary %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse validates data against the glossary schema and decodes it.
// path is only used in error messages.
func Parse(path string, data []byte) (*Glossary, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &ValidationError{Path: path, Cause: err}
	}
	if !result.Valid() {
		verr := &ValidationError{Path: path, Errors: make([]FieldError, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return nil, verr
	}

	var g Glossary
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, &ValidationError{Path: path, Cause: err}
	}
	return &g, nil
}
