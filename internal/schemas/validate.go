// Package schemas provides JSON Schema validation for persisted records.
package schemas

import (
	"fmt"
	"strings"

	embedded "github.com/jonathan/ihp-exam/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Schema file names of the persisted records.
const (
	Header     = "header.schema.json"
	Fagprove   = "fagprove.schema.json"
	Kompetanse = "kompetanse.schema.json"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Schema is a compiled JSON Schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// Load compiles one of the embedded schemas by file name.
func Load(name string) (*Schema, error) {
	data, err := embedded.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name,
			Message: "schema not embedded",
			Cause:   err,
		}
	}
	return Compile(name, string(data))
}

// MustLoad is like Load but panics if the embedded schema is broken.
func MustLoad(name string) *Schema {
	s, err := Load(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Compile parses schema content into a reusable Schema.
func Compile(name, schemaContent string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name,
			Message: "schema compilation failed",
			Cause:   err,
		}
	}
	return &Schema{name: name, schema: s}, nil
}

// Name returns the schema file name.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks a JSON document against the schema. Malformed JSON is
// reported as an error as well.
func (s *Schema) Validate(jsonContent string) error {
	result, err := s.schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to read document for %s: %w", s.name, err)
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
