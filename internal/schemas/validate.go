// Package schemas provides JSON Schema validation for knowledge-base files.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Schema names known to the validator. Each maps to an embedded
// <name>.schema.json file.
const (
	Profile        = "profile"
	WorkExperience = "work_experience"
	Skills         = "skills"
	Project        = "project"
)

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schema %s: validation failed:", ve.Schema)
	for _, fe := range ve.Errors {
		fmt.Fprintf(&sb, "\n  - %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against the named embedded schema.
// Returns a *ValidationError listing field-level failures, a *SchemaLoadError
// if the schema itself cannot be used, or nil when the document conforms.
func Validate(name string, document []byte) error {
	data, err := schemaFS.ReadFile(name + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Schema: name, Message: "unknown schema", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(data),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &SchemaLoadError{Schema: name, Message: "validation could not run", Cause: err}
	}

	if !result.Valid() {
		ve := &ValidationError{Schema: name}
		for _, re := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{Field: re.Field(), Message: re.Description()})
		}
		return ve
	}

	return nil
}
