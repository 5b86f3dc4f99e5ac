package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

type Schema string

const (
	SchemaSignUp           Schema = "signup.json"
	SchemaLogin            Schema = "login.json"
	SchemaProjectCreate    Schema = "project_create.json"
	SchemaProjectUpdate    Schema = "project_update.json"
	SchemaProjectReplace   Schema = "project_replace.json"
	SchemaMembershipAssign Schema = "membership_assign.json"
	SchemaMembershipRole   Schema = "membership_role.json"
	SchemaTaskCreate       Schema = "task_create.json"
	SchemaTaskUpdate       Schema = "task_update.json"
)

const schemaBaseURL = "https://taskboard.local/schemas/"

//go:embed schemas/*.json
var schemaFS embed.FS

var ErrMalformedPayload = errors.New("malformed json payload")

// Violation is a single schema failure located by its JSON field path.
type Violation struct {
	Field   string
	Message string
}

// PayloadError is returned when a well-formed payload does not satisfy its schema.
type PayloadError struct {
	Violations []Violation
}

func (e *PayloadError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "payload validation failed: " + strings.Join(parts, "; ")
}

var (
	compileOnce     sync.Once
	compiledSchemas map[Schema]*jsonschema.Schema
	compileErr      error
)

func loadSchemas() (map[Schema]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchemas, compileErr = compileSchemas()
	})
	return compiledSchemas, compileErr
}

func compileSchemas() (map[Schema]*jsonschema.Schema, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read embedded schemas: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, entry := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", entry.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", entry.Name(), err)
		}
	}

	schemas := make(map[Schema]*jsonschema.Schema, len(entries))
	for _, entry := range entries {
		schema, err := compiler.Compile(schemaBaseURL + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", entry.Name(), err)
		}
		schemas[Schema(entry.Name())] = schema
	}
	return schemas, nil
}

// Decode checks body against the named schema and decodes it into target.
// The raw field map is returned so callers can tell an absent field from an
// explicit null.
func Decode(name Schema, body []byte, target any) (map[string]json.RawMessage, error) {
	schemas, err := loadSchemas()
	if err != nil {
		return nil, err
	}
	schema, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, toPayloadError(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if target != nil {
		if err := json.Unmarshal(body, target); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
	}
	return raw, nil
}

func toPayloadError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &PayloadError{Violations: []Violation{{Message: err.Error()}}}
	}

	payloadErr := &PayloadError{}
	collectViolations(ve, payloadErr)
	if len(payloadErr.Violations) == 0 {
		payloadErr.Violations = append(payloadErr.Violations, Violation{Message: ve.Message})
	}
	return payloadErr
}

func collectViolations(err *jsonschema.ValidationError, result *PayloadError) {
	if len(err.Causes) == 0 {
		result.Violations = append(result.Violations, Violation{
			Field:   pointerToField(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, result)
	}
}

func pointerToField(pointer string) string {
	field := strings.TrimPrefix(pointer, "/")
	field = strings.ReplaceAll(field, "/", ".")
	field = strings.ReplaceAll(field, "~1", "/")
	return strings.ReplaceAll(field, "~0", "~")
}
