package validation

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates game assets against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema file
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read asset %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates JSON bytes against a schema file
func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON asset: %w", err)
	}

	schema, err := v.loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles a schema once and caches it
func (v *validator) loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaPath]; ok {
		return schema, nil
	}

	resolvedPath, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	defer f.Close()

	schemaDoc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaPath, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = schema
	return schema, nil
}

func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if msg := formatError(err); msg != "" {
		*lines = append(*lines, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

// formatError renders one failure as "at /path: keyword validation failed"
func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if kp := err.ErrorKind.KeywordPath(); len(kp) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(kp, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

// resolveSchemaPath returns schemaPath as-is when absolute or present in the
// working directory, otherwise walks up to the module root (go.mod) looking for it.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
