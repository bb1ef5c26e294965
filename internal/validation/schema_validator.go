package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/Stockpile_Go/configs"
)

// SchemaValidator validates JSON documents against JSON schemas.
// A schema is named either by its path inside the embedded schema set
// (InventoriesSchema, IDFormatSchema) or by a path on disk.
type SchemaValidator interface {
	ValidateFile(dataPath, schema string) error
	ValidateBytes(data []byte, schema string) error
	// ValidateValue validates an already decoded document, e.g. one read from YAML
	ValidateValue(value any, schema string) error
}

var printer = message.NewPrinter(language.English)

type validator struct {
	mu       sync.Mutex
	fsys     fs.FS
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator backed by the embedded schemas
func NewSchemaValidator() SchemaValidator {
	return NewSchemaValidatorFS(configs.Schemas)
}

// NewSchemaValidatorFS creates a validator resolving schema names in fsys first
func NewSchemaValidatorFS(fsys fs.FS) SchemaValidator {
	compiler := jsonschema.NewCompiler()
	compiler.UseLoader(fsLoader{fsys: fsys})
	return &validator{
		fsys:     fsys,
		compiler: compiler,
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file
func (v *validator) ValidateFile(dataPath, schema string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadDataFile, dataPath, err)
	}
	return v.ValidateBytes(data, schema)
}

// ValidateBytes validates raw JSON
func (v *validator) ValidateBytes(data []byte, schema string) error {
	compiled, err := v.loadSchema(schema)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, schema, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseData, err)
	}
	return validate(compiled, doc)
}

// ValidateValue round-trips value through JSON so YAML maps and Go structs
// are checked exactly as their JSON form would be
func (v *validator) ValidateValue(value any, schema string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeData, err)
	}
	return v.ValidateBytes(data, schema)
}

func validate(schema *jsonschema.Schema, doc any) error {
	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles a schema once and caches it
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	location, err := v.register(name)
	if err != nil {
		return nil, err
	}

	schema, err := v.compiler.Compile(location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCompileSchema, err)
	}
	v.schemas[name] = schema
	return schema, nil
}

// register returns the URL to compile name from. Embedded schemas are served
// by the loader; schemas on disk are added to the compiler as resources.
func (v *validator) register(name string) (string, error) {
	if !filepath.IsAbs(name) {
		if _, err := fs.Stat(v.fsys, name); err == nil {
			return SchemaBaseURL + name, nil
		}
	}

	path, err := resolveSchemaPath(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgReadSchema, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgReadSchema, err)
	}
	if err := v.compiler.AddResource(path, doc); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgAddSchemaResource, err)
	}
	return path, nil
}

// fsLoader serves SchemaBaseURL references from the embedded schema set
type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Load(url string) (any, error) {
	name, ok := strings.CutPrefix(url, SchemaBaseURL)
	if !ok {
		return nil, fmt.Errorf("%s: %s", ErrMsgUnknownSchemaURL, url)
	}
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jsonschema.UnmarshalJSON(f)
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%s: %w", ErrMsgSchemaFailed, err)
	}
	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("%s:\n%s", ErrMsgSchemaFailed, strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind == nil {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	keywords := strings.Join(err.ErrorKind.KeywordPath(), ".")
	return fmt.Sprintf("  - at %s: %s: %s", location, keywords, err.ErrorKind.LocalizedString(printer))
}

// resolveSchemaPath finds a relative schema path from the working directory
// or one of its parents up to the module root
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return filepath.Abs(schemaPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil || filepath.Dir(dir) == dir {
			break
		}
	}
	return "", fmt.Errorf("%s: %s (searched from %s)", ErrMsgSchemaNotFound, schemaPath, cwd)
}
