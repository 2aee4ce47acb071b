package asn

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The embedded schema describes the default key table. Manifests written
// under a custom key table must be validated by their own consumer.
//
//go:embed schema/association.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/products/0/members")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("association.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("association.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw manifest JSON against the association schema.
// The error return is for I/O or schema compilation failures. Validation
// issues are returned in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := extractIssues(validationErr)
	return &ValidationResult{
		Valid:  false,
		Issues: issues,
	}, nil
}

// ValidateFile reads a manifest file and validates it against the schema.
func ValidateFile(fsys afero.Fs, path string) (*ValidationResult, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Validate(data)
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf
// errors with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		// Leaf error.
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
