package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonschema"
)

// Schema is a JSON Schema document kept as plain data so operation
// definitions can declare their parameter shapes inline.
type Schema map[string]any

// Compile turns the document into an evaluatable schema. A nil schema
// compiles to nil, which callers treat as accept-anything.
func (s *Schema) Compile() (*jsonschema.Schema, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	compiled, err := jsonschema.NewCompiler().Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// Validate evaluates value against the schema. A failed evaluation returns
// an error listing the violated keywords.
func (s *Schema) Validate(_ context.Context, value any) (*jsonschema.EvaluationResult, error) {
	compiled, err := s.Compile()
	if err != nil {
		return nil, err
	}
	if compiled == nil {
		return nil, nil
	}
	result := compiled.Validate(value)
	if !result.Valid {
		return nil, fmt.Errorf("schema validation failed: %v", result.Errors)
	}
	return result, nil
}
