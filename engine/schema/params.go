package schema

import (
	"context"
	"fmt"
)

// ParamsValidator checks collected operation parameters against the
// operation's declared schema.
type ParamsValidator struct {
	id     string
	params map[string]any
	schema Schema
}

// NewParamsValidator builds a validator for one dispatch. The id names the
// dispatch in error messages, e.g. "mattermost.message.post".
func NewParamsValidator(params map[string]any, schema Schema, id string) *ParamsValidator {
	return &ParamsValidator{
		id:     id,
		params: params,
		schema: schema,
	}
}

// Validate applies the schema. Operations without a schema accept anything;
// a declared schema with nil params is an error.
func (v *ParamsValidator) Validate(ctx context.Context) error {
	if v.schema == nil {
		return nil
	}
	if v.params == nil {
		return fmt.Errorf("params validation failed for %s: params are nil but a schema is defined", v.id)
	}
	if _, err := v.schema.Validate(ctx, v.params); err != nil {
		return fmt.Errorf("invalid params for %s: %w", v.id, err)
	}
	return nil
}
