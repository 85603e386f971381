package node

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/patchline/patchline/engine/core"
)

// String returns the parameter as a trimmed string, or "" when absent.
func String(params core.Input, key string) string {
	value, ok := params[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// RequireString returns the parameter as a non-empty string or an
// InvalidParams error naming the missing key.
func RequireString(params core.Input, key string) (string, error) {
	value := String(params, key)
	if value == "" {
		return "", InvalidParams(
			fmt.Errorf("missing required parameter %q", key),
			map[string]any{"parameter": key},
		)
	}
	return value, nil
}

// Bool returns the parameter as a bool, or false when absent or mistyped.
func Bool(params core.Input, key string) bool {
	value, ok := params[key].(bool)
	return ok && value
}

// Int returns the parameter coerced to int, or 0 when absent.
func Int(params core.Input, key string) int {
	if _, ok := params[key]; !ok {
		return 0
	}
	return core.AnyToInt(params[key])
}

// Map returns the parameter as a nested object, or nil when absent.
func Map(params core.Input, key string) map[string]any {
	value, ok := params[key].(map[string]any)
	if !ok {
		return nil
	}
	return value
}

// Slice returns the parameter as a list, or nil when absent.
func Slice(params core.Input, key string) []any {
	value, ok := params[key].([]any)
	if !ok {
		return nil
	}
	return value
}

// StringSlice returns the parameter as a list of strings, skipping any
// non-string elements.
func StringSlice(params core.Input, key string) []string {
	items := Slice(params, key)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// DecodeParams unmarshals params into a tagged struct using weak typing, so
// numeric fields accept the float64 values JSON decoding produces.
func DecodeParams(params core.Input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Internal(err, nil)
	}
	if err := dec.Decode(params.AsMap()); err != nil {
		return InvalidParams(err, nil)
	}
	return nil
}
