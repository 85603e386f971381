package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/patchline/patchline/engine/core"
)

// parseParams merges a params file with typed --param overrides. Flags win
// over file values.
func parseParams(flags []string, file string) (core.Input, error) {
	params := core.Input{}
	if file != "" {
		fromFile, err := readParamsFile(file)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			params[k] = v
		}
	}
	for _, pair := range flags {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", pair)
		}
		params[key] = paramValue(raw)
	}
	return params, nil
}

// paramValue keeps values that parse as JSON typed (numbers, booleans,
// objects, arrays) and treats everything else as a plain string.
func paramValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && gjson.Valid(trimmed) {
		return gjson.Parse(trimmed).Value()
	}
	return raw
}

func readParamsFile(path string) (map[string]any, error) {
	resolved, err := resolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("params file: %w", err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}
	out := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse params file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse params file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported params file extension %q, use .yaml or .json", ext)
	}
	return out, nil
}

// readItems loads the JSON item list a run executes over.
func readItems(path string) ([]core.Input, error) {
	if path == "" {
		return nil, nil
	}
	resolved, err := resolveFile(path)
	if err != nil {
		return nil, fmt.Errorf("items file: %w", err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	var items []core.Input
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse items file %s: %w", path, err)
	}
	return items, nil
}

// resolveFile anchors a relative path to the working directory and checks it
// exists before the reader touches it.
func resolveFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := core.CWDFromPath("")
	if err != nil {
		return "", err
	}
	return cwd.JoinAndCheck(path)
}

// mergeItems folds the shared operation params into every item. Each item
// starts from its own deep copy of the shared params so items never alias
// nested values, and item fields win so per-item data can override.
func mergeItems(items []core.Input, params core.Input) ([]core.Input, error) {
	if len(items) == 0 {
		if len(params) == 0 {
			return nil, nil
		}
		return []core.Input{params}, nil
	}
	merged := make([]core.Input, len(items))
	for i, item := range items {
		out := core.Input{}
		if len(params) > 0 {
			shared, err := params.Clone()
			if err != nil {
				return nil, fmt.Errorf("failed to copy shared params: %w", err)
			}
			out = *shared
		}
		for k, v := range item {
			out[k] = v
		}
		merged[i] = out
	}
	return merged, nil
}
