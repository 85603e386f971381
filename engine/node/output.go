package node

import (
	"fmt"

	"github.com/patchline/patchline/engine/core"
)

// ObjectOutput wraps one decoded object as a single-item output list,
// rejecting an empty body where the operation needs one.
func ObjectOutput(result map[string]any, action string) ([]core.Output, error) {
	if len(result) == 0 {
		return nil, EmptyResponse(
			fmt.Errorf("%s returned an empty response", action),
			map[string]any{"action": action},
		)
	}
	return []core.Output{core.Output(result)}, nil
}

// ListOutput flattens each decoded list element into one output item.
func ListOutput(items []map[string]any) []core.Output {
	outputs := make([]core.Output, 0, len(items))
	for _, item := range items {
		outputs = append(outputs, core.Output(item))
	}
	return outputs
}

// StatusOutput reports success for operations whose upstream reply is a bare
// status envelope or an empty body.
func StatusOutput(result map[string]any) []core.Output {
	if len(result) == 0 {
		return []core.Output{{"status": "OK"}}
	}
	return []core.Output{core.Output(result)}
}
