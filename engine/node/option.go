package node

import (
	"context"

	"github.com/patchline/patchline/engine/core"
)

// Option is a single selectable entry for a picker field.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OptionLoader lists the options for one picker field. Loaders receive the
// parameters collected so far because some lists depend on earlier choices,
// such as projects scoped to a workspace.
type OptionLoader func(ctx context.Context, params core.Input) ([]Option, error)
