package clockify

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func userGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	items, err := listAll(ctx, client, base+"/users", nil, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}
