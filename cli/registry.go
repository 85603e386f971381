package cli

import (
	"context"

	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/engine/node/clockify"
	"github.com/patchline/patchline/engine/node/mattermost"
)

// buildRegistry registers every node this binary ships.
func buildRegistry(ctx context.Context) (*node.Registry, error) {
	registry := node.NewRegistry()
	for _, def := range []*node.Definition{
		mattermost.Definition(),
		clockify.Definition(),
	} {
		if err := registry.Register(ctx, def); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
