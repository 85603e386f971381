package node

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/patchline/patchline/pkg/logger"
)

// Registry holds the node definitions available to the host.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]*Definition
}

func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Definition)}
}

// Register validates the definition and adds it under its ID. Duplicate IDs
// are rejected.
func (r *Registry) Register(ctx context.Context, def *Definition) error {
	if def == nil {
		return fmt.Errorf("node definition is nil")
	}
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.nodes[def.ID]; ok {
		return fmt.Errorf("node %s is already registered", def.ID)
	}
	r.nodes[def.ID] = def
	logger.FromContext(ctx).Debug("registered node",
		"node", def.ID,
		"operations", len(def.Operations),
	)
	return nil
}

// Get returns the definition registered under id.
func (r *Registry) Get(id string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.nodes[id]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", id)
	}
	return def, nil
}

// List returns the registered definitions sorted by ID.
func (r *Registry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]*Definition, 0, len(r.nodes))
	for _, def := range r.nodes {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}
