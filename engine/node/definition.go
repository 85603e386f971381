package node

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gosimple/slug"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/credential"
	"github.com/patchline/patchline/engine/rest"
	"github.com/patchline/patchline/engine/schema"
	"github.com/patchline/patchline/pkg/logger"
)

// Action identifies one operation on one resource, such as message.post.
type Action struct {
	Resource  string `json:"resource"`
	Operation string `json:"operation"`
}

func (a Action) String() string {
	return a.Resource + "." + a.Operation
}

// Handler executes one resolved operation against the upstream API. Handlers
// return one output per produced item so list operations can fan out.
type Handler func(ctx context.Context, params core.Input) ([]core.Output, error)

// Operation binds a handler to its parameter schema.
type Operation struct {
	Description string
	Schema      schema.Schema
	Handler     Handler
}

// Definition describes an integration node: the credential it authenticates
// with, the operations it serves, and the option loaders behind its picker
// fields. Aliases keep retired operation names dispatching to their current
// implementations.
type Definition struct {
	ID          string
	Description string
	Credential  credential.Kind
	Operations  map[Action]Operation
	Aliases     map[Action]Action
	Loaders     map[string]OptionLoader
}

// Validate checks the definition is complete enough to register.
func (d *Definition) Validate() error {
	if d.ID == "" || slug.Make(d.ID) != d.ID {
		return fmt.Errorf("node ID %q must be a lowercase slug", d.ID)
	}
	if len(d.Operations) == 0 {
		return fmt.Errorf("node %s declares no operations", d.ID)
	}
	for action, op := range d.Operations {
		if action.Resource == "" || action.Operation == "" {
			return fmt.Errorf("node %s declares an operation with an empty action", d.ID)
		}
		if op.Handler == nil {
			return fmt.Errorf("node %s operation %s has no handler", d.ID, action)
		}
	}
	for from, to := range d.Aliases {
		if _, ok := d.Operations[to]; !ok {
			return fmt.Errorf("node %s alias %s targets unknown operation %s", d.ID, from, to)
		}
	}
	return nil
}

// Resolve maps an action through the alias table and returns the operation
// serving it.
func (d *Definition) Resolve(action Action) (Action, Operation, error) {
	if target, ok := d.Aliases[action]; ok {
		action = target
	}
	op, ok := d.Operations[action]
	if !ok {
		return action, Operation{}, UnknownOperation(
			fmt.Errorf("node %s does not support %s", d.ID, action),
			map[string]any{
				"node":      d.ID,
				"resource":  action.Resource,
				"operation": action.Operation,
			},
		)
	}
	return action, op, nil
}

// Execute validates params against the operation schema and runs the handler.
// Handler failures come back as coded errors.
func (d *Definition) Execute(ctx context.Context, action Action, params core.Input) ([]core.Output, error) {
	log := logger.FromContext(ctx)
	resolved, op, err := d.Resolve(action)
	if err != nil {
		return nil, err
	}
	validator := schema.NewParamsValidator(params, op.Schema, d.ID+"."+resolved.String())
	if err := validator.Validate(ctx); err != nil {
		return nil, InvalidParams(err, map[string]any{"node": d.ID, "action": resolved.String()})
	}
	outputs, err := op.Handler(ctx, params)
	if err != nil {
		return nil, d.classify(resolved.String(), err)
	}
	log.Debug("node operation completed",
		"node", d.ID,
		"action", resolved.String(),
		"outputs", len(outputs),
	)
	return outputs, nil
}

// LoadOptions runs the named option loader against the parameters collected
// so far.
func (d *Definition) LoadOptions(ctx context.Context, name string, params core.Input) ([]Option, error) {
	loader, ok := d.Loaders[name]
	if !ok {
		return nil, UnknownOperation(
			fmt.Errorf("node %s has no option loader %q", d.ID, name),
			map[string]any{"node": d.ID, "loader": name},
		)
	}
	options, err := loader(ctx, params)
	if err != nil {
		return nil, d.classify("options."+name, err)
	}
	return options, nil
}

// Actions returns the supported actions sorted for stable listings. Aliases
// are not included.
func (d *Definition) Actions() []Action {
	actions := make([]Action, 0, len(d.Operations))
	for action := range d.Operations {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool {
		return actions[i].String() < actions[j].String()
	})
	return actions
}

// classify normalizes handler errors onto the canonical codes. Errors that
// already carry a code pass through untouched.
func (d *Definition) classify(action string, err error) error {
	var coded *core.Error
	if errors.As(err, &coded) {
		return coded
	}
	details := map[string]any{"node": d.ID, "action": action}
	if errors.Is(err, credential.ErrMissing) {
		return MissingCredentials(err, details)
	}
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) {
		details["status"] = apiErr.Status
		if apiErr.RequestID != "" {
			details["request_id"] = apiErr.RequestID
		}
		return UpstreamError(err, details)
	}
	return Internal(err, details)
}
