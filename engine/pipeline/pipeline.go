package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/pkg/logger"
)

// Execution reports one node run across its input items.
type Execution struct {
	ID       core.ID         `json:"id"`
	Node     string          `json:"node"`
	Action   node.Action     `json:"action"`
	Status   core.StatusType `json:"status"`
	Items    int             `json:"items"`
	Outputs  []core.Output   `json:"outputs"`
	Error    *core.Error     `json:"error,omitempty"`
	Duration time.Duration   `json:"duration"`
}

// Run executes the action once per input item, in order, stopping at the
// first failure. Outputs from every item land in one flat list. A nil or
// empty item list runs the action once with empty params.
func Run(
	ctx context.Context,
	def *node.Definition,
	action node.Action,
	items []core.Input,
) (*Execution, error) {
	log := logger.FromContext(ctx)
	execID, err := core.NewID()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items = []core.Input{{}}
	}
	exec := &Execution{
		ID:     execID,
		Node:   def.ID,
		Action: action,
		Status: core.StatusRunning,
		Items:  len(items),
	}
	started := time.Now()
	log.Info("starting node run",
		"execution_id", exec.ID,
		"node", def.ID,
		"action", action.String(),
		"items", len(items),
	)
	for i, item := range items {
		outputs, err := def.Execute(ctx, action, item)
		if err != nil {
			exec.Status = core.StatusFailed
			exec.Duration = time.Since(started)
			var coded *core.Error
			if errors.As(err, &coded) {
				exec.Error = coded
			} else {
				exec.Error = core.NewError(err, node.CodeInternal, nil)
			}
			log.Error("node run failed",
				"execution_id", exec.ID,
				"node", def.ID,
				"action", action.String(),
				"item", i,
				"error", core.RedactError(err),
			)
			return exec, fmt.Errorf("item %d: %w", i, err)
		}
		exec.Outputs = append(exec.Outputs, outputs...)
	}
	exec.Status = core.StatusSuccess
	exec.Duration = time.Since(started)
	log.Info("node run completed",
		"execution_id", exec.ID,
		"node", def.ID,
		"action", action.String(),
		"outputs", len(exec.Outputs),
		"duration", exec.Duration,
	)
	return exec, nil
}
