package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func postAction() node.Action {
	return node.Action{Resource: "message", Operation: "post"}
}

func pipelineDefinition(handler node.Handler) *node.Definition {
	return &node.Definition{
		ID: "chat",
		Operations: map[node.Action]node.Operation{
			postAction(): {Handler: handler},
		},
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Should run every item in order and flatten outputs", func(t *testing.T) {
		var seen []string
		def := pipelineDefinition(func(_ context.Context, params core.Input) ([]core.Output, error) {
			msg, _ := params["message"].(string)
			seen = append(seen, msg)
			return []core.Output{
				{"message": msg},
				{"message": msg, "echo": true},
			}, nil
		})
		exec, err := Run(ctx, def, postAction(), []core.Input{
			{"message": "one"},
			{"message": "two"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, seen)
		assert.Equal(t, core.StatusSuccess, exec.Status)
		assert.Equal(t, 2, exec.Items)
		require.Len(t, exec.Outputs, 4)
		assert.Equal(t, "one", exec.Outputs[0]["message"])
		assert.Equal(t, "two", exec.Outputs[3]["message"])
		assert.NotEmpty(t, exec.ID)
	})

	t.Run("Should run once with empty params when no items given", func(t *testing.T) {
		calls := 0
		def := pipelineDefinition(func(_ context.Context, params core.Input) ([]core.Output, error) {
			calls++
			assert.Empty(t, params)
			return []core.Output{{"ok": true}}, nil
		})
		exec, err := Run(ctx, def, postAction(), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, exec.Items)
	})

	t.Run("Should stop at the first failing item", func(t *testing.T) {
		calls := 0
		def := pipelineDefinition(func(_ context.Context, params core.Input) ([]core.Output, error) {
			calls++
			if params["message"] == "bad" {
				return nil, node.Internal(errors.New("boom"), nil)
			}
			return []core.Output{{"message": params["message"]}}, nil
		})
		exec, err := Run(ctx, def, postAction(), []core.Input{
			{"message": "one"},
			{"message": "bad"},
			{"message": "never"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 1")
		assert.Equal(t, 2, calls)
		assert.Equal(t, core.StatusFailed, exec.Status)
		require.NotNil(t, exec.Error)
		assert.Equal(t, node.CodeInternal, exec.Error.Code)
		assert.Len(t, exec.Outputs, 1)
	})

	t.Run("Should fail fast on unknown operations", func(t *testing.T) {
		def := pipelineDefinition(func(context.Context, core.Input) ([]core.Output, error) {
			return nil, nil
		})
		exec, err := Run(ctx, def, node.Action{Resource: "message", Operation: "edit"}, nil)
		require.Error(t, err)
		assert.Equal(t, core.StatusFailed, exec.Status)
		require.NotNil(t, exec.Error)
		assert.Equal(t, node.CodeUnknownOperation, exec.Error.Code)
	})
}
