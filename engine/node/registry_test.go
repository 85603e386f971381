package node

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Should register and look up definitions", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(ctx, testDefinition()))
		def, err := reg.Get("chat")
		require.NoError(t, err)
		assert.Equal(t, "chat", def.ID)
	})

	t.Run("Should error on duplicate ids", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(ctx, testDefinition()))
		err := reg.Register(ctx, testDefinition())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Should reject invalid definitions", func(t *testing.T) {
		reg := NewRegistry()
		def := testDefinition()
		def.ID = "Not A Slug"
		require.Error(t, reg.Register(ctx, def))
	})

	t.Run("Should reject nil definitions", func(t *testing.T) {
		reg := NewRegistry()
		require.Error(t, reg.Register(ctx, nil))
	})

	t.Run("Should error for unknown ids", func(t *testing.T) {
		reg := NewRegistry()
		_, err := reg.Get("tracker")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown node")
	})

	t.Run("Should list definitions sorted by id", func(t *testing.T) {
		reg := NewRegistry()
		second := testDefinition()
		second.ID = "tracker"
		require.NoError(t, reg.Register(ctx, second))
		require.NoError(t, reg.Register(ctx, testDefinition()))
		defs := reg.List()
		require.Len(t, defs, 2)
		assert.Equal(t, "chat", defs[0].ID)
		assert.Equal(t, "tracker", defs[1].ID)
	})
}
