package core

import (
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("Should generate well-formed KSUIDs", func(t *testing.T) {
		id, err := NewID()
		require.NoError(t, err)
		_, err = ksuid.Parse(string(id))
		assert.NoError(t, err)
	})

	t.Run("Should not repeat across calls", func(t *testing.T) {
		seen := make(map[ID]bool, 64)
		for i := 0; i < 64; i++ {
			id, err := NewID()
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}
