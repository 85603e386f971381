package mattermost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrappedAttachment() map[string]any {
	return map[string]any{
		"color":    "#36a64f",
		"fallback": "release 1.4 shipped",
		"fields": map[string]any{
			"item": []any{
				map[string]any{"title": "T", "value": "V", "short": true},
			},
		},
		"actions": map[string]any{
			"item": []any{
				map[string]any{
					"type": "button",
					"name": "Approve",
					"integration": map[string]any{
						"item": map[string]any{
							"url": "https://hooks.example.com/approve",
							"context": map[string]any{
								"property": []any{
									map[string]any{"name": "a", "value": "1"},
									map[string]any{"name": "b", "value": "2"},
								},
							},
						},
					},
				},
				map[string]any{
					"type":        "select",
					"name":        "Assignee",
					"data_source": "custom",
					"options": map[string]any{
						"option": []any{
							map[string]any{"text": "Ana", "value": "ana"},
						},
					},
				},
			},
		},
	}
}

func TestNormalizeAttachments(t *testing.T) {
	t.Run("Should remove an empty fields container", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{
			map[string]any{"text": "hi", "fields": map[string]any{}},
		})
		attachment := normalized[0].(map[string]any)
		_, present := attachment["fields"]
		assert.False(t, present)
		assert.Equal(t, "hi", attachment["text"])
	})

	t.Run("Should unwrap a wrapped fields list", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{wrappedAttachment()})
		attachment := normalized[0].(map[string]any)
		fields, ok := attachment["fields"].([]any)
		require.True(t, ok)
		require.Len(t, fields, 1)
		assert.Equal(t, map[string]any{"title": "T", "value": "V", "short": true}, fields[0])
	})

	t.Run("Should strip default action type and keep select", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{wrappedAttachment()})
		actions := normalized[0].(map[string]any)["actions"].([]any)
		button := actions[0].(map[string]any)
		_, present := button["type"]
		assert.False(t, present)
		selectAction := actions[1].(map[string]any)
		assert.Equal(t, "select", selectAction["type"])
	})

	t.Run("Should strip default data_source and keep users", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{
			map[string]any{
				"actions": map[string]any{
					"item": []any{
						map[string]any{"name": "Pick", "data_source": "custom"},
						map[string]any{"name": "Assign", "data_source": "users"},
					},
				},
			},
		})
		actions := normalized[0].(map[string]any)["actions"].([]any)
		_, present := actions[0].(map[string]any)["data_source"]
		assert.False(t, present)
		assert.Equal(t, "users", actions[1].(map[string]any)["data_source"])
	})

	t.Run("Should unwrap action options", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{wrappedAttachment()})
		actions := normalized[0].(map[string]any)["actions"].([]any)
		options, ok := actions[1].(map[string]any)["options"].([]any)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"text": "Ana", "value": "ana"}, options[0])
	})

	t.Run("Should unwrap integration and fold its context", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{wrappedAttachment()})
		actions := normalized[0].(map[string]any)["actions"].([]any)
		integration, ok := actions[0].(map[string]any)["integration"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https://hooks.example.com/approve", integration["url"])
		assert.Equal(t, map[string]any{"a": "1", "b": "2"}, integration["context"])
	})

	t.Run("Should collapse duplicate context names to the last value", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{
			map[string]any{
				"actions": map[string]any{
					"item": []any{
						map[string]any{
							"integration": map[string]any{
								"item": map[string]any{
									"context": map[string]any{
										"property": []any{
											map[string]any{"name": "a", "value": "1"},
											map[string]any{"name": "a", "value": "2"},
										},
									},
								},
							},
						},
					},
				},
			},
		})
		actions := normalized[0].(map[string]any)["actions"].([]any)
		integration := actions[0].(map[string]any)["integration"].(map[string]any)
		assert.Equal(t, map[string]any{"a": "2"}, integration["context"])
	})

	t.Run("Should remove an actions container without items", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{
			map[string]any{"text": "hi", "actions": map[string]any{}},
		})
		_, present := normalized[0].(map[string]any)["actions"]
		assert.False(t, present)
	})

	t.Run("Should pass malformed actions through unchanged", func(t *testing.T) {
		normalized := NormalizeAttachments([]any{
			map[string]any{"actions": "not-a-list"},
			"not-a-map",
		})
		assert.Equal(t, "not-a-list", normalized[0].(map[string]any)["actions"])
		assert.Equal(t, "not-a-map", normalized[1])
	})

	t.Run("Should be idempotent on already normalized input", func(t *testing.T) {
		once := NormalizeAttachments([]any{wrappedAttachment()})
		twice := NormalizeAttachments(once)
		assert.Equal(t, once, twice)
	})

	t.Run("Should not mutate the source list", func(t *testing.T) {
		source := []any{wrappedAttachment()}
		NormalizeAttachments(source)
		attachment := source[0].(map[string]any)
		fields, ok := attachment["fields"].(map[string]any)
		require.True(t, ok)
		_, wrapped := fields["item"]
		assert.True(t, wrapped)
		actions := attachment["actions"].(map[string]any)["item"].([]any)
		assert.Equal(t, "button", actions[0].(map[string]any)["type"])
	})

	t.Run("Should return nil for nil input", func(t *testing.T) {
		assert.Nil(t, NormalizeAttachments(nil))
	})
}
