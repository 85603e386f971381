package mattermost

import (
	"github.com/patchline/patchline/engine/core"
)

// UI form collections arrive wrapped one level deep under a container key.
const (
	itemWrapper     = "item"
	optionWrapper   = "option"
	propertyWrapper = "property"
)

// Defaults the message API treats as implicit, stripped before transmission.
const (
	defaultActionType = "button"
	defaultDataSource = "custom"
)

// NormalizeAttachments rewrites the UI-collected attachment list into the
// shape the post API expects. The transform is pure and total: it works on a
// deep copy, never fails, and passes malformed shapes through unchanged for
// the upstream API to judge. Only container maps are unwrapped, so applying
// it to an already-normalized list is a no-op.
func NormalizeAttachments(raw []any) []any {
	if raw == nil {
		return nil
	}
	attachments, err := core.DeepCopy(raw)
	if err != nil {
		return raw
	}
	for _, entry := range attachments {
		attachment, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		unwrapContainer(attachment, "fields", itemWrapper)
		unwrapContainer(attachment, "actions", itemWrapper)
		normalizeActions(attachment)
	}
	return attachments
}

// unwrapContainer lifts {key: {wrapper: x}} to {key: x}, removing the key
// when the container holds nothing under the wrapper. Values that are not
// container maps stay as they are.
func unwrapContainer(m map[string]any, key, wrapper string) {
	container, ok := m[key].(map[string]any)
	if !ok {
		return
	}
	if wrapped, found := container[wrapper]; found {
		m[key] = wrapped
		return
	}
	delete(m, key)
}

func normalizeActions(attachment map[string]any) {
	actions, ok := attachment["actions"].([]any)
	if !ok {
		return
	}
	for _, entry := range actions {
		if action, ok := entry.(map[string]any); ok {
			normalizeAction(action)
		}
	}
}

func normalizeAction(action map[string]any) {
	if action["type"] == defaultActionType {
		delete(action, "type")
	}
	if action["data_source"] == defaultDataSource {
		delete(action, "data_source")
	}
	unwrapContainer(action, "options", optionWrapper)
	integration, ok := action["integration"].(map[string]any)
	if !ok {
		return
	}
	item, found := integration[itemWrapper]
	if !found {
		return
	}
	action["integration"] = item
	if unwrapped, ok := item.(map[string]any); ok {
		foldContext(unwrapped)
	}
}

// foldContext collapses the wrapped {context: {property: [{name, value}]}}
// list into a flat name to value map. Duplicate names collapse to the
// last-seen value.
func foldContext(integration map[string]any) {
	contextValue, ok := integration["context"].(map[string]any)
	if !ok {
		return
	}
	properties, ok := contextValue[propertyWrapper].([]any)
	if !ok {
		return
	}
	folded := make(map[string]any, len(properties))
	for _, entry := range properties {
		prop, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, ok := prop["name"].(string)
		if !ok {
			continue
		}
		folded[name] = prop["value"]
	}
	integration["context"] = folded
}
