package clockify

import "github.com/patchline/patchline/engine/schema"

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

var clientCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "name"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
	},
}

var clientIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "clientId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"clientId":    map[string]any{"type": "string"},
	},
}

var clientGetAllSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"name": map[string]any{
			"type":        "string",
			"description": "Only return clients whose name contains this string.",
		},
		"archived":  map[string]any{"type": "boolean"},
		"returnAll": map[string]any{"type": "boolean"},
		"limit":     map[string]any{"type": "integer", "minimum": 1},
	},
}

var clientUpdateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "clientId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"clientId":    map[string]any{"type": "string"},
		"updateFields": map[string]any{
			"type":        "object",
			"description": "Fields to change, e.g. name, note, archived.",
		},
	},
}

// -----------------------------------------------------------------------------
// Project
// -----------------------------------------------------------------------------

var estimateProperty = map[string]any{
	"type":        "object",
	"description": "Time estimate; amount is a duration string such as 1h30m.",
	"properties": map[string]any{
		"amount": map[string]any{"type": "string"},
		"type":   map[string]any{"type": "string", "enum": []string{"AUTO", "MANUAL"}},
	},
}

var projectCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "name"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
		"clientId":    map[string]any{"type": "string"},
		"isPublic":    map[string]any{"type": "boolean"},
		"billable":    map[string]any{"type": "boolean"},
		"color":       map[string]any{"type": "string"},
		"note":        map[string]any{"type": "string"},
		"estimate":    estimateProperty,
		"hourlyRate": map[string]any{
			"type":        "object",
			"description": "Hourly rate; amount is a decimal string such as 12.50.",
			"properties": map[string]any{
				"amount":   map[string]any{"type": []string{"string", "number"}},
				"currency": map[string]any{"type": "string"},
			},
		},
	},
}

var projectIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "projectId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"projectId":   map[string]any{"type": "string"},
	},
}

var projectGetAllSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
		"archived":    map[string]any{"type": "boolean"},
		"billable":    map[string]any{"type": "boolean"},
		"returnAll":   map[string]any{"type": "boolean"},
		"limit":       map[string]any{"type": "integer", "minimum": 1},
	},
}

var projectUpdateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "projectId"},
	"properties": map[string]any{
		"workspaceId":  map[string]any{"type": "string"},
		"projectId":    map[string]any{"type": "string"},
		"updateFields": map[string]any{"type": "object"},
		"estimate":     estimateProperty,
		"hourlyRate":   map[string]any{"type": "object"},
	},
}

// -----------------------------------------------------------------------------
// Tag
// -----------------------------------------------------------------------------

var tagCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "name"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
	},
}

var tagIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "tagId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"tagId":       map[string]any{"type": "string"},
	},
}

var tagGetAllSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
		"archived":    map[string]any{"type": "boolean"},
		"returnAll":   map[string]any{"type": "boolean"},
		"limit":       map[string]any{"type": "integer", "minimum": 1},
	},
}

var tagUpdateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "tagId"},
	"properties": map[string]any{
		"workspaceId":  map[string]any{"type": "string"},
		"tagId":        map[string]any{"type": "string"},
		"updateFields": map[string]any{"type": "object"},
	},
}

// -----------------------------------------------------------------------------
// Task
// -----------------------------------------------------------------------------

var taskCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "projectId", "name"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"projectId":   map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
		"assigneeIds": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"estimate": map[string]any{
			"type":        "string",
			"description": "Duration string such as 1h30m, sent as an ISO-8601 period.",
		},
		"status": map[string]any{"type": "string", "enum": []string{"ACTIVE", "DONE"}},
	},
}

var taskIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "projectId", "taskId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"projectId":   map[string]any{"type": "string"},
		"taskId":      map[string]any{"type": "string"},
	},
}

var taskGetAllSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "projectId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"projectId":   map[string]any{"type": "string"},
		"name":        map[string]any{"type": "string"},
		"isActive":    map[string]any{"type": "boolean"},
		"returnAll":   map[string]any{"type": "boolean"},
		"limit":       map[string]any{"type": "integer", "minimum": 1},
	},
}

var taskUpdateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "projectId", "taskId"},
	"properties": map[string]any{
		"workspaceId":  map[string]any{"type": "string"},
		"projectId":    map[string]any{"type": "string"},
		"taskId":       map[string]any{"type": "string"},
		"updateFields": map[string]any{"type": "object"},
		"estimate":     map[string]any{"type": "string"},
	},
}

// -----------------------------------------------------------------------------
// Time entry
// -----------------------------------------------------------------------------

var timeEntryCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "start"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"start": map[string]any{
			"type":        "string",
			"description": "RFC3339 timestamp; converted to UTC on the wire.",
		},
		"end":         map[string]any{"type": "string"},
		"billable":    map[string]any{"type": "boolean"},
		"description": map[string]any{"type": "string"},
		"projectId":   map[string]any{"type": "string"},
		"taskId":      map[string]any{"type": "string"},
		"tagIds": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

var timeEntryIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "timeEntryId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"timeEntryId": map[string]any{"type": "string"},
	},
}

var timeEntryGetSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "timeEntryId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"timeEntryId": map[string]any{"type": "string"},
		"hydrated": map[string]any{
			"type":        "boolean",
			"description": "Expand project, task, and tags in the response.",
		},
	},
}

var timeEntryUpdateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId", "timeEntryId"},
	"properties": map[string]any{
		"workspaceId":  map[string]any{"type": "string"},
		"timeEntryId":  map[string]any{"type": "string"},
		"updateFields": map[string]any{"type": "object"},
	},
}

// -----------------------------------------------------------------------------
// User
// -----------------------------------------------------------------------------

var userGetAllSchema = schema.Schema{
	"type":     "object",
	"required": []string{"workspaceId"},
	"properties": map[string]any{
		"workspaceId": map[string]any{"type": "string"},
		"returnAll":   map[string]any{"type": "boolean"},
		"limit":       map[string]any{"type": "integer", "minimum": 1},
	},
}
