package mattermost

import "github.com/patchline/patchline/engine/schema"

// -----------------------------------------------------------------------------
// Channel
// -----------------------------------------------------------------------------

var channelCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"team_id", "name", "display_name", "type"},
	"properties": map[string]any{
		"team_id": map[string]any{
			"type":        "string",
			"description": "The Mattermost team to create the channel in.",
		},
		"name": map[string]any{
			"type":        "string",
			"description": "URL-safe handle of the new channel.",
		},
		"display_name": map[string]any{
			"type":        "string",
			"description": "Name shown in the channel list.",
		},
		"type": map[string]any{
			"type": "string",
			"enum": []string{"public", "private"},
		},
	},
}

var channelIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"channel_id"},
	"properties": map[string]any{
		"channel_id": map[string]any{"type": "string"},
	},
}

var channelAddUserSchema = schema.Schema{
	"type":     "object",
	"required": []string{"channel_id", "user_id"},
	"properties": map[string]any{
		"channel_id": map[string]any{"type": "string"},
		"user_id":    map[string]any{"type": "string"},
	},
}

var channelSearchSchema = schema.Schema{
	"type":     "object",
	"required": []string{"team_id", "term"},
	"properties": map[string]any{
		"team_id": map[string]any{"type": "string"},
		"term": map[string]any{
			"type":        "string",
			"description": "Search term matched against channel names.",
		},
	},
}

var channelMembersSchema = schema.Schema{
	"type":     "object",
	"required": []string{"channel_id"},
	"properties": map[string]any{
		"channel_id": map[string]any{"type": "string"},
		"return_all": map[string]any{
			"type":        "boolean",
			"description": "Fetch every page instead of the first limit results.",
		},
		"limit": map[string]any{"type": "integer", "minimum": 1},
	},
}

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

var messagePostSchema = schema.Schema{
	"type":     "object",
	"required": []string{"channel_id", "message"},
	"properties": map[string]any{
		"channel_id": map[string]any{"type": "string"},
		"message": map[string]any{
			"type":        "string",
			"description": "Markdown text of the post.",
		},
		"attachments": map[string]any{
			"type":        "array",
			"description": "Rich-content attachment blocks as collected by the form layer.",
			"items":       map[string]any{"type": "object"},
		},
		"other_options": map[string]any{
			"type":        "object",
			"description": "Extra post fields merged into the request body, e.g. root_id.",
		},
	},
}

var messagePostEphemeralSchema = schema.Schema{
	"type":     "object",
	"required": []string{"user_id", "channel_id", "message"},
	"properties": map[string]any{
		"user_id": map[string]any{
			"type":        "string",
			"description": "The only user shown the ephemeral post.",
		},
		"channel_id": map[string]any{"type": "string"},
		"message":    map[string]any{"type": "string"},
	},
}

var messageDeleteSchema = schema.Schema{
	"type":     "object",
	"required": []string{"post_id"},
	"properties": map[string]any{
		"post_id": map[string]any{"type": "string"},
	},
}

// -----------------------------------------------------------------------------
// Reaction
// -----------------------------------------------------------------------------

var reactionSchema = schema.Schema{
	"type":     "object",
	"required": []string{"user_id", "post_id", "emoji_name"},
	"properties": map[string]any{
		"user_id": map[string]any{"type": "string"},
		"post_id": map[string]any{"type": "string"},
		"emoji_name": map[string]any{
			"type":        "string",
			"description": "Emoji name without the surrounding colons.",
		},
	},
}

var reactionGetAllSchema = schema.Schema{
	"type":     "object",
	"required": []string{"post_id"},
	"properties": map[string]any{
		"post_id":    map[string]any{"type": "string"},
		"return_all": map[string]any{"type": "boolean"},
		"limit":      map[string]any{"type": "integer", "minimum": 1},
	},
}

// -----------------------------------------------------------------------------
// User
// -----------------------------------------------------------------------------

var userCreateSchema = schema.Schema{
	"type":     "object",
	"required": []string{"email", "username"},
	"properties": map[string]any{
		"email":    map[string]any{"type": "string", "format": "email"},
		"username": map[string]any{"type": "string"},
		"password": map[string]any{"type": "string"},
		"additional_fields": map[string]any{
			"type":        "object",
			"description": "Optional profile fields such as first_name, last_name, nickname.",
		},
	},
}

var userIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"user_id"},
	"properties": map[string]any{
		"user_id": map[string]any{"type": "string"},
	},
}

var userGetAllSchema = schema.Schema{
	"type": "object",
	"properties": map[string]any{
		"in_team":        map[string]any{"type": "string"},
		"not_in_team":    map[string]any{"type": "string"},
		"in_channel":     map[string]any{"type": "string"},
		"not_in_channel": map[string]any{"type": "string"},
		"sort": map[string]any{
			"type":        "string",
			"description": "Sort key; which keys are valid depends on the scope filter.",
		},
		"return_all": map[string]any{"type": "boolean"},
		"limit":      map[string]any{"type": "integer", "minimum": 1},
	},
}

var userGetByEmailSchema = schema.Schema{
	"type":     "object",
	"required": []string{"email"},
	"properties": map[string]any{
		"email": map[string]any{"type": "string", "format": "email"},
	},
}

var userGetByIDSchema = schema.Schema{
	"type":     "object",
	"required": []string{"ids"},
	"properties": map[string]any{
		"ids": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
		"since": map[string]any{
			"type":        "integer",
			"description": "Only return users modified after this epoch millisecond.",
		},
	},
}

var userInviteSchema = schema.Schema{
	"type":     "object",
	"required": []string{"team_id", "emails"},
	"properties": map[string]any{
		"team_id": map[string]any{"type": "string"},
		"emails": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "format": "email"},
			"minItems": 1,
		},
	},
}
