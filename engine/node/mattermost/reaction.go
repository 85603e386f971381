package mattermost

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func reactionCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	body, err := reactionBody(params)
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "POST", "/reactions", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "reaction.create")
}

func reactionDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	body, err := reactionBody(params)
	if err != nil {
		return nil, err
	}
	path := "/users/" + body["user_id"].(string) +
		"/posts/" + body["post_id"].(string) +
		"/reactions/" + body["emoji_name"].(string)
	result, err := client.Object(ctx, "DELETE", path, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func reactionGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	postID, err := node.RequireString(params, "post_id")
	if err != nil {
		return nil, err
	}
	items, err := client.List(ctx, "GET", "/posts/"+postID+"/reactions", nil, nil)
	if err != nil {
		return nil, err
	}
	// The reactions endpoint is not paginated upstream; the cap applies
	// client-side.
	if !node.Bool(params, "return_all") {
		if limit := node.Int(params, "limit"); limit > 0 && len(items) > limit {
			items = items[:limit]
		}
	}
	return node.ListOutput(items), nil
}

func reactionBody(params core.Input) (map[string]any, error) {
	userID, err := node.RequireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	postID, err := node.RequireString(params, "post_id")
	if err != nil {
		return nil, err
	}
	emojiName, err := node.RequireString(params, "emoji_name")
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"user_id":    userID,
		"post_id":    postID,
		"emoji_name": emojiName,
	}, nil
}
