package mattermost

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func messagePost(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	message, err := node.RequireString(params, "message")
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"channel_id": channelID,
		"message":    message,
	}
	if attachments := NormalizeAttachments(node.Slice(params, "attachments")); len(attachments) > 0 {
		body["props"] = map[string]any{"attachments": attachments}
	}
	if other := node.Map(params, "other_options"); len(other) > 0 {
		base := core.Output(body)
		merged, err := base.Merge(core.Output(other))
		if err != nil {
			return nil, node.Internal(err, nil)
		}
		body = merged
	}
	result, err := client.Object(ctx, "POST", "/posts", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "message.post")
}

func messagePostEphemeral(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := node.RequireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	message, err := node.RequireString(params, "message")
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"user_id": userID,
		"post": map[string]any{
			"channel_id": channelID,
			"message":    message,
		},
	}
	result, err := client.Object(ctx, "POST", "/posts/ephemeral", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "message.postEphemeral")
}

func messageDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	postID, err := node.RequireString(params, "post_id")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", "/posts/"+postID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}
