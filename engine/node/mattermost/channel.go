package mattermost

import (
	"context"
	"strconv"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/engine/rest"
)

// channelTypeCodes maps the friendly type values onto the API's letter codes.
var channelTypeCodes = map[string]string{
	"public":  "O",
	"private": "P",
}

func channelCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	teamID, err := node.RequireString(params, "team_id")
	if err != nil {
		return nil, err
	}
	name, err := node.RequireString(params, "name")
	if err != nil {
		return nil, err
	}
	displayName, err := node.RequireString(params, "display_name")
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"team_id":      teamID,
		"name":         name,
		"display_name": displayName,
		"type":         channelTypeCodes[node.String(params, "type")],
	}
	result, err := client.Object(ctx, "POST", "/channels", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "channel.create")
}

func channelDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", "/channels/"+channelID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func channelRestore(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "POST", "/channels/"+channelID+"/restore", nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "channel.restore")
}

func channelAddUser(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	userID, err := node.RequireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	body := map[string]any{"user_id": userID}
	result, err := client.Object(ctx, "POST", "/channels/"+channelID+"/members", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "channel.addUser")
}

func channelStatistics(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "GET", "/channels/"+channelID+"/stats", nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "channel.statistics")
}

func channelSearch(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	teamID, err := node.RequireString(params, "team_id")
	if err != nil {
		return nil, err
	}
	term, err := node.RequireString(params, "term")
	if err != nil {
		return nil, err
	}
	body := map[string]any{"term": term}
	items, err := client.List(ctx, "POST", "/teams/"+teamID+"/channels/search", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func channelMembers(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channelID, err := node.RequireString(params, "channel_id")
	if err != nil {
		return nil, err
	}
	items, err := listAll(ctx, client, "/channels/"+channelID+"/members", nil, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

// listAll drains every page of a listing endpoint when return_all is set and
// otherwise fetches a single page capped at limit.
func listAll(
	ctx context.Context,
	client *rest.Client,
	path string,
	query map[string]string,
	params core.Input,
) ([]map[string]any, error) {
	if node.Bool(params, "return_all") {
		return client.AllPages(ctx, path, query, pager(defaultPageSize))
	}
	limit := node.Int(params, "limit")
	if limit <= 0 {
		limit = defaultPageSize
	}
	q := core.CloneMap(query)
	if q == nil {
		q = make(map[string]string, 2)
	}
	q["page"] = "0"
	q["per_page"] = strconv.Itoa(limit)
	return client.List(ctx, "GET", path, q, nil)
}
