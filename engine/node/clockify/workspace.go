package clockify

import (
	"context"
	"strconv"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/engine/rest"
)

func workspaceGetAll(ctx context.Context, _ core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	items, err := client.List(ctx, "GET", "/workspaces", nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

// workspacePath returns the workspace-scoped prefix every other resource
// lives under.
func workspacePath(params core.Input) (string, error) {
	workspaceID, err := node.RequireString(params, "workspaceId")
	if err != nil {
		return "", err
	}
	return "/workspaces/" + workspaceID, nil
}

// listAll drains every page when returnAll is set and otherwise fetches a
// single page capped at limit.
func listAll(
	ctx context.Context,
	client *rest.Client,
	path string,
	query map[string]string,
	params core.Input,
) ([]map[string]any, error) {
	if node.Bool(params, "returnAll") {
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
	q["page"] = "1"
	q["page-size"] = strconv.Itoa(limit)
	return client.List(ctx, "GET", path, q, nil)
}

// setFlag copies an optional boolean parameter into the query string.
func setFlag(query map[string]string, params core.Input, key string) {
	if v, ok := params[key].(bool); ok {
		query[key] = strconv.FormatBool(v)
	}
}

// setText copies an optional non-empty string parameter into the query string.
func setText(query map[string]string, params core.Input, key string) {
	if v := node.String(params, key); v != "" {
		query[key] = v
	}
}

// copyParams copies present parameters into the request body verbatim.
func copyParams(body map[string]any, params core.Input, keys ...string) {
	for _, key := range keys {
		if v, ok := params[key]; ok {
			body[key] = v
		}
	}
}
