package clockify

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func tagCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	name, err := node.RequireString(params, "name")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "POST", base+"/tags", nil, map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "tag.create")
}

func tagDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	tagID, err := node.RequireString(params, "tagId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", base+"/tags/"+tagID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func tagGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	query := make(map[string]string, 2)
	setText(query, params, "name")
	setFlag(query, params, "archived")
	items, err := listAll(ctx, client, base+"/tags", query, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func tagUpdate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	tagID, err := node.RequireString(params, "tagId")
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	for k, v := range node.Map(params, "updateFields") {
		body[k] = v
	}
	result, err := client.Object(ctx, "PUT", base+"/tags/"+tagID, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "tag.update")
}
