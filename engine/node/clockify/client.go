package clockify

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func clientCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
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
	result, err := client.Object(ctx, "POST", base+"/clients", nil, map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "client.create")
}

func clientDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	clientID, err := node.RequireString(params, "clientId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", base+"/clients/"+clientID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func clientGet(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	clientID, err := node.RequireString(params, "clientId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "GET", base+"/clients/"+clientID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "client.get")
}

func clientGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
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
	items, err := listAll(ctx, client, base+"/clients", query, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func clientUpdate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	clientID, err := node.RequireString(params, "clientId")
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	for k, v := range node.Map(params, "updateFields") {
		body[k] = v
	}
	result, err := client.Object(ctx, "PUT", base+"/clients/"+clientID, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "client.update")
}
