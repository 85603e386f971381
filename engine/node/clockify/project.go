package clockify

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func projectCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
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
	body := map[string]any{"name": name}
	copyParams(body, params, "clientId", "isPublic", "billable", "color", "note")
	if err := applyProjectMoney(body, params); err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "POST", base+"/projects", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "project.create")
}

func projectDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	projectID, err := node.RequireString(params, "projectId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", base+"/projects/"+projectID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func projectGet(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	projectID, err := node.RequireString(params, "projectId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "GET", base+"/projects/"+projectID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "project.get")
}

func projectGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	query := make(map[string]string, 3)
	setText(query, params, "name")
	setFlag(query, params, "archived")
	setFlag(query, params, "billable")
	items, err := listAll(ctx, client, base+"/projects", query, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func projectUpdate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	projectID, err := node.RequireString(params, "projectId")
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	for k, v := range node.Map(params, "updateFields") {
		body[k] = v
	}
	if err := applyProjectMoney(body, params); err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "PUT", base+"/projects/"+projectID, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "project.update")
}

// applyProjectMoney converts the estimate and hourlyRate parameters into
// their wire shapes when present.
func applyProjectMoney(body map[string]any, params core.Input) error {
	if estimate := node.Map(params, "estimate"); len(estimate) > 0 {
		converted, err := estimateBody(estimate)
		if err != nil {
			return err
		}
		body["estimate"] = converted
	}
	if rate := node.Map(params, "hourlyRate"); len(rate) > 0 {
		converted, err := rateBody(rate)
		if err != nil {
			return err
		}
		body["hourlyRate"] = converted
	}
	return nil
}
