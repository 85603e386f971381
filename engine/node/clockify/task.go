package clockify

import (
	"context"
	"strconv"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func taskPath(params core.Input) (string, error) {
	base, err := workspacePath(params)
	if err != nil {
		return "", err
	}
	projectID, err := node.RequireString(params, "projectId")
	if err != nil {
		return "", err
	}
	return base + "/projects/" + projectID + "/tasks", nil
}

func taskCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := taskPath(params)
	if err != nil {
		return nil, err
	}
	name, err := node.RequireString(params, "name")
	if err != nil {
		return nil, err
	}
	body := map[string]any{"name": name}
	copyParams(body, params, "assigneeIds", "status")
	if err := applyTaskEstimate(body, params); err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "POST", path, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "task.create")
}

func taskDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := taskPath(params)
	if err != nil {
		return nil, err
	}
	taskID, err := node.RequireString(params, "taskId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", path+"/"+taskID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func taskGet(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := taskPath(params)
	if err != nil {
		return nil, err
	}
	taskID, err := node.RequireString(params, "taskId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "GET", path+"/"+taskID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "task.get")
}

func taskGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := taskPath(params)
	if err != nil {
		return nil, err
	}
	query := make(map[string]string, 2)
	setText(query, params, "name")
	// The tasks endpoint spells this filter with a dash.
	if _, ok := params["isActive"]; ok {
		query["is-active"] = strconv.FormatBool(node.Bool(params, "isActive"))
	}
	items, err := listAll(ctx, client, path, query, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func taskUpdate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := taskPath(params)
	if err != nil {
		return nil, err
	}
	taskID, err := node.RequireString(params, "taskId")
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	for k, v := range node.Map(params, "updateFields") {
		body[k] = v
	}
	if err := applyTaskEstimate(body, params); err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "PUT", path+"/"+taskID, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "task.update")
}

// applyTaskEstimate converts a duration-string estimate to the ISO-8601
// period the task endpoints expect.
func applyTaskEstimate(body map[string]any, params core.Input) error {
	estimate := node.String(params, "estimate")
	if estimate == "" {
		return nil
	}
	d, err := core.ParseHumanDuration(estimate)
	if err != nil {
		return node.InvalidParams(
			err,
			map[string]any{"parameter": "estimate"},
		)
	}
	body["estimate"] = durationToISO8601(d)
	return nil
}
