package clockify

import (
	"context"
	"strconv"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func timeEntryPath(params core.Input) (string, error) {
	base, err := workspacePath(params)
	if err != nil {
		return "", err
	}
	return base + "/time-entries", nil
}

func timeEntryCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := timeEntryPath(params)
	if err != nil {
		return nil, err
	}
	start, err := node.RequireString(params, "start")
	if err != nil {
		return nil, err
	}
	wireStart, err := parseWireTime(start, "start")
	if err != nil {
		return nil, err
	}
	body := map[string]any{"start": wireStart}
	if end := node.String(params, "end"); end != "" {
		wireEnd, err := parseWireTime(end, "end")
		if err != nil {
			return nil, err
		}
		body["end"] = wireEnd
	}
	copyParams(body, params, "billable", "description", "projectId", "taskId", "tagIds")
	result, err := client.Object(ctx, "POST", path, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "timeEntry.create")
}

func timeEntryDelete(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := timeEntryPath(params)
	if err != nil {
		return nil, err
	}
	entryID, err := node.RequireString(params, "timeEntryId")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", path+"/"+entryID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func timeEntryGet(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := timeEntryPath(params)
	if err != nil {
		return nil, err
	}
	entryID, err := node.RequireString(params, "timeEntryId")
	if err != nil {
		return nil, err
	}
	// hydrated expands projectId/taskId/tagIds into full records.
	query := map[string]string{"hydrated": "true"}
	if v, ok := params["hydrated"].(bool); ok {
		query["hydrated"] = strconv.FormatBool(v)
	}
	result, err := client.Object(ctx, "GET", path+"/"+entryID, query, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "timeEntry.get")
}

func timeEntryUpdate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := timeEntryPath(params)
	if err != nil {
		return nil, err
	}
	entryID, err := node.RequireString(params, "timeEntryId")
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	for k, v := range node.Map(params, "updateFields") {
		body[k] = v
	}
	for _, field := range []string{"start", "end"} {
		raw, ok := body[field].(string)
		if !ok || raw == "" {
			continue
		}
		wire, err := parseWireTime(raw, field)
		if err != nil {
			return nil, err
		}
		body[field] = wire
	}
	result, err := client.Object(ctx, "PUT", path+"/"+entryID, nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "timeEntry.update")
}
