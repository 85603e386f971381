package clockify

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func loadWorkspaces(ctx context.Context, _ core.Input) ([]node.Option, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	workspaces, err := client.List(ctx, "GET", "/workspaces", nil, nil)
	if err != nil {
		return nil, err
	}
	options := make([]node.Option, 0, len(workspaces))
	for _, workspace := range workspaces {
		options = append(options, option(workspace, "name"))
	}
	return options, nil
}

func loadClients(ctx context.Context, params core.Input) ([]node.Option, error) {
	return loadWorkspaceOptions(ctx, params, "/clients", "name")
}

func loadProjects(ctx context.Context, params core.Input) ([]node.Option, error) {
	return loadWorkspaceOptions(ctx, params, "/projects", "name")
}

func loadTags(ctx context.Context, params core.Input) ([]node.Option, error) {
	return loadWorkspaceOptions(ctx, params, "/tags", "name")
}

func loadUsers(ctx context.Context, params core.Input) ([]node.Option, error) {
	return loadWorkspaceOptions(ctx, params, "/users", "name")
}

// loadTasks needs both the workspace and the project to scope the listing.
func loadTasks(ctx context.Context, params core.Input) ([]node.Option, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	path, err := taskPath(params)
	if err != nil {
		return nil, err
	}
	tasks, err := client.AllPages(ctx, path, nil, pager(defaultPageSize))
	if err != nil {
		return nil, err
	}
	options := make([]node.Option, 0, len(tasks))
	for _, task := range tasks {
		if archived(task) {
			continue
		}
		options = append(options, option(task, "name"))
	}
	return options, nil
}

// loadWorkspaceOptions drains a workspace-scoped listing into options,
// skipping archived records.
func loadWorkspaceOptions(
	ctx context.Context,
	params core.Input,
	resource string,
	nameField string,
) ([]node.Option, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	base, err := workspacePath(params)
	if err != nil {
		return nil, err
	}
	records, err := client.AllPages(ctx, base+resource, nil, pager(defaultPageSize))
	if err != nil {
		return nil, err
	}
	options := make([]node.Option, 0, len(records))
	for _, record := range records {
		if archived(record) {
			continue
		}
		options = append(options, option(record, nameField))
	}
	return options, nil
}

func option(record map[string]any, nameField string) node.Option {
	id, _ := record["id"].(string)
	name, _ := record[nameField].(string)
	return node.Option{Name: name, Value: id}
}

// archived reports whether a record was archived upstream.
func archived(record map[string]any) bool {
	flag, _ := record["archived"].(bool)
	return flag
}
