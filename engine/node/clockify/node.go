package clockify

import (
	"context"

	"github.com/patchline/patchline/engine/credential"
	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/engine/rest"
)

// NodeID is the registry identifier of the Clockify node.
const NodeID = "clockify"

// Clockify paginates from page 1 with page/page-size.
const defaultPageSize = 100

func pager(pageSize int) rest.Pager {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return rest.Pager{PageParam: "page", SizeParam: "page-size", StartPage: 1, PageSize: pageSize}
}

// newClient builds a REST client from the credential attached to the context.
// The Clockify base URL already carries its API prefix, so no path is added.
func newClient(ctx context.Context) (*rest.Client, error) {
	cred, err := credential.FromContext(ctx).Credential(ctx, credential.KindClockify)
	if err != nil {
		return nil, err
	}
	return rest.ForCredential(ctx, cred, "")
}

func Definition() *node.Definition {
	return &node.Definition{
		ID:          NodeID,
		Description: "Consume the Clockify API: workspaces, clients, projects, tags, tasks, and time entries.",
		Credential:  credential.KindClockify,
		Operations: map[node.Action]node.Operation{
			{Resource: "workspace", Operation: "getAll"}: {
				Description: "List the workspaces the API key can access",
				Handler:     workspaceGetAll,
			},
			{Resource: "client", Operation: "create"}: {
				Description: "Create a client in a workspace",
				Schema:      clientCreateSchema,
				Handler:     clientCreate,
			},
			{Resource: "client", Operation: "delete"}: {
				Description: "Delete a client",
				Schema:      clientIDSchema,
				Handler:     clientDelete,
			},
			{Resource: "client", Operation: "get"}: {
				Description: "Get a client by ID",
				Schema:      clientIDSchema,
				Handler:     clientGet,
			},
			{Resource: "client", Operation: "getAll"}: {
				Description: "List clients in a workspace",
				Schema:      clientGetAllSchema,
				Handler:     clientGetAll,
			},
			{Resource: "client", Operation: "update"}: {
				Description: "Update a client",
				Schema:      clientUpdateSchema,
				Handler:     clientUpdate,
			},
			{Resource: "project", Operation: "create"}: {
				Description: "Create a project in a workspace",
				Schema:      projectCreateSchema,
				Handler:     projectCreate,
			},
			{Resource: "project", Operation: "delete"}: {
				Description: "Delete a project",
				Schema:      projectIDSchema,
				Handler:     projectDelete,
			},
			{Resource: "project", Operation: "get"}: {
				Description: "Get a project by ID",
				Schema:      projectIDSchema,
				Handler:     projectGet,
			},
			{Resource: "project", Operation: "getAll"}: {
				Description: "List projects in a workspace",
				Schema:      projectGetAllSchema,
				Handler:     projectGetAll,
			},
			{Resource: "project", Operation: "update"}: {
				Description: "Update a project",
				Schema:      projectUpdateSchema,
				Handler:     projectUpdate,
			},
			{Resource: "tag", Operation: "create"}: {
				Description: "Create a tag in a workspace",
				Schema:      tagCreateSchema,
				Handler:     tagCreate,
			},
			{Resource: "tag", Operation: "delete"}: {
				Description: "Delete a tag",
				Schema:      tagIDSchema,
				Handler:     tagDelete,
			},
			{Resource: "tag", Operation: "getAll"}: {
				Description: "List tags in a workspace",
				Schema:      tagGetAllSchema,
				Handler:     tagGetAll,
			},
			{Resource: "tag", Operation: "update"}: {
				Description: "Update a tag",
				Schema:      tagUpdateSchema,
				Handler:     tagUpdate,
			},
			{Resource: "task", Operation: "create"}: {
				Description: "Create a task in a project",
				Schema:      taskCreateSchema,
				Handler:     taskCreate,
			},
			{Resource: "task", Operation: "delete"}: {
				Description: "Delete a task",
				Schema:      taskIDSchema,
				Handler:     taskDelete,
			},
			{Resource: "task", Operation: "get"}: {
				Description: "Get a task by ID",
				Schema:      taskIDSchema,
				Handler:     taskGet,
			},
			{Resource: "task", Operation: "getAll"}: {
				Description: "List tasks in a project",
				Schema:      taskGetAllSchema,
				Handler:     taskGetAll,
			},
			{Resource: "task", Operation: "update"}: {
				Description: "Update a task",
				Schema:      taskUpdateSchema,
				Handler:     taskUpdate,
			},
			{Resource: "timeEntry", Operation: "create"}: {
				Description: "Create a time entry",
				Schema:      timeEntryCreateSchema,
				Handler:     timeEntryCreate,
			},
			{Resource: "timeEntry", Operation: "delete"}: {
				Description: "Delete a time entry",
				Schema:      timeEntryIDSchema,
				Handler:     timeEntryDelete,
			},
			{Resource: "timeEntry", Operation: "get"}: {
				Description: "Get a time entry by ID",
				Schema:      timeEntryGetSchema,
				Handler:     timeEntryGet,
			},
			{Resource: "timeEntry", Operation: "update"}: {
				Description: "Update a time entry",
				Schema:      timeEntryUpdateSchema,
				Handler:     timeEntryUpdate,
			},
			{Resource: "user", Operation: "getAll"}: {
				Description: "List the members of a workspace",
				Schema:      userGetAllSchema,
				Handler:     userGetAll,
			},
		},
		Loaders: map[string]node.OptionLoader{
			"workspaces": loadWorkspaces,
			"clients":    loadClients,
			"projects":   loadProjects,
			"tags":       loadTags,
			"users":      loadUsers,
			"tasks":      loadTasks,
		},
	}
}
