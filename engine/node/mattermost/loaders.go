package mattermost

import (
	"context"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

// loadChannels lists every channel the token can see, labeled "team -
// channel" so same-named channels across teams stay distinguishable.
func loadChannels(ctx context.Context, _ core.Input) ([]node.Option, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	channels, err := client.AllPages(ctx, "/channels", nil, pager(defaultPageSize))
	if err != nil {
		return nil, err
	}
	options := make([]node.Option, 0, len(channels))
	for _, channel := range channels {
		if deleted(channel) {
			continue
		}
		id, _ := channel["id"].(string)
		display, _ := channel["display_name"].(string)
		team, _ := channel["team_display_name"].(string)
		name := display
		if team != "" {
			name = team + " - " + display
		}
		options = append(options, node.Option{Name: name, Value: id})
	}
	return options, nil
}

func loadTeams(ctx context.Context, _ core.Input) ([]node.Option, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := client.AllPages(ctx, "/teams", nil, pager(defaultPageSize))
	if err != nil {
		return nil, err
	}
	options := make([]node.Option, 0, len(teams))
	for _, team := range teams {
		if deleted(team) {
			continue
		}
		id, _ := team["id"].(string)
		display, _ := team["display_name"].(string)
		options = append(options, node.Option{Name: display, Value: id})
	}
	return options, nil
}

func loadUsers(ctx context.Context, _ core.Input) ([]node.Option, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	users, err := client.AllPages(ctx, "/users", nil, pager(defaultPageSize))
	if err != nil {
		return nil, err
	}
	options := make([]node.Option, 0, len(users))
	for _, user := range users {
		if deleted(user) {
			continue
		}
		id, _ := user["id"].(string)
		username, _ := user["username"].(string)
		options = append(options, node.Option{Name: username, Value: id})
	}
	return options, nil
}

// deleted reports whether a record was soft-deleted upstream.
func deleted(record map[string]any) bool {
	return core.AnyToInt(record["delete_at"]) != 0
}
