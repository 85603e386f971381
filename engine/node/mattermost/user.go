package mattermost

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/node"
)

func userCreate(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	email, err := node.RequireString(params, "email")
	if err != nil {
		return nil, err
	}
	username, err := node.RequireString(params, "username")
	if err != nil {
		return nil, err
	}
	body := map[string]any{
		"email":    email,
		"username": username,
	}
	if password := node.String(params, "password"); password != "" {
		body["password"] = password
	}
	if additional := node.Map(params, "additional_fields"); len(additional) > 0 {
		base := core.Output(body)
		merged, err := base.Merge(core.Output(additional))
		if err != nil {
			return nil, node.Internal(err, nil)
		}
		body = merged
	}
	result, err := client.Object(ctx, "POST", "/users", nil, body)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "user.create")
}

func userDeactive(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := node.RequireString(params, "user_id")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "DELETE", "/users/"+userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

func userGetAll(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	listQuery := buildUserListQuery(params)
	wireSort, err := ValidateUserSort(listQuery)
	if err != nil {
		return nil, node.InvalidParams(err, map[string]any{"action": "user.getAll"})
	}
	query := make(map[string]string, 5)
	setScope(query, "in_team", listQuery.InTeam)
	setScope(query, "not_in_team", listQuery.NotInTeam)
	setScope(query, "in_channel", listQuery.InChannel)
	setScope(query, "not_in_channel", listQuery.NotInChannel)
	if listQuery.Sort != "" {
		query["sort"] = wireSort
	}
	items, err := listAll(ctx, client, "/users", query, params)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func userGetByEmail(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	email, err := node.RequireString(params, "email")
	if err != nil {
		return nil, err
	}
	result, err := client.Object(ctx, "GET", "/users/email/"+url.PathEscape(email), nil, nil)
	if err != nil {
		return nil, err
	}
	return node.ObjectOutput(result, "user.getByEmail")
}

func userGetByID(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	ids := node.StringSlice(params, "ids")
	if len(ids) == 0 {
		return nil, node.InvalidParams(
			fmt.Errorf("missing required parameter %q", "ids"),
			map[string]any{"parameter": "ids"},
		)
	}
	var query map[string]string
	if since := node.Int(params, "since"); since > 0 {
		query = map[string]string{"since": strconv.Itoa(since)}
	}
	items, err := client.List(ctx, "POST", "/users/ids", query, ids)
	if err != nil {
		return nil, err
	}
	return node.ListOutput(items), nil
}

func userInvite(ctx context.Context, params core.Input) ([]core.Output, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	teamID, err := node.RequireString(params, "team_id")
	if err != nil {
		return nil, err
	}
	emails := node.StringSlice(params, "emails")
	if len(emails) == 0 {
		return nil, node.InvalidParams(
			fmt.Errorf("missing required parameter %q", "emails"),
			map[string]any{"parameter": "emails"},
		)
	}
	result, err := client.Object(ctx, "POST", "/teams/"+teamID+"/invite/email", nil, emails)
	if err != nil {
		return nil, err
	}
	return node.StatusOutput(result), nil
}

// buildUserListQuery lifts the scope filters into pointers so the validation
// rules can tell an absent filter from an empty one.
func buildUserListQuery(params core.Input) *UserListQuery {
	return &UserListQuery{
		Sort:         node.String(params, "sort"),
		InTeam:       optionalString(params, "in_team"),
		NotInTeam:    optionalString(params, "not_in_team"),
		InChannel:    optionalString(params, "in_channel"),
		NotInChannel: optionalString(params, "not_in_channel"),
	}
}

func optionalString(params core.Input, key string) *string {
	if _, ok := params[key]; !ok {
		return nil
	}
	value := node.String(params, key)
	return &value
}

func setScope(query map[string]string, key string, value *string) {
	if value != nil {
		query[key] = *value
	}
}
