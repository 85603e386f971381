package mattermost

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const sortUsername = "username"

// sortScope names a membership filter that constrains which sort keys the
// user listing endpoint accepts.
type sortScope string

const (
	scopeTeam    sortScope = "team"
	scopeChannel sortScope = "channel"
)

// validSorts is the rule table for sortable user listings, keyed by scope.
var validSorts = map[sortScope][]string{
	scopeTeam:    {"last_activity_at", "created_at", "username"},
	scopeChannel: {"status", "username"},
}

// UserListQuery carries the optional sort and membership filters of a user
// listing. Nil pointers mean the filter was not provided at all, which is
// distinct from an empty value and matters to the validation rules.
type UserListQuery struct {
	Sort         string
	InTeam       *string
	NotInTeam    *string
	InChannel    *string
	NotInChannel *string
}

// ValidateUserSort checks the sort/scope combination before any request goes
// out and returns the sort value to place on the wire. Rules run in order
// and the first violation wins. A sort of username normalizes to the empty
// string, which is the upstream API's default-sort convention.
func ValidateUserSort(q *UserListQuery) (string, error) {
	if q.Sort == "" {
		return "", nil
	}
	sort := normalizeSortKey(q.Sort)
	if q.InTeam == nil && q.InChannel == nil {
		return "", errors.New("scope required for sort: set either in_team or in_channel")
	}
	if q.InTeam != nil && !slices.Contains(validSorts[scopeTeam], sort) {
		return "", fmt.Errorf(
			"invalid sort %q for team scope: valid sorts are %s",
			sort, strings.Join(validSorts[scopeTeam], ", "),
		)
	}
	if q.InChannel != nil && !slices.Contains(validSorts[scopeChannel], sort) {
		return "", fmt.Errorf(
			"invalid sort %q for channel scope: valid sorts are %s",
			sort, strings.Join(validSorts[scopeChannel], ", "),
		)
	}
	if q.InChannel != nil && *q.InChannel == "" && sort != sortUsername {
		return "", errors.New("channel scope must be non-empty unless sorting by username")
	}
	if q.InTeam != nil && *q.InTeam == "" && sort != sortUsername {
		return "", errors.New("team scope must be non-empty unless sorting by username")
	}
	if sort == sortUsername {
		return "", nil
	}
	return sort, nil
}

// normalizeSortKey snake-cases the sort value so UI labels like
// "Last Activity At" match the wire keys.
func normalizeSortKey(sort string) string {
	s := strings.ToLower(strings.TrimSpace(sort))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}
