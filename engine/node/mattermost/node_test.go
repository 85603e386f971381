package mattermost

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/credential"
	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/pkg/logger"
)

func testContext(serverURL string) context.Context {
	ctx := logger.ContextWithLogger(context.Background(), logger.NewLogger(logger.TestConfig()))
	provider := credential.NewStaticProvider(&credential.Credential{
		Kind:    credential.KindMattermost,
		BaseURL: serverURL,
		Token:   "test-token",
		Scheme:  "Bearer",
	})
	return credential.ContextWithProvider(ctx, provider)
}

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

func TestDefinition(t *testing.T) {
	t.Run("Should produce a valid registrable definition", func(t *testing.T) {
		def := Definition()
		require.NoError(t, def.Validate())
		assert.Equal(t, "mattermost", def.ID)
		assert.Equal(t, credential.KindMattermost, def.Credential)
	})

	t.Run("Should reject unknown operations without any request", func(t *testing.T) {
		server, calls := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{})
		})
		_, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "channel", Operation: "explode"}, core.Input{})
		var coded *core.Error
		require.ErrorAs(t, err, &coded)
		assert.Equal(t, node.CodeUnknownOperation, coded.Code)
		assert.Equal(t, int64(0), calls.Load())
	})

	t.Run("Should dispatch the legacy desactive spelling to deactive", func(t *testing.T) {
		server, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v4/users/u1", r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]any{"status": "OK"})
		})
		outputs, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "user", Operation: "desactive"},
			core.Input{"user_id": "u1"})
		require.NoError(t, err)
		require.Len(t, outputs, 1)
		assert.Equal(t, "OK", outputs[0]["status"])
		assert.Equal(t, int64(1), calls.Load())
	})
}

func TestMessagePost(t *testing.T) {
	t.Run("Should post a message with normalized attachments", func(t *testing.T) {
		var body map[string]any
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v4/posts", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": "p1", "channel_id": "ch1"})
		})
		outputs, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "message", Operation: "post"},
			core.Input{
				"channel_id": "ch1",
				"message":    "release shipped",
				"attachments": []any{
					map[string]any{
						"fields": map[string]any{
							"item": []any{map[string]any{"title": "T", "value": "V", "short": true}},
						},
						"actions": map[string]any{
							"item": []any{map[string]any{"type": "button", "name": "Approve"}},
						},
					},
				},
				"other_options": map[string]any{"root_id": "r1"},
			})
		require.NoError(t, err)
		require.Len(t, outputs, 1)
		assert.Equal(t, "p1", outputs[0]["id"])

		assert.Equal(t, "ch1", body["channel_id"])
		assert.Equal(t, "release shipped", body["message"])
		assert.Equal(t, "r1", body["root_id"])
		props := body["props"].(map[string]any)
		attachments := props["attachments"].([]any)
		attachment := attachments[0].(map[string]any)
		fields := attachment["fields"].([]any)
		assert.Equal(t, "T", fields[0].(map[string]any)["title"])
		action := attachment["actions"].([]any)[0].(map[string]any)
		_, present := action["type"]
		assert.False(t, present)
	})

	t.Run("Should omit props when no attachments were added", func(t *testing.T) {
		var body map[string]any
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": "p2"})
		})
		_, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "message", Operation: "post"},
			core.Input{"channel_id": "ch1", "message": "plain"})
		require.NoError(t, err)
		_, present := body["props"]
		assert.False(t, present)
	})
}

func TestUserGetAll(t *testing.T) {
	t.Run("Should reject an invalid sort before any request", func(t *testing.T) {
		server, calls := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, []any{})
		})
		_, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "user", Operation: "getAll"},
			core.Input{"sort": "created_at", "in_channel": "C1"})
		var coded *core.Error
		require.ErrorAs(t, err, &coded)
		assert.Equal(t, node.CodeInvalidParams, coded.Code)
		assert.Equal(t, int64(0), calls.Load())
	})

	t.Run("Should pass scope and sort to the wire", func(t *testing.T) {
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/users", r.URL.Path)
			assert.Equal(t, "T1", r.URL.Query().Get("in_team"))
			assert.Equal(t, "created_at", r.URL.Query().Get("sort"))
			assert.Equal(t, "0", r.URL.Query().Get("page"))
			assert.Equal(t, "2", r.URL.Query().Get("per_page"))
			writeJSON(t, w, http.StatusOK, []any{
				map[string]any{"id": "u1", "username": "ana"},
				map[string]any{"id": "u2", "username": "bo"},
			})
		})
		outputs, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "user", Operation: "getAll"},
			core.Input{"sort": "created_at", "in_team": "T1", "limit": 2})
		require.NoError(t, err)
		require.Len(t, outputs, 2)
		assert.Equal(t, "ana", outputs[0]["username"])
	})

	t.Run("Should normalize username sort to an empty wire value", func(t *testing.T) {
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, r.URL.Query().Has("sort"))
			assert.Equal(t, "", r.URL.Query().Get("sort"))
			assert.True(t, r.URL.Query().Has("in_team"))
			assert.Equal(t, "", r.URL.Query().Get("in_team"))
			writeJSON(t, w, http.StatusOK, []any{})
		})
		_, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "user", Operation: "getAll"},
			core.Input{"sort": "username", "in_team": ""})
		require.NoError(t, err)
	})
}

func TestChannelOperations(t *testing.T) {
	t.Run("Should create a channel with the API type code", func(t *testing.T) {
		var body map[string]any
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/channels", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(t, w, http.StatusCreated, map[string]any{"id": "ch9", "name": "релиз"})
		})
		outputs, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "channel", Operation: "create"},
			core.Input{
				"team_id":      "T1",
				"name":         "releases",
				"display_name": "Releases",
				"type":         "private",
			})
		require.NoError(t, err)
		assert.Equal(t, "P", body["type"])
		assert.Equal(t, "ch9", outputs[0]["id"])
	})

	t.Run("Should reject a create with a bad type before any request", func(t *testing.T) {
		server, calls := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{})
		})
		_, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "channel", Operation: "create"},
			core.Input{
				"team_id":      "T1",
				"name":         "releases",
				"display_name": "Releases",
				"type":         "secret",
			})
		var coded *core.Error
		require.ErrorAs(t, err, &coded)
		assert.Equal(t, node.CodeInvalidParams, coded.Code)
		assert.Equal(t, int64(0), calls.Load())
	})

	t.Run("Should list channel members with a capped page", func(t *testing.T) {
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/channels/ch1/members", r.URL.Path)
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			writeJSON(t, w, http.StatusOK, []any{map[string]any{"user_id": "u1"}})
		})
		outputs, err := Definition().Execute(testContext(server.URL),
			node.Action{Resource: "channel", Operation: "members"},
			core.Input{"channel_id": "ch1", "limit": 5})
		require.NoError(t, err)
		require.Len(t, outputs, 1)
	})
}

func TestLoaders(t *testing.T) {
	t.Run("Should load channels and skip soft-deleted ones", func(t *testing.T) {
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/channels", r.URL.Path)
			writeJSON(t, w, http.StatusOK, []any{
				map[string]any{
					"id": "ch1", "display_name": "Town Square",
					"team_display_name": "Core", "delete_at": 0,
				},
				map[string]any{
					"id": "ch2", "display_name": "Archived",
					"team_display_name": "Core", "delete_at": 1690000000,
				},
			})
		})
		options, err := Definition().LoadOptions(testContext(server.URL), "channels", core.Input{})
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "Core - Town Square", options[0].Name)
		assert.Equal(t, "ch1", options[0].Value)
	})

	t.Run("Should load users keyed by username", func(t *testing.T) {
		server, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/users", r.URL.Path)
			writeJSON(t, w, http.StatusOK, []any{
				map[string]any{"id": "u1", "username": "ana", "delete_at": 0},
			})
		})
		options, err := Definition().LoadOptions(testContext(server.URL), "users", core.Input{})
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "ana", options[0].Name)
	})

	t.Run("Should surface missing credentials as a coded error", func(t *testing.T) {
		ctx := logger.ContextWithLogger(context.Background(), logger.NewLogger(logger.TestConfig()))
		ctx = credential.ContextWithProvider(ctx, credential.NewStaticProvider())
		_, err := Definition().LoadOptions(ctx, "teams", core.Input{})
		var coded *core.Error
		require.ErrorAs(t, err, &coded)
		assert.Equal(t, node.CodeMissingCredentials, coded.Code)
	})
}
