package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("Should register the expected commands", func(t *testing.T) {
		names := map[string]bool{}
		for _, sub := range RootCmd().Commands() {
			names[sub.Name()] = true
		}
		for _, want := range []string{"run", "nodes", "options", "config", "version"} {
			assert.True(t, names[want], "missing command %s", want)
		}
	})

	t.Run("Should print version information", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "patchline")
	})
}

func TestNodesCmd(t *testing.T) {
	t.Run("Should list both nodes with their operations", func(t *testing.T) {
		out, err := execute(t, "nodes", "--log-level", "disabled")
		require.NoError(t, err)
		assert.Contains(t, out, "mattermost")
		assert.Contains(t, out, "clockify")
		assert.Contains(t, out, "message.post")
		assert.Contains(t, out, "timeEntry.create")
		assert.Contains(t, out, "alias of user.deactive")
	})
}

func TestRunCmd(t *testing.T) {
	t.Run("Should execute an operation end to end", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v4/posts/p1", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"status": "OK"}))
		}))
		t.Cleanup(server.Close)
		t.Setenv("PATCHLINE_MATTERMOST_BASE_URL", server.URL)
		t.Setenv("PATCHLINE_MATTERMOST_ACCESS_TOKEN", "test-token")

		outputPath := filepath.Join(t.TempDir(), "result.json")
		_, err := execute(t, "run", "mattermost",
			"--resource", "message", "--operation", "delete",
			"--param", "post_id=p1",
			"--output", outputPath,
			"--log-level", "disabled")
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		var outputs []map[string]any
		require.NoError(t, json.Unmarshal(data, &outputs))
		require.Len(t, outputs, 1)
		assert.Equal(t, "OK", outputs[0]["status"])
	})

	t.Run("Should fail fast on an unknown node", func(t *testing.T) {
		_, err := execute(t, "run", "asana",
			"--resource", "task", "--operation", "create",
			"--log-level", "disabled")
		assert.ErrorContains(t, err, "unknown node")
	})

	t.Run("Should reject malformed params", func(t *testing.T) {
		_, err := execute(t, "run", "mattermost",
			"--resource", "message", "--operation", "post",
			"--param", "oops",
			"--log-level", "disabled")
		assert.ErrorContains(t, err, "expected key=value")
	})
}

func TestConfigShowCmd(t *testing.T) {
	t.Run("Should redact secrets in the output", func(t *testing.T) {
		t.Setenv("PATCHLINE_MATTERMOST_ACCESS_TOKEN", "super-secret")
		out, err := execute(t, "config", "show", "--format", "json", "--log-level", "disabled")
		require.NoError(t, err)
		assert.Contains(t, out, "[REDACTED]")
		assert.NotContains(t, out, "super-secret")
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		_, err := execute(t, "config", "show", "--format", "toml", "--log-level", "disabled")
		assert.ErrorContains(t, err, "unsupported format")
	})
}

func TestConfigSourcesCmd(t *testing.T) {
	t.Run("Should list sources from highest to lowest precedence", func(t *testing.T) {
		out, err := execute(t, "config", "sources", "--log-level", "disabled")
		require.NoError(t, err)
		assert.Contains(t, out, "highest to lowest precedence")
		assert.Contains(t, out, "1. CLI flags")
		assert.Less(t, strings.Index(out, "Environment variables"), strings.Index(out, "Default values"))
	})
}
