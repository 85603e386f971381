package credential

import (
	"context"
	"testing"

	"github.com/patchline/patchline/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_HeaderValue(t *testing.T) {
	t.Run("Should build a bearer Authorization header", func(t *testing.T) {
		c := &Credential{Token: "abc123", Scheme: "Bearer"}
		name, value := c.HeaderValue()
		assert.Equal(t, "Authorization", name)
		assert.Equal(t, "Bearer abc123", value)
	})
	t.Run("Should pass a bare token through a custom header", func(t *testing.T) {
		c := &Credential{Token: "key456", Header: "X-Api-Key"}
		name, value := c.HeaderValue()
		assert.Equal(t, "X-Api-Key", name)
		assert.Equal(t, "key456", value)
	})
}

func TestCredential_JoinBaseURL(t *testing.T) {
	t.Run("Should append the API path once", func(t *testing.T) {
		c := &Credential{BaseURL: "https://chat.example.com"}
		assert.Equal(t, "https://chat.example.com/api/v4", c.JoinBaseURL("/api/v4"))
	})
	t.Run("Should not duplicate an existing API path", func(t *testing.T) {
		c := &Credential{BaseURL: "https://chat.example.com/api/v4/"}
		assert.Equal(t, "https://chat.example.com/api/v4", c.JoinBaseURL("/api/v4"))
	})
	t.Run("Should trim trailing slashes when no path is given", func(t *testing.T) {
		c := &Credential{BaseURL: "https://api.clockify.me/api/v1/"}
		assert.Equal(t, "https://api.clockify.me/api/v1", c.JoinBaseURL(""))
	})
}

func TestStaticProvider(t *testing.T) {
	t.Run("Should resolve configured credentials", func(t *testing.T) {
		p := NewStaticProvider(&Credential{Kind: KindMattermost, BaseURL: "https://x", Token: "t"})
		c, err := p.Credential(context.Background(), KindMattermost)
		require.NoError(t, err)
		assert.Equal(t, "https://x", c.BaseURL)
	})
	t.Run("Should report missing credentials", func(t *testing.T) {
		p := NewStaticProvider()
		_, err := p.Credential(context.Background(), KindClockify)
		assert.ErrorIs(t, err, ErrMissing)
	})
}

func TestConfigProvider(t *testing.T) {
	newCtx := func(t *testing.T, mutate func(*config.Config)) context.Context {
		t.Helper()
		m := config.NewManager(config.NewService())
		ctx := config.ContextWithManager(context.Background(), m)
		cfg, err := m.Load(ctx, config.NewDefaultProvider())
		require.NoError(t, err)
		mutate(cfg)
		return ctx
	}

	t.Run("Should build a Mattermost bearer credential", func(t *testing.T) {
		ctx := newCtx(t, func(cfg *config.Config) {
			cfg.Mattermost.BaseURL = "https://chat.example.com"
			cfg.Mattermost.AccessToken = config.SensitiveString("token-1")
		})
		c, err := NewConfigProvider().Credential(ctx, KindMattermost)
		require.NoError(t, err)
		assert.Equal(t, "Bearer", c.Scheme)
		assert.Equal(t, "token-1", c.Token)
	})

	t.Run("Should build a Clockify API key credential", func(t *testing.T) {
		ctx := newCtx(t, func(cfg *config.Config) {
			cfg.Clockify.APIKey = config.SensitiveString("key-1")
		})
		c, err := NewConfigProvider().Credential(ctx, KindClockify)
		require.NoError(t, err)
		assert.Equal(t, "X-Api-Key", c.Header)
		assert.Equal(t, "https://api.clockify.me/api/v1", c.BaseURL)
	})

	t.Run("Should report unset tokens as missing", func(t *testing.T) {
		ctx := newCtx(t, func(cfg *config.Config) {
			cfg.Mattermost.BaseURL = "https://chat.example.com"
		})
		_, err := NewConfigProvider().Credential(ctx, KindMattermost)
		assert.ErrorIs(t, err, ErrMissing)
	})

	t.Run("Should reject unknown kinds", func(t *testing.T) {
		ctx := newCtx(t, func(*config.Config) {})
		_, err := NewConfigProvider().Credential(ctx, Kind("slackApi"))
		assert.Error(t, err)
	})
}
