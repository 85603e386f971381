package credential

import (
	"context"
	"fmt"

	"github.com/patchline/patchline/pkg/config"
)

// ConfigProvider resolves credentials from the application configuration
// attached to the context.
type ConfigProvider struct{}

func NewConfigProvider() *ConfigProvider {
	return &ConfigProvider{}
}

func (p *ConfigProvider) Credential(ctx context.Context, kind Kind) (*Credential, error) {
	cfg := config.FromContext(ctx)
	switch kind {
	case KindMattermost:
		return mattermostCredential(cfg)
	case KindClockify:
		return clockifyCredential(cfg)
	default:
		return nil, fmt.Errorf("unknown credential kind: %s", kind)
	}
}

func mattermostCredential(cfg *config.Config) (*Credential, error) {
	if cfg.Mattermost.BaseURL == "" {
		return nil, fmt.Errorf("%w: mattermost base URL is not set", ErrMissing)
	}
	if cfg.Mattermost.AccessToken.Value() == "" {
		return nil, fmt.Errorf("%w: mattermost access token is not set", ErrMissing)
	}
	return &Credential{
		Kind:    KindMattermost,
		BaseURL: cfg.Mattermost.BaseURL,
		Token:   cfg.Mattermost.AccessToken.Value(),
		Scheme:  "Bearer",
	}, nil
}

func clockifyCredential(cfg *config.Config) (*Credential, error) {
	if cfg.Clockify.BaseURL == "" {
		return nil, fmt.Errorf("%w: clockify base URL is not set", ErrMissing)
	}
	if cfg.Clockify.APIKey.Value() == "" {
		return nil, fmt.Errorf("%w: clockify API key is not set", ErrMissing)
	}
	return &Credential{
		Kind:    KindClockify,
		BaseURL: cfg.Clockify.BaseURL,
		Token:   cfg.Clockify.APIKey.Value(),
		Header:  "X-Api-Key",
	}, nil
}
