package config

import (
	"context"
	"time"
)

// Config is the complete configuration for the patchline CLI and nodes.
// Values merge from defaults, an optional YAML file, environment variables,
// and CLI flags, in that order.
type Config struct {
	Log        LogConfig        `koanf:"log"        json:"log"        yaml:"log"`
	HTTP       HTTPConfig       `koanf:"http"       json:"http"       yaml:"http"       validate:"required"`
	Mattermost MattermostConfig `koanf:"mattermost" json:"mattermost" yaml:"mattermost"`
	Clockify   ClockifyConfig   `koanf:"clockify"   json:"clockify"   yaml:"clockify"`
	CLI        CLIConfig        `koanf:"cli"        json:"cli"        yaml:"cli"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `koanf:"level"  json:"level"  yaml:"level"  validate:"oneof=debug info warn error disabled" env:"PATCHLINE_LOG_LEVEL"`
	JSON   bool   `koanf:"json"   json:"json"   yaml:"json"   env:"PATCHLINE_LOG_JSON"`
	Source bool   `koanf:"source" json:"source" yaml:"source" env:"PATCHLINE_LOG_SOURCE"`
}

// HTTPConfig tunes the outbound REST client shared by all nodes.
type HTTPConfig struct {
	Timeout      time.Duration `koanf:"timeout"        json:"timeout"        yaml:"timeout"        validate:"min=0"        env:"PATCHLINE_HTTP_TIMEOUT"`
	RetryCount   int           `koanf:"retry_count"    json:"retry_count"    yaml:"retry_count"    validate:"min=0,max=10" env:"PATCHLINE_HTTP_RETRY_COUNT"`
	RetryWaitMin time.Duration `koanf:"retry_wait_min" json:"retry_wait_min" yaml:"retry_wait_min" validate:"min=0"        env:"PATCHLINE_HTTP_RETRY_WAIT_MIN"`
	RetryWaitMax time.Duration `koanf:"retry_wait_max" json:"retry_wait_max" yaml:"retry_wait_max" validate:"min=0"        env:"PATCHLINE_HTTP_RETRY_WAIT_MAX"`
}

// MattermostConfig holds the chat platform account.
type MattermostConfig struct {
	BaseURL     string          `koanf:"base_url"     json:"base_url"     yaml:"base_url"     validate:"omitempty,url" env:"PATCHLINE_MATTERMOST_BASE_URL"`
	AccessToken SensitiveString `koanf:"access_token" json:"access_token" yaml:"access_token" env:"PATCHLINE_MATTERMOST_ACCESS_TOKEN" sensitive:"true"`
}

// ClockifyConfig holds the time tracking account.
type ClockifyConfig struct {
	BaseURL string          `koanf:"base_url" json:"base_url" yaml:"base_url" validate:"omitempty,url" env:"PATCHLINE_CLOCKIFY_BASE_URL"`
	APIKey  SensitiveString `koanf:"api_key"  json:"api_key"  yaml:"api_key"  env:"PATCHLINE_CLOCKIFY_API_KEY" sensitive:"true"`
}

// CLIConfig contains CLI-specific settings.
type CLIConfig struct {
	ConfigFile string `koanf:"config_file" json:"config_file" yaml:"config_file" env:"PATCHLINE_CONFIG_FILE"`
	EnvFile    string `koanf:"env_file"    json:"env_file"    yaml:"env_file"    env:"PATCHLINE_ENV_FILE"`
	PageSize   int    `koanf:"page_size"   json:"page_size"   yaml:"page_size"   validate:"min=1,max=200" env:"PATCHLINE_CLI_PAGE_SIZE"`
}

// Service defines the configuration loading service.
type Service interface {
	// Load loads configuration from the specified sources with precedence order.
	Load(ctx context.Context, sources ...Source) (*Config, error)
	// Validate checks if the configuration meets all validation requirements.
	Validate(config *Config) error
	// GetSource returns the source type that provided a configuration key,
	// enabling debugging and precedence verification.
	GetSource(key string) SourceType
}

// Source is a single configuration source.
type Source interface {
	// Load reads configuration from the source as a nested map.
	Load() (map[string]any, error)
	// Type returns the source type identifier.
	Type() SourceType
}

// SourceType identifies the type of configuration source.
type SourceType string

const (
	SourceCLI     SourceType = "cli"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceDefault SourceType = "default"
)

// Metadata records which source provided each configuration key.
type Metadata struct {
	Sources  map[string]SourceType `json:"sources"`
	LoadedAt time.Time             `json:"loaded_at"`
}

// Default returns a Config with the built-in default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			RetryCount:   3,
			RetryWaitMin: 100 * time.Millisecond,
			RetryWaitMax: 2 * time.Second,
		},
		Clockify: ClockifyConfig{
			BaseURL: "https://api.clockify.me/api/v1",
		},
		CLI: CLIConfig{
			PageSize: 100,
		},
	}
}
