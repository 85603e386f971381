package config

import (
	"context"
	"sync"

	"github.com/patchline/patchline/pkg/logger"
)

// ContextKey types the keys this package stores in a context.
type ContextKey string

// ManagerCtxKey carries the active *Manager.
const ManagerCtxKey ContextKey = "config_manager"

// ContextWithManager returns a context carrying the configuration manager.
func ContextWithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ManagerCtxKey, m)
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// ManagerFromContext returns the manager attached to ctx. When none is
// attached it falls back to a lazily-built default manager, mirroring the
// logger package, so components always see a usable configuration.
func ManagerFromContext(ctx context.Context) *Manager {
	if ctx != nil {
		if m, ok := ctx.Value(ManagerCtxKey).(*Manager); ok && m != nil {
			return m
		}
	}
	return getDefaultManager(ctx)
}

// FromContext returns the active configuration for the provided context.
func FromContext(ctx context.Context) *Config {
	m := ManagerFromContext(ctx)
	if m == nil {
		return Default()
	}
	return m.Get()
}

// getDefaultManager lazily builds the fallback manager from defaults and
// environment overrides only. YAML and CLI sources require an explicitly
// constructed Manager attached to the context.
func getDefaultManager(ctx context.Context) *Manager {
	defaultManagerOnce.Do(func() {
		m := NewManager(NewService())
		if _, err := m.Load(ctx, NewDefaultProvider(), NewEnvProvider()); err != nil {
			log := logger.FromContext(ctx)
			log.Warn("failed to load default configuration, using fallback defaults", "error", err)
		}
		defaultManager = m
	})
	return defaultManager
}
