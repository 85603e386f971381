package config

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Manager owns the loaded configuration and hands out the current snapshot.
type Manager struct {
	Service Service
	current atomic.Value // stores *Config
	sources []Source
	mu      sync.Mutex
}

// NewManager creates a new configuration manager.
func NewManager(service Service) *Manager {
	if service == nil {
		service = NewService()
	}
	return &Manager{Service: service}
}

// Load loads configuration from the given sources and stores the result
// atomically.
func (m *Manager) Load(ctx context.Context, sources ...Source) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	config, err := m.Service.Load(ctx, sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	m.sources = append([]Source(nil), sources...)
	m.current.Store(config)
	return config, nil
}

// Sources returns a copy of the sources captured by the last Load.
func (m *Manager) Sources() []Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Source, len(m.sources))
	copy(out, m.sources)
	return out
}

// Get returns the current configuration atomically. Before the first
// successful Load it returns the built-in defaults.
func (m *Manager) Get() *Config {
	if config, ok := m.current.Load().(*Config); ok && config != nil {
		return config
	}
	return Default()
}
