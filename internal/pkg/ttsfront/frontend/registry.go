package frontend

import (
	"fmt"
	"sort"
	"sync"
)

type Factory func(cfg Config) (Frontend, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a front-end available under name. It panics if called
// twice for the same name or with a nil factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("frontend: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("frontend: Register called twice for " + name)
	}
	registry[name] = factory
}

func New(name string, cfg Config) (Frontend, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("frontend: unknown backend %q (registered: %v)", name, ListBackends())
	}
	cfg.Backend = name
	return factory(cfg)
}

// ListBackends returns the registered names in sorted order.
func ListBackends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
