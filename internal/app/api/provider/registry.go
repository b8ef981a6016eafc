package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Registry maps provider names to providers. It is filled once at start-up
// and only read while serving.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider under its own name
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	name := strings.ToLower(p.Name())
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider '%s' already registered", name)
	}
	r.providers[name] = p
	return nil
}

// Get returns the provider registered under name, or ErrNotConfigured
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, name)
	}
	return p, nil
}

// Names returns the registered provider names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.providers)
	sort.Strings(names)
	return names
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}
