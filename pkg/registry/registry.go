// pkg/registry/registry.go
// Package registry catalogs the form deployments a server instance exposes.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Definition describes one mounted form pipeline.
type Definition struct {
	Name    string   `json:"name"`
	Route   string   `json:"route"`
	Method  string   `json:"method"`
	Policy  string   `json:"policy"`
	Headers []string `json:"headers"`
	Enabled bool     `json:"enabled"`
}

// Registry is a concurrency-safe catalog of form definitions.
type Registry struct {
	mu    sync.RWMutex
	forms map[string]Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{forms: make(map[string]Definition)}
}

// Register adds a form definition. Duplicate names are an error so a
// misconfigured deployment fails loudly at startup.
func (r *Registry) Register(def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.forms[def.Name]; exists {
		return fmt.Errorf("form %q already registered", def.Name)
	}
	r.forms[def.Name] = def
	return nil
}

// Get returns a form definition by name.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.forms[name]
	return def, ok
}

// List returns all definitions sorted by name.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.forms))
	for _, def := range r.forms {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
