package schema

import (
	"fmt"
	"sync"

	"github.com/omniform/docptr/ir"
)

// Registry manages named schema documents.
type Registry struct {
	mu sync.RWMutex

	// Map of name -> schema document
	schemas map[string]*ir.Node
}

func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*ir.Node),
	}
}

// Register adds a schema document under a name.
func (r *Registry) Register(name string, doc *ir.Node) error {
	if name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}
	if doc == nil {
		return fmt.Errorf("schema document cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}
	r.schemas[name] = doc
	return nil
}

// Lookup returns the schema document registered under name, or nil.
func (r *Registry) Lookup(name string) *ir.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[name]
}

// Names returns the registered schema names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		res = append(res, name)
	}
	return res
}
