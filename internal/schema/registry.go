package schema

import "github.com/angelglnd-coder/cler-vision-app/internal/model"

// Registry holds the known order layouts in registration order.
type Registry struct {
	schemas []*model.Schema
	byID    map[string]*model.Schema
	byName  map[string]*model.Schema
}

// NewRegistry builds the default registry with all supported layouts.
func NewRegistry() *Registry {
	r := &Registry{
		byID:   make(map[string]*model.Schema),
		byName: make(map[string]*model.Schema),
	}
	r.register(newType1())
	r.register(newType2())
	r.register(newType3())
	return r
}

func (r *Registry) register(s *model.Schema) {
	r.schemas = append(r.schemas, s)
	r.byID[s.ID] = s
	r.byName[s.Name] = s
}

// All returns the registered schemas in registration order.
func (r *Registry) All() []*model.Schema {
	return r.schemas
}

// ByID returns the schema with the given id, or nil.
func (r *Registry) ByID(id string) *model.Schema {
	return r.byID[id]
}

// ByName returns the schema with the given display name, or nil.
func (r *Registry) ByName(name string) *model.Schema {
	return r.byName[name]
}

func numericSet(fields ...string) map[string]bool {
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[f] = true
	}
	return out
}
