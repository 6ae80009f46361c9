package calc

import (
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// Calculator computes the derived lens geometry for normalized rows.
type Calculator interface {
	ID() string
	Name() string
	ComputeRow(row model.Row) model.Fields
	ComputeAll(rows []model.Row) []model.Fields
}

// Registry resolves a calculator from a device or design name.
type Registry struct {
	byID      map[string]Calculator
	byAlias   map[string]string
	defaultID string
}

// NewRegistry builds the registry with all known families. Ortho K is the
// default when a device name matches nothing.
func NewRegistry() *Registry {
	r := &Registry{
		byID:      make(map[string]Calculator),
		byAlias:   make(map[string]string),
		defaultID: OrthoKID,
	}
	r.register(NewOrthoK(LookupOverrides{}), orthoKAliases)
	r.register(NewExpo1AC(LookupOverrides{}), expo1acAliases)
	r.register(NewScleral(), scleralAliases)
	return r
}

func (r *Registry) register(c Calculator, aliases []string) {
	r.byID[c.ID()] = c
	for _, a := range aliases {
		r.byAlias[strings.ToLower(a)] = c.ID()
	}
}

// ByID returns the calculator with the given id, or nil.
func (r *Registry) ByID(id string) Calculator {
	return r.byID[id]
}

// ByDevice resolves a device name to a calculator. Matching is exact and
// case-insensitive on the known aliases; unknown or absent names get the
// default family.
func (r *Registry) ByDevice(device string) Calculator {
	key := strings.ToLower(strings.TrimSpace(device))
	if id, found := r.byAlias[key]; found {
		return r.byID[id]
	}
	return r.byID[r.defaultID]
}

// IDs lists the registered calculator ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}
