package registry

import "slices"

// Registry is the set of variable names declared during one translation run.
// It only grows.
type Registry struct {
	names map[string]struct{}
	order []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Has reports whether name was registered earlier in the run.
func (r *Registry) Has(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Add registers name. Adding a known name is a no-op.
func (r *Registry) Add(name string) {
	if r.Has(name) {
		return
	}
	r.names[name] = struct{}{}
	r.order = append(r.order, name)
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns registered names in first-registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}
