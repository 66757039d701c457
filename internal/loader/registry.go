package loader

import "fmt"

// Registry is the set of canonical module paths loaded or currently
// loading. A path is registered before its file is read, so a cycle is
// detected the moment it is revisited. There is no silent skip: a path
// seen twice is rejected whether the include graph is a true cycle or a
// diamond.
type Registry struct {
	paths    map[string]bool
	order    []string // registration order
	capacity int
}

// NewRegistry creates a registry with the given capacity.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		paths:    make(map[string]bool),
		capacity: capacity,
	}
}

// Register adds a canonical path. A duplicate is a ModuleError (cycle or
// diamond); a full registry is a CapacityError.
func (r *Registry) Register(canonical string) error {
	if r.paths[canonical] {
		return &ModuleError{
			Target:  canonical,
			Message: "already loaded or loading (duplicate or cyclic loadin)",
		}
	}
	if len(r.paths) >= r.capacity {
		return &CapacityError{
			Message: fmt.Sprintf("module registry full (%d modules)", r.capacity),
		}
	}
	r.paths[canonical] = true
	r.order = append(r.order, canonical)
	return nil
}

// Contains reports whether a canonical path is registered.
func (r *Registry) Contains(canonical string) bool {
	return r.paths[canonical]
}

// Paths returns registered paths in registration order.
func (r *Registry) Paths() []string {
	return r.order
}

// Len returns the number of registered paths.
func (r *Registry) Len() int {
	return len(r.paths)
}
