package registry

import (
	"sort"
)

// Registry is the immutable widget type catalog. It is constructed once by
// Load and never mutated afterwards, so it is safe to share by reference.
type Registry struct {
	types      map[string]*WidgetTypeSpec
	byCategory map[string][]string
	categories []string
}

// Lookup returns the spec for the given widget type name. The second return
// value is false when the type is not in the catalog.
func (r *Registry) Lookup(typeName string) (*WidgetTypeSpec, bool) {
	spec, ok := r.types[typeName]
	return spec, ok
}

// Types returns the type names in the given category, sorted
// lexicographically. Both the palette UI and the compiler rely on this
// order being stable across runs.
func (r *Registry) Types(category string) []string {
	names := r.byCategory[category]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// AllTypes returns every registered type name, sorted lexicographically.
func (r *Registry) AllTypes() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns the known palette categories, sorted lexicographically.
func (r *Registry) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// Len returns the number of registered widget types.
func (r *Registry) Len() int {
	return len(r.types)
}

// finalize builds the lookup indices after all specs have been collected.
func (r *Registry) finalize() {
	r.byCategory = make(map[string][]string)
	for name, spec := range r.types {
		r.byCategory[spec.Category] = append(r.byCategory[spec.Category], name)
	}
	r.categories = r.categories[:0]
	for category, names := range r.byCategory {
		sort.Strings(names)
		r.categories = append(r.categories, category)
	}
	sort.Strings(r.categories)
}
