package registry

import (
	"github.com/zclconf/go-cty/cty"
)

// PropertySpec declares a single typed property of a widget type.
type PropertySpec struct {
	Name string
	Type cty.Type

	// Default is cty.NilVal when the property has no declared default.
	Default cty.Value

	// Required properties must be present on every instance at compile time.
	Required bool
}

// HasDefault reports whether the spec declares a default value.
func (p *PropertySpec) HasDefault() bool {
	return p.Default != cty.NilVal
}

// WidgetTypeSpec is a single immutable catalog entry.
type WidgetTypeSpec struct {
	// TypeName is the unique key used by model instances and the compiler
	// (e.g. "label", "slider").
	TypeName string

	// Name is the human-readable palette name (e.g. "Label", "Slider").
	Name string

	// Category groups types for palette listing ("Basic", "Input", ...).
	Category string

	Description string

	// Container permits child widgets underneath instances of this type.
	Container bool

	// Properties holds the declared properties in manifest order: common
	// style properties first, then type-specific ones. This order is also
	// the compiler's emission order.
	Properties []*PropertySpec

	propIndex map[string]*PropertySpec
}

// Property returns the named property spec, or nil if the type does not
// declare it.
func (w *WidgetTypeSpec) Property(name string) *PropertySpec {
	return w.propIndex[name]
}
