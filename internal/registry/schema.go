package registry

import (
	"github.com/hashicorp/hcl/v2"
)

// catalogConfig represents the top-level structure of the catalog manifest.
type catalogConfig struct {
	Common  *commonBlock   `hcl:"common,block"`
	Widgets []*widgetBlock `hcl:"widget,block"`
}

// commonBlock declares the style properties shared by every widget type.
// They are prepended to each widget's own property list in manifest order.
type commonBlock struct {
	Properties []*propertyBlock `hcl:"property,block"`
}

// widgetBlock represents a single `widget` block from the catalog manifest.
type widgetBlock struct {
	TypeName    string           `hcl:"type_name,label"`
	Name        string           `hcl:"name"`
	Category    string           `hcl:"category"`
	Description string           `hcl:"description,optional"`
	Container   bool             `hcl:"container,optional"`
	Properties  []*propertyBlock `hcl:"property,block"`
}

// propertyBlock declares a single typed property of a widget type. Type is
// an HCL type expression (string, number, bool, list(string), ...).
type propertyBlock struct {
	Name     string         `hcl:"name,label"`
	Type     hcl.Expression `hcl:"type"`
	Default  hcl.Expression `hcl:"default,optional"`
	Required bool           `hcl:"required,optional"`
}
