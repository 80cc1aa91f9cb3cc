package model

import "github.com/zclconf/go-cty/cty"

// WidgetInstance is one placed occurrence of a widget type. Its id is
// unique across the whole project, not just its page, because actions
// reference widgets globally.
type WidgetInstance struct {
	ID   string
	Type string

	X, Y          int
	Width, Height Dimension

	// Props maps property name to value. Keys are always a subset of the
	// type's declared properties and values are already converted to the
	// declared cty type; both are enforced on every mutation.
	Props map[string]cty.Value

	// Children is only non-empty for container types.
	Children []*WidgetInstance

	Actions []Action
}

// walk visits w and all its descendants in depth-first document order.
func (w *WidgetInstance) walk(fn func(*WidgetInstance)) {
	fn(w)
	for _, child := range w.Children {
		child.walk(fn)
	}
}

// treeSize returns the number of widgets in the subtree rooted at w,
// counting w itself.
func (w *WidgetInstance) treeSize() int {
	n := 1
	for _, child := range w.Children {
		n += child.treeSize()
	}
	return n
}
