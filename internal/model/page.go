package model

// Layout selects how a page arranges its root widgets.
type Layout string

const (
	LayoutNone Layout = "NONE"
	LayoutFlex Layout = "FLEX"
	LayoutGrid Layout = "GRID"
)

// ValidLayout reports whether l is a recognized layout name.
func ValidLayout(l Layout) bool {
	switch l {
	case LayoutNone, LayoutFlex, LayoutGrid:
		return true
	}
	return false
}

// Page is one screen of the display. It exclusively owns its root widgets;
// page order within the project is insertion order.
type Page struct {
	ID   string
	Name string

	Layout Layout

	// FlexFlow is only meaningful when Layout is FLEX.
	FlexFlow string

	// GridColumns/GridRows are only meaningful when Layout is GRID. Entries
	// are LVGL track sizes ("FR(1)", "CONTENT", or a pixel count).
	GridColumns []string
	GridRows    []string

	BGColor    string
	Scrollable bool

	Widgets []*WidgetInstance
}

// WidgetCount returns the number of widgets on the page, including nested
// children.
func (p *Page) WidgetCount() int {
	n := 0
	for _, w := range p.Widgets {
		n += w.treeSize()
	}
	return n
}
