package model

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/specialistvlad/lvforge/internal/registry"
)

// identRe matches identifier-safe ids as accepted by the target firmware.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// widgetEntry is the non-owning global lookup record for one widget.
type widgetEntry struct {
	widget *WidgetInstance
	pageID string
	parent *WidgetInstance // nil for page roots
}

// Project is the root aggregate. It exclusively owns its pages, which own
// their widget trees. All cross-entity references are ids resolved through
// the widget index.
type Project struct {
	Display DisplayConfig

	// Images maps resource name to file path; Theme maps color name to a
	// hex color string. Both are global resources shared by all pages.
	Images map[string]string
	Theme  map[string]string

	reg        *registry.Registry
	pages      []*Page
	pageIndex  map[string]*Page
	widgets    map[string]*widgetEntry
	homePageID string
}

// New creates an empty project bound to the given widget type registry.
func New(reg *registry.Registry) *Project {
	return &Project{
		Display:   DefaultDisplayConfig(),
		Images:    make(map[string]string),
		Theme:     make(map[string]string),
		reg:       reg,
		pageIndex: make(map[string]*Page),
		widgets:   make(map[string]*widgetEntry),
	}
}

// Registry returns the immutable widget type registry the project is bound to.
func (p *Project) Registry() *registry.Registry {
	return p.reg
}

// Pages returns the pages in display (insertion) order. The slice is shared;
// callers must not mutate it.
func (p *Project) Pages() []*Page {
	return p.pages
}

// Page resolves a page id.
func (p *Project) Page(id string) (*Page, bool) {
	page, ok := p.pageIndex[id]
	return page, ok
}

// Widget resolves a widget id anywhere in the project.
func (p *Project) Widget(id string) (*WidgetInstance, bool) {
	entry, ok := p.widgets[id]
	if !ok {
		return nil, false
	}
	return entry.widget, true
}

// PageOf returns the id of the page owning the given widget.
func (p *Project) PageOf(widgetID string) (string, bool) {
	entry, ok := p.widgets[widgetID]
	if !ok {
		return "", false
	}
	return entry.pageID, true
}

// WidgetCount returns the total number of widgets, including nested children.
func (p *Project) WidgetCount() int {
	return len(p.widgets)
}

// HomePageID returns the id of the initial page, or "" when the project has
// no pages yet.
func (p *Project) HomePageID() string {
	return p.homePageID
}

// SetHomePage flags the given page as the initial page.
func (p *Project) SetHomePage(id string) error {
	if _, ok := p.pageIndex[id]; !ok {
		return &ValidationError{Kind: ErrUnknownPage, Subject: id}
	}
	p.homePageID = id
	return nil
}

// AddPage appends a new page. An empty id is replaced with a generated one.
// The first page added becomes the home page.
func (p *Project) AddPage(id, name string, layout Layout) (*Page, error) {
	if id == "" {
		id = newPageID()
	}
	if !identRe.MatchString(id) {
		return nil, &ValidationError{Kind: ErrInvalidID, Subject: id, Detail: "page id must be identifier-safe"}
	}
	if _, exists := p.pageIndex[id]; exists {
		return nil, &ValidationError{Kind: ErrDuplicateID, Subject: id}
	}
	if layout == "" {
		layout = LayoutNone
	}
	if !ValidLayout(layout) {
		return nil, &ValidationError{Kind: ErrUnknownType, Subject: id, Field: "layout", Detail: string(layout)}
	}

	page := &Page{ID: id, Name: name, Layout: layout, Scrollable: true}
	p.pages = append(p.pages, page)
	p.pageIndex[id] = page
	if p.homePageID == "" {
		p.homePageID = id
	}
	return page, nil
}

// RemovePage deletes a page and cascades to every widget it owns. Action
// effects on surviving widgets that targeted a removed widget are stripped
// and reported as warnings. Navigate effects pointing at the removed page
// are left alone; they become compile-time dangling references.
func (p *Project) RemovePage(id string) ([]Warning, error) {
	page, ok := p.pageIndex[id]
	if !ok {
		return nil, &ValidationError{Kind: ErrUnknownPage, Subject: id}
	}
	if len(p.pages) == 1 {
		return nil, &ValidationError{Kind: ErrLastPage, Subject: id, Detail: "a project must keep at least one page"}
	}

	removed := make(map[string]bool)
	var warnings []Warning
	for _, w := range page.Widgets {
		w.walk(func(n *WidgetInstance) {
			removed[n.ID] = true
			delete(p.widgets, n.ID)
			warnings = append(warnings, Warning{Subject: n.ID, Message: "widget removed with page " + id})
		})
	}

	for i, pg := range p.pages {
		if pg.ID == id {
			p.pages = append(p.pages[:i], p.pages[i+1:]...)
			break
		}
	}
	delete(p.pageIndex, id)

	warnings = append(warnings, p.stripEffectsTargeting(removed)...)

	if p.homePageID == id {
		p.homePageID = p.pages[0].ID
		warnings = append(warnings, Warning{Subject: p.homePageID, Message: "home page reassigned after deleting " + id})
	}
	return warnings, nil
}

// AddWidget creates a widget on the given page, optionally nested under
// parentID. An empty id is replaced with a generated one. Initial properties
// are validated against the type's schema before anything is committed.
func (p *Project) AddWidget(pageID, parentID, id, typeName string, initialProps map[string]cty.Value) (*WidgetInstance, error) {
	spec, ok := p.reg.Lookup(typeName)
	if !ok {
		return nil, &ValidationError{Kind: ErrUnknownType, Subject: typeName}
	}
	page, ok := p.pageIndex[pageID]
	if !ok {
		return nil, &ValidationError{Kind: ErrUnknownPage, Subject: pageID}
	}

	var parent *WidgetInstance
	if parentID != "" {
		entry, ok := p.widgets[parentID]
		if !ok || entry.pageID != pageID {
			return nil, &ValidationError{Kind: ErrUnknownParent, Subject: parentID}
		}
		parentSpec, _ := p.reg.Lookup(entry.widget.Type)
		if parentSpec == nil || !parentSpec.Container {
			return nil, &ValidationError{Kind: ErrChildrenNotAllowed, Subject: parentID, Detail: "type " + entry.widget.Type + " does not allow children"}
		}
		parent = entry.widget
	}

	if id == "" {
		id = newWidgetID(typeName)
	}
	if !identRe.MatchString(id) {
		return nil, &ValidationError{Kind: ErrInvalidID, Subject: id, Detail: "widget id must be identifier-safe"}
	}
	if _, exists := p.widgets[id]; exists {
		return nil, &ValidationError{Kind: ErrDuplicateID, Subject: id}
	}

	props, err := convertProps(spec, id, initialProps)
	if err != nil {
		return nil, err
	}

	w := &WidgetInstance{ID: id, Type: typeName, Props: props}
	if parent != nil {
		parent.Children = append(parent.Children, w)
	} else {
		page.Widgets = append(page.Widgets, w)
	}
	p.widgets[id] = &widgetEntry{widget: w, pageID: pageID, parent: parent}

	// Children created later need index entries too; AddWidget is the only
	// way to grow a subtree, so registering w alone is sufficient here.
	return w, nil
}

// RemoveWidget deletes a widget and all its descendants, then strips action
// effects on surviving widgets that targeted anything removed. One warning
// is produced per removed widget and per stripped cross-reference.
func (p *Project) RemoveWidget(id string) ([]Warning, error) {
	entry, ok := p.widgets[id]
	if !ok {
		return nil, &ValidationError{Kind: ErrUnknownWidget, Subject: id}
	}

	removed := make(map[string]bool)
	var warnings []Warning
	entry.widget.walk(func(n *WidgetInstance) {
		removed[n.ID] = true
		delete(p.widgets, n.ID)
		warnings = append(warnings, Warning{Subject: n.ID, Message: "widget removed"})
	})

	if entry.parent != nil {
		entry.parent.Children = removeFromTree(entry.parent.Children, entry.widget)
	} else {
		page := p.pageIndex[entry.pageID]
		page.Widgets = removeFromTree(page.Widgets, entry.widget)
	}

	warnings = append(warnings, p.stripEffectsTargeting(removed)...)
	return warnings, nil
}

// SetProperty sets one property on a widget, converting the value to the
// declared type. The model is unchanged when the conversion fails.
func (p *Project) SetProperty(widgetID, name string, value cty.Value) error {
	entry, ok := p.widgets[widgetID]
	if !ok {
		return &ValidationError{Kind: ErrUnknownWidget, Subject: widgetID}
	}
	spec, _ := p.reg.Lookup(entry.widget.Type)
	prop := spec.Property(name)
	if prop == nil {
		return &ValidationError{Kind: ErrUnknownProperty, Subject: widgetID, Field: name}
	}
	converted, err := convert.Convert(value, prop.Type)
	if err != nil {
		return &ValidationError{
			Kind:    ErrTypeMismatch,
			Subject: widgetID,
			Field:   name,
			Detail:  fmt.Sprintf("expected %s, got %s", prop.Type.FriendlyName(), value.Type().FriendlyName()),
		}
	}
	entry.widget.Props[name] = converted
	return nil
}

// Property reads a property back: the explicitly set value, or the registry
// default when unset.
func (p *Project) Property(widgetID, name string) (cty.Value, error) {
	entry, ok := p.widgets[widgetID]
	if !ok {
		return cty.NilVal, &ValidationError{Kind: ErrUnknownWidget, Subject: widgetID}
	}
	spec, _ := p.reg.Lookup(entry.widget.Type)
	prop := spec.Property(name)
	if prop == nil {
		return cty.NilVal, &ValidationError{Kind: ErrUnknownProperty, Subject: widgetID, Field: name}
	}
	if val, set := entry.widget.Props[name]; set {
		return val, nil
	}
	return prop.Default, nil
}

// AddAction appends an action to a widget. Effect targets are not resolved
// here; forward references are legal until compile time.
func (p *Project) AddAction(widgetID string, action Action) error {
	entry, ok := p.widgets[widgetID]
	if !ok {
		return &ValidationError{Kind: ErrUnknownWidget, Subject: widgetID}
	}
	if !ValidTrigger(action.Trigger) {
		return &ValidationError{Kind: ErrUnknownTrigger, Subject: widgetID, Detail: string(action.Trigger)}
	}
	entry.widget.Actions = append(entry.widget.Actions, action)
	return nil
}

// AddImage registers a named image resource.
func (p *Project) AddImage(name, path string) {
	p.Images[name] = path
}

// SetThemeColor registers a named theme color.
func (p *Project) SetThemeColor(name, hexColor string) {
	p.Theme[name] = hexColor
}

// EachWidget visits every widget in the project in page order, then
// depth-first document order within each page.
func (p *Project) EachWidget(fn func(pageID string, w *WidgetInstance)) {
	for _, page := range p.pages {
		for _, w := range page.Widgets {
			w.walk(func(n *WidgetInstance) { fn(page.ID, n) })
		}
	}
}

// stripEffectsTargeting removes set-property effects on surviving widgets
// whose targets were just deleted, returning one warning per stripped
// effect. Actions left with no effects are removed outright.
func (p *Project) stripEffectsTargeting(removed map[string]bool) []Warning {
	var warnings []Warning
	for _, entry := range p.widgets {
		w := entry.widget
		actions := w.Actions[:0]
		for _, action := range w.Actions {
			effects := action.Effects[:0]
			for _, effect := range action.Effects {
				if effect.Kind == EffectSetProperty && removed[effect.TargetWidgetID] {
					warnings = append(warnings, Warning{
						Subject: w.ID,
						Message: fmt.Sprintf("removed %s effect targeting deleted widget %q", action.Trigger, effect.TargetWidgetID),
					})
					continue
				}
				effects = append(effects, effect)
			}
			action.Effects = effects
			if len(action.Effects) > 0 {
				actions = append(actions, action)
			}
		}
		w.Actions = actions
		if len(w.Actions) == 0 {
			w.Actions = nil
		}
	}
	return warnings
}

// convertProps validates an initial property map against a type spec,
// converting each value to its declared type.
func convertProps(spec *registry.WidgetTypeSpec, widgetID string, in map[string]cty.Value) (map[string]cty.Value, error) {
	props := make(map[string]cty.Value, len(in))
	for name, value := range in {
		prop := spec.Property(name)
		if prop == nil {
			return nil, &ValidationError{Kind: ErrUnknownProperty, Subject: widgetID, Field: name}
		}
		converted, err := convert.Convert(value, prop.Type)
		if err != nil {
			return nil, &ValidationError{
				Kind:    ErrTypeMismatch,
				Subject: widgetID,
				Field:   name,
				Detail:  fmt.Sprintf("expected %s, got %s", prop.Type.FriendlyName(), value.Type().FriendlyName()),
			}
		}
		props[name] = converted
	}
	return props, nil
}

// removeFromTree drops one widget from a sibling slice, preserving order.
func removeFromTree(siblings []*WidgetInstance, target *WidgetInstance) []*WidgetInstance {
	for i, w := range siblings {
		if w == target {
			return append(siblings[:i], siblings[i+1:]...)
		}
	}
	return siblings
}

func newPageID() string {
	return "page_" + uuid.NewString()[:8]
}

func newWidgetID(typeName string) string {
	return typeName + "_" + uuid.NewString()[:8]
}
