package compiler

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/lvforge/internal/model"
)

// emitDocument builds the whole output tree. The model is known valid by
// the time this runs.
func emitDocument(p *model.Project) *yaml.Node {
	root := mappingNode()

	emitBoilerplate(root, p)

	lvgl := mappingNode()
	put(root, "lvgl", lvgl)

	displays := sequenceNode()
	displays.Content = append(displays.Content, strNode(displayID))
	put(lvgl, "displays", displays)
	put(lvgl, "color_depth", intNode(p.Display.ColorDepth))
	put(lvgl, "buffer_size", strNode(fmt.Sprintf("%d%%", p.Display.BufferPercent)))

	if len(p.Theme) > 0 {
		put(lvgl, "theme", emitTheme(p))
	}

	pages := sequenceNode()
	for _, page := range p.Pages() {
		pages.Content = append(pages.Content, emitPage(p, page))
	}
	put(lvgl, "pages", pages)

	return root
}

// emitTheme renders the shared theme colors, sorted by name.
func emitTheme(p *model.Project) *yaml.Node {
	names := make([]string, 0, len(p.Theme))
	for name := range p.Theme {
		names = append(names, name)
	}
	sort.Strings(names)

	theme := mappingNode()
	for _, name := range names {
		put(theme, name, strNode(p.Theme[name]))
	}
	return theme
}

// emitPage renders one page block with its layout parameters and widget
// tree.
func emitPage(p *model.Project, page *model.Page) *yaml.Node {
	node := mappingNode()
	put(node, "id", strNode(page.ID))

	if page.ID == p.HomePageID() {
		put(node, "is_default", boolNode(true))
	}
	if page.Layout != model.LayoutNone {
		put(node, "layout", emitLayout(page))
	}
	if page.BGColor != "" {
		put(node, "bg_color", strNode(page.BGColor))
	}
	if !page.Scrollable {
		put(node, "scrollable", boolNode(false))
	}

	if len(page.Widgets) > 0 {
		widgets := sequenceNode()
		for _, w := range page.Widgets {
			widgets.Content = append(widgets.Content, emitWidget(p, page, w))
		}
		put(node, "widgets", widgets)
	}
	return node
}

// emitLayout renders the layout-system-specific parameters of a page.
func emitLayout(page *model.Page) *yaml.Node {
	layout := mappingNode()
	put(layout, "type", strNode(string(page.Layout)))

	switch page.Layout {
	case model.LayoutFlex:
		flow := page.FlexFlow
		if flow == "" {
			flow = "ROW_WRAP"
		}
		put(layout, "flex_flow", strNode(flow))
	case model.LayoutGrid:
		put(layout, "grid_columns", stringSeq(page.GridColumns))
		put(layout, "grid_rows", stringSeq(page.GridRows))
	}
	return layout
}

// emitWidget renders one widget as `- <type>: {...}`, recursing into
// children. Geometry keys are omitted at their defaults: x/y when zero (or
// whenever a flex/grid layout positions the widget), width/height when
// content-sized. Properties emit in registry declaration order, set ones
// only.
func emitWidget(p *model.Project, page *model.Page, w *model.WidgetInstance) *yaml.Node {
	body := mappingNode()
	put(body, "id", strNode(w.ID))

	// Under FLEX/GRID the layout engine owns placement, so explicit x/y are
	// meaningless and never emitted.
	if page.Layout == model.LayoutNone {
		if w.X != 0 {
			put(body, "x", intNode(w.X))
		}
		if w.Y != 0 {
			put(body, "y", intNode(w.Y))
		}
	}
	if !w.Width.IsContent() {
		put(body, "width", intNode(w.Width.Pixels()))
	}
	if !w.Height.IsContent() {
		put(body, "height", intNode(w.Height.Pixels()))
	}

	spec, _ := p.Registry().Lookup(w.Type)
	for _, prop := range spec.Properties {
		if val, set := w.Props[prop.Name]; set {
			put(body, prop.Name, ctyToNode(val))
		}
	}

	if len(w.Children) > 0 {
		children := sequenceNode()
		for _, child := range w.Children {
			children.Content = append(children.Content, emitWidget(p, page, child))
		}
		put(body, "widgets", children)
	}

	// Each trigger may appear only once per mapping, so actions sharing a
	// trigger merge into one then: list, in action then effect order.
	var triggers []model.Trigger
	effectsByTrigger := make(map[model.Trigger][]model.Effect)
	for _, action := range w.Actions {
		if _, seen := effectsByTrigger[action.Trigger]; !seen {
			triggers = append(triggers, action.Trigger)
		}
		effectsByTrigger[action.Trigger] = append(effectsByTrigger[action.Trigger], action.Effects...)
	}
	for _, trigger := range triggers {
		put(body, string(trigger), emitTriggerBlock(effectsByTrigger[trigger]))
	}

	wrapper := mappingNode()
	put(wrapper, w.Type, body)
	return wrapper
}

// emitTriggerBlock renders one trigger block as `then:` with one statement
// per effect.
func emitTriggerBlock(effects []model.Effect) *yaml.Node {
	then := sequenceNode()
	for _, effect := range effects {
		then.Content = append(then.Content, emitEffect(effect))
	}

	node := mappingNode()
	put(node, "then", then)
	return node
}

// emitEffect translates one effect into its firmware statement.
func emitEffect(effect model.Effect) *yaml.Node {
	node := mappingNode()
	switch effect.Kind {
	case model.EffectLog:
		stmt := mappingNode()
		put(stmt, "format", strNode(effect.Message))
		put(node, "logger.log", stmt)
	case model.EffectNavigate:
		stmt := mappingNode()
		put(stmt, "id", strNode(effect.TargetPageID))
		put(node, "lvgl.page.show", stmt)
	case model.EffectSetProperty:
		stmt := mappingNode()
		put(stmt, "id", strNode(effect.TargetWidgetID))
		put(stmt, effect.Property, ctyToNode(effect.Value))
		put(node, "lvgl.widget.update", stmt)
	}
	return node
}

func stringSeq(values []string) *yaml.Node {
	seq := sequenceNode()
	for _, v := range values {
		seq.Content = append(seq.Content, strNode(v))
	}
	return seq
}
