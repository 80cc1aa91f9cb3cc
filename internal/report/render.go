package report

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/lvforge/internal/model"
)

// Render produces the human-readable markdown summary. Section order is
// fixed: title, display config, page list, per-page widget detail,
// statistics, navigation.
func Render(p *model.Project) string {
	r := Summarize(p)
	var b strings.Builder

	b.WriteString("# Project Summary\n\n")

	b.WriteString("## Display\n\n")
	fmt.Fprintf(&b, "- Resolution: %dx%d\n", r.Display.Width, r.Display.Height)
	fmt.Fprintf(&b, "- Color depth: %d bit\n", r.Display.ColorDepth)
	fmt.Fprintf(&b, "- Buffer: %d%%\n", r.Display.BufferPercent)
	b.WriteString("\n")

	b.WriteString("## Pages\n\n")
	if len(r.PerPage) == 0 {
		b.WriteString("No pages.\n\n")
	} else {
		for _, ps := range r.PerPage {
			marker := ""
			if ps.PageID == r.HomePageID {
				marker = " (home)"
			}
			fmt.Fprintf(&b, "- %s%s: %d widget(s)\n", ps.PageID, marker, ps.WidgetCount)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Widgets\n\n")
	for _, page := range p.Pages() {
		fmt.Fprintf(&b, "### %s\n\n", page.ID)
		if len(page.Widgets) == 0 {
			b.WriteString("(empty)\n\n")
			continue
		}
		for _, w := range page.Widgets {
			renderWidget(&b, w, 0)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "Total widgets: %d\n\n", r.TotalWidgets)
	for _, tc := range r.TypeBreakdown {
		fmt.Fprintf(&b, "- %s: %d\n", tc.TypeName, tc.Count)
	}
	if len(r.TypeBreakdown) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Navigation\n\n")
	hasEdges := false
	for _, ps := range r.PerPage {
		for _, target := range r.Targets[ps.PageID] {
			fmt.Fprintf(&b, "- %s -> %s\n", ps.PageID, target)
			hasEdges = true
		}
	}
	if !hasEdges {
		b.WriteString("No navigation between pages.\n")
	}
	for _, id := range r.Unreachable {
		fmt.Fprintf(&b, "- %s is unreachable from the home page\n", id)
	}

	return b.String()
}

func renderWidget(b *strings.Builder, w *model.WidgetInstance, depth int) {
	fmt.Fprintf(b, "%s- %s (%s)%s\n", strings.Repeat("  ", depth), w.ID, w.Type, geometry(w))
	for _, child := range w.Children {
		renderWidget(b, child, depth+1)
	}
}

// geometry renders the non-default placement of a widget, empty when the
// widget sits at the origin and shrink-wraps.
func geometry(w *model.WidgetInstance) string {
	var parts []string
	if w.X != 0 || w.Y != 0 {
		parts = append(parts, fmt.Sprintf("at %d,%d", w.X, w.Y))
	}
	if !w.Width.IsContent() || !w.Height.IsContent() {
		parts = append(parts, fmt.Sprintf("size %sx%s", w.Width, w.Height))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
