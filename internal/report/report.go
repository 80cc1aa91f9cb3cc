// Package report builds read-only statistics over a project: widget
// counts, per-page breakdowns and a navigation overview. It never mutates
// the model and does not depend on compiler output.
package report

import (
	"sort"

	"github.com/specialistvlad/lvforge/internal/model"
	"github.com/specialistvlad/lvforge/internal/navgraph"
)

// PageStat is one page's entry in the summary, in model page order.
type PageStat struct {
	PageID string
	Name   string
	// WidgetCount includes nested children, not just page roots.
	WidgetCount int
}

// TypeCount is one widget type's share of the project.
type TypeCount struct {
	TypeName string
	Count    int
}

// Report is a snapshot of project statistics.
type Report struct {
	Display      model.DisplayConfig
	PerPage      []PageStat
	TotalWidgets int

	// TypeBreakdown is sorted by descending count, then ascending type
	// name, so the busiest types list first.
	TypeBreakdown []TypeCount

	// HomePageID and Unreachable describe the navigation graph; Targets
	// maps each page to its one-hop navigation targets.
	HomePageID  string
	Targets     map[string][]string
	Unreachable []string
}

// Summarize projects the model into a Report.
func Summarize(p *model.Project) *Report {
	nav := navgraph.Build(p)

	r := &Report{
		Display:    p.Display,
		HomePageID: p.HomePageID(),
		Targets:    make(map[string][]string),
	}

	counts := make(map[string]int)
	for _, page := range p.Pages() {
		r.PerPage = append(r.PerPage, PageStat{
			PageID:      page.ID,
			Name:        page.Name,
			WidgetCount: page.WidgetCount(),
		})
		if targets := nav.Targets(page.ID); len(targets) > 0 {
			r.Targets[page.ID] = targets
		}
	}
	p.EachWidget(func(_ string, w *model.WidgetInstance) {
		counts[w.Type]++
		r.TotalWidgets++
	})

	for typeName, count := range counts {
		r.TypeBreakdown = append(r.TypeBreakdown, TypeCount{TypeName: typeName, Count: count})
	}
	sort.Slice(r.TypeBreakdown, func(i, j int) bool {
		a, b := r.TypeBreakdown[i], r.TypeBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.TypeName < b.TypeName
	})

	r.Unreachable = nav.Unreachable(p.HomePageID())
	return r
}
