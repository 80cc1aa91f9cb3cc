package navgraph

import (
	"sort"

	"github.com/specialistvlad/lvforge/internal/model"
)

// Edge is one navigation reference: a widget on page From navigating to
// page To. To may not exist; such edges are reported by Dangling.
type Edge struct {
	From   string // source page id
	Widget string // widget carrying the navigate effect
	To     string // target page id
}

// Graph is the derived page navigation graph.
type Graph struct {
	pages map[string]bool
	out   map[string]map[string]bool // page id -> set of target page ids
	edges []Edge
}

// Build walks every action in the project and collects the navigation
// edges. The project is read, never mutated.
func Build(p *model.Project) *Graph {
	g := &Graph{
		pages: make(map[string]bool),
		out:   make(map[string]map[string]bool),
	}
	for _, page := range p.Pages() {
		g.pages[page.ID] = true
		g.out[page.ID] = make(map[string]bool)
	}
	p.EachWidget(func(pageID string, w *model.WidgetInstance) {
		for _, action := range w.Actions {
			for _, effect := range action.Effects {
				if effect.Kind != model.EffectNavigate {
					continue
				}
				g.edges = append(g.edges, Edge{From: pageID, Widget: w.ID, To: effect.TargetPageID})
				g.out[pageID][effect.TargetPageID] = true
			}
		}
	})
	return g
}

// Targets returns the page ids reachable from the given page in one hop,
// sorted lexicographically. Dangling targets are included.
func (g *Graph) Targets(pageID string) []string {
	targets := make([]string, 0, len(g.out[pageID]))
	for to := range g.out[pageID] {
		targets = append(targets, to)
	}
	sort.Strings(targets)
	return targets
}

// Dangling returns every edge whose target page does not exist, in model
// document order.
func (g *Graph) Dangling() []Edge {
	var dangling []Edge
	for _, e := range g.edges {
		if !g.pages[e.To] {
			dangling = append(dangling, e)
		}
	}
	return dangling
}

// Unreachable returns the pages that no chain of navigate effects reaches
// from the home page, sorted lexicographically. The home page itself is
// always considered reachable.
func (g *Graph) Unreachable(homeID string) []string {
	visited := make(map[string]bool)
	var visit func(id string)
	visit = func(id string) {
		if visited[id] || !g.pages[id] {
			return
		}
		visited[id] = true
		for to := range g.out[id] {
			visit(to)
		}
	}
	visit(homeID)

	var unreachable []string
	for id := range g.pages {
		if !visited[id] {
			unreachable = append(unreachable, id)
		}
	}
	sort.Strings(unreachable)
	return unreachable
}
