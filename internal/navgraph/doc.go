// Package navgraph derives the page navigation graph from a project: one
// node per page, one directed edge per navigate effect. The graph is a
// read-only projection rebuilt on demand; it never owns model data.
//
// The compiler uses it to diagnose dangling page references, and the
// reporter uses it for the navigation summary.
package navgraph
