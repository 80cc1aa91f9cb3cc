// Package projfile converts projects to and from the persistent JSON
// interchange document.
//
// The document layout follows the original editor's project files:
// top-level `version`, `display_config`, `pages` (id to page fields) and
// `widgets` (page id to ordered widget list, with each widget's
// type-specific keys flattened at the top level of the widget object).
// Unknown extra keys are tolerated for forward compatibility; missing
// mandatory keys and unknown widget types abort the load with a ParseError
// rather than silently dropping data.
//
// Save and Load are inverses: loading a saved document reproduces the
// project structurally, including ids, property maps, tree shape and
// action lists. Neither touches the filesystem; the caller owns file I/O.
package projfile
