// Package model holds the in-memory representation of a display project:
// display hardware settings, pages, the widget tree per page, actions, and
// global resources (images, theme colors).
//
// The Project is a single mutable aggregate owned by the editing session.
// Every mutating operation validates its inputs against the widget type
// registry before committing, and leaves the model untouched on failure.
// Cross-references between entities (action targets, navigation) are plain
// string ids resolved through lookup, never owning pointers, so forward
// references across pages are legal until compile time.
//
// The package defines no concurrency; callers that share a Project across
// goroutines must serialize access themselves.
package model
