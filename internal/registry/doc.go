// Package registry provides the static catalog of widget types.
//
// The catalog is declared in an embedded HCL manifest (catalog.hcl) and
// parsed once at startup into an immutable Registry value. Each entry
// describes a widget type: its property schema (name, cty type, default,
// required flag), whether it may contain child widgets, and the palette
// category it belongs to.
//
// The Registry is read-only after Load returns. It is passed by reference
// to the model and the compiler rather than accessed as global state, so
// both stay testable without any ambient setup. Adding a widget type means
// adding a block to catalog.hcl; the compiler's emission rules pick it up
// through the property schema with no further code changes.
package registry
