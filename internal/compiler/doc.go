// Package compiler transforms a project model into the declarative YAML
// configuration consumed by the firmware build system.
//
// Compilation is a pure function of the model and the widget registry: no
// I/O, no mutation of the input. Validation runs first and collects every
// violation (dangling action targets, missing required properties, display
// invariants) before anything is emitted; on any error the compiler returns
// diagnostics only and no document, since a partially emitted configuration
// could be accepted as valid-but-wrong downstream.
//
// Emission order is fully determined by the model: pages in insertion
// order, widgets in insertion order, properties in the order the registry
// declares them. Identical models therefore produce byte-identical output,
// which keeps generated files diffable under version control.
package compiler
