package compiler

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/lvforge/internal/model"
	"github.com/specialistvlad/lvforge/internal/navgraph"
)

// Result is a successful compilation.
type Result struct {
	// Document is the serialized YAML configuration.
	Document []byte

	// Warnings are non-fatal findings, currently pages unreachable from
	// the home page by any navigate effect.
	Warnings []string
}

// Compile transforms the project into the firmware configuration document.
// It either fully succeeds or returns the complete batch of violations and
// no document.
func Compile(p *model.Project) (*Result, Errors) {
	nav := navgraph.Build(p)

	if errs := validate(p, nav); len(errs) > 0 {
		return nil, errs
	}

	var warnings []string
	for _, pageID := range nav.Unreachable(p.HomePageID()) {
		warnings = append(warnings, fmt.Sprintf("page %q is not reachable from the home page", pageID))
	}

	root := emitDocument(p)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		// The tree is built entirely from scalar/map/seq nodes, so encoding
		// cannot fail on valid input; treat it as a single batch error.
		return nil, Errors{{Kind: KindDisplay, Subject: "document", Detail: err.Error()}}
	}
	if err := enc.Close(); err != nil {
		return nil, Errors{{Kind: KindDisplay, Subject: "document", Detail: err.Error()}}
	}

	return &Result{Document: buf.Bytes(), Warnings: warnings}, nil
}

// Validate runs only the validation pass, for editors that want batch
// diagnostics without producing a document.
func Validate(p *model.Project) Errors {
	return validate(p, navgraph.Build(p))
}
