package registry

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

//go:embed catalog.hcl
var catalogSource []byte

// Load parses the embedded catalog manifest and returns the immutable
// Registry. A malformed catalog is a programmer error, so Load returns the
// full set of diagnostics rather than stopping at the first problem.
func Load() (*Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(catalogSource, "catalog.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse widget catalog: %w", diags)
	}

	var cfg catalogConfig
	if moreDiags := gohcl.DecodeBody(file.Body, nil, &cfg); moreDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode widget catalog: %w", moreDiags)
	}

	var common []*propertyBlock
	if cfg.Common != nil {
		common = cfg.Common.Properties
	}

	reg := &Registry{types: make(map[string]*WidgetTypeSpec, len(cfg.Widgets))}
	for _, block := range cfg.Widgets {
		if _, exists := reg.types[block.TypeName]; exists {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate widget type",
				Detail:   fmt.Sprintf("Widget type %q is declared more than once.", block.TypeName),
			})
			continue
		}

		spec := &WidgetTypeSpec{
			TypeName:    block.TypeName,
			Name:        block.Name,
			Category:    block.Category,
			Description: block.Description,
			Container:   block.Container,
			propIndex:   make(map[string]*PropertySpec),
		}

		// Common style properties come first, then the type-specific ones.
		// This order is the compiler's property emission order.
		for _, pb := range append(append([]*propertyBlock{}, common...), block.Properties...) {
			prop, propDiags := buildProperty(block.TypeName, pb)
			diags = diags.Extend(propDiags)
			if prop == nil {
				continue
			}
			if _, dup := spec.propIndex[prop.Name]; dup {
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate property",
					Detail:   fmt.Sprintf("Widget type %q declares property %q more than once.", block.TypeName, prop.Name),
				})
				continue
			}
			spec.Properties = append(spec.Properties, prop)
			spec.propIndex[prop.Name] = prop
		}

		reg.types[block.TypeName] = spec
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("widget catalog is invalid: %w", diags)
	}

	reg.finalize()
	return reg, nil
}

// buildProperty translates a manifest property block into a PropertySpec,
// resolving its type expression and checking the default against it.
func buildProperty(typeName string, pb *propertyBlock) (*PropertySpec, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	ctyType, err := typeExprToCtyType(pb.Type)
	if err != nil {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid property type",
			Detail:   fmt.Sprintf("Widget type %q, property %q: %s.", typeName, pb.Name, err),
			Subject:  pb.Type.Range().Ptr(),
		})
		return nil, diags
	}

	prop := &PropertySpec{
		Name:     pb.Name,
		Type:     ctyType,
		Required: pb.Required,
		Default:  cty.NilVal,
	}

	if pb.Default != nil {
		val, valDiags := pb.Default.Value(nil)
		if valDiags.HasErrors() {
			return nil, diags.Extend(valDiags)
		}
		if !val.IsNull() {
			converted, err := convert.Convert(val, ctyType)
			if err != nil {
				diags = diags.Append(&hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Default value does not match property type",
					Detail: fmt.Sprintf("Widget type %q, property %q: default is not convertible to %s: %s.",
						typeName, pb.Name, ctyType.FriendlyName(), err),
					Subject: pb.Default.Range().Ptr(),
				})
				return nil, diags
			}
			prop.Default = converted
		}
	}

	return prop, diags
}
