package compiler

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty/convert"

	"github.com/specialistvlad/lvforge/internal/model"
	"github.com/specialistvlad/lvforge/internal/navgraph"
)

// validate runs the whole-project validation pass and collects every
// violation rather than stopping at the first.
func validate(p *model.Project, nav *navgraph.Graph) Errors {
	var errs Errors

	for _, err := range p.Display.Validate() {
		errs = append(errs, &Error{Kind: KindDisplay, Subject: "display", Detail: err.Error()})
	}

	if len(p.Pages()) == 0 || p.HomePageID() == "" {
		errs = append(errs, &Error{Kind: KindNoHomePage, Subject: "project", Detail: "exactly one page must be flagged as the home page"})
	} else if _, ok := p.Page(p.HomePageID()); !ok {
		errs = append(errs, &Error{Kind: KindNoHomePage, Subject: p.HomePageID(), Detail: "home page does not exist"})
	}

	for _, edge := range nav.Dangling() {
		errs = append(errs, &Error{
			Kind:    KindDanglingPage,
			Subject: edge.Widget,
			Detail:  fmt.Sprintf("navigate effect targets unknown page %q", edge.To),
		})
	}

	reg := p.Registry()
	p.EachWidget(func(pageID string, w *model.WidgetInstance) {
		spec, ok := reg.Lookup(w.Type)
		if !ok {
			errs = append(errs, &Error{Kind: KindUnknownType, Subject: w.ID, Detail: "unknown widget type " + w.Type})
			return
		}

		// The model converts values on entry, so a mismatch here means the
		// instance was built outside the mutation API. Walking the spec's
		// declaration order (not the Props map) keeps the batch stable
		// across runs.
		for _, prop := range spec.Properties {
			val, set := w.Props[prop.Name]
			if !set {
				if prop.Required {
					errs = append(errs, &Error{Kind: KindMissingRequired, Subject: w.ID, Field: prop.Name, Detail: "required property is not set"})
				}
				continue
			}
			if _, err := convert.Convert(val, prop.Type); err != nil {
				errs = append(errs, &Error{
					Kind:    KindTypeMismatch,
					Subject: w.ID,
					Field:   prop.Name,
					Detail:  fmt.Sprintf("expected %s, got %s", prop.Type.FriendlyName(), val.Type().FriendlyName()),
				})
			}
		}

		var undeclared []string
		for name := range w.Props {
			if spec.Property(name) == nil {
				undeclared = append(undeclared, name)
			}
		}
		sort.Strings(undeclared)
		for _, name := range undeclared {
			errs = append(errs, &Error{Kind: KindUnknownProperty, Subject: w.ID, Field: name})
		}

		for _, action := range w.Actions {
			for _, effect := range action.Effects {
				if effect.Kind != model.EffectSetProperty {
					continue
				}
				target, ok := p.Widget(effect.TargetWidgetID)
				if !ok {
					errs = append(errs, &Error{
						Kind:    KindDanglingWidget,
						Subject: w.ID,
						Detail:  fmt.Sprintf("%s effect targets unknown widget %q", action.Trigger, effect.TargetWidgetID),
					})
					continue
				}
				targetSpec, ok := reg.Lookup(target.Type)
				if !ok {
					continue // target itself already diagnosed above
				}
				targetProp := targetSpec.Property(effect.Property)
				if targetProp == nil {
					errs = append(errs, &Error{
						Kind:    KindUnknownProperty,
						Subject: w.ID,
						Field:   effect.Property,
						Detail:  fmt.Sprintf("target widget %q has no property %q", effect.TargetWidgetID, effect.Property),
					})
					continue
				}
				if _, err := convert.Convert(effect.Value, targetProp.Type); err != nil {
					errs = append(errs, &Error{
						Kind:    KindTypeMismatch,
						Subject: w.ID,
						Field:   effect.Property,
						Detail: fmt.Sprintf("effect value for %q expects %s, got %s",
							effect.TargetWidgetID, targetProp.Type.FriendlyName(), effect.Value.Type().FriendlyName()),
					})
				}
			}
		}
	})

	return errs
}
