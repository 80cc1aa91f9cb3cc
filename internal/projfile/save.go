package projfile

import (
	"encoding/json"
	"fmt"
	"strconv"

	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/specialistvlad/lvforge/internal/model"
)

// document is the top-level JSON layout.
type document struct {
	Version       string                 `json:"version"`
	DisplayConfig displayDoc             `json:"display_config"`
	Theme         map[string]string      `json:"theme,omitempty"`
	Images        map[string]string      `json:"images,omitempty"`
	Pages         map[string]pageDoc     `json:"pages"`
	Widgets       map[string][]widgetDoc `json:"widgets"`
}

// Save serializes the project into the JSON interchange document.
func Save(p *model.Project) ([]byte, error) {
	doc := document{
		Version: FormatVersion,
		DisplayConfig: displayDoc{
			Width:         p.Display.Width,
			Height:        p.Display.Height,
			ColorDepth:    p.Display.ColorDepth,
			BufferPercent: p.Display.BufferPercent,
		},
		Pages:   make(map[string]pageDoc, len(p.Pages())),
		Widgets: make(map[string][]widgetDoc, len(p.Pages())),
	}
	if len(p.Theme) > 0 {
		doc.Theme = p.Theme
	}
	if len(p.Images) > 0 {
		doc.Images = p.Images
	}

	for i, page := range p.Pages() {
		doc.Pages[page.ID] = pageDoc{
			ID:          page.ID,
			Name:        page.Name,
			Layout:      string(page.Layout),
			FlexFlow:    page.FlexFlow,
			GridColumns: page.GridColumns,
			GridRows:    page.GridRows,
			BGColor:     page.BGColor,
			Scrollable:  page.Scrollable,
			IsDefault:   page.ID == p.HomePageID(),
			Index:       i,
		}

		widgets := make([]widgetDoc, 0, len(page.Widgets))
		for _, w := range page.Widgets {
			wd, err := marshalWidget(p, w)
			if err != nil {
				return nil, err
			}
			widgets = append(widgets, wd)
		}
		doc.Widgets[page.ID] = widgets
	}

	return json.MarshalIndent(doc, "", "  ")
}

// marshalWidget flattens one widget and its subtree into a widgetDoc,
// with declared property values alongside the structural keys.
func marshalWidget(p *model.Project, w *model.WidgetInstance) (widgetDoc, error) {
	wd := widgetDoc{
		keyWidgetType: rawString(w.Type),
		keyID:         rawString(w.ID),
		keyX:          rawInt(w.X),
		keyY:          rawInt(w.Y),
		keyWidth:      rawDimension(w.Width),
		keyHeight:     rawDimension(w.Height),
	}

	spec, ok := p.Registry().Lookup(w.Type)
	if !ok {
		return nil, fmt.Errorf("widget %q: type %q not in registry", w.ID, w.Type)
	}
	for name, value := range w.Props {
		prop := spec.Property(name)
		raw, err := ctyjson.Marshal(value, prop.Type)
		if err != nil {
			return nil, fmt.Errorf("widget %q: property %q: %w", w.ID, name, err)
		}
		wd[name] = raw
	}

	if len(w.Children) > 0 {
		children := make([]widgetDoc, 0, len(w.Children))
		for _, child := range w.Children {
			cd, err := marshalWidget(p, child)
			if err != nil {
				return nil, err
			}
			children = append(children, cd)
		}
		raw, err := json.Marshal(children)
		if err != nil {
			return nil, err
		}
		wd[keyChildren] = raw
	}

	if len(w.Actions) > 0 {
		actions := make([]actionDoc, 0, len(w.Actions))
		for _, action := range w.Actions {
			ad, err := marshalAction(action)
			if err != nil {
				return nil, fmt.Errorf("widget %q: %w", w.ID, err)
			}
			actions = append(actions, ad)
		}
		raw, err := json.Marshal(actions)
		if err != nil {
			return nil, err
		}
		wd[keyActions] = raw
	}

	return wd, nil
}

func marshalAction(action model.Action) (actionDoc, error) {
	ad := actionDoc{Trigger: string(action.Trigger)}
	for _, effect := range action.Effects {
		ed := effectDoc{Kind: string(effect.Kind)}
		switch effect.Kind {
		case model.EffectLog:
			ed.Message = effect.Message
		case model.EffectNavigate:
			ed.TargetPage = effect.TargetPageID
		case model.EffectSetProperty:
			ed.TargetWidget = effect.TargetWidgetID
			ed.Property = effect.Property
			raw, err := ctyjson.Marshal(effect.Value, effect.Value.Type())
			if err != nil {
				return actionDoc{}, fmt.Errorf("effect on %q: %w", effect.TargetWidgetID, err)
			}
			ed.Value = raw
		default:
			return actionDoc{}, fmt.Errorf("unknown effect kind %q", effect.Kind)
		}
		ad.Effects = append(ad.Effects, ed)
	}
	return ad, nil
}

func rawString(s string) json.RawMessage {
	raw, _ := json.Marshal(s)
	return raw
}

func rawInt(n int) json.RawMessage {
	return json.RawMessage(strconv.Itoa(n))
}

func rawDimension(d model.Dimension) json.RawMessage {
	if d.IsContent() {
		return rawString(model.SizeContent)
	}
	return rawInt(d.Pixels())
}
