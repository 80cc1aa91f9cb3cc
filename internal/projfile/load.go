package projfile

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/specialistvlad/lvforge/internal/model"
	"github.com/specialistvlad/lvforge/internal/registry"
)

// rawDisplay uses pointer fields so that absent mandatory dimensions can
// be told apart from explicit zeroes.
type rawDisplay struct {
	Width         *int `json:"width"`
	Height        *int `json:"height"`
	ColorDepth    int  `json:"color_depth"`
	BufferPercent int  `json:"buffer_percent"`
}

// Load parses an interchange document into a fresh project bound to reg.
// Unknown extra keys are skipped; missing mandatory keys, unknown widget
// types and malformed values abort with a *ParseError and no project.
func Load(data []byte, reg *registry.Registry) (*model.Project, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, parseErrf("document", "not a JSON object: %v", err)
	}
	if _, ok := top["version"]; !ok {
		return nil, parseErrf("document", "missing mandatory key %q", "version")
	}

	p := model.New(reg)

	if raw, ok := top["display_config"]; ok {
		var disp rawDisplay
		if err := json.Unmarshal(raw, &disp); err != nil {
			return nil, parseErrf("display_config", "%v", err)
		}
		if disp.Width == nil || disp.Height == nil {
			return nil, parseErrf("display_config", "missing mandatory key %q or %q", "width", "height")
		}
		p.Display = model.DisplayConfig{
			Width:         *disp.Width,
			Height:        *disp.Height,
			ColorDepth:    disp.ColorDepth,
			BufferPercent: disp.BufferPercent,
		}
	}

	if raw, ok := top["theme"]; ok {
		if err := json.Unmarshal(raw, &p.Theme); err != nil {
			return nil, parseErrf("theme", "%v", err)
		}
	}
	if raw, ok := top["images"]; ok {
		if err := json.Unmarshal(raw, &p.Images); err != nil {
			return nil, parseErrf("images", "%v", err)
		}
	}

	pages, err := loadPages(p, top["pages"])
	if err != nil {
		return nil, err
	}

	var widgetsByPage map[string][]widgetDoc
	if raw, ok := top["widgets"]; ok {
		if err := json.Unmarshal(raw, &widgetsByPage); err != nil {
			return nil, parseErrf("widgets", "%v", err)
		}
	}
	// A widget list keyed by a page that was never declared would be
	// dropped on the floor; refuse the document instead of losing data.
	var orphans []string
	for pageID := range widgetsByPage {
		if _, ok := p.Page(pageID); !ok {
			orphans = append(orphans, pageID)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return nil, parseErrf(orphans[0], "widget list references a page not declared in %q", "pages")
	}
	for _, page := range pages {
		for _, wd := range widgetsByPage[page.ID] {
			if err := loadWidget(p, page.ID, "", wd); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// loadPages recreates the pages in their persisted index order and returns
// them in that order.
func loadPages(p *model.Project, raw json.RawMessage) ([]pageDoc, error) {
	if raw == nil {
		return nil, parseErrf("document", "missing mandatory key %q", "pages")
	}
	var byID map[string]pageDoc
	if err := json.Unmarshal(raw, &byID); err != nil {
		return nil, parseErrf("pages", "%v", err)
	}

	pages := make([]pageDoc, 0, len(byID))
	for id, pd := range byID {
		if pd.ID == "" {
			pd.ID = id
		} else if pd.ID != id {
			return nil, parseErrf(id, "page id %q does not match its key", pd.ID)
		}
		pages = append(pages, pd)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Index < pages[j].Index })

	homeID := ""
	for _, pd := range pages {
		page, err := p.AddPage(pd.ID, pd.Name, model.Layout(pd.Layout))
		if err != nil {
			return nil, wrapModelErr(pd.ID, err)
		}
		page.FlexFlow = pd.FlexFlow
		page.GridColumns = pd.GridColumns
		page.GridRows = pd.GridRows
		page.BGColor = pd.BGColor
		page.Scrollable = pd.Scrollable

		if pd.IsDefault {
			if homeID != "" {
				return nil, parseErrf(pd.ID, "multiple pages flagged is_default (already %q)", homeID)
			}
			homeID = pd.ID
		}
	}
	if homeID != "" {
		if err := p.SetHomePage(homeID); err != nil {
			return nil, wrapModelErr(homeID, err)
		}
	}
	return pages, nil
}

// loadWidget recreates one widget and recurses into its subtree.
func loadWidget(p *model.Project, pageID, parentID string, wd widgetDoc) error {
	typeName, err := requireString(wd, keyWidgetType)
	if err != nil {
		return err
	}
	id, err := requireString(wd, keyID)
	if err != nil {
		return err
	}
	spec, ok := p.Registry().Lookup(typeName)
	if !ok {
		return parseErrf(id, "unknown widget type %q", typeName)
	}

	props := make(map[string]cty.Value)
	for key, raw := range wd {
		if isStructuralKey(key) {
			continue
		}
		prop := spec.Property(key)
		if prop == nil {
			// Forward compatibility: skip keys this catalog does not declare.
			continue
		}
		value, err := decodeValue(raw)
		if err != nil {
			return parseErrf(id, "property %q: %v", key, err)
		}
		props[key] = value
	}

	w, err := p.AddWidget(pageID, parentID, id, typeName, props)
	if err != nil {
		return wrapModelErr(id, err)
	}

	if raw, ok := wd[keyX]; ok {
		if err := json.Unmarshal(raw, &w.X); err != nil {
			return parseErrf(id, "x: %v", err)
		}
	}
	if raw, ok := wd[keyY]; ok {
		if err := json.Unmarshal(raw, &w.Y); err != nil {
			return parseErrf(id, "y: %v", err)
		}
	}
	if w.Width, err = decodeDimension(wd, keyWidth, id); err != nil {
		return err
	}
	if w.Height, err = decodeDimension(wd, keyHeight, id); err != nil {
		return err
	}

	if raw, ok := wd[keyActions]; ok {
		var actions []actionDoc
		if err := json.Unmarshal(raw, &actions); err != nil {
			return parseErrf(id, "actions: %v", err)
		}
		for _, ad := range actions {
			action, err := loadAction(id, ad)
			if err != nil {
				return err
			}
			if err := p.AddAction(id, action); err != nil {
				return wrapModelErr(id, err)
			}
		}
	}

	if raw, ok := wd[keyChildren]; ok {
		var children []widgetDoc
		if err := json.Unmarshal(raw, &children); err != nil {
			return parseErrf(id, "widgets: %v", err)
		}
		for _, child := range children {
			if err := loadWidget(p, pageID, id, child); err != nil {
				return err
			}
		}
	}

	return nil
}

func loadAction(widgetID string, ad actionDoc) (model.Action, error) {
	action := model.Action{Trigger: model.Trigger(ad.Trigger)}
	for _, ed := range ad.Effects {
		switch model.EffectKind(ed.Kind) {
		case model.EffectLog:
			action.Effects = append(action.Effects, model.LogEffect(ed.Message))
		case model.EffectNavigate:
			action.Effects = append(action.Effects, model.NavigateEffect(ed.TargetPage))
		case model.EffectSetProperty:
			value, err := decodeValue(ed.Value)
			if err != nil {
				return model.Action{}, parseErrf(widgetID, "effect value for %q: %v", ed.TargetWidget, err)
			}
			action.Effects = append(action.Effects, model.SetPropertyEffect(ed.TargetWidget, ed.Property, value))
		default:
			return model.Action{}, parseErrf(widgetID, "unknown effect kind %q", ed.Kind)
		}
	}
	return action, nil
}

// decodeValue reads an arbitrary JSON value into a cty value via its
// implied type. Collections come back as tuples; the model converts them
// to the declared property type on insert.
func decodeValue(raw json.RawMessage) (cty.Value, error) {
	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return cty.NilVal, err
	}
	return ctyjson.Unmarshal(raw, ty)
}

func decodeDimension(wd widgetDoc, key, widgetID string) (model.Dimension, error) {
	raw, ok := wd[key]
	if !ok {
		return model.Content(), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s != model.SizeContent {
			return model.Dimension{}, parseErrf(widgetID, "%s: unknown size keyword %q", key, s)
		}
		return model.Content(), nil
	}
	var px int
	if err := json.Unmarshal(raw, &px); err != nil {
		return model.Dimension{}, parseErrf(widgetID, "%s: expected pixel count or %q", key, model.SizeContent)
	}
	return model.Px(px), nil
}

func requireString(wd widgetDoc, key string) (string, error) {
	raw, ok := wd[key]
	if !ok {
		return "", parseErrf("widget", "missing mandatory key %q", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", parseErrf("widget", "%s: %v", key, err)
	}
	return s, nil
}

func isStructuralKey(key string) bool {
	switch key {
	case keyWidgetType, keyID, keyX, keyY, keyWidth, keyHeight, keyChildren, keyActions:
		return true
	}
	return false
}

// wrapModelErr turns a model validation failure during load into a parse
// error so callers see a single error type for bad documents.
func wrapModelErr(subject string, err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return parseErrf(subject, "%s", verr.Error())
	}
	return err
}
