package projfile

import (
	"encoding/json"
	"fmt"
)

// FormatVersion is written into every saved document. The loader accepts
// any document that carries a version key; the value is kept for future
// migrations.
const FormatVersion = "1.0"

// structural widget keys; everything else in a widget object is either a
// declared property or an unknown extra key.
const (
	keyWidgetType = "widget_type"
	keyID         = "id"
	keyX          = "x"
	keyY          = "y"
	keyWidth      = "width"
	keyHeight     = "height"
	keyChildren   = "widgets"
	keyActions    = "actions"
)

type displayDoc struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	ColorDepth    int `json:"color_depth"`
	BufferPercent int `json:"buffer_percent"`
}

// pageDoc carries the page fields, widget tree excluded. Index records the
// display order, since JSON objects cannot preserve it.
type pageDoc struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Layout      string   `json:"layout"`
	FlexFlow    string   `json:"flex_flow,omitempty"`
	GridColumns []string `json:"grid_columns,omitempty"`
	GridRows    []string `json:"grid_rows,omitempty"`
	BGColor     string   `json:"background_color,omitempty"`
	Scrollable  bool     `json:"scrollable"`
	IsDefault   bool     `json:"is_default,omitempty"`
	Index       int      `json:"index"`
}

type actionDoc struct {
	Trigger string      `json:"trigger"`
	Effects []effectDoc `json:"effects"`
}

type effectDoc struct {
	Kind         string          `json:"kind"`
	Message      string          `json:"message,omitempty"`
	TargetPage   string          `json:"target_page,omitempty"`
	TargetWidget string          `json:"target_widget,omitempty"`
	Property     string          `json:"property,omitempty"`
	Value        json.RawMessage `json:"value,omitempty"`
}

// widgetDoc is a flattened widget object. Using a raw map keeps declared
// properties at the top level next to the structural keys.
type widgetDoc map[string]json.RawMessage

// ParseError reports a malformed or unloadable document. Load never
// returns a partial project alongside one.
type ParseError struct {
	Subject string // offending key, page or widget id
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Subject, e.Detail)
}

func parseErrf(subject, format string, args ...any) *ParseError {
	return &ParseError{Subject: subject, Detail: fmt.Sprintf(format, args...)}
}
