package model

import "github.com/zclconf/go-cty/cty"

// Trigger names the widget event an action is bound to.
type Trigger string

const (
	OnClick        Trigger = "on_click"
	OnValueChanged Trigger = "on_value_changed"
	OnLongPress    Trigger = "on_long_press"
	OnPress        Trigger = "on_press"
	OnRelease      Trigger = "on_release"
)

// validTriggers holds the trigger names the target firmware understands.
var validTriggers = map[Trigger]bool{
	OnClick:        true,
	OnValueChanged: true,
	OnLongPress:    true,
	OnPress:        true,
	OnRelease:      true,
}

// ValidTrigger reports whether t is a recognized trigger name.
func ValidTrigger(t Trigger) bool {
	return validTriggers[t]
}

// EffectKind discriminates the Effect variants.
type EffectKind string

const (
	EffectLog         EffectKind = "log"
	EffectNavigate    EffectKind = "navigate"
	EffectSetProperty EffectKind = "set_property"
)

// Effect is one statement executed when an action fires. It is a tagged
// variant: only the fields for its Kind are meaningful.
type Effect struct {
	Kind EffectKind

	// EffectLog
	Message string

	// EffectNavigate. Target ids are references, not ownership: they may
	// point forward across pages and are only resolved at compile time.
	TargetPageID string

	// EffectSetProperty
	TargetWidgetID string
	Property       string
	Value          cty.Value
}

// LogEffect builds a log statement effect.
func LogEffect(message string) Effect {
	return Effect{Kind: EffectLog, Message: message}
}

// NavigateEffect builds a page-show effect targeting the given page id.
func NavigateEffect(pageID string) Effect {
	return Effect{Kind: EffectNavigate, TargetPageID: pageID}
}

// SetPropertyEffect builds an effect that sets a property on another widget.
// The value is type-checked against the target's property spec at compile
// time, once the full tree exists.
func SetPropertyEffect(widgetID, property string, value cty.Value) Effect {
	return Effect{
		Kind:           EffectSetProperty,
		TargetWidgetID: widgetID,
		Property:       property,
		Value:          value,
	}
}

// Action binds a trigger to an ordered list of effects.
type Action struct {
	Trigger Trigger
	Effects []Effect
}
