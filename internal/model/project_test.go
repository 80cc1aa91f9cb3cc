package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/lvforge/internal/registry"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	reg, err := registry.Load()
	require.NoError(t, err)
	return New(reg)
}

func TestAddPage(t *testing.T) {
	p := newTestProject(t)

	t.Run("first page becomes home", func(t *testing.T) {
		page, err := p.AddPage("main_page", "Main", LayoutNone)
		require.NoError(t, err)
		assert.Equal(t, "main_page", page.ID)
		assert.Equal(t, "main_page", p.HomePageID())
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := p.AddPage("main_page", "Again", LayoutNone)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrDuplicateID))
		assert.Len(t, p.Pages(), 1)
	})

	t.Run("identifier-safe ids only", func(t *testing.T) {
		_, err := p.AddPage("not a page!", "Bad", LayoutNone)
		assert.True(t, IsKind(err, ErrInvalidID))
	})

	t.Run("empty id is generated", func(t *testing.T) {
		page, err := p.AddPage("", "Generated", LayoutFlex)
		require.NoError(t, err)
		assert.Regexp(t, `^page_[0-9a-f]{8}$`, page.ID)
	})
}

func TestAddWidget(t *testing.T) {
	p := newTestProject(t)
	_, err := p.AddPage("main", "Main", LayoutNone)
	require.NoError(t, err)

	t.Run("unknown type leaves the project unchanged", func(t *testing.T) {
		before := p.WidgetCount()
		_, err := p.AddWidget("main", "", "bogus_1", "bogus", nil)
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrUnknownType))
		assert.Equal(t, before, p.WidgetCount())
	})

	t.Run("root widget", func(t *testing.T) {
		w, err := p.AddWidget("main", "", "lbl1", "label", map[string]cty.Value{
			"text": cty.StringVal("Hi"),
		})
		require.NoError(t, err)
		assert.Equal(t, "lbl1", w.ID)
		assert.True(t, w.Width.IsContent())

		pageID, ok := p.PageOf("lbl1")
		require.True(t, ok)
		assert.Equal(t, "main", pageID)
	})

	t.Run("duplicate id across the whole project", func(t *testing.T) {
		_, err := p.AddPage("second", "Second", LayoutNone)
		require.NoError(t, err)
		_, err = p.AddWidget("second", "", "lbl1", "label", nil)
		assert.True(t, IsKind(err, ErrDuplicateID))
	})

	t.Run("nesting under a container", func(t *testing.T) {
		btn, err := p.AddWidget("main", "", "btn1", "button", nil)
		require.NoError(t, err)
		child, err := p.AddWidget("main", "btn1", "btn1_lbl", "label", nil)
		require.NoError(t, err)
		require.Len(t, btn.Children, 1)
		assert.Same(t, child, btn.Children[0])
	})

	t.Run("nesting under a non-container", func(t *testing.T) {
		_, err := p.AddWidget("main", "lbl1", "x1", "label", nil)
		assert.True(t, IsKind(err, ErrChildrenNotAllowed))
	})

	t.Run("unknown parent", func(t *testing.T) {
		_, err := p.AddWidget("main", "nope", "x2", "label", nil)
		assert.True(t, IsKind(err, ErrUnknownParent))
	})

	t.Run("initial props are type checked", func(t *testing.T) {
		_, err := p.AddWidget("main", "", "s1", "slider", map[string]cty.Value{
			"value": cty.StringVal("not a number"),
		})
		assert.True(t, IsKind(err, ErrTypeMismatch))
		_, ok := p.Widget("s1")
		assert.False(t, ok)
	})
}

func TestSetProperty(t *testing.T) {
	p := newTestProject(t)
	_, err := p.AddPage("main", "Main", LayoutNone)
	require.NoError(t, err)
	_, err = p.AddWidget("main", "", "lbl1", "label", nil)
	require.NoError(t, err)

	t.Run("valid set and read back", func(t *testing.T) {
		require.NoError(t, p.SetProperty("lbl1", "text", cty.StringVal("Hello")))
		val, err := p.Property("lbl1", "text")
		require.NoError(t, err)
		assert.Equal(t, cty.StringVal("Hello"), val)
	})

	t.Run("unset property reads the registry default", func(t *testing.T) {
		val, err := p.Property("lbl1", "text_font")
		require.NoError(t, err)
		assert.Equal(t, cty.StringVal("montserrat_14"), val)
	})

	t.Run("unknown property", func(t *testing.T) {
		err := p.SetProperty("lbl1", "nope", cty.StringVal("x"))
		assert.True(t, IsKind(err, ErrUnknownProperty))
	})

	t.Run("type mismatch leaves the old value", func(t *testing.T) {
		err := p.SetProperty("lbl1", "recolor", cty.StringVal("definitely not a bool"))
		require.Error(t, err)
		assert.True(t, IsKind(err, ErrTypeMismatch))
		val, err := p.Property("lbl1", "recolor")
		require.NoError(t, err)
		assert.Equal(t, cty.False, val)
	})

	t.Run("convertible values are converted", func(t *testing.T) {
		// cty converts "42" to number; the stored value must be typed.
		require.NoError(t, p.SetProperty("lbl1", "radius", cty.StringVal("42")))
		val, err := p.Property("lbl1", "radius")
		require.NoError(t, err)
		assert.Equal(t, cty.NumberIntVal(42), val)
	})
}

func TestRemoveWidgetCascade(t *testing.T) {
	p := newTestProject(t)
	_, err := p.AddPage("main", "Main", LayoutNone)
	require.NoError(t, err)

	// btn1 owns two descendants; lbl_out lives outside the subtree and has
	// one action with an effect targeting inside it.
	_, err = p.AddWidget("main", "", "btn1", "button", nil)
	require.NoError(t, err)
	_, err = p.AddWidget("main", "btn1", "inner_obj", "obj", nil)
	require.NoError(t, err)
	_, err = p.AddWidget("main", "inner_obj", "inner_lbl", "label", nil)
	require.NoError(t, err)
	_, err = p.AddWidget("main", "", "lbl_out", "label", nil)
	require.NoError(t, err)

	require.NoError(t, p.AddAction("lbl_out", Action{
		Trigger: OnClick,
		Effects: []Effect{
			SetPropertyEffect("inner_lbl", "text", cty.StringVal("gone")),
			LogEffect("kept"),
		},
	}))

	warnings, err := p.RemoveWidget("btn1")
	require.NoError(t, err)

	// 3 removed widgets + 1 stripped cross-reference from lbl_out.
	assert.Len(t, warnings, 4)
	assert.Equal(t, 1, p.WidgetCount())

	out, ok := p.Widget("lbl_out")
	require.True(t, ok)
	require.Len(t, out.Actions, 1)
	require.Len(t, out.Actions[0].Effects, 1)
	assert.Equal(t, EffectLog, out.Actions[0].Effects[0].Kind)
}

func TestRemovePage(t *testing.T) {
	p := newTestProject(t)
	_, err := p.AddPage("main", "Main", LayoutNone)
	require.NoError(t, err)

	t.Run("cannot remove the last page", func(t *testing.T) {
		_, err := p.RemovePage("main")
		assert.True(t, IsKind(err, ErrLastPage))
	})

	t.Run("cascade and home reassignment", func(t *testing.T) {
		_, err := p.AddPage("settings", "Settings", LayoutNone)
		require.NoError(t, err)
		_, err = p.AddWidget("main", "", "lbl1", "label", nil)
		require.NoError(t, err)

		warnings, err := p.RemovePage("main")
		require.NoError(t, err)
		assert.NotEmpty(t, warnings)
		assert.Equal(t, "settings", p.HomePageID())
		assert.Equal(t, 0, p.WidgetCount())
	})
}

func TestAddAction(t *testing.T) {
	p := newTestProject(t)
	_, err := p.AddPage("main", "Main", LayoutNone)
	require.NoError(t, err)
	_, err = p.AddWidget("main", "", "btn1", "button", nil)
	require.NoError(t, err)

	t.Run("forward page reference is accepted", func(t *testing.T) {
		err := p.AddAction("btn1", Action{
			Trigger: OnClick,
			Effects: []Effect{NavigateEffect("not_yet_created")},
		})
		assert.NoError(t, err)
	})

	t.Run("unknown trigger", func(t *testing.T) {
		err := p.AddAction("btn1", Action{Trigger: "on_teleport"})
		assert.True(t, IsKind(err, ErrUnknownTrigger))
	})
}
