package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestLoad(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Greater(t, reg.Len(), 10)
}

func TestLookup(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	t.Run("known type", func(t *testing.T) {
		spec, ok := reg.Lookup("label")
		require.True(t, ok)
		assert.Equal(t, "label", spec.TypeName)
		assert.Equal(t, "Label", spec.Name)
		assert.Equal(t, "Basic", spec.Category)
		assert.False(t, spec.Container)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, ok := reg.Lookup("bogus")
		assert.False(t, ok)
	})

	t.Run("container types allow children", func(t *testing.T) {
		for _, name := range []string{"obj", "button"} {
			spec, ok := reg.Lookup(name)
			require.True(t, ok)
			assert.True(t, spec.Container, name)
		}
		spec, ok := reg.Lookup("slider")
		require.True(t, ok)
		assert.False(t, spec.Container)
	})
}

func TestPropertySpecs(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	t.Run("defaults are typed", func(t *testing.T) {
		label, ok := reg.Lookup("label")
		require.True(t, ok)

		text := label.Property("text")
		require.NotNil(t, text)
		assert.Equal(t, cty.String, text.Type)
		require.True(t, text.HasDefault())
		assert.Equal(t, cty.StringVal("Label"), text.Default)

		recolor := label.Property("recolor")
		require.NotNil(t, recolor)
		assert.Equal(t, cty.Bool, recolor.Type)
		assert.Equal(t, cty.False, recolor.Default)
	})

	t.Run("common properties precede specific ones", func(t *testing.T) {
		slider, ok := reg.Lookup("slider")
		require.True(t, ok)
		require.NotEmpty(t, slider.Properties)
		assert.Equal(t, "bg_color", slider.Properties[0].Name)
		last := slider.Properties[len(slider.Properties)-1]
		assert.Equal(t, "animated", last.Name)
	})

	t.Run("required without default", func(t *testing.T) {
		image, ok := reg.Lookup("image")
		require.True(t, ok)
		src := image.Property("src")
		require.NotNil(t, src)
		assert.True(t, src.Required)
		assert.False(t, src.HasDefault())
	})

	t.Run("collection defaults are converted", func(t *testing.T) {
		dropdown, ok := reg.Lookup("dropdown")
		require.True(t, ok)
		options := dropdown.Property("options")
		require.NotNil(t, options)
		assert.Equal(t, cty.List(cty.String), options.Type)
		require.True(t, options.HasDefault())
		assert.Equal(t, 3, options.Default.LengthInt())
	})

	t.Run("unknown property is nil", func(t *testing.T) {
		label, ok := reg.Lookup("label")
		require.True(t, ok)
		assert.Nil(t, label.Property("nope"))
	})
}

func TestStableOrdering(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Basic", "Display", "Input"}, reg.Categories())
	assert.Equal(t, []string{"button", "image", "label", "obj"}, reg.Types("Basic"))
	assert.Empty(t, reg.Types("NoSuchCategory"))

	// Two calls must observe identical orderings.
	assert.Equal(t, reg.AllTypes(), reg.AllTypes())
}
