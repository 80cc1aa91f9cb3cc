package navgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/lvforge/internal/model"
	"github.com/specialistvlad/lvforge/internal/registry"
)

func buildProject(t *testing.T) *model.Project {
	t.Helper()
	reg, err := registry.Load()
	require.NoError(t, err)
	p := model.New(reg)

	for _, id := range []string{"main", "settings", "about", "orphan"} {
		_, err := p.AddPage(id, id, model.LayoutNone)
		require.NoError(t, err)
	}

	addNav := func(page, widget, target string) {
		t.Helper()
		_, err := p.AddWidget(page, "", widget, "button", nil)
		require.NoError(t, err)
		require.NoError(t, p.AddAction(widget, model.Action{
			Trigger: model.OnClick,
			Effects: []model.Effect{model.NavigateEffect(target)},
		}))
	}
	addNav("main", "to_settings", "settings")
	addNav("main", "to_about", "about")
	addNav("settings", "back_btn", "main")
	addNav("about", "broken_btn", "nope")
	return p
}

func TestTargets(t *testing.T) {
	g := Build(buildProject(t))

	assert.Equal(t, []string{"about", "settings"}, g.Targets("main"))
	assert.Equal(t, []string{"main"}, g.Targets("settings"))
	assert.Empty(t, g.Targets("orphan"))
}

func TestDangling(t *testing.T) {
	g := Build(buildProject(t))

	dangling := g.Dangling()
	require.Len(t, dangling, 1)
	assert.Equal(t, "about", dangling[0].From)
	assert.Equal(t, "broken_btn", dangling[0].Widget)
	assert.Equal(t, "nope", dangling[0].To)
}

func TestUnreachable(t *testing.T) {
	g := Build(buildProject(t))

	assert.Equal(t, []string{"orphan"}, g.Unreachable("main"))

	t.Run("cycles do not loop", func(t *testing.T) {
		// main -> settings -> main is a cycle; traversal must terminate.
		assert.NotContains(t, g.Unreachable("main"), "settings")
	})

	t.Run("empty project", func(t *testing.T) {
		reg, err := registry.Load()
		require.NoError(t, err)
		g := Build(model.New(reg))
		assert.Empty(t, g.Unreachable(""))
	})
}
