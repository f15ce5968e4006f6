package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
)

func TestConfigRenderer_RenderPaths(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPaths([]styles.PathEntry{
		{Label: "config", Path: "/tmp/splitview/config.toml"},
		{Label: "database", Path: "/tmp/splitview/splitview.sqlite"},
	})
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "splitview.sqlite")
	require.Contains(t, out, "database")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	require.Contains(t, r.RenderNoConfigFile("/x/config.toml"), "created on first run")
	require.Contains(t, r.RenderEffective("/x/config.toml", "[layout]\nzone_margin = 0.25\n"), "zone_margin = 0.25")
	require.Contains(t, r.RenderError(errors.New("bad value")), "bad value")
}

func TestConfigSchemaRenderer_GroupsBySection(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	keys := []entity.ConfigKeyInfo{
		{Key: "session.window_id", Type: "string", Default: "main", Section: "Session"},
		{Key: "layout.collapse_policy", Type: "string", Default: "proportional", Values: []string{"proportional", "equal"}, Section: "Layout"},
		{Key: "layout.zone_margin", Type: "float64", Default: "0.25", Range: "0-0.5", Section: "Layout"},
	}
	out := r.Render(keys)
	require.Contains(t, out, "Values: proportional, equal")
	require.Contains(t, out, "Range: 0-0.5")
	require.Less(t, strings.Index(out, "Layout"), strings.Index(out, "Session"))

	js, err := r.RenderJSON(keys)
	require.NoError(t, err)
	require.Contains(t, js, `"key": "layout.zone_margin"`)

	require.Contains(t, r.Render(nil), "No configuration keys found")
}
