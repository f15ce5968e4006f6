package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfigFile(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestSetLayoutDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.InDelta(t, 0.25, mgr.viper.GetFloat64("layout.zone_margin"), 1e-9)
	assert.Equal(t, "halve", mgr.viper.GetString("layout.split_policy"))
	assert.Equal(t, "proportional", mgr.viper.GetString("layout.collapse_policy"))
	assert.True(t, mgr.viper.GetBool("layout.close_empty_source"))
	assert.Equal(t, "main", mgr.viper.GetString("session.window_id"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr := loadManager(t)
	cfg := mgr.Get()

	assert.Equal(t, DefaultConfig().Layout, cfg.Layout)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), cfg.Logging.LogDir)

	configFile := filepath.Join(root, "config", appName, configName)
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaName))
	assert.Equal(t, configFile, mgr.GetConfigFile())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	root := isolateXDG(t)
	writeConfigFile(t, root, `
[layout]
  collapse_policy = "Equal"
  last_pane_policy = "reset"

[session]
  window_id = "  work  "
`)
	t.Setenv("SPLITVIEW_LAYOUT_MIN_SHARE", "0.1")
	t.Setenv("SPLITVIEW_LOG_LEVEL", "debug")
	t.Setenv("SPLITVIEW_DATABASE_PATH", ":memory:")

	cfg := loadManager(t).Get()

	assert.Equal(t, "equal", cfg.Layout.CollapsePolicy)
	assert.Equal(t, "reset", cfg.Layout.LastPanePolicy)
	assert.InDelta(t, 0.1, cfg.Layout.MinShare, 1e-9)
	assert.InDelta(t, 0.25, cfg.Layout.ZoneMargin, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "work", cfg.Session.WindowID)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	writeConfigFile(t, root, `
[layout]
  zone_margin = 0.9
  split_policy = "golden"
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.zone_margin")
	assert.Contains(t, err.Error(), "layout.split_policy")
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	root := isolateXDG(t)
	writeConfigFile(t, root, "[layout\nzone_margin = ")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestSave_RoundTrip(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Layout.MinShare = 0.2
	cfg.Session.AutoSave = false
	require.NoError(t, mgr.Save(cfg))

	reloaded := loadManager(t).Get()
	assert.InDelta(t, 0.2, reloaded.Layout.MinShare, 1e-9)
	assert.False(t, reloaded.Session.AutoSave)

	bad := mgr.Get()
	bad.Layout.MinShare = 0.7
	require.Error(t, mgr.Save(bad))
	require.Error(t, mgr.Save(nil))
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Layout.ZoneMargin = 0.4

	assert.InDelta(t, 0.25, mgr.Get().Layout.ZoneMargin, 1e-9)
}

func TestConfigChange_ReloadsAndNotifies(t *testing.T) {
	root := isolateXDG(t)
	mgr := loadManager(t)

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	writeConfigFile(t, root, "[layout]\n  zone_margin = 0.4\n")
	require.NoError(t, mgr.viper.ReadInConfig())
	mgr.handleConfigEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.InDelta(t, 0.4, got[0].Layout.ZoneMargin, 1e-9)
	assert.InDelta(t, 0.4, mgr.Get().Layout.ZoneMargin, 1e-9)

	// an invalid edit keeps the last good config and skips callbacks
	writeConfigFile(t, root, "[layout]\n  zone_margin = 2.0\n")
	require.NoError(t, mgr.viper.ReadInConfig())
	mgr.handleConfigEvent(fsnotify.Event{Name: mgr.GetConfigFile(), Op: fsnotify.Write})

	assert.Len(t, got, 1)
	assert.InDelta(t, 0.4, mgr.Get().Layout.ZoneMargin, 1e-9)
}

func TestConfigChange_SkipsOwnSave(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)
	mgr.watching = true

	calls := 0
	mgr.OnConfigChange(func(*Config) { calls++ })

	cfg := mgr.Get()
	cfg.Layout.CollapsePolicy = "equal"
	require.NoError(t, mgr.Save(cfg))
	assert.True(t, mgr.skipNextReload)

	mgr.handleConfigEvent(fsnotify.Event{Op: fsnotify.Write})

	assert.False(t, mgr.skipNextReload)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "equal", mgr.Get().Layout.CollapsePolicy)
}
