package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[database]
path = "/tmp/tabnav-test.db"

[log]
level = "debug"

[ui]
start_tab = "books"
theme = "notty"

[keys]
quit = ["X", " ctrl+q "]
next-tab = ["n"]

[[tabs]]
id = "feed"
selector = "nav_feed"
title = "Feed"
root = "feed"

  [[tabs.screens]]
  id = "feed"
  title = "Feed"
  body = "# Feed"
  children = ["post"]

  [[tabs.screens]]
  id = "post"
  title = "{{title}}"
  body = "# {{title}}"

[[tabs]]
id = "books"
selector = "nav_books"
title = "Books"
root = "shelf"

  [[tabs.screens]]
  id = "shelf"
  title = "Shelf"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "/tmp/tabnav-test.db", cfg.Database.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.NotEmpty(t, cfg.Log.Path)
	require.Equal(t, "books", cfg.UI.StartTab)
	require.Equal(t, "notty", cfg.UI.Theme)

	require.Len(t, cfg.Tabs, 2)
	require.Equal(t, "nav_feed", cfg.Tabs[0].Selector)
	require.Len(t, cfg.Tabs[0].Screens, 2)
	require.Equal(t, []string{"post"}, cfg.Tabs[0].Screens[0].Children)
	require.Equal(t, "shelf", cfg.Tabs[1].Root)
	require.NoError(t, Validate(cfg))
}

func TestLoadKeyOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, map[string][]string{
		"quit":     {"x", "ctrl+q"},
		"next-tab": {"n"},
	}, cfg.Keys)
}

func TestValidateRejectsEmptyKeys(t *testing.T) {
	require.ErrorContains(t, Validate(Config{Keys: map[string][]string{"quit": {}}}), "keys are required")
	require.ErrorContains(t, Validate(Config{Keys: map[string][]string{"quit": {"q", ""}}}), "key cannot be empty")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABNAV_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "dark", cfg.UI.Theme)
	require.Nil(t, cfg.Tabs)
	require.Len(t, cfg.TabDefs(), 3)
	require.NoError(t, Validate(cfg))
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABNAV_CONFIG", "")
	t.Setenv("TABNAV_UI_THEME", "light")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidateSuggestsStartTab(t *testing.T) {
	cfg := Config{UI: UIConfig{StartTab: "libary"}}
	err := Validate(cfg)
	require.ErrorContains(t, err, `did you mean "library"`)
}

func TestValidateRejectsDuplicates(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	dup := cfg
	dup.Tabs = append(dup.Tabs[:0:0], cfg.Tabs...)
	dup.Tabs[1].Selector = "nav_feed"
	require.ErrorContains(t, Validate(dup), "selector")

	dup.Tabs[1].Selector = "nav_books"
	dup.Tabs[1].ID = "feed"
	require.ErrorContains(t, Validate(dup), "duplicate id")
}

func TestValidateRejectsBadTheme(t *testing.T) {
	require.ErrorContains(t, Validate(Config{UI: UIConfig{Theme: "neon"}}), "ui.theme")
}

func TestSaveWritesPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Config{
		Database: DatabaseConfig{Path: "/tmp/x.db"},
		Log:      LogConfig{Path: "/tmp/x.log", Level: "warn"},
		UI:       UIConfig{StartTab: "settings", Theme: "light"},
		Keys:     map[string][]string{"back": {"left"}},
	}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Database, loaded.Database)
	require.Equal(t, cfg.Log, loaded.Log)
	require.Equal(t, cfg.UI, loaded.UI)
	require.Equal(t, cfg.Keys, loaded.Keys)
}
