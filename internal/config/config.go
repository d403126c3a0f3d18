package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/tabnav/internal/catalog"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig   `mapstructure:"database"`
	Log      LogConfig        `mapstructure:"log"`
	UI       UIConfig         `mapstructure:"ui"`
	Tabs     []catalog.TabDef `mapstructure:"tabs"`
	// Keys maps an action id to the keys that trigger it, replacing the
	// built-in keys for that action.
	Keys map[string][]string `mapstructure:"keys"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab string `mapstructure:"start_tab"`
	Theme    string `mapstructure:"theme"`
}

var themes = []string{"dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink"}

// TabDefs returns the configured tabs, or the built-in set when none are
// configured.
func (c Config) TabDefs() []catalog.TabDef {
	if len(c.Tabs) == 0 {
		return catalog.Default()
	}
	return c.Tabs
}

// Path resolves the config file location. Env var TABNAV_CONFIG wins over the
// default under $HOME/.config/tabnav.
func Path() string {
	if p := os.Getenv("TABNAV_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tabnav", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// TABNAV_. An explicit path, when non-empty, must exist.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tabnav", "tabnav.db"))
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.start_tab", "")
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")
	v.SetEnvPrefix("TABNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if env := os.Getenv("TABNAV_CONFIG"); env != "" {
			v.SetConfigFile(env)
		} else {
			v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabnav"))
			v.SetConfigName("config")
		}
		// read config file if present
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Keys = normalizeKeys(c.Keys)
	return c, nil
}

// Validate checks the tab definitions and UI settings.
func Validate(c Config) error {
	if c.Tabs != nil && len(c.Tabs) == 0 {
		return errors.New("tabs: at least one tab is required")
	}
	defs := c.TabDefs()
	ids := map[string]bool{}
	selectors := map[string]string{}
	for i, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("tabs[%d]: id is required", i)
		}
		if ids[d.ID] {
			return fmt.Errorf("tabs: duplicate id %q", d.ID)
		}
		ids[d.ID] = true
		if d.Selector != "" {
			if other, ok := selectors[d.Selector]; ok {
				return fmt.Errorf("tabs: selector %q used by %q and %q", d.Selector, other, d.ID)
			}
			selectors[d.Selector] = d.ID
		}
		if err := d.Graph().Validate(); err != nil {
			return fmt.Errorf("tabs[%d]: %w", i, err)
		}
	}
	if start := c.UI.StartTab; start != "" && !ids[start] {
		if hint, ok := catalog.Suggest(start, catalog.IDs(defs)); ok {
			return fmt.Errorf("ui.start_tab: unknown tab %q (did you mean %q?)", start, hint)
		}
		return fmt.Errorf("ui.start_tab: unknown tab %q", start)
	}
	if c.UI.Theme != "" && !slices.Contains(themes, c.UI.Theme) {
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: keys are required", action)
		}
		if slices.Contains(keys, "") {
			return fmt.Errorf("keys.%s: key cannot be empty", action)
		}
	}
	return nil
}

func normalizeKeys(in map[string][]string) map[string][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		norm := make([]string, 0, len(keys))
		for _, k := range keys {
			norm = append(norm, strings.ToLower(strings.TrimSpace(k)))
		}
		out[strings.TrimSpace(action)] = norm
	}
	return out
}

// Save writes the UI preferences to path, creating the directory if needed.
// Tab definitions are left to the user's hand-written file.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.start_tab", cfg.UI.StartTab)
	v.Set("ui.theme", cfg.UI.Theme)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "tabnav", "tabnav.log")
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "tabnav", "tabnav.log")
	}
	return filepath.Join(os.TempDir(), "tabnav.log")
}
