// Package config loads the tint settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atomikpanda/tint/internal/color"
	"github.com/atomikpanda/tint/internal/icons"
	"github.com/atomikpanda/tint/internal/platform"
)

// Mode selects whether a feature is detected or forced.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// UnmarshalYAML accepts the mode names as well as YAML booleans, so
// "color: false" means never.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if value.Tag == "!!bool" && value.Decode(&b) == nil {
		if b {
			*m = ModeAlways
		} else {
			*m = ModeNever
		}
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*m = Mode(s)
	return nil
}

func (m Mode) valid() bool {
	switch m {
	case "", ModeAuto, ModeAlways, ModeNever:
		return true
	default:
		return false
	}
}

// resolve returns the forced value for always/never and detect() otherwise.
func (m Mode) resolve(detect func() bool) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return detect()
	}
}

// Config is the schema of config.yaml.
type Config struct {
	Color   Mode   `yaml:"color,omitempty"`
	Unicode Mode   `yaml:"unicode,omitempty"`
	Level   string `yaml:"level,omitempty"` // log type name or number
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{Color: ModeAuto, Unicode: ModeAuto, Level: icons.Info.String()}
}

// Path returns the default location of the config file for snap.
func Path(snap platform.Snapshot) string {
	return filepath.Join(snap.ConfigDir(), "config.yaml")
}

// Load reads and validates a YAML config file. A missing file yields Default.
// Fields left out of the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if !c.Color.valid() {
		return fmt.Errorf("color: invalid mode %q (want auto, always or never)", c.Color)
	}
	if !c.Unicode.valid() {
		return fmt.Errorf("unicode: invalid mode %q (want auto, always or never)", c.Unicode)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	return nil
}

// ColorEnabled resolves the color mode, running detection for auto.
func (c Config) ColorEnabled(snap platform.Snapshot) bool {
	return c.Color.resolve(func() bool { return color.Detect(snap) })
}

// UnicodeEnabled resolves the unicode mode, running detection for auto.
func (c Config) UnicodeEnabled(snap platform.Snapshot) bool {
	return c.Unicode.resolve(func() bool { return icons.UnicodeSupported(snap) })
}

// LogLevel returns the numeric level; an empty Level means info.
func (c Config) LogLevel() (int, error) {
	if c.Level == "" {
		return icons.Info.Level(), nil
	}
	return icons.ParseLevel(c.Level)
}
