// Package config provides YAML-based configuration loading for the game:
// key bindings, colors and logging.
package config

import (
	"fmt"

	"github.com/vovakirdan/flappy-fish/internal/core"
)

// Config is the full user-facing configuration.
type Config struct {
	Keys  KeyConfig   `yaml:"keys"`
	Theme ThemeConfig `yaml:"theme"`
	Log   LogConfig   `yaml:"log"`
}

// KeyConfig binds each game key to a single character.
type KeyConfig struct {
	Up               string `yaml:"up"`
	Down             string `yaml:"down"`
	Quit             string `yaml:"quit"`
	Create           string `yaml:"create"`
	ToggleBackground string `yaml:"toggle_background"`
	Command          string `yaml:"command"`
}

// ThemeConfig names the color of each entity.
type ThemeConfig struct {
	Fish    string `yaml:"fish"`
	Pipe    string `yaml:"pipe"`
	PowerUp string `yaml:"power_up"`
	Text    string `yaml:"text"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Bindings returns the key bindings in a fixed order with their names,
// used for validation and help text.
func (k KeyConfig) Bindings() []struct{ Name, Key string } {
	return []struct{ Name, Key string }{
		{"up", k.Up},
		{"down", k.Down},
		{"quit", k.Quit},
		{"create", k.Create},
		{"toggle_background", k.ToggleBackground},
		{"command", k.Command},
	}
}

// Validate checks that every key is a single printable character, that no
// two actions share a key, and that all theme colors are known.
func (c Config) Validate() error {
	seen := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		if len(b.Key) != 1 || !core.IsPrintable(b.Key[0]) {
			return fmt.Errorf("config: key %s must be a single printable character, got %q", b.Name, b.Key)
		}
		if other, dup := seen[b.Key]; dup {
			return fmt.Errorf("config: key %q bound to both %s and %s", b.Key, other, b.Name)
		}
		seen[b.Key] = b.Name
	}

	for name, color := range map[string]string{
		"fish":     c.Theme.Fish,
		"pipe":     c.Theme.Pipe,
		"power_up": c.Theme.PowerUp,
		"text":     c.Theme.Text,
	} {
		if _, err := core.ParseColor(color); err != nil {
			return fmt.Errorf("config: theme.%s: %w", name, err)
		}
	}
	return nil
}
