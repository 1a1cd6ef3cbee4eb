package config

import (
	_ "embed"
)

//go:embed defaults/fishies.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/fishies.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Keys: KeyConfig{
			Up:               "w",
			Down:             "s",
			Quit:             "q",
			Create:           "c",
			ToggleBackground: "b",
			Command:          "o",
		},
		Theme: ThemeConfig{
			Fish:    "blue",
			Pipe:    "green",
			PowerUp: "red",
			Text:    "default",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
