// Package config manages application configuration.
package config

import "github.com/korpuslab/docx2dict/internal/normalize"

// Config represents the application configuration.
type Config struct {
	// Script forces a normalization script ("Latn", "Cyrl") or requests
	// per-entry detection ("detect").
	Script string `yaml:"script"`
	// WindowWidth is the width of the text window rendered around a
	// parse failure.
	WindowWidth int `yaml:"window_width"`
	// Jobs is the number of entries parsed concurrently; 0 means one
	// per CPU.
	Jobs int `yaml:"jobs"`
	// Continuations overrides the section-continuation marker glyphs.
	Continuations string       `yaml:"continuations,omitempty"`
	Output        OutputConfig `yaml:"output"`
}

// OutputConfig contains serialization options.
type OutputConfig struct {
	// Path is the default output file; empty means stdout.
	Path string `yaml:"path,omitempty"`
	// KeepFailures reports failed entries in the output summary instead
	// of only on stderr.
	KeepFailures bool `yaml:"keep_failures"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Script:      string(normalize.ScriptDetect),
		WindowWidth: 40,
	}
}

// ParsedScript returns the configured script, falling back to detection
// for unrecognized values.
func (c *Config) ParsedScript() normalize.Script {
	if s, ok := normalize.ParseScript(c.Script); ok {
		return s
	}
	return normalize.ScriptDetect
}
