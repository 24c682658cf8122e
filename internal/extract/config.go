// Package extract is the boundary between the host compiler and the IR:
// extraction configuration, the translation context with its registration
// API and work-list, per-body contexts, and constant translation. The host
// compiler is treated as an oracle; it hands this package typed constant
// representations and declaration handles, never source text.
package extract

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"llbc/internal/names"
)

// Mode selects how declared constants appear in the output.
type Mode uint8

const (
	// ModeTopLevel keeps declared constants as named globals; uses refer to
	// them, so each definition appears once in the IR.
	ModeTopLevel Mode = iota
	// ModeInline evaluates declared constants and inlines the value at
	// every use site.
	ModeInline
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeTopLevel:
		return "top-level"
	case ModeInline:
		return "inline"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "top-level":
		return ModeTopLevel, nil
	case "inline":
		return ModeInline, nil
	default:
		return ModeTopLevel, fmt.Errorf("extract: invalid mode %q (expected: top-level|inline)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for toml decoding.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Config controls one extraction run.
type Config struct {
	// Crate is the name of the crate being extracted.
	Crate string `toml:"crate"`
	// Mode selects top-level vs inline constant extraction.
	Mode Mode `toml:"mode"`
	// OpaqueModules lists modules whose declarations are registered but
	// not translated. Entries are "::"-separated paths relative to the
	// crate root.
	OpaqueModules []string `toml:"opaque_modules"`

	opaque map[string]struct{}
}

// LoadConfig reads the extraction config from a toml file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.finish(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// ParseConfig decodes the extraction config from toml source.
func ParseConfig(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("extract: failed to parse config: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) finish() error {
	if strings.TrimSpace(c.Crate) == "" {
		return fmt.Errorf("extract: config is missing the crate name")
	}
	c.opaque = make(map[string]struct{}, len(c.OpaqueModules))
	for _, m := range c.OpaqueModules {
		c.opaque[m] = struct{}{}
	}
	return nil
}

// IsOpaque reports whether a declaration with the given name should be
// registered but left untranslated.
func (c *Config) IsOpaque(n names.Name) bool {
	return n.IsInModules(c.Crate, c.opaque)
}
