package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides (FOLIO_MOUSE=false, ...)
const EnvPrefix = "FOLIO_"

// Settings are the user-tunable options
type Settings struct {
	ContentPath   string        `yaml:"content_path" koanf:"content_path"`     // Empty means the embedded portfolio
	MarkdownStyle string        `yaml:"markdown_style" koanf:"markdown_style"` // glamour standard style
	CodeStyle     string        `yaml:"code_style" koanf:"code_style"`         // chroma style name
	Mouse         bool          `yaml:"mouse" koanf:"mouse"`
	SidebarWidth  int           `yaml:"sidebar_width" koanf:"sidebar_width"`
	LogLevel      string        `yaml:"log_level" koanf:"log_level"`
	CopyReset     time.Duration `yaml:"copy_reset" koanf:"copy_reset"` // How long "Copied!" stays up
}

// DefaultSettings returns Settings with the built-in defaults
func DefaultSettings() *Settings {
	return &Settings{
		MarkdownStyle: "dark",
		CodeStyle:     "monokai",
		Mouse:         true,
		SidebarWidth:  28,
		LogLevel:      "info",
		CopyReset:     2 * time.Second,
	}
}

var validMarkdownStyles = map[string]bool{
	"dark":  true,
	"light": true,
	"notty": true,
	"ascii": true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads settings from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file yields defaults.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	cfg := DefaultSettings()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the settings to the given YAML file path
func (s *Settings) Save(path string) error {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the settings contain usable values
func (s *Settings) Validate() error {
	if !validMarkdownStyles[s.MarkdownStyle] {
		return fmt.Errorf("invalid markdown_style %q: must be one of dark, light, notty, ascii", s.MarkdownStyle)
	}
	if s.CodeStyle == "" {
		return fmt.Errorf("code_style is required")
	}
	if s.SidebarWidth <= 0 {
		return fmt.Errorf("sidebar_width must be positive, got %d", s.SidebarWidth)
	}
	if !validLogLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", s.LogLevel)
	}
	if s.CopyReset <= 0 {
		return fmt.Errorf("copy_reset must be positive, got %s", s.CopyReset)
	}
	return nil
}
