package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitializeAt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "folio")

	if err := InitializeAt(dir); err != nil {
		t.Fatalf("InitializeAt failed: %v", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("config dir not created: %v", err)
	}
	if ConfigFile != filepath.Join(dir, "config.yaml") {
		t.Errorf("ConfigFile = %q", ConfigFile)
	}
	if KeybindsFile != filepath.Join(dir, "keybinds.json") {
		t.Errorf("KeybindsFile = %q", KeybindsFile)
	}
	if LogFile != filepath.Join(dir, "folio.log") {
		t.Errorf("LogFile = %q", LogFile)
	}
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		path, base, want string
	}{
		{"", "/base", ""},
		{"/abs/file.yaml", "/base", "/abs/file.yaml"},
		{"rel/file.yaml", "/base", "/base/rel/file.yaml"},
		{"rel/file.yaml", "", "rel/file.yaml"},
		{"~/x.yaml", "/base", filepath.Join(home, "x.yaml")},
	}
	for _, tt := range tests {
		got, err := ResolvePath(tt.path, tt.base)
		if err != nil {
			t.Errorf("ResolvePath(%q, %q) error: %v", tt.path, tt.base, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolvePath(%q, %q) = %q, want %q", tt.path, tt.base, got, tt.want)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.CopyReset != 2*time.Second {
		t.Errorf("CopyReset = %s, want 2s", s.CopyReset)
	}
	if !s.Mouse {
		t.Error("Mouse should default to true")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.MarkdownStyle != "dark" {
		t.Errorf("MarkdownStyle = %q, want dark", cfg.MarkdownStyle)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("content_path: portfolio.yaml\nmarkdown_style: light\nsidebar_width: 40\ncopy_reset: 3s\n")
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_MOUSE", "false")
	t.Setenv("FOLIO_CODE_STYLE", "dracula")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ContentPath != "portfolio.yaml" {
		t.Errorf("ContentPath = %q", cfg.ContentPath)
	}
	if cfg.MarkdownStyle != "light" {
		t.Errorf("MarkdownStyle = %q", cfg.MarkdownStyle)
	}
	if cfg.SidebarWidth != 40 {
		t.Errorf("SidebarWidth = %d", cfg.SidebarWidth)
	}
	if cfg.CopyReset != 3*time.Second {
		t.Errorf("CopyReset = %s", cfg.CopyReset)
	}
	if cfg.Mouse {
		t.Error("FOLIO_MOUSE=false should disable mouse")
	}
	if cfg.CodeStyle != "dracula" {
		t.Errorf("CodeStyle = %q, want env override", cfg.CodeStyle)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sidebar_width: [unclosed"), FilePermissions); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := DefaultSettings()
	original.ContentPath = "/tmp/me.yaml"
	original.SidebarWidth = 33

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ContentPath != original.ContentPath || loaded.SidebarWidth != original.SidebarWidth {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, original)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"markdown style", func(s *Settings) { s.MarkdownStyle = "neon" }},
		{"code style", func(s *Settings) { s.CodeStyle = "" }},
		{"sidebar width", func(s *Settings) { s.SidebarWidth = 0 }},
		{"log level", func(s *Settings) { s.LogLevel = "verbose" }},
		{"copy reset", func(s *Settings) { s.CopyReset = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
