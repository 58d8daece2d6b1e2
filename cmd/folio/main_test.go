package main

import (
	"os"
	"testing"

	"github.com/studiowebux/folio/internal/config"
	"github.com/studiowebux/folio/internal/keybinds"
)

func TestWriteDefaults(t *testing.T) {
	if err := config.InitializeAt(t.TempDir()); err != nil {
		t.Fatalf("InitializeAt: %v", err)
	}

	written, err := writeDefaults(false)
	if err != nil {
		t.Fatalf("writeDefaults: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %v, want config and keybinds", written)
	}

	settings, err := config.Load(config.ConfigFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := settings.Validate(); err != nil {
		t.Errorf("written settings invalid: %v", err)
	}
	if *settings != *config.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}

	_, result, err := keybinds.LoadAndValidate(config.KeybindsFile)
	if err != nil {
		t.Fatalf("LoadAndValidate: %v", err)
	}
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("written keybinds have issues:\n%s", result)
	}
}

func TestWriteDefaults_KeepsExistingFiles(t *testing.T) {
	if err := config.InitializeAt(t.TempDir()); err != nil {
		t.Fatalf("InitializeAt: %v", err)
	}
	custom := []byte("sidebar_width: 40\n")
	if err := os.WriteFile(config.ConfigFile, custom, config.FilePermissions); err != nil {
		t.Fatal(err)
	}

	written, err := writeDefaults(false)
	if err != nil {
		t.Fatalf("writeDefaults: %v", err)
	}
	if len(written) != 1 || written[0] != config.KeybindsFile {
		t.Errorf("wrote %v, want only keybinds", written)
	}
	data, _ := os.ReadFile(config.ConfigFile)
	if string(data) != string(custom) {
		t.Error("existing config.yaml was overwritten")
	}

	written, err = writeDefaults(true)
	if err != nil {
		t.Fatalf("writeDefaults force: %v", err)
	}
	if len(written) != 2 {
		t.Errorf("force wrote %v, want both files", written)
	}
	settings, _ := config.Load(config.ConfigFile)
	if settings.SidebarWidth != config.DefaultSettings().SidebarWidth {
		t.Errorf("sidebar_width = %d after force", settings.SidebarWidth)
	}
}
