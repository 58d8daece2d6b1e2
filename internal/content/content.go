package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/studiowebux/folio/internal/config"
	"github.com/studiowebux/folio/internal/shell"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded sample portfolio
func Default() (*Portfolio, error) {
	return Parse(defaultYAML, "")
}

// Load reads a portfolio from a YAML file
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes portfolio YAML. baseDir anchors relative snippet files.
func Parse(data []byte, baseDir string) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid content format: %w", err)
	}
	p.baseDir = baseDir
	return &p, nil
}

// Panel returns the panel with the given id
func (p *Portfolio) Panel(id string) (Panel, bool) {
	for _, panel := range p.Panels {
		if panel.ID == id {
			return panel, true
		}
	}
	return Panel{}, false
}

// Section returns the section for a sidebar view
func (p *Portfolio) Section(v shell.View) (Section, bool) {
	for _, s := range p.Sections {
		if s.View == v {
			return s, true
		}
	}
	return Section{}, false
}

// Entries resolves a section's entry ids to panels, skipping unknown ids
func (p *Portfolio) Entries(s Section) []Panel {
	panels := make([]Panel, 0, len(s.Entries))
	for _, id := range s.Entries {
		if panel, ok := p.Panel(id); ok {
			panels = append(panels, panel)
		}
	}
	return panels
}

// SnippetCode returns the snippet's code, reading its file when Code is empty
func (p *Portfolio) SnippetCode(s Snippet) (string, error) {
	if s.Code != "" || s.File == "" {
		return s.Code, nil
	}
	path, err := config.ResolvePath(s.File, p.baseDir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read snippet %s: %w", s.ID, err)
	}
	return string(data), nil
}
