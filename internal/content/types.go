package content

import (
	"github.com/studiowebux/folio/internal/icons"
	"github.com/studiowebux/folio/internal/shell"
)

// Portfolio is the full set of content the shell can display
type Portfolio struct {
	Owner    Owner     `yaml:"owner"`
	Sections []Section `yaml:"sections"`
	Panels   []Panel   `yaml:"panels"`

	baseDir string // Directory snippet files are resolved against
}

// Owner describes whose portfolio this is
type Owner struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline,omitempty"`
}

// Section is one sidebar view and the panels listed under it
type Section struct {
	View    shell.View `yaml:"view"`
	Label   string     `yaml:"label"`
	Icon    icons.Key  `yaml:"icon,omitempty"`
	Landing string     `yaml:"landing,omitempty"` // Panel opened when the view is selected
	Entries []string   `yaml:"entries,omitempty"` // Panel ids in display order
}

// ContentBearing reports whether selecting the view also opens a panel
func (s Section) ContentBearing() bool {
	return s.Landing != ""
}

// Panel is a renderable content page shown in a tab
type Panel struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Icon     icons.Key `yaml:"icon,omitempty"`
	Body     string    `yaml:"body,omitempty"` // Markdown
	Snippets []Snippet `yaml:"snippets,omitempty"`
	Demos    []Demo    `yaml:"demos,omitempty"`
}

// Tab returns the shell tab that opens this panel
func (p Panel) Tab() shell.Tab {
	return shell.Tab{ID: p.ID, Label: p.Label, ContentRef: p.ID, Icon: p.Icon}
}

// Snippet is a code sample previewed in the code overlay
type Snippet struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Language string `yaml:"language,omitempty"`
	Code     string `yaml:"code,omitempty"`
	File     string `yaml:"file,omitempty"` // Loaded relative to the content file when Code is empty
}

// Demo is a live demo previewed in the demo overlay
type Demo struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}
