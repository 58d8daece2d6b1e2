package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/studiowebux/folio/internal/config"
	"github.com/studiowebux/folio/internal/content"
	"github.com/studiowebux/folio/internal/highlight"
	"github.com/studiowebux/folio/internal/keybinds"
	"github.com/studiowebux/folio/internal/logging"
	"github.com/studiowebux/folio/internal/markdown"
	"github.com/studiowebux/folio/internal/shell"
)

// Focus is the area that receives keys when no overlay is visible
type Focus int

const (
	FocusSidebar Focus = iota
	FocusEditor
)

func (f Focus) String() string {
	if f == FocusSidebar {
		return "sidebar"
	}
	return "editor"
}

// Options are the collaborators injected into the model
type Options struct {
	State     *shell.State // Created when nil
	Portfolio *content.Portfolio
	Settings  *config.Settings
	Keybinds  *keybinds.Registry
	Logger    *slog.Logger
	Version   string
}

// Model represents the TUI state
type Model struct {
	// Core state
	state     *shell.State
	portfolio *content.Portfolio
	settings  *config.Settings
	keybinds  *keybinds.Registry
	log       *slog.Logger
	version   string

	// Rendering
	highlighter *highlight.Highlighter
	markdown    *markdown.Renderer
	zones       *zone.Manager // nil when mouse support is off

	// Presentation
	focus         Focus
	sidebarCursor int
	hovered       string // Zone id under the pointer
	width         int
	height        int
	editorView    viewport.Model
	overlayView   viewport.Model
	renderedTab   string // Tab whose content editorView holds
	palette       paletteState

	// Copy confirmation
	copyToClipboard func(string) error
	copied          bool
	copyArm         uint64 // Bumped on every copy

	// Status bar
	statusMsg string
	statusSeq uint64
	errorMsg  bool
}

// New creates a new TUI model
func New(opts Options) (Model, error) {
	if opts.Portfolio == nil {
		return Model{}, fmt.Errorf("portfolio is required")
	}
	if opts.Settings == nil {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.State == nil {
		opts.State = shell.NewState()
	}

	m := Model{
		state:           opts.State,
		portfolio:       opts.Portfolio,
		settings:        opts.Settings,
		keybinds:        opts.Keybinds,
		log:             logging.Component(opts.Logger, "tui"),
		version:         opts.Version,
		highlighter:     highlight.New(opts.Settings.CodeStyle),
		markdown:        markdown.NewRenderer(opts.Settings.MarkdownStyle),
		focus:           FocusEditor,
		editorView:      viewport.New(80, 20),
		overlayView:     viewport.New(80, 20),
		palette:         newPaletteState(),
		copyToClipboard: clipboard.WriteAll,
	}
	if opts.Settings.Mouse {
		m.zones = zone.New()
	}

	return m, nil
}

// Init shows the explorer view next to the welcome screen on a fresh shell
func (m *Model) Init() tea.Cmd {
	if m.state.Sidebar.ActiveView() == shell.ViewNone && m.state.Tabs.Len() == 0 {
		m.state.Sidebar.OpenView(shell.ViewExplorer)
		m.focus = FocusSidebar
	}
	return nil
}

// Cleanup releases the zone manager
func (m *Model) Cleanup() {
	if m.zones != nil {
		m.zones.Close()
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()

	case copyResetMsg:
		m.handleCopyReset(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.errorMsg = false
		}

	default:
		if m.palette.open {
			cmd = m.updatePaletteInput(msg)
		}
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var view string
	switch {
	case m.palette.open:
		view = m.renderPalette()
	case m.state.Overlay.Visible():
		view = m.renderOverlay()
	default:
		view = m.renderMain()
	}
	return m.scan(view)
}

// Custom message types

// copyResetMsg clears the "Copied!" confirmation armed for one overlay instance
type copyResetMsg struct {
	generation uint64
	arm        uint64
}

type clearStatusMsg struct {
	seq uint64
}

// Helper methods for setting messages with a timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	return m.setMessage(msg, false)
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	return m.setMessage(msg, true)
}

func (m *Model) setMessage(msg string, isError bool) tea.Cmd {
	if len(msg) > 100 {
		msg = msg[:97] + "..."
	}
	m.statusMsg = msg
	m.errorMsg = isError
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
