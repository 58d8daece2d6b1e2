package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/folio/internal/shell"
)

const wheelStep = 3

// handleMouse resolves the pointer to a zone and dispatches clicks and wheel scrolls
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollFocused(-wheelStep)
		return nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollFocused(wheelStep)
		return nil
	case msg.Action == tea.MouseActionMotion:
		m.hovered = m.zoneAt(msg)
		return nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.handleClick(m.zoneAt(msg))
	}
	return nil
}

func (m *Model) scrollFocused(delta int) {
	view := &m.editorView
	if m.state.Overlay.Visible() {
		view = &m.overlayView
	}
	if delta < 0 {
		view.ScrollUp(-delta)
	} else {
		view.ScrollDown(delta)
	}
}

// clickTargets lists zone ids in hit-test order, most specific first
func (m *Model) clickTargets() []string {
	if m.palette.open {
		offset, end := m.paletteWindow()
		targets := make([]string, 0, end-offset+1)
		for i := offset; i < end; i++ {
			targets = append(targets, fmt.Sprintf("palette:item:%d", i))
		}
		return append(targets, "palette:box")
	}
	if m.state.Overlay.Visible() {
		return []string{"overlay:close", "overlay:box"}
	}

	var targets []string
	for _, tab := range m.state.Tabs.List() {
		targets = append(targets, "tabclose:"+tab.ID, "tab:"+tab.ID)
	}
	for _, v := range shell.Views {
		targets = append(targets, "activity:"+string(v))
	}
	targets = append(targets, "sidebar:toggle")
	if m.state.Sidebar.Expanded() {
		for _, p := range m.sidebarEntries() {
			targets = append(targets, "entry:"+p.ID)
		}
	}
	if panel, ok := m.activePanel(); ok {
		for i := range panel.Snippets {
			targets = append(targets, fmt.Sprintf("snippet:%d", i))
		}
		for i := range panel.Demos {
			targets = append(targets, fmt.Sprintf("demo:%d", i))
		}
	}
	return targets
}

// zoneAt returns the zone under the pointer, or "" when none
func (m *Model) zoneAt(msg tea.MouseMsg) string {
	if m.zones == nil {
		return ""
	}
	for _, id := range m.clickTargets() {
		if zi := m.zones.Get(id); zi != nil && zi.InBounds(msg) {
			return id
		}
	}
	return ""
}

// handleClick performs the single dispatch a click on target maps to
func (m *Model) handleClick(target string) tea.Cmd {
	if m.palette.open {
		if n, ok := strings.CutPrefix(target, "palette:item:"); ok {
			if i, err := strconv.Atoi(n); err == nil {
				m.submitPalette(i)
			}
		} else if target != "palette:box" {
			m.closePalette()
		}
		return nil
	}

	// Overlays are modal: clicks anywhere but the box hide them
	if m.state.Overlay.Visible() {
		if target != "overlay:box" {
			m.hideOverlay()
		}
		return nil
	}

	prefix, arg, _ := strings.Cut(target, ":")
	switch prefix {
	case "activity":
		if v, ok := shell.ParseView(arg); ok {
			m.openView(v)
		}
	case "sidebar":
		m.state.Sidebar.ToggleCollapsed()
		if !m.state.Sidebar.Expanded() {
			m.focus = FocusEditor
		}
		m.updateViewports()
	case "entry":
		for i, p := range m.sidebarEntries() {
			if p.ID == arg {
				m.sidebarCursor = i
			}
		}
		m.focus = FocusSidebar
		m.openPanel(arg)
	case "tab":
		if m.state.Tabs.SetActive(arg) {
			m.focus = FocusEditor
			m.refreshEditor()
		}
	case "tabclose":
		m.closeTab(arg)
	case "snippet":
		if i, err := strconv.Atoi(arg); err == nil {
			return m.previewSnippet(i)
		}
	case "demo":
		if i, err := strconv.Atoi(arg); err == nil {
			return m.previewDemo(i)
		}
	}
	return nil
}
