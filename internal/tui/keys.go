package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/folio/internal/keybinds"
	"github.com/studiowebux/folio/internal/shell"
)

// handleKeyPress routes a key to the palette, the overlay or the shell
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.palette.open {
		return m.handlePaletteKeys(msg)
	}
	if m.state.Overlay.Visible() {
		return m.handleOverlayKeys(msg)
	}
	return m.handleShellKeys(msg)
}

// keyContext returns the keybinds context for the focused area
func (m *Model) keyContext() keybinds.Context {
	if m.focus == FocusSidebar {
		return keybinds.ContextSidebar
	}
	return keybinds.ContextEditor
}

func (m *Model) handleShellKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(m.keyContext(), msg.String())
	if !ok {
		return nil
	}

	if idx, ok := keybinds.ViewIndex(action); ok {
		if idx < len(shell.Views) {
			m.openView(shell.Views[idx])
		}
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionSwitchFocus:
		m.switchFocus()

	case keybinds.ActionToggleSidebar:
		m.state.Sidebar.ToggleCollapsed()
		if !m.state.Sidebar.Expanded() {
			m.focus = FocusEditor
		}
		m.updateViewports()

	case keybinds.ActionCloseView:
		m.state.Sidebar.CloseView()
		m.focus = FocusEditor
		m.updateViewports()

	case keybinds.ActionNextView:
		m.cycleView(1)

	case keybinds.ActionPrevView:
		m.cycleView(-1)

	case keybinds.ActionNextTab:
		m.state.Tabs.Next()
		m.refreshEditor()

	case keybinds.ActionPrevTab:
		m.state.Tabs.Prev()
		m.refreshEditor()

	case keybinds.ActionCloseTab:
		if id := m.state.Tabs.ActiveID(); id != "" {
			m.closeTab(id)
		}

	case keybinds.ActionCloseOtherTabs:
		if id := m.state.Tabs.ActiveID(); id != "" {
			n := m.state.Tabs.CloseOthers(id)
			m.log.Debug("closed other tabs", "kept", id, "closed", n)
			m.refreshEditor()
		}

	case keybinds.ActionQuickOpen:
		return m.openPalette()

	case keybinds.ActionShowKeybindings:
		m.openPanel(KeybindingsPanelID)
		m.focus = FocusEditor

	default:
		if m.focus == FocusSidebar {
			return m.handleSidebarAction(action)
		}
		return m.handleEditorAction(action, msg)
	}

	return nil
}

func (m *Model) handleSidebarAction(action keybinds.Action) tea.Cmd {
	entries := m.sidebarEntries()
	if len(entries) == 0 {
		return nil
	}
	page := m.sidebarPageSize()

	switch action {
	case keybinds.ActionNavigateUp:
		m.moveCursor(-1)
	case keybinds.ActionNavigateDown:
		m.moveCursor(1)
	case keybinds.ActionPageUp:
		m.moveCursor(-page)
	case keybinds.ActionPageDown:
		m.moveCursor(page)
	case keybinds.ActionGoToTop:
		m.sidebarCursor = 0
	case keybinds.ActionGoToBottom:
		m.sidebarCursor = len(entries) - 1
	case keybinds.ActionSelect:
		m.openPanel(entries[m.sidebarCursor].ID)
	}
	return nil
}

func (m *Model) handleEditorAction(action keybinds.Action, msg tea.KeyMsg) tea.Cmd {
	switch action {
	case keybinds.ActionNavigateUp:
		m.editorView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.editorView.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.editorView.PageUp()
	case keybinds.ActionPageDown:
		m.editorView.PageDown()
	case keybinds.ActionGoToTop:
		m.editorView.GotoTop()
	case keybinds.ActionGoToBottom:
		m.editorView.GotoBottom()
	case keybinds.ActionPreviewCode:
		return m.previewSnippet(0)
	case keybinds.ActionPreviewDemo:
		return m.previewDemo(0)
	case keybinds.ActionPreviewSnippet:
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 {
			return nil
		}
		return m.previewSnippet(n - 1)
	}
	return nil
}

// switchFocus toggles focus; the sidebar can only take focus while expanded
func (m *Model) switchFocus() {
	if m.focus == FocusSidebar || !m.state.Sidebar.Expanded() {
		m.focus = FocusEditor
		return
	}
	m.focus = FocusSidebar
	m.clampCursor()
}

// openView selects a sidebar view. Content-bearing sections also open their landing panel.
func (m *Model) openView(v shell.View) {
	m.state.Sidebar.OpenView(v)
	m.focus = FocusSidebar
	m.sidebarCursor = 0

	section, ok := m.portfolio.Section(v)
	if ok && section.ContentBearing() {
		for i, p := range m.portfolio.Entries(section) {
			if p.ID == section.Landing {
				m.sidebarCursor = i
			}
		}
		m.openPanel(section.Landing)
	}
	m.log.Debug("open view", "view", string(v), "landing", section.Landing)
	m.updateViewports()
}

func (m *Model) cycleView(delta int) {
	n := len(shell.Views)
	current := -1
	for i, v := range shell.Views {
		if v == m.state.Sidebar.ActiveView() {
			current = i
		}
	}
	next := 0
	if current >= 0 {
		next = ((current+delta)%n + n) % n
	} else if delta < 0 {
		next = n - 1
	}
	m.openView(shell.Views[next])
}

// openPanel opens the panel as a tab (or focuses it when already open)
func (m *Model) openPanel(id string) {
	if id == KeybindingsPanelID {
		m.state.Tabs.Open(keybindingsTab())
	} else {
		panel, ok := m.portfolio.Panel(id)
		if !ok {
			m.log.Warn("unknown panel", "panel", id)
			return
		}
		m.state.Tabs.Open(panel.Tab())
	}
	m.log.Debug("open tab", "tab", id, "open", m.state.Tabs.Len())
	m.refreshEditor()
}

func (m *Model) closeTab(id string) {
	if m.state.Tabs.Close(id) {
		m.log.Debug("close tab", "tab", id, "active", m.state.Tabs.ActiveID())
		m.refreshEditor()
	}
}

func (m *Model) moveCursor(delta int) {
	m.sidebarCursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.sidebarEntries())
	if m.sidebarCursor >= n {
		m.sidebarCursor = n - 1
	}
	if m.sidebarCursor < 0 {
		m.sidebarCursor = 0
	}
}
