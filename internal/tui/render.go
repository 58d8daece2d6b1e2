package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/folio/internal/content"
	"github.com/studiowebux/folio/internal/icons"
	"github.com/studiowebux/folio/internal/keybinds"
	"github.com/studiowebux/folio/internal/shell"
)

// defaultViewIcons are used when the portfolio has no section for a view
var defaultViewIcons = map[shell.View]icons.Key{
	shell.ViewExplorer:   icons.KeyFolder,
	shell.ViewProjects:   icons.KeyCode,
	shell.ViewSkills:     icons.KeyTools,
	shell.ViewExperience: icons.KeyBriefcase,
	shell.ViewContact:    icons.KeyMail,
}

// layout holds outer widths of the main regions
type layout struct {
	sidebarWidth int // 0 when the sidebar is hidden
	editorWidth  int
	bodyHeight   int
}

func (m Model) layout() layout {
	l := layout{bodyHeight: m.height - StatusBarHeight}
	if l.bodyHeight < BorderWidth+TabStripHeight+1 {
		l.bodyHeight = BorderWidth + TabStripHeight + 1
	}
	if m.state.Sidebar.Expanded() {
		l.sidebarWidth = m.settings.SidebarWidth
	}
	l.editorWidth = m.width - ActivityBarWidth - l.sidebarWidth
	if l.editorWidth < MinEditorWidth {
		l.sidebarWidth = m.width - ActivityBarWidth - MinEditorWidth
		if l.sidebarWidth < BorderWidth+1 {
			l.sidebarWidth = 0
		}
		l.editorWidth = m.width - ActivityBarWidth - l.sidebarWidth
	}
	return l
}

// editorInner returns the content size of the editor viewport
func (l layout) editorInner() (int, int) {
	return l.editorWidth - BorderWidth, l.bodyHeight - BorderWidth - TabStripHeight
}

// updateViewports resizes viewports after a window or layout change
func (m *Model) updateViewports() {
	l := m.layout()
	m.editorView.Width, m.editorView.Height = l.editorInner()
	m.refreshEditor()

	w, h := m.overlaySize()
	m.overlayView.Width = w - BorderWidth - 2
	m.overlayView.Height = h - ModalOverheadLines
	if m.state.Overlay.Visible() {
		m.refreshOverlay()
	}
}

// refreshEditor re-renders the active tab into the editor viewport
func (m *Model) refreshEditor() {
	tab, ok := m.state.Tabs.Active()
	if !ok {
		m.editorView.SetContent("")
		m.renderedTab = ""
		return
	}
	m.editorView.SetContent(m.panelContent(tab, m.editorView.Width))
	if tab.ID != m.renderedTab {
		m.editorView.GotoTop()
		m.renderedTab = tab.ID
	}
}

// renderMain renders the shell: activity bar, sidebar, editor and status bar
func (m Model) renderMain() string {
	l := m.layout()

	parts := []string{m.renderActivityBar(l.bodyHeight)}
	if l.sidebarWidth > 0 {
		parts = append(parts, m.renderSidebar(l.sidebarWidth, l.bodyHeight))
	}
	parts = append(parts, m.renderEditor(l.editorWidth, l.bodyHeight))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

func (m Model) viewIcon(v shell.View) icons.Key {
	if section, ok := m.portfolio.Section(v); ok && section.Icon != icons.KeyNone {
		return section.Icon
	}
	return defaultViewIcons[v]
}

// renderActivityBar renders the icon column selecting sidebar views
func (m Model) renderActivityBar(height int) string {
	var lines []string
	for _, v := range shell.Views {
		item := " " + icons.Render(m.viewIcon(v)) + " "
		id := "activity:" + string(v)
		switch {
		case m.state.Sidebar.ActiveView() == v && m.state.Sidebar.Expanded():
			item = styleActivityActive.Render(item)
		case m.hovered == id:
			item = styleHovered.Render(item)
		}
		lines = append(lines, m.mark(id, item), "")
	}

	toggle := " »  "
	if m.state.Sidebar.Expanded() {
		toggle = " «  "
	}
	lines = append(lines, m.mark("sidebar:toggle", styleSubtle.Render(toggle)))

	return lipgloss.NewStyle().
		Width(ActivityBarWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// sidebarEntries returns the panels listed under the active view
func (m Model) sidebarEntries() []content.Panel {
	section, ok := m.portfolio.Section(m.state.Sidebar.ActiveView())
	if !ok {
		return nil
	}
	return m.portfolio.Entries(section)
}

// sidebarPageSize is the number of entries visible at once
func (m Model) sidebarPageSize() int {
	size := m.layout().bodyHeight - BorderWidth - 4 // title, blank, blank, footer
	if size < 1 {
		size = 1
	}
	return size
}

// renderSidebar renders the entries of the active view
func (m Model) renderSidebar(width, height int) string {
	inner := width - BorderWidth
	view := m.state.Sidebar.ActiveView()

	title := strings.ToUpper(string(view))
	if section, ok := m.portfolio.Section(view); ok && section.Label != "" {
		title = strings.ToUpper(section.Label)
	}
	lines := []string{styleTitle.Render(runewidth.Truncate(title, inner, "…")), ""}

	entries := m.sidebarEntries()
	pageSize := m.sidebarPageSize()
	offset := 0
	if m.sidebarCursor >= pageSize {
		offset = m.sidebarCursor - pageSize + 1
	}
	end := offset + pageSize
	if end > len(entries) {
		end = len(entries)
	}

	activeID := m.state.Tabs.ActiveID()
	for i := offset; i < end; i++ {
		p := entries[i]
		label := runewidth.Truncate(p.Label, inner-icons.GlyphWidth-2, "…")
		line := runewidth.FillRight(" "+icons.Render(p.Icon)+" "+label, inner)

		switch {
		case i == m.sidebarCursor && m.focus == FocusSidebar:
			line = styleSelected.Render(line)
		case p.ID == activeID:
			line = lipgloss.NewStyle().Bold(true).Render(line)
		case m.hovered == "entry:"+p.ID:
			line = styleHovered.Render(line)
		}
		lines = append(lines, m.mark("entry:"+p.ID, line))
	}

	lines = append(lines, "")
	if len(entries) == 0 {
		lines = append(lines, styleSubtle.Render("Nothing here"))
	} else {
		lines = append(lines, styleSubtle.Render(fmt.Sprintf("[%d/%d]", m.sidebarCursor+1, len(entries))))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(m.focus == FocusSidebar)).
		Width(inner).
		Height(height - BorderWidth).
		Render(strings.Join(lines, "\n"))
}

// renderTabStrip renders open tabs in insertion order with close buttons
func (m Model) renderTabStrip(width int) string {
	tabs := m.state.Tabs.List()
	if len(tabs) == 0 {
		return styleSubtle.Render(" no open tabs") + "\n" + styleSubtle.Render(strings.Repeat("─", width))
	}

	activeID := m.state.Tabs.ActiveID()
	var parts []string
	for _, tab := range tabs {
		label := " " + icons.Render(tab.Icon) + " " + tab.Label + " "
		closeBtn := "× "
		switch {
		case tab.ID == activeID:
			label = styleSelected.Render(label)
			closeBtn = styleSelected.Render(closeBtn)
		case m.hovered == "tab:"+tab.ID:
			label = styleHovered.Render(label)
		default:
			label = styleSubtle.Render(label)
		}
		if m.hovered == "tabclose:"+tab.ID {
			closeBtn = styleError.Render("× ")
		}
		parts = append(parts, m.mark("tab:"+tab.ID, label)+m.mark("tabclose:"+tab.ID, closeBtn))
	}

	strip := lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, styleSubtle.Render("│")))
	return strip + "\n" + styleSubtle.Render(strings.Repeat("─", width))
}

// renderEditor renders the tab strip and the active panel or the welcome screen
func (m Model) renderEditor(width, height int) string {
	l := layout{editorWidth: width, bodyHeight: height}
	innerW, innerH := l.editorInner()

	body := m.editorView.View()
	if _, ok := m.state.Tabs.Active(); !ok {
		body = m.renderWelcome(innerW, innerH)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(m.focus == FocusEditor)).
		Width(innerW).
		Height(height - BorderWidth).
		Render(m.renderTabStrip(innerW) + "\n" + body)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	left := m.portfolio.Owner.Name
	if left == "" {
		left = "folio"
	}
	if tab, ok := m.state.Tabs.Active(); ok {
		left += fmt.Sprintf(" │ %s %d/%d", tab.Label, m.state.Tabs.Index(tab.ID)+1, m.state.Tabs.Len())
	}
	left += styleSubtle.Render(" │ " + m.focus.String())

	var right string
	switch {
	case m.statusMsg != "" && m.errorMsg:
		right = styleError.Render(m.statusMsg)
	case m.statusMsg != "":
		right = styleWarning.Render(m.statusMsg)
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s quick open | %s keys | %s quit",
			m.keybinds.GetBindingString(keybinds.ContextShell, keybinds.ActionQuickOpen),
			m.keybinds.GetBindingString(keybinds.ContextShell, keybinds.ActionShowKeybindings),
			m.keybinds.GetBindingString(keybinds.ContextShell, keybinds.ActionQuit)))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// mark wraps s in a clickable zone when mouse support is on
func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// scan records zone positions and strips their markers
func (m Model) scan(s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Scan(s)
}
