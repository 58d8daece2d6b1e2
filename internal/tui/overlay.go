package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/folio/internal/content"
	"github.com/studiowebux/folio/internal/keybinds"
	"github.com/studiowebux/folio/internal/shell"
)

// codePayload is carried by code overlays
type codePayload struct {
	PanelID string
	Index   int
	Snippet content.Snippet
}

// activePanel returns the portfolio panel behind the active tab
func (m *Model) activePanel() (content.Panel, bool) {
	tab, ok := m.state.Tabs.Active()
	if !ok {
		return content.Panel{}, false
	}
	return m.portfolio.Panel(tab.ContentRef)
}

// previewSnippet shows the i-th snippet of the active panel in a code overlay
func (m *Model) previewSnippet(i int) tea.Cmd {
	panel, ok := m.activePanel()
	if !ok || len(panel.Snippets) == 0 {
		return m.setStatusMessage("No code to preview here")
	}
	if i < 0 || i >= len(panel.Snippets) {
		return m.setStatusMessage(fmt.Sprintf("No snippet %d (this panel has %d)", i+1, len(panel.Snippets)))
	}
	s := panel.Snippets[i]
	m.showOverlay(shell.OverlayCode, s.ID, codePayload{PanelID: panel.ID, Index: i, Snippet: s})
	return nil
}

// previewDemo shows the i-th demo of the active panel in a demo overlay
func (m *Model) previewDemo(i int) tea.Cmd {
	panel, ok := m.activePanel()
	if !ok || i < 0 || i >= len(panel.Demos) {
		return m.setStatusMessage("No demo to open here")
	}
	d := panel.Demos[i]
	m.showOverlay(shell.OverlayDemo, d.ID, d)
	return nil
}

func (m *Model) showOverlay(kind shell.OverlayKind, subjectID string, payload any) {
	m.state.Overlay.Show(kind, subjectID, payload)
	m.copied = false
	m.refreshOverlay()
	m.overlayView.GotoTop()
	m.log.Debug("show overlay", "kind", string(kind), "subject", subjectID, "generation", m.state.Overlay.Generation())
}

func (m *Model) hideOverlay() {
	if m.state.Overlay.Hide() {
		m.copied = false
		m.log.Debug("hide overlay", "generation", m.state.Overlay.Generation())
	}
}

// refreshOverlay renders the current overlay body into its viewport
func (m *Model) refreshOverlay() {
	ov, ok := m.state.Overlay.Current()
	if !ok {
		m.overlayView.SetContent("")
		return
	}

	switch p := ov.Payload.(type) {
	case codePayload:
		code, err := m.portfolio.SnippetCode(p.Snippet)
		if err != nil {
			m.log.Warn("snippet unavailable", "snippet", p.Snippet.ID, "error", err)
			m.overlayView.SetContent(styleError.Render(err.Error()))
			return
		}
		m.overlayView.SetContent(m.highlighter.Render(code, p.Snippet.Language))
	case content.Demo:
		md := fmt.Sprintf("## %s\n\n%s\n\n%s\n", p.Title, p.Description, p.URL)
		m.overlayView.SetContent(m.markdown.Render(md, m.overlayView.Width))
	default:
		m.overlayView.SetContent(fmt.Sprintf("%v", ov.Payload))
	}
}

func (m *Model) handleOverlayKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextOverlay, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce, keybinds.ActionQuit:
		return tea.Quit
	case keybinds.ActionCloseOverlay:
		m.hideOverlay()
	case keybinds.ActionCopy:
		return m.copyOverlay()
	case keybinds.ActionNextSnippet:
		m.nextSnippet()
	case keybinds.ActionNavigateUp:
		m.overlayView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.overlayView.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.overlayView.PageUp()
	case keybinds.ActionPageDown:
		m.overlayView.PageDown()
	case keybinds.ActionGoToTop:
		m.overlayView.GotoTop()
	case keybinds.ActionGoToBottom:
		m.overlayView.GotoBottom()
	}
	return nil
}

// nextSnippet replaces the code overlay with the panel's next snippet
func (m *Model) nextSnippet() {
	ov, ok := m.state.Overlay.Current()
	if !ok {
		return
	}
	p, ok := ov.Payload.(codePayload)
	if !ok {
		return
	}
	panel, ok := m.portfolio.Panel(p.PanelID)
	if !ok || len(panel.Snippets) < 2 {
		return
	}
	next := (p.Index + 1) % len(panel.Snippets)
	s := panel.Snippets[next]
	m.showOverlay(shell.OverlayCode, s.ID, codePayload{PanelID: panel.ID, Index: next, Snippet: s})
}

// copyOverlay copies the snippet code or demo URL and arms the confirmation reset
func (m *Model) copyOverlay() tea.Cmd {
	ov, ok := m.state.Overlay.Current()
	if !ok {
		return nil
	}

	var text string
	switch p := ov.Payload.(type) {
	case codePayload:
		code, err := m.portfolio.SnippetCode(p.Snippet)
		if err != nil {
			return m.setErrorMessage("Copy failed: " + err.Error())
		}
		text = code
	case content.Demo:
		text = p.URL
	default:
		return nil
	}

	if err := m.copyToClipboard(text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		return m.setErrorMessage("Copy failed: " + err.Error())
	}

	m.copied = true
	m.copyArm++
	reset := copyResetMsg{generation: m.state.Overlay.Generation(), arm: m.copyArm}
	m.log.Debug("copied", "subject", ov.SubjectID, "bytes", len(text))
	return tea.Tick(m.settings.CopyReset, func(time.Time) tea.Msg {
		return reset
	})
}

// handleCopyReset clears the confirmation unless the overlay it was armed
// for is gone or a newer copy re-armed it
func (m *Model) handleCopyReset(msg copyResetMsg) {
	if msg.generation != m.state.Overlay.Generation() || msg.arm != m.copyArm {
		return
	}
	m.copied = false
}

// overlaySize returns the outer overlay box size
func (m Model) overlaySize() (int, int) {
	w := m.width - ModalWidthMargin
	if w > OverlayMaxWidth {
		w = OverlayMaxWidth
	}
	if w < MinEditorWidth {
		w = MinEditorWidth
	}
	h := m.height - ModalHeightMargin
	if h < OverlayMinHeight {
		h = OverlayMinHeight
	}
	return w, h
}

// renderOverlay draws the overlay box centred on screen
func (m Model) renderOverlay() string {
	ov, _ := m.state.Overlay.Current()
	w, h := m.overlaySize()
	inner := w - BorderWidth - 2

	title := ov.SubjectID
	kind := "Code"
	switch p := ov.Payload.(type) {
	case codePayload:
		title = p.Snippet.Title
		if p.Snippet.Language != "" {
			title += " · " + p.Snippet.Language
		}
	case content.Demo:
		kind = "Demo"
		title = p.Title
	}

	closeBtn := m.mark("overlay:close", styleSubtle.Render("[x]"))
	heading := styleTitle.Render(kind + ": " + title)
	gap := inner - lipgloss.Width(heading) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	header := heading + strings.Repeat(" ", gap) + closeBtn

	var footer string
	if m.copied {
		footer = styleSuccess.Render("Copied!")
	} else {
		hints := []string{
			m.keybinds.GetBindingString(keybinds.ContextOverlay, keybinds.ActionCopy) + " copy",
		}
		if ov.Kind == shell.OverlayCode {
			hints = append(hints, m.keybinds.GetBindingString(keybinds.ContextOverlay, keybinds.ActionNextSnippet)+" next")
		}
		hints = append(hints, m.keybinds.GetBindingString(keybinds.ContextOverlay, keybinds.ActionCloseOverlay)+" close")
		footer = styleSubtle.Render(strings.Join(hints, " · "))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Padding(0, 1).
		Width(inner + 2).
		Height(h - BorderWidth).
		Render(header + "\n\n" + m.overlayView.View() + "\n\n" + footer)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.mark("overlay:box", box))
}
