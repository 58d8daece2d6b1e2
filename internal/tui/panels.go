package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/folio/internal/icons"
	"github.com/studiowebux/folio/internal/keybinds"
	"github.com/studiowebux/folio/internal/shell"
)

func keybindingsTab() shell.Tab {
	return shell.Tab{
		ID:         KeybindingsPanelID,
		Label:      "keybindings.md",
		ContentRef: KeybindingsPanelID,
		Icon:       icons.KeyBook,
	}
}

// panelContent renders the panel a tab refers to
func (m *Model) panelContent(tab shell.Tab, width int) string {
	if tab.ContentRef == KeybindingsPanelID {
		return m.markdown.Render(m.keybindingsMarkdown(), width)
	}

	panel, ok := m.portfolio.Panel(tab.ContentRef)
	if !ok {
		return styleError.Render("Panel not found: " + tab.ContentRef)
	}

	var sb strings.Builder
	sb.WriteString(m.markdown.Render(panel.Body, width))

	if len(panel.Snippets) > 0 {
		sb.WriteString("\n\n" + styleTitle.Render("  Snippets") + "\n")
		for i, s := range panel.Snippets {
			line := fmt.Sprintf("  [%d] %s", i+1, s.Title)
			if s.Language != "" {
				line += styleSubtle.Render(" (" + s.Language + ")")
			}
			sb.WriteString(m.mark(fmt.Sprintf("snippet:%d", i), line) + "\n")
		}
		sb.WriteString(styleSubtle.Render(fmt.Sprintf("  %s preview, 1-%d pick",
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionPreviewCode),
			min(len(panel.Snippets), 9))))
	}

	if len(panel.Demos) > 0 {
		sb.WriteString("\n\n" + styleTitle.Render("  Demos") + "\n")
		for i, d := range panel.Demos {
			line := "  ▶ " + d.Title + styleSubtle.Render("  "+d.URL)
			sb.WriteString(m.mark(fmt.Sprintf("demo:%d", i), line) + "\n")
		}
		sb.WriteString(styleSubtle.Render(fmt.Sprintf("  %s open demo",
			m.keybinds.GetBindingString(keybinds.ContextEditor, keybinds.ActionPreviewDemo))))
	}

	return sb.String()
}

// keybindingsMarkdown lists the effective bindings per context
func (m *Model) keybindingsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Keybindings\n")

	for _, context := range keybinds.Contexts {
		bindings := m.keybinds.ListBindings(context)
		if len(bindings) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n\n| Keys | Action |\n|---|---|\n", strings.ToUpper(string(context[:1]))+string(context[1:])))

		var keys []string
		for i, b := range bindings {
			keys = append(keys, "`"+b.Key+"`")
			if i+1 < len(bindings) && bindings[i+1].Action == b.Action {
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", strings.Join(keys, " "), keybinds.GetActionInfo(b.Action).Description))
			keys = keys[:0]
		}
	}
	return sb.String()
}

// renderWelcome is shown in the editor when no tab is open
func (m Model) renderWelcome(width, height int) string {
	owner := m.portfolio.Owner
	lines := []string{styleTitle.Render(owner.Name)}
	if owner.Title != "" {
		lines = append(lines, owner.Title)
	}
	if owner.Tagline != "" {
		lines = append(lines, styleSubtle.Render(owner.Tagline))
	}
	lines = append(lines, "", "Welcome. No panel is open.", "")

	hints := []struct {
		context keybinds.Context
		action  keybinds.Action
	}{
		{keybinds.ContextShell, keybinds.ActionView1},
		{keybinds.ContextShell, keybinds.ActionQuickOpen},
		{keybinds.ContextShell, keybinds.ActionSwitchFocus},
		{keybinds.ContextShell, keybinds.ActionShowKeybindings},
		{keybinds.ContextShell, keybinds.ActionQuit},
	}
	for _, h := range hints {
		lines = append(lines, fmt.Sprintf("%-12s %s",
			m.keybinds.GetBindingString(h.context, h.action),
			styleSubtle.Render(keybinds.GetActionInfo(h.action).Description)))
	}

	block := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
