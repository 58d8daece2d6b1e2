package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/folio/internal/icons"
	"github.com/studiowebux/folio/internal/keybinds"
)

// paletteItem is one quick open target
type paletteItem struct {
	id      string
	label   string
	section string
	icon    icons.Key
}

// paletteItems implements fuzzy.Source over item labels
type paletteItems []paletteItem

func (p paletteItems) String(i int) string { return p[i].label }
func (p paletteItems) Len() int            { return len(p) }

// paletteState is the quick open input and its ranked matches
type paletteState struct {
	open    bool
	input   textinput.Model
	items   paletteItems
	matches fuzzy.Matches
	cursor  int
}

func newPaletteState() paletteState {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Go to panel..."
	ti.CharLimit = 64
	return paletteState{input: ti}
}

// paletteItems lists every panel plus the keybindings panel
func (m *Model) paletteItems() paletteItems {
	sectionOf := make(map[string]string)
	for _, s := range m.portfolio.Sections {
		for _, id := range s.Entries {
			if _, seen := sectionOf[id]; !seen {
				sectionOf[id] = s.Label
			}
		}
	}

	items := make(paletteItems, 0, len(m.portfolio.Panels)+1)
	for _, p := range m.portfolio.Panels {
		items = append(items, paletteItem{id: p.ID, label: p.Label, section: sectionOf[p.ID], icon: p.Icon})
	}
	kb := keybindingsTab()
	items = append(items, paletteItem{id: kb.ID, label: kb.Label, section: "Help", icon: kb.Icon})
	return items
}

func (m *Model) openPalette() tea.Cmd {
	m.palette.items = m.paletteItems()
	m.palette.input.SetValue("")
	m.palette.cursor = 0
	m.palette.open = true
	m.filterPalette()
	return m.palette.input.Focus()
}

func (m *Model) closePalette() {
	m.palette.open = false
	m.palette.input.Blur()
}

// filterPalette ranks items against the query; an empty query keeps item order
func (m *Model) filterPalette() {
	query := strings.TrimSpace(m.palette.input.Value())
	if query == "" {
		m.palette.matches = make(fuzzy.Matches, len(m.palette.items))
		for i, item := range m.palette.items {
			m.palette.matches[i] = fuzzy.Match{Str: item.label, Index: i}
		}
	} else {
		m.palette.matches = fuzzy.FindFrom(query, m.palette.items)
	}
	if m.palette.cursor >= len(m.palette.matches) {
		m.palette.cursor = len(m.palette.matches) - 1
	}
	if m.palette.cursor < 0 {
		m.palette.cursor = 0
	}
}

func (m *Model) handlePaletteKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextPalette, msg.String())
	if !ok {
		return m.updatePaletteInput(msg)
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionPaletteCancel:
		m.closePalette()
	case keybinds.ActionPaletteSubmit:
		m.submitPalette(m.palette.cursor)
	case keybinds.ActionPaletteUp:
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
	case keybinds.ActionPaletteDown:
		if m.palette.cursor < len(m.palette.matches)-1 {
			m.palette.cursor++
		}
	default:
		return m.updatePaletteInput(msg)
	}
	return nil
}

// updatePaletteInput forwards a message to the text input and re-ranks
func (m *Model) updatePaletteInput(msg tea.Msg) tea.Cmd {
	before := m.palette.input.Value()
	var cmd tea.Cmd
	m.palette.input, cmd = m.palette.input.Update(msg)
	if m.palette.input.Value() != before {
		m.palette.cursor = 0
		m.filterPalette()
	}
	return cmd
}

// submitPalette opens the match at position i and closes the palette
func (m *Model) submitPalette(i int) {
	if i < 0 || i >= len(m.palette.matches) {
		return
	}
	item := m.palette.items[m.palette.matches[i].Index]
	m.closePalette()
	m.openPanel(item.id)
	m.focus = FocusEditor
}

// paletteRows is how many matches fit in the palette at the current height
func (m Model) paletteRows() int {
	rows := m.height - PaletteChromeLines
	if rows > PaletteMaxResults {
		rows = PaletteMaxResults
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// paletteWindow returns the range of matches shown, keeping the cursor in view
func (m Model) paletteWindow() (int, int) {
	rows := m.paletteRows()
	offset := 0
	if m.palette.cursor >= rows {
		offset = m.palette.cursor - rows + 1
	}
	end := offset + rows
	if end > len(m.palette.matches) {
		end = len(m.palette.matches)
	}
	return offset, end
}

// renderPalette draws the quick open box near the top of the screen
func (m Model) renderPalette() string {
	width := PaletteWidth
	if width > m.width-ModalWidthMargin {
		width = m.width - ModalWidthMargin
	}
	inner := width - BorderWidth - 2

	m.palette.input.Width = inner - lipgloss.Width(m.palette.input.Prompt) - 1
	lines := []string{styleTitle.Render("Quick Open"), m.palette.input.View(), ""}

	if len(m.palette.matches) == 0 {
		lines = append(lines, styleSubtle.Render("No matches"))
	}
	offset, end := m.paletteWindow()
	if offset > 0 {
		lines = append(lines, styleSubtle.Render(fmt.Sprintf("… %d above", offset)))
	}
	for i := offset; i < end; i++ {
		match := m.palette.matches[i]
		item := m.palette.items[match.Index]
		line := " " + icons.Render(item.icon) + " " + highlightMatch(item.label, match.MatchedIndexes)
		if item.section != "" {
			line += styleSubtle.Render("  " + item.section)
		}
		if i == m.palette.cursor {
			line = styleSelected.Render(lipgloss.NewStyle().Width(inner).Render(line))
		}
		lines = append(lines, m.mark(fmt.Sprintf("palette:item:%d", i), line))
	}
	if rest := len(m.palette.matches) - end; rest > 0 {
		lines = append(lines, styleSubtle.Render(fmt.Sprintf("… %d more", rest)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGreen).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top,
		"\n\n"+m.mark("palette:box", box))
}

// highlightMatch emphasises the characters fuzzy matched
func highlightMatch(s string, matched []int) string {
	if len(matched) == 0 {
		return s
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var sb strings.Builder
	for i, r := range s {
		if hit[i] {
			sb.WriteString(styleWarning.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
