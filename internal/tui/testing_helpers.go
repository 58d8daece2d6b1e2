package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/folio/internal/config"
	"github.com/studiowebux/folio/internal/content"
	"github.com/studiowebux/folio/internal/logging"
	"github.com/studiowebux/folio/internal/shell"
)

// fakeClipboard records what the model copies
type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

// CreateTestModel creates a sized Model over the embedded portfolio, with
// mouse zones off and a fake clipboard
func CreateTestModel(t *testing.T) (*Model, *fakeClipboard) {
	t.Helper()

	portfolio, err := content.Default()
	if err != nil {
		t.Fatalf("Failed to load default portfolio: %v", err)
	}

	settings := config.DefaultSettings()
	settings.Mouse = false
	settings.MarkdownStyle = "notty"

	m, err := New(Options{
		State:     shell.NewState(),
		Portfolio: portfolio,
		Settings:  settings,
		Logger:    logging.Discard(),
		Version:   "test-version",
	})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}

	clip := &fakeClipboard{}
	m.copyToClipboard = clip.WriteAll
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return &m, clip
}

var specialKeys = map[string]tea.KeyType{
	"tab":        tea.KeyTab,
	"enter":      tea.KeyEnter,
	"esc":        tea.KeyEsc,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"pgup":       tea.KeyPgUp,
	"pgdown":     tea.KeyPgDown,
	"home":       tea.KeyHome,
	"end":        tea.KeyEnd,
	"backspace":  tea.KeyBackspace,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+b":     tea.KeyCtrlB,
	"ctrl+p":     tea.KeyCtrlP,
	"ctrl+j":     tea.KeyCtrlJ,
	"ctrl+k":     tea.KeyCtrlK,
	"ctrl+right": tea.KeyCtrlRight,
	"ctrl+left":  tea.KeyCtrlLeft,
	"ctrl+up":    tea.KeyCtrlUp,
	"ctrl+down":  tea.KeyCtrlDown,
}

// keyMsg builds the tea.KeyMsg whose String() is key
func keyMsg(key string) tea.KeyMsg {
	if t, ok := specialKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	if len(key) > 4 && key[:4] == "alt+" {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key[4:]), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends keys in order and returns the last command
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// typeText sends each rune as its own key press
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}

// isQuit reports whether cmd produces tea.QuitMsg
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
