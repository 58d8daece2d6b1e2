// Package icons maps symbolic icon keys to the glyph, label and color used
// when rendering activity items, sidebar entries and tabs.
package icons

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Key is a symbolic icon name
type Key string

const (
	KeyNone      Key = ""
	KeyFolder    Key = "folder"
	KeyFile      Key = "file"
	KeyCode      Key = "code"
	KeyUser      Key = "user"
	KeyBriefcase Key = "briefcase"
	KeyTools     Key = "tools"
	KeyMail      Key = "mail"
	KeyRocket    Key = "rocket"
	KeyBook      Key = "book"
	KeyGithub    Key = "github"
	KeyStar      Key = "star"
)

// Entry is the rendering data for an icon
type Entry struct {
	Glyph string
	Label string
	Color lipgloss.AdaptiveColor
}

// GlyphWidth is the cell width every glyph is padded or truncated to
const GlyphWidth = 2

var fallback = Entry{
	Glyph: "?",
	Label: "unknown",
	Color: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"},
}

var table = map[Key]Entry{
	KeyNone:      {Glyph: " ", Label: "", Color: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}},
	KeyFolder:    {Glyph: "▸", Label: "Explorer", Color: lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#e5c07b"}},
	KeyFile:      {Glyph: "≡", Label: "File", Color: lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#61afef"}},
	KeyCode:      {Glyph: "<>", Label: "Code", Color: lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#56b6c2"}},
	KeyUser:      {Glyph: "@", Label: "About", Color: lipgloss.AdaptiveColor{Light: "#8b008b", Dark: "#c678dd"}},
	KeyBriefcase: {Glyph: "▣", Label: "Experience", Color: lipgloss.AdaptiveColor{Light: "#8b4513", Dark: "#d19a66"}},
	KeyTools:     {Glyph: "⚙", Label: "Skills", Color: lipgloss.AdaptiveColor{Light: "#006400", Dark: "#98c379"}},
	KeyMail:      {Glyph: "✉", Label: "Contact", Color: lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#e06c75"}},
	KeyRocket:    {Glyph: "↗", Label: "Demo", Color: lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#e5c07b"}},
	KeyBook:      {Glyph: "¶", Label: "Notes", Color: lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#61afef"}},
	KeyGithub:    {Glyph: "⌥", Label: "GitHub", Color: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}},
	KeyStar:      {Glyph: "★", Label: "Featured", Color: lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffd700"}},
}

// Keys returns every known key except KeyNone
func Keys() []Key {
	return []Key{KeyFolder, KeyFile, KeyCode, KeyUser, KeyBriefcase, KeyTools, KeyMail, KeyRocket, KeyBook, KeyGithub, KeyStar}
}

// Parse maps a config string onto a Key. The empty string parses as KeyNone.
func Parse(s string) (Key, bool) {
	k := Key(s)
	if _, ok := table[k]; ok {
		return k, true
	}
	return KeyNone, false
}

// Known reports whether k has a table entry
func Known(k Key) bool {
	_, ok := table[k]
	return ok
}

// Lookup returns the entry for k, or the fallback entry for unknown keys
func Lookup(k Key) Entry {
	if e, ok := table[k]; ok {
		return e
	}
	return fallback
}

// Render returns the colored glyph padded to GlyphWidth cells
func Render(k Key) string {
	e := Lookup(k)
	glyph := runewidth.Truncate(e.Glyph, GlyphWidth, "")
	glyph = runewidth.FillRight(glyph, GlyphWidth)
	return lipgloss.NewStyle().Foreground(e.Color).Render(glyph)
}
