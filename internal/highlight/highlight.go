// Package highlight renders source code with chroma token colors applied
// through lipgloss, one styled string per line.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter colors code using a chroma style
type Highlighter struct {
	style *chroma.Style
	cache map[chroma.TokenType]lipgloss.Style
}

// New returns a highlighter for the named chroma style (fallback when unknown)
func New(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{style: style, cache: make(map[chroma.TokenType]lipgloss.Style)}
}

// StyleName returns the resolved chroma style name
func (h *Highlighter) StyleName() string {
	return h.style.Name
}

// Lexer picks a lexer by language name, then by content, then the fallback
func Lexer(language, code string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil && language != "" {
		lexer = lexers.Match("file." + language)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// TabWidth is the number of spaces a tab expands to
const TabWidth = 4

// Lines returns the highlighted code split into lines (no trailing empty line).
// Tabs are expanded to TabWidth spaces.
func (h *Highlighter) Lines(code, language string) []string {
	code = strings.ReplaceAll(strings.TrimRight(code, "\n"), "\t", strings.Repeat(" ", TabWidth))
	if code == "" {
		return []string{""}
	}

	iter, err := Lexer(language, code).Tokenise(nil, code)
	if err != nil {
		return strings.Split(code, "\n")
	}

	var lines []string
	var current strings.Builder
	for token := iter(); token != chroma.EOF; token = iter() {
		if token.Value == "" {
			continue
		}
		style := h.styleFor(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if part != "" {
				current.WriteString(style.Render(part))
			}
			if i < len(parts)-1 {
				lines = append(lines, current.String())
				current.Reset()
			}
		}
	}
	// Lexers with EnsureNL leave an empty line after the final newline
	if current.Len() > 0 || len(lines) == 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Render returns highlighted code with a right-aligned line number gutter
func (h *Highlighter) Render(code, language string) string {
	lines := h.Lines(code, language)
	width := len(fmt.Sprint(len(lines)))
	gutter := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#5c6370"})

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(gutter.Render(fmt.Sprintf("%*d ", width, i+1)))
		sb.WriteString(line)
	}
	return sb.String()
}

func (h *Highlighter) styleFor(tt chroma.TokenType) lipgloss.Style {
	if s, ok := h.cache[tt]; ok {
		return s
	}

	entry := h.style.Get(tt)
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}

	h.cache[tt] = s
	return s
}
