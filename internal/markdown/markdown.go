// Package markdown renders panel bodies for the terminal with glamour.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer caches one glamour renderer per wrap width
type Renderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewRenderer creates a renderer for a glamour standard style (dark, light, notty, ascii)
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render returns the markdown rendered for the given width. If glamour
// fails the source is returned unchanged so the panel never comes up blank.
func (r *Renderer) Render(md string, width int) string {
	if width < 20 {
		width = 20
	}
	tr, err := r.renderer(width)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}
