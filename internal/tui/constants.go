package tui

import "time"

// UI Layout Constants

const (
	// Modal Dimensions
	ModalWidthMargin  = 6   // Horizontal margin around overlays (m.width - 6)
	ModalHeightMargin = 4   // Vertical margin around overlays (m.height - 4)
	OverlayMaxWidth   = 100 // Overlays never grow wider than this
	OverlayMinHeight  = 8

	// Modal Content Calculations
	ModalOverheadLines = 6 // Border (2) + title (1) + blank (1) + footer (1) + blank (1)

	// Layout
	ActivityBarWidth   = 4 // Icon column on the far left
	BorderWidth        = 2 // Width or height consumed by a rounded border
	StatusBarHeight    = 1
	TabStripHeight     = 2 // Tab labels + separator
	MinEditorWidth     = 20
	PaletteWidth       = 60
	PaletteMaxResults  = 15
	PaletteChromeLines = 9 // Top margin, border, title, input, blank, above/more rows

	// Timing
	StatusTimeout = 3 * time.Second
)

// KeybindingsPanelID is the built-in panel listing every keybinding
const KeybindingsPanelID = "keybindings"
