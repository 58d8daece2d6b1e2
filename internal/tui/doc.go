/*
Package tui implements the terminal user interface for folio.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Presentation state plus the injected shell.State
  - Update: Resolves each key or click to one dispatch into shell.State
  - View: Renders the current snapshot to the terminal

# Key Components

  - model.go: Model struct, construction, Update and View
  - keys.go: Keyboard routing through the keybinds registry
  - mouse.go: Click and wheel handling through bubblezone hit regions
  - render.go: Activity bar, sidebar, tab strip, editor and status bar
  - panels.go: Panel bodies, the welcome screen and the keybindings panel
  - overlay.go: Code and demo overlays, copy confirmation
  - palette.go: Quick open palette

# State Management

Which tabs are open, which sidebar view is showing and which overlay is up
live in shell.State. The model only keeps what is needed to draw it:
focus, the sidebar cursor, viewport scroll, hover and window size.

# Input Routing

The quick open palette, when open, receives all input. Otherwise a visible
overlay is modal: keys go to the overlay context and clicks outside the
overlay box hide it. Without an overlay, keys are matched in the sidebar or
editor context depending on focus.
*/
package tui
