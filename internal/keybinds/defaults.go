package keybinds

import "fmt"

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerShellBindings(r)
	registerSidebarBindings(r)
	registerEditorBindings(r)
	registerOverlayBindings(r)
	registerPaletteBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerShellBindings sets up bindings shared by sidebar and editor focus
func registerShellBindings(r *Registry) {
	r.Register(ContextShell, "q", ActionQuit)
	r.Register(ContextShell, "tab", ActionSwitchFocus)
	r.Register(ContextShell, "ctrl+b", ActionToggleSidebar)
	r.Register(ContextShell, "esc", ActionCloseView)
	r.Register(ContextShell, "ctrl+down", ActionNextView)
	r.Register(ContextShell, "ctrl+up", ActionPrevView)
	for i, action := range viewActions {
		r.Register(ContextShell, fmt.Sprintf("alt+%d", i+1), action)
	}
	r.RegisterMultiple(ContextShell, []string{"ctrl+right", "]"}, ActionNextTab)
	r.RegisterMultiple(ContextShell, []string{"ctrl+left", "["}, ActionPrevTab)
	r.Register(ContextShell, "w", ActionCloseTab)
	r.Register(ContextShell, "W", ActionCloseOtherTabs)
	r.Register(ContextShell, "ctrl+p", ActionQuickOpen)
	r.Register(ContextShell, "?", ActionShowKeybindings)
}

// registerSidebarBindings sets up list navigation for the sidebar
func registerSidebarBindings(r *Registry) {
	r.RegisterMultiple(ContextSidebar, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextSidebar, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextSidebar, "pgup", ActionPageUp)
	r.Register(ContextSidebar, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextSidebar, []string{"home", "g"}, ActionGoToTop)
	r.RegisterMultiple(ContextSidebar, []string{"end", "G"}, ActionGoToBottom)
	r.RegisterMultiple(ContextSidebar, []string{"enter", "l"}, ActionSelect)
	for i, action := range viewActions {
		r.Register(ContextSidebar, fmt.Sprintf("%d", i+1), action)
	}
}

// registerEditorBindings sets up scrolling and previews for the editor area
func registerEditorBindings(r *Registry) {
	r.RegisterMultiple(ContextEditor, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextEditor, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextEditor, "pgup", ActionPageUp)
	r.Register(ContextEditor, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextEditor, []string{"home", "g"}, ActionGoToTop)
	r.RegisterMultiple(ContextEditor, []string{"end", "G"}, ActionGoToBottom)
	r.Register(ContextEditor, "s", ActionPreviewCode)
	r.Register(ContextEditor, "d", ActionPreviewDemo)
	for i := 1; i <= 9; i++ {
		r.Register(ContextEditor, fmt.Sprintf("%d", i), ActionPreviewSnippet)
	}
}

// registerOverlayBindings sets up bindings for code and demo overlays
func registerOverlayBindings(r *Registry) {
	r.RegisterMultiple(ContextOverlay, []string{"esc", "q"}, ActionCloseOverlay)
	r.RegisterMultiple(ContextOverlay, []string{"c", "y"}, ActionCopy)
	r.RegisterMultiple(ContextOverlay, []string{"n", "tab"}, ActionNextSnippet)
	r.RegisterMultiple(ContextOverlay, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextOverlay, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextOverlay, "pgup", ActionPageUp)
	r.Register(ContextOverlay, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextOverlay, []string{"home", "g"}, ActionGoToTop)
	r.RegisterMultiple(ContextOverlay, []string{"end", "G"}, ActionGoToBottom)
}

// registerPaletteBindings sets up quick open bindings. Printable keys are
// left unbound so they reach the text input.
func registerPaletteBindings(r *Registry) {
	r.Register(ContextPalette, "enter", ActionPaletteSubmit)
	r.Register(ContextPalette, "esc", ActionPaletteCancel)
	r.RegisterMultiple(ContextPalette, []string{"up", "ctrl+k"}, ActionPaletteUp)
	r.RegisterMultiple(ContextPalette, []string{"down", "ctrl+j"}, ActionPaletteDown)
}
