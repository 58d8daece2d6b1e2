package shell

// State owns the shell's mutable UI state. One holder per shell instance.
type State struct {
	Tabs    *TabRegistry
	Sidebar *SidebarController
	Overlay *OverlayHost
}

// NewState creates an empty holder: no tabs, no view, no overlay
func NewState() *State {
	return &State{
		Tabs:    NewTabRegistry(),
		Sidebar: NewSidebarController(),
		Overlay: NewOverlayHost(),
	}
}
