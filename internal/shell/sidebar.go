package shell

// View identifies a sidebar view
type View string

const (
	ViewNone       View = ""
	ViewExplorer   View = "explorer"
	ViewProjects   View = "projects"
	ViewSkills     View = "skills"
	ViewExperience View = "experience"
	ViewContact    View = "contact"
)

// Views lists every selectable view in activity bar order
var Views = []View{ViewExplorer, ViewProjects, ViewSkills, ViewExperience, ViewContact}

// ParseView maps a config string onto a View
func ParseView(s string) (View, bool) {
	for _, v := range Views {
		if string(v) == s {
			return v, true
		}
	}
	return ViewNone, false
}

// SidebarController tracks the selected sidebar view and whether the
// sidebar is collapsed. The two are independent except for OpenView.
type SidebarController struct {
	active    View
	collapsed bool
}

// NewSidebarController creates a controller with no view selected
func NewSidebarController() *SidebarController {
	return &SidebarController{}
}

// OpenView selects a view and always un-collapses the sidebar
func (s *SidebarController) OpenView(v View) {
	s.active = v
	s.collapsed = false
}

// CloseView clears the selected view; collapsed is left alone
func (s *SidebarController) CloseView() {
	s.active = ViewNone
}

// ToggleCollapsed flips the collapsed flag; the selected view is kept
func (s *SidebarController) ToggleCollapsed() {
	s.collapsed = !s.collapsed
}

// ActiveView returns the selected view (ViewNone if none)
func (s *SidebarController) ActiveView() View {
	return s.active
}

// Collapsed reports whether the sidebar is collapsed
func (s *SidebarController) Collapsed() bool {
	return s.collapsed
}

// Expanded reports whether a view is selected and visible
func (s *SidebarController) Expanded() bool {
	return s.active != ViewNone && !s.collapsed
}
