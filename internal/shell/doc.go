/*
Package shell holds the editor-shell state: open tabs, the sidebar view and
the modal overlay.

# Components

  - TabRegistry: ordered set of open tabs plus the active tab pointer
  - SidebarController: selected sidebar view and collapsed flag
  - OverlayHost: at most one code or demo overlay
  - State: the holder bundling the three, injected into the TUI

# Invariants

Tab ids are unique within the open set, the active id always names an open
tab (or is empty when nothing is open) and insertion order is render order.
SetActive validates membership, so no call sequence can leave a dangling
active id.

# Threading Model

None. All mutation happens on the bubbletea event loop, one dispatch per
UI event, so the types here carry no locks.

# Example Usage

	st := shell.NewState()
	st.Sidebar.OpenView(shell.ViewProjects)
	st.Tabs.Open(shell.Tab{ID: "about", Label: "about.md", ContentRef: "about"})

	if tab, ok := st.Tabs.Active(); ok {
		render(tab.ContentRef)
	}
*/
package shell
