package shell

import "github.com/studiowebux/folio/internal/icons"

// Tab is an open content panel in the tab strip
type Tab struct {
	ID         string    // Stable identifier, unique within the open set
	Label      string    // Display string
	ContentRef string    // Opaque reference to the panel that renders this tab
	Icon       icons.Key // Optional icon key (icons.KeyNone when unset)
}

// TabRegistry tracks the open tabs and which one is active
type TabRegistry struct {
	tabs   []Tab
	active string // "" when no tab is open
}

// NewTabRegistry creates an empty registry
func NewTabRegistry() *TabRegistry {
	return &TabRegistry{tabs: []Tab{}}
}

// Open focuses the tab with tab.ID, appending it first if it is not open yet.
// An already open tab keeps its original label and content reference.
func (r *TabRegistry) Open(tab Tab) {
	if tab.ID == "" {
		return
	}
	if !r.Has(tab.ID) {
		r.tabs = append(r.tabs, tab)
	}
	r.active = tab.ID
}

// Close removes the tab with the given id, returning false when it was not open.
// Closing the active tab re-elects the last remaining tab.
func (r *TabRegistry) Close(id string) bool {
	idx := r.Index(id)
	if idx < 0 {
		return false
	}

	r.tabs = append(r.tabs[:idx], r.tabs[idx+1:]...)

	if r.active == id {
		r.active = r.lastID()
	}
	return true
}

// CloseActive closes the active tab, if any
func (r *TabRegistry) CloseActive() bool {
	if r.active == "" {
		return false
	}
	return r.Close(r.active)
}

// CloseOthers closes every tab except id, which becomes active.
// Returns the number of closed tabs; nothing changes when id is not open.
func (r *TabRegistry) CloseOthers(id string) int {
	idx := r.Index(id)
	if idx < 0 {
		return 0
	}
	closed := len(r.tabs) - 1
	r.tabs = []Tab{r.tabs[idx]}
	r.active = id
	return closed
}

// SetActive focuses an open tab. Ids that are not open are rejected and
// leave the registry unchanged.
func (r *TabRegistry) SetActive(id string) bool {
	if !r.Has(id) {
		return false
	}
	r.active = id
	return true
}

// Next focuses the tab after the active one (wraps around)
func (r *TabRegistry) Next() bool {
	return r.shift(1)
}

// Prev focuses the tab before the active one (wraps around)
func (r *TabRegistry) Prev() bool {
	return r.shift(-1)
}

func (r *TabRegistry) shift(delta int) bool {
	if len(r.tabs) < 2 {
		return false
	}
	idx := r.Index(r.active)
	if idx < 0 {
		idx = 0
	}
	idx = (idx + delta + len(r.tabs)) % len(r.tabs)
	return r.SetActive(r.tabs[idx].ID)
}

// List returns a copy of the open tabs in insertion order
func (r *TabRegistry) List() []Tab {
	tabs := make([]Tab, len(r.tabs))
	copy(tabs, r.tabs)
	return tabs
}

// Active returns the active tab, or false when no tab is open
func (r *TabRegistry) Active() (Tab, bool) {
	idx := r.Index(r.active)
	if idx < 0 {
		return Tab{}, false
	}
	return r.tabs[idx], true
}

// ActiveID returns the active tab id ("" when no tab is open)
func (r *TabRegistry) ActiveID() string {
	return r.active
}

// Len returns the number of open tabs
func (r *TabRegistry) Len() int {
	return len(r.tabs)
}

// Has reports whether a tab with the given id is open
func (r *TabRegistry) Has(id string) bool {
	return r.Index(id) >= 0
}

// Index returns the position of id in the tab strip, or -1
func (r *TabRegistry) Index(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range r.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *TabRegistry) lastID() string {
	if len(r.tabs) == 0 {
		return ""
	}
	return r.tabs[len(r.tabs)-1].ID
}
