package shell

// OverlayKind is the type of modal overlay
type OverlayKind string

const (
	OverlayCode OverlayKind = "code"
	OverlayDemo OverlayKind = "demo"
)

// Overlay is a modal layer drawn above the shell
type Overlay struct {
	Kind      OverlayKind
	SubjectID string
	Payload   any
}

// OverlayHost holds at most one overlay. Showing a new one replaces the old.
type OverlayHost struct {
	current    *Overlay
	generation uint64
}

// NewOverlayHost creates a host with nothing shown
func NewOverlayHost() *OverlayHost {
	return &OverlayHost{}
}

// Show replaces the current overlay unconditionally
func (h *OverlayHost) Show(kind OverlayKind, subjectID string, payload any) {
	h.current = &Overlay{Kind: kind, SubjectID: subjectID, Payload: payload}
	h.generation++
}

// Hide clears the overlay. Returns false if nothing was shown.
func (h *OverlayHost) Hide() bool {
	if h.current == nil {
		return false
	}
	h.current = nil
	h.generation++
	return true
}

// Current returns the overlay being shown
func (h *OverlayHost) Current() (Overlay, bool) {
	if h.current == nil {
		return Overlay{}, false
	}
	return *h.current, true
}

// Visible reports whether an overlay is shown
func (h *OverlayHost) Visible() bool {
	return h.current != nil
}

// Generation changes every time an overlay is shown or hidden.
// Work tied to one overlay instance compares it to detect teardown.
func (h *OverlayHost) Generation() uint64 {
	return h.generation
}
