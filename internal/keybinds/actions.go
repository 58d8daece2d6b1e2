package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal  Context = "global"  // Available everywhere
	ContextShell   Context = "shell"   // Shell without an overlay, any focus
	ContextSidebar Context = "sidebar" // Sidebar focused
	ContextEditor  Context = "editor"  // Editor area focused
	ContextOverlay Context = "overlay" // Code or demo overlay visible
	ContextPalette Context = "palette" // Quick open input
)

// Contexts lists every context in display order
var Contexts = []Context{ContextGlobal, ContextShell, ContextSidebar, ContextEditor, ContextOverlay, ContextPalette}

// parents defines lookup fallback: specific -> ... -> global
var parents = map[Context]Context{
	ContextShell:   ContextGlobal,
	ContextSidebar: ContextShell,
	ContextEditor:  ContextShell,
	ContextOverlay: ContextGlobal,
	ContextPalette: ContextGlobal,
}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Shell actions
	ActionSwitchFocus     Action = "switch_focus"     // Toggle focus between sidebar and editor
	ActionToggleSidebar   Action = "toggle_sidebar"   // Collapse/expand the sidebar
	ActionCloseView       Action = "close_view"       // Deselect the sidebar view
	ActionNextView        Action = "next_view"        // Select the next sidebar view
	ActionPrevView        Action = "prev_view"        // Select the previous sidebar view
	ActionView1           Action = "view_1"           // Select sidebar view 1
	ActionView2           Action = "view_2"           // Select sidebar view 2
	ActionView3           Action = "view_3"           // Select sidebar view 3
	ActionView4           Action = "view_4"           // Select sidebar view 4
	ActionView5           Action = "view_5"           // Select sidebar view 5
	ActionNextTab         Action = "next_tab"         // Focus the next tab
	ActionPrevTab         Action = "prev_tab"         // Focus the previous tab
	ActionCloseTab        Action = "close_tab"        // Close the active tab
	ActionCloseOtherTabs  Action = "close_other_tabs" // Close every tab but the active one
	ActionQuickOpen       Action = "quick_open"       // Open the quick open palette
	ActionShowKeybindings Action = "show_keybindings" // Open the keybindings panel

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move up one item / scroll up
	ActionNavigateDown Action = "navigate_down" // Move down one item / scroll down
	ActionPageUp       Action = "page_up"       // Move up one page
	ActionPageDown     Action = "page_down"     // Move down one page
	ActionGoToTop      Action = "go_to_top"     // Go to top
	ActionGoToBottom   Action = "go_to_bottom"  // Go to bottom
	ActionSelect       Action = "select"        // Open the selected sidebar entry

	// Editor actions
	ActionPreviewCode    Action = "preview_code"    // Preview the first snippet of the active panel
	ActionPreviewDemo    Action = "preview_demo"    // Preview the first demo of the active panel
	ActionPreviewSnippet Action = "preview_snippet" // Preview the snippet numbered by the pressed digit
	ActionNextSnippet    Action = "next_snippet"    // Cycle snippets inside the code overlay

	// Overlay actions
	ActionCloseOverlay Action = "close_overlay" // Close the overlay
	ActionCopy         Action = "copy"          // Copy snippet code or demo URL

	// Palette actions
	ActionPaletteSubmit Action = "palette_submit" // Open the highlighted match
	ActionPaletteCancel Action = "palette_cancel" // Close the palette
	ActionPaletteUp     Action = "palette_up"     // Highlight the previous match
	ActionPaletteDown   Action = "palette_down"   // Highlight the next match
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:            {ActionQuit, "Quit", "Global"},
	ActionQuitForce:       {ActionQuitForce, "Force quit", "Global"},
	ActionSwitchFocus:     {ActionSwitchFocus, "Switch focus (sidebar/editor)", "Shell"},
	ActionToggleSidebar:   {ActionToggleSidebar, "Collapse/expand sidebar", "Shell"},
	ActionCloseView:       {ActionCloseView, "Close sidebar view", "Shell"},
	ActionNextView:        {ActionNextView, "Next sidebar view", "Shell"},
	ActionPrevView:        {ActionPrevView, "Previous sidebar view", "Shell"},
	ActionView1:           {ActionView1, "Sidebar view 1", "Shell"},
	ActionView2:           {ActionView2, "Sidebar view 2", "Shell"},
	ActionView3:           {ActionView3, "Sidebar view 3", "Shell"},
	ActionView4:           {ActionView4, "Sidebar view 4", "Shell"},
	ActionView5:           {ActionView5, "Sidebar view 5", "Shell"},
	ActionNextTab:         {ActionNextTab, "Next tab", "Tabs"},
	ActionPrevTab:         {ActionPrevTab, "Previous tab", "Tabs"},
	ActionCloseTab:        {ActionCloseTab, "Close tab", "Tabs"},
	ActionCloseOtherTabs:  {ActionCloseOtherTabs, "Close other tabs", "Tabs"},
	ActionQuickOpen:       {ActionQuickOpen, "Quick open", "Shell"},
	ActionShowKeybindings: {ActionShowKeybindings, "Show keybindings", "Shell"},
	ActionNavigateUp:      {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:    {ActionNavigateDown, "Move down", "Navigation"},
	ActionPageUp:          {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:        {ActionPageDown, "Page down", "Navigation"},
	ActionGoToTop:         {ActionGoToTop, "Go to top", "Navigation"},
	ActionGoToBottom:      {ActionGoToBottom, "Go to bottom", "Navigation"},
	ActionSelect:          {ActionSelect, "Open entry", "Navigation"},
	ActionPreviewCode:     {ActionPreviewCode, "Preview code", "Editor"},
	ActionPreviewDemo:     {ActionPreviewDemo, "Preview demo", "Editor"},
	ActionPreviewSnippet:  {ActionPreviewSnippet, "Preview snippet n", "Editor"},
	ActionNextSnippet:     {ActionNextSnippet, "Next snippet", "Overlay"},
	ActionCloseOverlay:    {ActionCloseOverlay, "Close overlay", "Overlay"},
	ActionCopy:            {ActionCopy, "Copy to clipboard", "Overlay"},
	ActionPaletteSubmit:   {ActionPaletteSubmit, "Open match", "Palette"},
	ActionPaletteCancel:   {ActionPaletteCancel, "Cancel", "Palette"},
	ActionPaletteUp:       {ActionPaletteUp, "Previous match", "Palette"},
	ActionPaletteDown:     {ActionPaletteDown, "Next match", "Palette"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{Action: action, Description: string(action), Category: "Other"}
}

// IsKnownAction reports whether the action is defined
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsKnownContext reports whether the context is defined
func IsKnownContext(context Context) bool {
	for _, c := range Contexts {
		if c == context {
			return true
		}
	}
	return false
}

var viewActions = []Action{ActionView1, ActionView2, ActionView3, ActionView4, ActionView5}

// ViewIndex returns the zero-based sidebar view slot selected by a view_N action
func ViewIndex(action Action) (int, bool) {
	for i, a := range viewActions {
		if a == action {
			return i, true
		}
	}
	return 0, false
}
