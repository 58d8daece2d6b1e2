/*
Package keybinds provides customizable keyboard binding management.

# Key Concepts

Context Hierarchy:
  - Global: Bindings available everywhere
  - Shell: Main editor shell, regardless of focus
  - Sidebar / Editor: Bindings for the focused area
  - Overlay: Code and demo preview overlays
  - Palette: Quick open input

Lookups walk the hierarchy from the specific context up to global, so a
specific binding shadows the same key higher up.

# Configuration File Format

Overrides live in keybinds.json. Comments and trailing commas are allowed.
Each context maps an action to a comma separated list of keys, replacing
the default keys for that action:

	{
	  // vim users
	  "sidebar": {
	    "navigate_up": "k,up",
	    "navigate_down": "j,down",
	  },
	  "shell": {
	    "quick_open": "ctrl+p,ctrl+o"
	  }
	}

# Reserved Keys

ctrl+c always force quits and esc always closes overlays. Rebinding them
produces warnings.

# Example Usage

	registry, err := LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	if action, ok := registry.Match(ContextSidebar, "enter"); ok {
		// Handle action
	}
*/
package keybinds
