package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/studiowebux/folio/internal/config"
	"github.com/studiowebux/folio/internal/icons"
	"github.com/studiowebux/folio/internal/shell"
)

// ValidationError describes one problem found in a portfolio
type ValidationError struct {
	Type    string // "duplicate", "invalid", "missing", "warning"
	Where   string // e.g. "panel about" or "section projects"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Where, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

func (r *ValidationResult) addError(typ, where, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Type: typ, Where: where, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(where, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Type: "warning", Where: where, Message: fmt.Sprintf(format, args...)})
}

// Validate checks ids, references, icon and view keys, and snippet files
func (p *Portfolio) Validate() *ValidationResult {
	result := &ValidationResult{}

	panelIDs := make(map[string]bool, len(p.Panels))
	for _, panel := range p.Panels {
		where := "panel " + panel.ID
		if panel.ID == "" {
			result.addError("invalid", "panel", "empty id (label %q)", panel.Label)
			continue
		}
		if panelIDs[panel.ID] {
			result.addError("duplicate", where, "id declared more than once")
		}
		panelIDs[panel.ID] = true

		if panel.Label == "" {
			result.addWarning(where, "no label, the id will be shown instead")
		}
		if !icons.Known(panel.Icon) {
			result.addError("invalid", where, "unknown icon %q", panel.Icon)
		}
		p.validateSnippets(result, panel)
		validateDemos(result, panel)
	}

	views := make(map[shell.View]bool, len(p.Sections))
	for _, s := range p.Sections {
		where := "section " + string(s.View)
		if _, ok := shell.ParseView(string(s.View)); !ok {
			result.addError("invalid", where, "unknown view %q", s.View)
			continue
		}
		if views[s.View] {
			result.addError("duplicate", where, "view declared more than once")
		}
		views[s.View] = true

		if !icons.Known(s.Icon) {
			result.addError("invalid", where, "unknown icon %q", s.Icon)
		}
		if s.Landing != "" && !panelIDs[s.Landing] {
			result.addError("missing", where, "landing panel %q does not exist", s.Landing)
		}
		for _, id := range s.Entries {
			if !panelIDs[id] {
				result.addError("missing", where, "entry %q does not exist", id)
			}
		}
		if len(s.Entries) == 0 && s.Landing == "" {
			result.addWarning(where, "no entries and no landing panel")
		}
	}

	return result
}

func (p *Portfolio) validateSnippets(result *ValidationResult, panel Panel) {
	seen := make(map[string]bool, len(panel.Snippets))
	for _, s := range panel.Snippets {
		where := fmt.Sprintf("panel %s snippet %s", panel.ID, s.ID)
		if s.ID == "" {
			result.addError("invalid", "panel "+panel.ID, "snippet with empty id")
			continue
		}
		if seen[s.ID] {
			result.addError("duplicate", where, "snippet id declared more than once")
		}
		seen[s.ID] = true

		if s.Code == "" && s.File == "" {
			result.addError("missing", where, "neither code nor file is set")
			continue
		}
		if s.Code == "" {
			path, err := config.ResolvePath(s.File, p.baseDir)
			if err != nil {
				result.addError("invalid", where, "cannot resolve %q: %v", s.File, err)
				continue
			}
			if _, err := os.Stat(path); err != nil {
				result.addError("missing", where, "file %s not found", path)
			}
		}
	}
}

func validateDemos(result *ValidationResult, panel Panel) {
	for _, d := range panel.Demos {
		where := fmt.Sprintf("panel %s demo %s", panel.ID, d.ID)
		if d.ID == "" {
			result.addError("invalid", "panel "+panel.ID, "demo with empty id")
			continue
		}
		if !strings.HasPrefix(d.URL, "http://") && !strings.HasPrefix(d.URL, "https://") {
			result.addError("invalid", where, "url %q must start with http:// or https://", d.URL)
		}
	}
}
