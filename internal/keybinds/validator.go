package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
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

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys maps a key to the only action it may trigger, per context
	reservedKeys map[string]map[Context]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]map[Context]Action{
			"ctrl+c": {ContextGlobal: ActionQuitForce},
			"esc":    {ContextOverlay: ActionCloseOverlay, ContextPalette: ActionPaletteCancel},
		},
	}
}

// ValidateConfig checks a user config before it is applied
func (v *Validator) ValidateConfig(config Config) *ValidationResult {
	result := &ValidationResult{}

	for _, context := range sortedContexts(config) {
		actions := config[context]
		if !IsKnownContext(context) {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: context,
				Message: "unknown context",
			})
			continue
		}

		keyCount := make(map[string]int)
		for _, action := range sortedActions(actions) {
			if !IsKnownAction(action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     actions[action],
					Message: fmt.Sprintf("unknown action '%s'", action),
				})
				continue
			}
			for _, key := range SplitKeys(actions[action]) {
				if err := ValidateKey(key); err != nil {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "invalid",
						Context: context,
						Key:     key,
						Message: err.Error(),
					})
					continue
				}
				keyCount[key]++
			}
		}

		for _, key := range sortedKeys(keyCount) {
			if count := keyCount[key]; count > 1 {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "conflict",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("key bound %d times", count),
				})
			}
		}
	}

	return result
}

// ValidateRegistry checks the effective bindings for reserved keys and shadowing
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{}
	v.checkReservedKeys(registry, result)
	v.checkShadowing(registry, result)
	return result
}

// checkReservedKeys warns when a reserved key triggers anything but its reserved action
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, key := range sortedReserved(v.reservedKeys) {
		for _, context := range Contexts {
			action, ok := registry.bindings[context][key]
			if !ok {
				continue
			}
			if want, reserved := v.reservedKeys[key][context]; reserved && action != want {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("reserved key rebound to %s (expected %s)", action, want),
				})
			}
		}
		if _, bound := registry.bindings[ContextGlobal][key]; !bound && v.reservedKeys[key][ContextGlobal] != "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: ContextGlobal,
				Key:     key,
				Message: "reserved key unbound",
			})
		}
	}
}

// checkShadowing checks for bindings that shadow a different action in a parent context
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts {
		ancestors := chain(context)[1:]
		for _, b := range registry.ListBindings(context) {
			for _, parent := range ancestors {
				parentAction, ok := registry.bindings[parent][b.Key]
				if !ok {
					continue
				}
				if parentAction != b.Action {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: context,
						Key:     b.Key,
						Message: fmt.Sprintf("shadows %s binding (%s -> %s)", parent, parentAction, b.Action),
					})
				}
				break
			}
		}
	}
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}
	if strings.ContainsAny(key, " \t") {
		return fmt.Errorf("key contains whitespace: %q", key)
	}

	return nil
}

func sortedContexts(config Config) []Context {
	out := make([]Context, 0, len(config))
	for c := range config {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedActions(actions map[Action]string) []Action {
	out := make([]Action, 0, len(actions))
	for a := range actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedReserved(m map[string]map[Context]Action) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
