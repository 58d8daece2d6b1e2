package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if v.reservedKeys["ctrl+c"][ContextGlobal] != ActionQuitForce {
		t.Error("Expected ctrl+c to be reserved for quit_force")
	}

	if v.reservedKeys["esc"][ContextOverlay] != ActionCloseOverlay {
		t.Error("Expected esc to be reserved for close_overlay")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextSidebar,
				Key:     "j",
				Message: "key bound 2 times",
			},
			expected: "[conflict] j in context 'sidebar': key bound 2 times",
		},
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Key:     "",
				Message: "key cannot be empty",
			},
			expected: "[invalid]  in context 'global': key cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	empty := &ValidationResult{}
	if empty.String() != "No issues found" {
		t.Errorf("empty result = %q", empty.String())
	}

	r := &ValidationResult{
		Errors:   []ValidationError{{Type: "conflict", Context: ContextShell, Key: "w", Message: "key bound 2 times"}},
		Warnings: []ValidationError{{Type: "warning", Context: ContextEditor, Key: "q", Message: "shadows"}},
	}
	out := r.String()
	for _, want := range []string{"Errors (1):", "Warnings (1):", "[conflict] w in context 'shell'"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}

func TestValidateRegistry_DefaultsClean(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("default bindings should validate cleanly:\n%s", result.String())
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErrors []string
	}{
		{
			name:   "valid override",
			config: Config{ContextSidebar: {ActionNavigateUp: "k,up"}},
		},
		{
			name:       "unknown context",
			config:     Config{"nowhere": {ActionQuit: "q"}},
			wantErrors: []string{"[invalid]  in context 'nowhere': unknown context"},
		},
		{
			name:       "unknown action",
			config:     Config{ContextShell: {"fly": "f"}},
			wantErrors: []string{"[invalid] f in context 'shell': unknown action 'fly'"},
		},
		{
			name: "duplicate key",
			config: Config{ContextEditor: {
				ActionPreviewCode: "x",
				ActionPreviewDemo: "x",
			}},
			wantErrors: []string{"[conflict] x in context 'editor': key bound 2 times"},
		},
		{
			name:       "bare modifier",
			config:     Config{ContextShell: {ActionQuickOpen: "ctrl+"}},
			wantErrors: []string{"[invalid] ctrl+ in context 'shell': modifier without key: ctrl+"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewValidator().ValidateConfig(tt.config)

			var got []string
			for _, e := range result.Errors {
				got = append(got, e.Error())
			}
			if len(got) != len(tt.wantErrors) {
				t.Fatalf("errors = %v, want %v", got, tt.wantErrors)
			}
			for i := range got {
				if got[i] != tt.wantErrors[i] {
					t.Errorf("error[%d] = %q, want %q", i, got[i], tt.wantErrors[i])
				}
			}
		})
	}
}

func TestValidateRegistry_ReservedKeys(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextOverlay, "esc", ActionCopy)
	r.Register(ContextGlobal, "ctrl+c", ActionQuit)

	result := NewValidator().ValidateRegistry(r)

	var reserved int
	for _, w := range result.Warnings {
		if strings.Contains(w.Message, "reserved key rebound") {
			reserved++
		}
	}
	if reserved != 2 {
		t.Errorf("expected 2 reserved key warnings, got:\n%s", result.String())
	}
}

func TestValidateRegistry_ReservedKeyUnbound(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextGlobal, ActionQuitForce)

	result := NewValidator().ValidateRegistry(r)

	if !strings.Contains(result.String(), "reserved key unbound") {
		t.Errorf("expected unbound warning:\n%s", result.String())
	}
}

func TestValidateRegistry_Shadowing(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextSidebar, "w", ActionSelect)

	result := NewValidator().ValidateRegistry(r)

	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got:\n%s", result.String())
	}
	want := "[warning] w in context 'sidebar': shadows shell binding (close_tab -> select)"
	if got := result.Warnings[0].Error(); got != want {
		t.Errorf("warning = %q, want %q", got, want)
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+p", false},
		{"alt+1", false},
		{"", true},
		{"alt+", true},
		{"ctrl p", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
