package keybinds

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding overrides: context -> action -> keys.
// Keys are comma separated ("k,up").
type Config map[Context]map[Action]string

// ParseConfig decodes a keybinds.json document. Comments and trailing
// commas are accepted.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return config, nil
}

// LoadConfig loads keybinding configuration from a file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// SplitKeys splits a comma separated key list, trimming blanks
func SplitKeys(keys string) []string {
	var out []string
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ApplyConfig applies user configuration to a registry. For each configured
// action the default keys in that context are replaced by the listed ones;
// an empty list unbinds the action.
func ApplyConfig(registry *Registry, config Config) {
	for context, actions := range config {
		for action, keys := range actions {
			registry.Unbind(context, action)
			registry.RegisterMultiple(context, SplitKeys(keys), action)
		}
	}
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry, _, err := LoadAndValidate(configPath)
	return registry, err
}

// LoadAndValidate is LoadOrDefault plus a validation report of the config
// and the resulting registry. A config with validation errors is rejected.
func LoadAndValidate(configPath string) (*Registry, *ValidationResult, error) {
	registry := NewDefaultRegistry()
	validator := NewValidator()

	config, err := LoadConfig(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return registry, validator.ValidateRegistry(registry), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	result := validator.ValidateConfig(config)
	if result.HasErrors() {
		return nil, result, fmt.Errorf("invalid keybinds.json:\n%s", result.String())
	}

	ApplyConfig(registry, config)
	regResult := validator.ValidateRegistry(registry)
	result.Errors = append(result.Errors, regResult.Errors...)
	result.Warnings = append(result.Warnings, regResult.Warnings...)
	return registry, result, nil
}

// ExportDefaults exports the default keybindings as a config
func ExportDefaults() Config {
	registry := NewDefaultRegistry()
	config := make(Config)
	for _, context := range Contexts {
		byAction := make(map[Action][]string)
		for _, b := range registry.ListBindings(context) {
			byAction[b.Action] = append(byAction[b.Action], b.Key)
		}
		if len(byAction) == 0 {
			continue
		}
		config[context] = make(map[Action]string, len(byAction))
		for action, keys := range byAction {
			config[context][action] = strings.Join(keys, ",")
		}
	}
	return config
}
