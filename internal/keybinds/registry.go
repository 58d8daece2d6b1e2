package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unbind removes every key bound to action in context and returns how many were removed
func (r *Registry) Unbind(context Context, action Action) int {
	removed := 0
	for key, act := range r.bindings[context] {
		if act == action {
			delete(r.bindings[context], key)
			removed++
		}
	}
	return removed
}

// Match attempts to match a key to an action in the given context.
// Contexts are checked from the specific one up through its parents to global.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	for _, c := range chain(context) {
		if action, ok := r.bindings[c][key]; ok {
			return action, true
		}
	}
	return "", false
}

// GetBinding returns the key(s) bound to an action, searching the context chain.
// Keys are sorted so output is stable.
func (r *Registry) GetBinding(context Context, action Action) []string {
	for _, c := range chain(context) {
		var keys []string
		for key, act := range r.bindings[c] {
			if act == action {
				keys = append(keys, key)
			}
		}
		if len(keys) > 0 {
			sort.Strings(keys)
			return keys
		}
	}
	return nil
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns the bindings declared directly in a context, sorted by action then key
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding
	for key, action := range r.bindings[context] {
		bindings = append(bindings, Binding{Key: key, Action: action, Context: context})
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Action != bindings[j].Action {
			return bindings[i].Action < bindings[j].Action
		}
		return bindings[i].Key < bindings[j].Key
	})
	return bindings
}

// chain returns context followed by its ancestors, ending with global
func chain(context Context) []Context {
	out := []Context{context}
	seen := map[Context]bool{context: true}
	for {
		parent, ok := parents[context]
		if !ok || seen[parent] {
			break
		}
		out = append(out, parent)
		seen[parent] = true
		context = parent
	}
	if !seen[ContextGlobal] {
		out = append(out, ContextGlobal)
	}
	return out
}
