// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Merges global and local configs and detects binding conflicts

package keybindings

import (
	"github.com/mauromedda/torus-go/internal/config"
)

// ConflictInfo describes a binding conflict where multiple actions share a
// key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "ctrl+g" → ActionSwitchRing
}

// New creates a Manager from global and local keybinding files. Local
// bindings override global ones; missing files are ignored.
func New(globalPath, localPath string) *Manager {
	m := &Manager{bindings: loadMerged(globalPath, localPath)}
	m.buildLookup()
	return m
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionForKey returns the action bound to key (bubbletea key string form),
// or "" when unbound.
func (m *Manager) ActionForKey(key string) config.KeyAction {
	return m.lookup[key]
}

// Bindings returns the keys bound to action, for help rendering.
func (m *Manager) Bindings(action config.KeyAction) []string {
	return m.bindings.GetBindings(action)
}

// Conflicts detects keys bound to more than one action.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// Reload re-reads the keybinding files and rebuilds the lookup table.
func (m *Manager) Reload(globalPath, localPath string) {
	m.bindings = loadMerged(globalPath, localPath)
	m.buildLookup()
}

func loadMerged(globalPath, localPath string) *config.Keybindings {
	kb := config.NewKeybindings()
	if globalPath != "" {
		if g, err := config.LoadKeybindings(globalPath); err == nil {
			mergeBindings(kb, g)
		}
	}
	if localPath != "" {
		if l, err := config.LoadKeybindings(localPath); err == nil {
			mergeBindings(kb, l)
		}
	}
	return kb
}

// mergeBindings copies non-default bindings from src onto dst.
func mergeBindings(dst, src *config.Keybindings) {
	for action, keys := range src.Bindings {
		dst.Bindings[action] = keys
	}
}

// buildLookup inverts action→keys into key→action. Later-iterated actions
// win on conflict; Conflicts surfaces the ambiguity to the user.
func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			m.lookup[k] = action
		}
	}
}
