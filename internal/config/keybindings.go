// ABOUTME: Keybindings parser and loader for navigation actions
// ABOUTME: JSON format mapping action names to key lists with defaults

package config

import (
	"encoding/json"
	"os"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionRotateRingForward   KeyAction = "rotateRingForward"
	ActionRotateRingBackward  KeyAction = "rotateRingBackward"
	ActionRotateTorusForward  KeyAction = "rotateTorusForward"
	ActionRotateTorusBackward KeyAction = "rotateTorusBackward"
	ActionSwitchRing          KeyAction = "switchRing"
	ActionAddBuffer           KeyAction = "addBuffer"
	ActionRemoveBuffer        KeyAction = "removeBuffer"
	ActionKillBuffer          KeyAction = "killBuffer"
	ActionDeleteRing          KeyAction = "deleteRing"
	ActionListRings           KeyAction = "listRings"
	ActionListBuffers         KeyAction = "listBuffers"
	ActionOpenPalette         KeyAction = "openPalette"
	ActionCancel              KeyAction = "cancel"
	ActionQuit                KeyAction = "quit"
)

// Keybindings represents the keybindings configuration.
type Keybindings struct {
	Bindings map[KeyAction][]string `json:"-"`
}

// RawKeybindings is the on-disk JSON shape.
type RawKeybindings map[string][]string

// NewKeybindings creates Keybindings with the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string)}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionRotateRingForward] = []string{"ctrl+n", "tab"}
	kb.Bindings[ActionRotateRingBackward] = []string{"ctrl+p", "shift+tab"}
	kb.Bindings[ActionRotateTorusForward] = []string{"ctrl+f"}
	kb.Bindings[ActionRotateTorusBackward] = []string{"ctrl+b"}
	kb.Bindings[ActionSwitchRing] = []string{"ctrl+g"}
	kb.Bindings[ActionAddBuffer] = []string{"ctrl+a"}
	kb.Bindings[ActionRemoveBuffer] = []string{"ctrl+x"}
	kb.Bindings[ActionKillBuffer] = []string{"ctrl+k"}
	kb.Bindings[ActionDeleteRing] = []string{"ctrl+d"}
	kb.Bindings[ActionListRings] = []string{"ctrl+r"}
	kb.Bindings[ActionListBuffers] = []string{"ctrl+l"}
	kb.Bindings[ActionOpenPalette] = []string{"/", ":"}
	kb.Bindings[ActionCancel] = []string{"esc"}
	kb.Bindings[ActionQuit] = []string{"ctrl+c", "ctrl+q"}
}

// LoadKeybindings loads keybindings from a file. Unknown action names are
// ignored; known ones replace the defaults wholesale.
func LoadKeybindings(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw RawKeybindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	kb := NewKeybindings()
	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := kb.Bindings[action]; ok {
			kb.Bindings[action] = keys
		}
	}
	return kb, nil
}

// SaveKeybindings writes keybindings to a file.
func (kb *Keybindings) SaveKeybindings(path string) error {
	raw := make(RawKeybindings)
	for action, keys := range kb.Bindings {
		raw[string(action)] = keys
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetBindings returns the bindings for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}
