// ABOUTME: PaletteModel is a minimal single-line input for slash commands
// ABOUTME: Open with "/", submit with enter, dismiss with esc

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PaletteModel collects one line of command input.
type PaletteModel struct {
	open  bool
	input string
}

// NewPaletteModel creates a closed palette.
func NewPaletteModel() PaletteModel {
	return PaletteModel{}
}

// Open activates the palette with a leading slash.
func (m PaletteModel) Open() PaletteModel {
	m.open = true
	m.input = "/"
	return m
}

// Close dismisses the palette and clears the input.
func (m PaletteModel) Close() PaletteModel {
	m.open = false
	m.input = ""
	return m
}

// IsOpen reports whether the palette is capturing keys.
func (m PaletteModel) IsOpen() bool {
	return m.open
}

// Input returns the current input line.
func (m PaletteModel) Input() string {
	return m.input
}

// Init returns nil; no commands needed for a leaf model.
func (m PaletteModel) Init() tea.Cmd {
	return nil
}

// Update consumes printable keys and backspace while open. Enter and esc are
// the app's business.
func (m PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.open {
		return m, nil
	}
	switch key.Type {
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		m.input += string(key.Runes)
	case tea.KeySpace:
		m.input += " "
	}
	return m, nil
}

// View renders the input line with a block cursor.
func (m PaletteModel) View() string {
	if !m.open {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.input)
	b.WriteString("█")
	return stylePalette.Render(b.String())
}
