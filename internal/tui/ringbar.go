// ABOUTME: RingBarModel is a Bubble Tea leaf rendering the torus as a tab bar
// ABOUTME: Shows ring names with sizes; current ring highlighted, empties dimmed

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RingEntry is one ring in the bar.
type RingEntry struct {
	Name    string
	Size    int
	Current bool
}

// RingBarModel renders the ring names in torus order.
type RingBarModel struct {
	entries []RingEntry
	width   int
}

// NewRingBarModel creates an empty ring bar.
func NewRingBarModel() RingBarModel {
	return RingBarModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m RingBarModel) Init() tea.Cmd {
	return nil
}

// Update handles window sizing; entries arrive via WithEntries.
func (m RingBarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// WithEntries returns a RingBarModel with the entries replaced.
func (m RingBarModel) WithEntries(entries []RingEntry) RingBarModel {
	m.entries = entries
	return m
}

// View renders one line of ring tabs.
func (m RingBarModel) View() string {
	if len(m.entries) == 0 {
		return styleRingEmpty.Render("no rings — /add <name> to start one")
	}

	// Width bookkeeping happens on the plain labels; styling would confuse
	// cell counting once ANSI sequences are in the string.
	parts := make([]string, 0, len(m.entries))
	used := 0
	for _, e := range m.entries {
		label := fmt.Sprintf(" %s(%d) ", e.Name, e.Size)
		if m.width > 0 && used+VisibleWidth(label)+1 > m.width {
			parts = append(parts, "…")
			break
		}
		used += VisibleWidth(label) + 1
		switch {
		case e.Current:
			parts = append(parts, styleRingCurrent.Render(label))
		case e.Size == 0:
			parts = append(parts, styleRingEmpty.Render(label))
		default:
			parts = append(parts, styleRing.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
