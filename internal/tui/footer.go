// ABOUTME: FooterModel is a Bubble Tea leaf rendering the one-line status bar
// ABOUTME: Shows current ring, buffer position, buffer name, and transient messages

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// FooterModel renders the status line at the bottom of the terminal.
type FooterModel struct {
	ringName string
	bufName  string
	ringSize int
	message  string
	isError  bool
	width    int
}

// NewFooterModel creates an empty FooterModel.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles window sizing.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// WithStatus returns a FooterModel showing the given navigation state.
func (m FooterModel) WithStatus(ringName, bufName string, ringSize int) FooterModel {
	m.ringName = ringName
	m.bufName = bufName
	m.ringSize = ringSize
	return m
}

// WithMessage returns a FooterModel carrying a transient message.
func (m FooterModel) WithMessage(msg string, isError bool) FooterModel {
	m.message = msg
	m.isError = isError
	return m
}

// View renders the footer line.
func (m FooterModel) View() string {
	left := "no ring"
	if m.ringName != "" {
		left = fmt.Sprintf("ring %s [%d]", m.ringName, m.ringSize)
	}
	if m.bufName != "" {
		left += "  " + m.bufName
	}

	w := m.width
	if w <= 0 {
		w = VisibleWidth(left)
	}
	line := styleFooter.Render(Pad(left, w))
	if m.message != "" {
		style := styleMessage
		if m.isError {
			style = styleError
		}
		line += "\n" + style.Render(Truncate(m.message, w))
	}
	return line
}
