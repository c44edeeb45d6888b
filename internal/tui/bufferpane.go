// ABOUTME: BufferPaneModel renders the visible buffer's content
// ABOUTME: Markdown buffers go through glamour unless plain_text is set

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/torus-go/internal/buffer"
	"github.com/mauromedda/torus-go/internal/log"
)

// BufferPaneModel renders the visible buffer in the remaining screen space.
type BufferPaneModel struct {
	buf       *buffer.Buffer
	rendered  string // cached render for the current buffer
	plainText bool
	width     int
	height    int
}

// NewBufferPaneModel creates an empty pane.
func NewBufferPaneModel(plainText bool) BufferPaneModel {
	return BufferPaneModel{plainText: plainText}
}

// Init returns nil; no commands needed for a leaf model.
func (m BufferPaneModel) Init() tea.Cmd {
	return nil
}

// Update handles window sizing; re-renders on resize since glamour wraps to
// width.
func (m BufferPaneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.rendered = m.render()
	}
	return m, nil
}

// WithBuffer returns a BufferPaneModel showing buf.
func (m BufferPaneModel) WithBuffer(buf *buffer.Buffer) BufferPaneModel {
	if m.buf == buf {
		return m
	}
	m.buf = buf
	m.rendered = m.render()
	return m
}

// View renders the pane, clipped to the available height.
func (m BufferPaneModel) View() string {
	if m.buf == nil {
		return styleRingEmpty.Render("no buffer")
	}
	lines := strings.Split(m.rendered, "\n")
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m BufferPaneModel) render() string {
	if m.buf == nil {
		return ""
	}
	if m.plainText || !m.buf.IsMarkdown() {
		return m.buf.Content
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return m.buf.Content
	}
	out, err := r.Render(m.buf.Content)
	if err != nil {
		log.Debug("glamour render failed for %q: %v", m.buf.Name, err)
		return m.buf.Content
	}
	return out
}
