// ABOUTME: Top-level Bubble Tea model composing ring bar, buffer pane, footer
// ABOUTME: Keys resolve through the keybindings manager; "/" opens the palette

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/torus-go/internal/commands"
	"github.com/mauromedda/torus-go/internal/config"
	"github.com/mauromedda/torus-go/internal/keybindings"
	"github.com/mauromedda/torus-go/internal/navigator"
	"github.com/mauromedda/torus-go/pkg/ring"
)

// navEventMsg carries a navigator event into the Bubble Tea loop.
type navEventMsg navigator.Event

// App is the root model. Pointer receiver so command callbacks can reach
// mutable state.
type App struct {
	nav      *navigator.Navigator
	keys     *keybindings.Manager
	registry *commands.Registry
	cmdCtx   *commands.Context

	ringbar RingBarModel
	footer  FooterModel
	pane    BufferPaneModel
	palette PaletteModel

	events   chan navigator.Event
	quitting bool
}

// NewApp wires the model to a navigator and keybindings.
func NewApp(nav *navigator.Navigator, keys *keybindings.Manager, settings *config.Settings, version string) *App {
	a := &App{
		nav:      nav,
		keys:     keys,
		registry: commands.NewRegistry(),
		ringbar:  NewRingBarModel(),
		footer:   NewFooterModel(),
		pane:     NewBufferPaneModel(settings.PlainText),
		palette:  NewPaletteModel(),
		events:   make(chan navigator.Event, 16),
	}
	a.cmdCtx = &commands.Context{
		Nav:     nav,
		Version: version,
		QuitFn:  func() { a.quitting = true },
	}
	nav.Events().Subscribe(func(e navigator.Event) {
		// Drop rather than block: the loop refreshes from full state anyway.
		select {
		case a.events <- e:
		default:
		}
	})
	a.refresh()
	return a
}

// Init starts listening for navigator events.
func (a *App) Init() tea.Cmd {
	return a.waitEvent()
}

func (a *App) waitEvent() tea.Cmd {
	return func() tea.Msg {
		return navEventMsg(<-a.events)
	}
}

// Update routes messages to the palette when open, otherwise to keybindings.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navEventMsg:
		a.refresh()
		return a, a.waitEvent()

	case tea.WindowSizeMsg:
		a.propagateSize(msg)
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		if a.palette.IsOpen() {
			return a.updatePalette(msg)
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) propagateSize(msg tea.WindowSizeMsg) {
	barMsg := msg
	model, _ := a.ringbar.Update(barMsg)
	a.ringbar = model.(RingBarModel)

	model, _ = a.footer.Update(msg)
	a.footer = model.(FooterModel)

	paneMsg := msg
	// Ring bar, footer, and message line claim three rows.
	paneMsg.Height = msg.Height - 3
	model, _ = a.pane.Update(paneMsg)
	a.pane = model.(BufferPaneModel)
}

func (a *App) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := a.palette.Input()
		a.palette = a.palette.Close()
		a.runCommand(input)
		if a.quitting {
			return a, tea.Quit
		}
		return a, nil
	case tea.KeyEsc:
		a.palette = a.palette.Close()
		return a, nil
	}
	model, _ := a.palette.Update(msg)
	a.palette = model.(PaletteModel)
	return a, nil
}

func (a *App) runCommand(input string) {
	if !commands.IsCommand(input) {
		return
	}
	out, err := a.registry.Dispatch(a.cmdCtx, input)
	if err != nil {
		a.footer = a.footer.WithMessage(err.Error(), true)
	} else if out != "" {
		a.footer = a.footer.WithMessage(out, false)
	}
	a.refresh()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.ActionForKey(msg.String()) {
	case config.ActionQuit:
		a.quitting = true
		return a, tea.Quit
	case config.ActionOpenPalette:
		a.palette = a.palette.Open()
		return a, nil
	case config.ActionRotateRingForward:
		a.rotateRing(ring.Forward)
	case config.ActionRotateRingBackward:
		a.rotateRing(ring.Backward)
	case config.ActionRotateTorusForward:
		a.rotateTorus(ring.Forward)
	case config.ActionRotateTorusBackward:
		a.rotateTorus(ring.Backward)
	case config.ActionSwitchRing:
		a.palette = a.palette.Open()
		a.palette.input = "/ring "
	case config.ActionAddBuffer:
		a.runCommand("/add")
	case config.ActionRemoveBuffer:
		a.runCommand("/remove")
	case config.ActionKillBuffer:
		a.nav.KillVisible()
	case config.ActionDeleteRing:
		a.runCommand("/delete-ring")
	case config.ActionListRings:
		a.runCommand("/rings")
	case config.ActionListBuffers:
		a.runCommand("/list")
	case config.ActionCancel:
		a.footer = a.footer.WithMessage("", false)
	}
	a.refresh()
	return a, nil
}

func (a *App) rotateRing(dir ring.Direction) {
	if _, ok := a.nav.RotateRing(dir); !ok {
		a.footer = a.footer.WithMessage("nothing to rotate", false)
	}
}

func (a *App) rotateTorus(dir ring.Direction) {
	if _, err := a.nav.RotateTorus(dir); err != nil {
		a.footer = a.footer.WithMessage(err.Error(), false)
	}
}

// refresh rebuilds the leaf models from navigator state.
func (a *App) refresh() {
	current := a.nav.CurrentRingName()
	names := a.nav.RingNames()
	entries := make([]RingEntry, len(names))
	for i, name := range names {
		entries[i] = RingEntry{
			Name:    name,
			Size:    a.nav.RingSize(name),
			Current: name == current,
		}
	}
	a.ringbar = a.ringbar.WithEntries(entries)

	bufName := ""
	if b, ok := a.nav.Shell().Visible(); ok {
		bufName = b.Name
		a.pane = a.pane.WithBuffer(b)
	} else {
		a.pane = a.pane.WithBuffer(nil)
	}
	a.footer = a.footer.WithStatus(current, bufName, a.nav.RingSize(current))
}

// View stacks ring bar, buffer pane, footer, and palette.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	out := a.ringbar.View() + "\n" + a.pane.View() + "\n" + a.footer.View()
	if a.palette.IsOpen() {
		out += "\n" + a.palette.View()
	}
	return out
}
