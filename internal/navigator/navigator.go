// ABOUTME: Navigator wires the torus core to the buffer shell and event bus
// ABOUTME: One host-level operation per user command, each ending in "present"

package navigator

import (
	"context"
	"errors"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/torus-go/internal/buffer"
	"github.com/mauromedda/torus-go/internal/config"
	"github.com/mauromedda/torus-go/internal/eventbus"
	"github.com/mauromedda/torus-go/internal/export"
	"github.com/mauromedda/torus-go/internal/fetch"
	"github.com/mauromedda/torus-go/internal/log"
	"github.com/mauromedda/torus-go/pkg/ring"
	"github.com/mauromedda/torus-go/pkg/torus"
)

// EventKind classifies navigator events.
type EventKind int

const (
	// EventCurrentChanged fires when the buffer to present changed.
	EventCurrentChanged EventKind = iota
	// EventLayoutChanged fires when rings or their membership changed.
	EventLayoutChanged
)

// Event is published on every state change so views can refresh.
type Event struct {
	Kind   EventKind
	Ring   string
	Buffer buffer.ID // zero when no buffer is involved
}

// Navigator owns one Nav, one Shell, and the bus between them. It is the
// single mutation path for the host: every command and keybinding lands
// here.
type Navigator struct {
	nav      *torus.Nav[buffer.ID]
	shell    *buffer.Shell
	events   *eventbus.Bus[Event]
	settings *config.Settings
}

// New creates a Navigator around shell. The shell's kill hook is wired to
// drop killed buffers from every ring, so ring state can never outlive a
// buffer.
func New(shell *buffer.Shell, settings *config.Settings) *Navigator {
	n := &Navigator{
		nav:      torus.New[buffer.ID](),
		shell:    shell,
		events:   eventbus.New[Event](),
		settings: settings,
	}
	shell.OnKill(func(id buffer.ID) {
		n.nav.DropEverywhere(id)
		n.publishLayout("")
	})
	return n
}

// Events returns the bus views subscribe to.
func (n *Navigator) Events() *eventbus.Bus[Event] {
	return n.events
}

// Shell returns the buffer shell.
func (n *Navigator) Shell() *buffer.Shell {
	return n.shell
}

// AddVisible inserts the visible buffer into the named ring, creating the
// ring on first use. Returns ring.ErrDuplicate when already a member.
func (n *Navigator) AddVisible(ringName string) error {
	b, ok := n.shell.Visible()
	if !ok {
		return ErrNoBuffer
	}
	if ringName == "" {
		ringName = n.settings.DefaultRing
	}
	r, created := n.nav.GetOrCreate(ringName)
	if created {
		log.Debug("created ring %q", ringName)
	}
	if err := r.Insert(b.ID); err != nil {
		return err
	}
	n.publishLayout(ringName)
	return nil
}

// RemoveVisible removes the visible buffer from the current ring. False when
// there is no current ring or the buffer was not a member.
func (n *Navigator) RemoveVisible() bool {
	b, ok := n.shell.Visible()
	if !ok {
		return false
	}
	r, ok := n.nav.CurrentRing()
	if !ok {
		return false
	}
	if !r.Delete(b.ID) {
		return false
	}
	n.publishLayout(r.Name())
	return true
}

// RotateRing rotates the current ring and presents its new current buffer.
// False when there is no current ring or it has fewer than two buffers.
func (n *Navigator) RotateRing(dir ring.Direction) (buffer.ID, bool) {
	r, ok := n.nav.CurrentRing()
	if !ok {
		return 0, false
	}
	if !r.Rotate(dir) {
		return 0, false
	}
	id, _ := r.Current()
	n.present(r.Name(), id)
	return id, true
}

// RotateTorus rotates the torus, skipping empty rings, and presents the new
// current ring's buffer. Errors pass through from the core (ErrNoRings,
// ErrAllEmpty).
func (n *Navigator) RotateTorus(dir ring.Direction) (buffer.ID, error) {
	id, err := n.nav.Rotate(dir)
	if err != nil {
		return 0, err
	}
	r, _ := n.nav.CurrentRing()
	n.present(r.Name(), id)
	return id, nil
}

// SwitchRing switches to the ring best matching query: exact name first,
// then fuzzy. Returns the resolved name and the presented buffer. False when
// nothing matches.
func (n *Navigator) SwitchRing(query string) (string, buffer.ID, bool) {
	name, ok := n.ResolveRingName(query)
	if !ok {
		return "", 0, false
	}
	id, hasCurrent := n.nav.SwitchTo(name)
	if hasCurrent {
		n.present(name, id)
	} else {
		n.publishLayout(name)
	}
	return name, id, true
}

// ResolveRingName resolves query to a registered ring name, fuzzily when no
// exact match exists.
func (n *Navigator) ResolveRingName(query string) (string, bool) {
	if _, ok := n.nav.Lookup(query); ok {
		return query, true
	}
	matches := fuzzy.Find(query, n.nav.ListNames())
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// DeleteCurrentRing tears down the ring under the torus cursor. Returns its
// name; false when the torus is empty.
func (n *Navigator) DeleteCurrentRing() (string, bool) {
	r, ok := n.nav.CurrentRing()
	if !ok {
		return "", false
	}
	name := r.Name()
	n.nav.DeleteCurrentRing()
	log.Debug("deleted ring %q", name)
	n.publishLayout("")
	return name, true
}

// KillVisible ends the visible buffer's lifetime. The shell kill hook drops
// it from every ring; afterwards the current ring's current buffer is
// presented when one exists.
func (n *Navigator) KillVisible() bool {
	b, ok := n.shell.Visible()
	if !ok {
		return false
	}
	n.shell.Kill(b.ID)
	if r, ok := n.nav.CurrentRing(); ok {
		if id, ok := r.Current(); ok {
			n.present(r.Name(), id)
		}
	}
	return true
}

// CurrentRingName returns the current ring's name, or "".
func (n *Navigator) CurrentRingName() string {
	r, ok := n.nav.CurrentRing()
	if !ok {
		return ""
	}
	return r.Name()
}

// RingNames returns ring names in torus order from the current ring.
func (n *Navigator) RingNames() []string {
	return n.nav.ListNames()
}

// RingSize returns the named ring's size, -1 when unknown.
func (n *Navigator) RingSize(name string) int {
	return n.nav.SizeOf(name)
}

// CurrentBuffers returns the current ring's buffers in ring order.
func (n *Navigator) CurrentBuffers() []*buffer.Buffer {
	r, ok := n.nav.CurrentRing()
	if !ok {
		return nil
	}
	return torus.Collect(r, func(id buffer.ID) *buffer.Buffer {
		b, _ := n.shell.Get(id)
		return b
	})
}

// RingsContaining names the rings holding the visible buffer.
func (n *Navigator) RingsContaining(id buffer.ID) []string {
	rings := n.nav.RingsContaining(id)
	names := make([]string, len(rings))
	for i, r := range rings {
		names[i] = r.Name()
	}
	return names
}

// FetchURL loads a web page into a scratch buffer and adds it to the named
// ring (default ring when empty).
func (n *Navigator) FetchURL(ctx context.Context, url, ringName string) (*buffer.Buffer, error) {
	timeout := time.Duration(n.settings.FetchTimeoutSec) * time.Second
	page, err := fetch.Fetch(ctx, url, timeout)
	if err != nil {
		return nil, err
	}
	b := n.shell.NewScratch(page.Title+".md", page.Text)
	if err := n.AddVisible(ringName); err != nil && !errors.Is(err, ring.ErrDuplicate) {
		return b, err
	}
	return b, nil
}

// Snapshot captures the layout for export.
func (n *Navigator) Snapshot() export.Snapshot {
	s := export.Snapshot{CurrentRing: n.CurrentRingName()}
	for _, name := range n.nav.ListNames() {
		r, _ := n.nav.Lookup(name)
		rs := export.RingSnapshot{Name: name}
		if id, ok := r.Current(); ok {
			rs.Current = n.bufferName(id)
		}
		rs.Buffers = torus.Collect(r, n.bufferName)
		s.Rings = append(s.Rings, rs)
	}
	return s
}

// SeedLayout creates the rings a layout file declares and fills them with
// their files. The first ring stays current.
func (n *Navigator) SeedLayout(l *config.Layout) error {
	if l == nil {
		return nil
	}
	for _, lr := range l.Rings {
		r, _ := n.nav.GetOrCreate(lr.Name)
		for _, path := range lr.Files {
			b, err := n.shell.Open(path)
			if err != nil {
				return err
			}
			if err := r.Insert(b.ID); err != nil && !errors.Is(err, ring.ErrDuplicate) {
				return err
			}
		}
	}
	if len(l.Rings) > 0 {
		n.nav.SwitchTo(l.Rings[0].Name)
		if r, ok := n.nav.CurrentRing(); ok {
			if id, ok := r.Current(); ok {
				n.shell.Show(id)
			}
		}
	}
	n.publishLayout(n.CurrentRingName())
	return nil
}

func (n *Navigator) bufferName(id buffer.ID) string {
	b, ok := n.shell.Get(id)
	if !ok {
		return ""
	}
	return b.Name
}

// present makes id visible and tells subscribers.
func (n *Navigator) present(ringName string, id buffer.ID) {
	n.shell.Show(id)
	n.events.Publish(Event{Kind: EventCurrentChanged, Ring: ringName, Buffer: id})
}

func (n *Navigator) publishLayout(ringName string) {
	n.events.Publish(Event{Kind: EventLayoutChanged, Ring: ringName})
}
