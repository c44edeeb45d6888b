// ABOUTME: Shell is the open-buffer table: open, show, kill, kill hooks
// ABOUTME: Kill fires registered hooks exactly once before the buffer goes away

package buffer

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/torus-go/internal/log"
)

// Shell owns every open buffer. It is the external owner the rings borrow
// from: killing a buffer here is the one place its lifetime ends, and the
// registered kill hooks are how ring bookkeeping finds out.
//
// Single-threaded like the navigation core; OpenAll parallelizes only the
// file reads, never the table mutation.
type Shell struct {
	buffers   map[ID]*Buffer
	byName    map[string]ID
	visible   ID
	nextID    ID
	killHooks []func(ID)
}

// NewShell creates an empty shell.
func NewShell() *Shell {
	return &Shell{
		buffers: make(map[ID]*Buffer),
		byName:  make(map[string]ID),
		nextID:  1,
	}
}

// OnKill registers fn to run when any buffer is killed, after the buffer has
// left the table. The navigation wiring registers the index drop here.
func (s *Shell) OnKill(fn func(ID)) {
	s.killHooks = append(s.killHooks, fn)
}

// Open reads path into a new buffer and makes it visible. A nonexistent
// path opens an empty buffer, editor-style. Opening an already-open path
// returns the existing buffer.
func (s *Shell) Open(path string) (*Buffer, error) {
	name := NormalizeName(path)
	if id, ok := s.byName[name]; ok {
		s.visible = id
		return s.buffers[id], nil
	}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	b := s.register(name, path, string(content))
	s.visible = b.ID
	return b, nil
}

// OpenAll opens every path, reading file contents in parallel and
// registering buffers in argument order. The first buffer becomes visible.
func (s *Shell) OpenAll(paths []string) ([]*Buffer, error) {
	contents := make([]string, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return nil
				}
				return fmt.Errorf("opening %s: %w", path, err)
			}
			contents[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Buffer, 0, len(paths))
	for i, path := range paths {
		name := NormalizeName(path)
		if id, ok := s.byName[name]; ok {
			out = append(out, s.buffers[id])
			continue
		}
		out = append(out, s.register(name, path, contents[i]))
	}
	if len(out) > 0 {
		s.visible = out[0].ID
	}
	return out, nil
}

// NewScratch creates a buffer with no backing file, for fetched pages and
// the like. The name is uniquified when taken.
func (s *Shell) NewScratch(name, content string) *Buffer {
	name = NormalizeName(name)
	base := name
	for i := 2; ; i++ {
		if _, ok := s.byName[name]; !ok {
			break
		}
		name = fmt.Sprintf("%s<%d>", base, i)
	}
	b := s.register(name, "", content)
	s.visible = b.ID
	return b
}

func (s *Shell) register(name, path, content string) *Buffer {
	b := &Buffer{ID: s.nextID, Name: name, Path: path, Content: content}
	s.nextID++
	s.buffers[b.ID] = b
	s.byName[name] = b.ID
	log.Debug("opened buffer %d %q", b.ID, b.Name)
	return b
}

// Get returns the buffer with the given ID.
func (s *Shell) Get(id ID) (*Buffer, bool) {
	b, ok := s.buffers[id]
	return b, ok
}

// Lookup returns the buffer with the given (normalized) name.
func (s *Shell) Lookup(name string) (*Buffer, bool) {
	id, ok := s.byName[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return s.buffers[id], true
}

// Visible returns the currently visible buffer.
func (s *Shell) Visible() (*Buffer, bool) {
	return s.Get(s.visible)
}

// Show makes the buffer with the given ID visible. False when unknown.
func (s *Shell) Show(id ID) bool {
	if _, ok := s.buffers[id]; !ok {
		return false
	}
	s.visible = id
	return true
}

// Kill removes the buffer and fires the kill hooks once. False when the ID
// is unknown. The visible buffer falls back to any remaining buffer.
func (s *Shell) Kill(id ID) bool {
	b, ok := s.buffers[id]
	if !ok {
		return false
	}
	delete(s.buffers, id)
	delete(s.byName, b.Name)
	log.Debug("killed buffer %d %q", b.ID, b.Name)

	for _, fn := range s.killHooks {
		fn(id)
	}

	if s.visible == id {
		s.visible = 0
		for _, rest := range s.List() {
			s.visible = rest.ID
			break
		}
	}
	return true
}

// Len returns the number of open buffers.
func (s *Shell) Len() int {
	return len(s.buffers)
}

// List returns all open buffers ordered by ID (open order).
func (s *Shell) List() []*Buffer {
	out := make([]*Buffer, 0, len(s.buffers))
	for _, b := range s.buffers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
