// ABOUTME: JSON snapshot of the ring layout for scripting (/export command)
// ABOUTME: Hand-rolled easyjson marshalers; write-only, never read back

package export

import (
	"fmt"
	"os"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
)

// Snapshot captures the navigation layout at one instant: ring names in
// torus order and each ring's buffers in ring order.
type Snapshot struct {
	CurrentRing string
	Rings       []RingSnapshot
}

// RingSnapshot is one ring in a Snapshot.
type RingSnapshot struct {
	Name    string
	Current string // current buffer name, empty for an empty ring
	Buffers []string
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (s Snapshot) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"current_ring":`)
	w.String(s.CurrentRing)
	w.RawString(`,"rings":[`)
	for i, r := range s.Rings {
		if i > 0 {
			w.RawByte(',')
		}
		r.MarshalEasyJSON(w)
	}
	w.RawString(`]}`)
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r RingSnapshot) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"name":`)
	w.String(r.Name)
	w.RawString(`,"current":`)
	w.String(r.Current)
	w.RawString(`,"buffers":[`)
	for i, b := range r.Buffers {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(b)
	}
	w.RawString(`]}`)
}

// Marshal renders the snapshot as JSON bytes.
func Marshal(s Snapshot) ([]byte, error) {
	return easyjson.Marshal(s)
}

// WriteFile writes the snapshot as JSON to path.
func WriteFile(path string, s Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if _, err := easyjson.MarshalToWriter(s, f); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
