// ABOUTME: Tests for the navigator glue: add/remove, rotation, kill hook wiring
// ABOUTME: Asserts events fire and killed buffers vanish from every ring

package navigator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mauromedda/torus-go/internal/buffer"
	"github.com/mauromedda/torus-go/internal/config"
	"github.com/mauromedda/torus-go/pkg/ring"
	"github.com/mauromedda/torus-go/pkg/torus"
)

func newTestNavigator() (*Navigator, *buffer.Shell) {
	shell := buffer.NewShell()
	nav := New(shell, &config.Settings{DefaultRing: "main"})
	return nav, shell
}

func TestAddVisibleCreatesRing(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	shell.NewScratch("a", "")

	if err := nav.AddVisible(""); err != nil {
		t.Fatalf("AddVisible = %v", err)
	}
	if got := nav.RingSize("main"); got != 1 {
		t.Errorf("RingSize(main) = %d, want 1", got)
	}

	// Second add of the same buffer is a duplicate.
	err := nav.AddVisible("main")
	if !errors.Is(err, ring.ErrDuplicate) {
		t.Errorf("second AddVisible = %v, want ErrDuplicate", err)
	}
	if got := nav.RingSize("main"); got != 1 {
		t.Errorf("RingSize(main) = %d after duplicate, want 1", got)
	}
}

func TestAddVisibleNoBuffer(t *testing.T) {
	t.Parallel()

	nav, _ := newTestNavigator()
	if err := nav.AddVisible("x"); !errors.Is(err, ErrNoBuffer) {
		t.Errorf("AddVisible with no buffers = %v, want ErrNoBuffer", err)
	}
}

func TestRotateRingPresentsNext(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	a := shell.NewScratch("a", "")
	nav.AddVisible("work")
	b := shell.NewScratch("b", "")
	nav.AddVisible("work")

	var presented []buffer.ID
	nav.Events().Subscribe(func(e Event) {
		if e.Kind == EventCurrentChanged {
			presented = append(presented, e.Buffer)
		}
	})

	id, ok := nav.RotateRing(ring.Forward)
	if !ok {
		t.Fatal("RotateRing = false")
	}
	if id != b.ID {
		t.Errorf("rotated to %d, want %d", id, b.ID)
	}
	if vis, _ := shell.Visible(); vis.ID != b.ID {
		t.Error("rotation did not show the new current buffer")
	}
	if !reflect.DeepEqual(presented, []buffer.ID{b.ID}) {
		t.Errorf("presented events = %v, want [%d]", presented, b.ID)
	}
	_ = a
}

func TestRotateRingSingleBuffer(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	shell.NewScratch("a", "")
	nav.AddVisible("work")

	if _, ok := nav.RotateRing(ring.Forward); ok {
		t.Error("RotateRing on single-buffer ring = true")
	}
}

func TestRotateTorusSkipsEmpty(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	// Ring B holds one buffer; ring A is created empty and made current.
	b := shell.NewScratch("b1", "")
	nav.AddVisible("B")
	// Create empty ring A after the fact, then make it current.
	navAddEmptyRing(t, nav, "A")

	id, err := nav.RotateTorus(ring.Forward)
	if err != nil {
		t.Fatalf("RotateTorus = %v", err)
	}
	if id != b.ID {
		t.Errorf("RotateTorus presented %d, want %d", id, b.ID)
	}
	if nav.CurrentRingName() != "B" {
		t.Errorf("current ring = %q, want \"B\"", nav.CurrentRingName())
	}
}

// navAddEmptyRing creates an empty ring and leaves it current.
func navAddEmptyRing(t *testing.T, nav *Navigator, name string) {
	t.Helper()
	nav.nav.GetOrCreate(name)
	if _, _, ok := nav.SwitchRing(name); !ok {
		t.Fatalf("SwitchRing(%s) failed", name)
	}
}

func TestRotateTorusAllEmpty(t *testing.T) {
	t.Parallel()

	nav, _ := newTestNavigator()
	if _, err := nav.RotateTorus(ring.Forward); !errors.Is(err, torus.ErrNoRings) {
		t.Errorf("RotateTorus on empty torus = %v, want ErrNoRings", err)
	}

	navAddEmptyRing(t, nav, "A")
	if _, err := nav.RotateTorus(ring.Forward); !errors.Is(err, torus.ErrAllEmpty) {
		t.Errorf("RotateTorus with empty rings = %v, want ErrAllEmpty", err)
	}
}

func TestSwitchRingFuzzy(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	shell.NewScratch("doc", "")
	nav.AddVisible("documents")
	shell.NewScratch("scratchpad", "")
	nav.AddVisible("scratch")

	name, _, ok := nav.SwitchRing("docs")
	if !ok {
		t.Fatal("SwitchRing(docs) = false")
	}
	if name != "documents" {
		t.Errorf("fuzzy resolved %q, want \"documents\"", name)
	}
	if _, _, ok := nav.SwitchRing("zzz"); ok {
		t.Error("SwitchRing(zzz) = true, want false")
	}
}

func TestKillVisibleDropsFromAllRings(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	b := shell.NewScratch("shared", "")
	nav.AddVisible("A")
	nav.AddVisible("B")

	if got := len(nav.RingsContaining(b.ID)); got != 2 {
		t.Fatalf("RingsContaining = %d rings, want 2", got)
	}

	if !nav.KillVisible() {
		t.Fatal("KillVisible = false")
	}
	if got := len(nav.RingsContaining(b.ID)); got != 0 {
		t.Errorf("RingsContaining = %d rings after kill, want 0", got)
	}
	if nav.RingSize("A") != 0 || nav.RingSize("B") != 0 {
		t.Error("killed buffer still member of a ring")
	}
}

func TestDeleteCurrentRing(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	b := shell.NewScratch("a", "")
	nav.AddVisible("doomed")

	name, ok := nav.DeleteCurrentRing()
	if !ok || name != "doomed" {
		t.Fatalf("DeleteCurrentRing = %q, %v", name, ok)
	}
	if got := nav.RingSize("doomed"); got != -1 {
		t.Errorf("RingSize(doomed) = %d after delete, want -1", got)
	}
	if got := len(nav.RingsContaining(b.ID)); got != 0 {
		t.Errorf("RingsContaining = %d rings after ring delete, want 0", got)
	}
	// The buffer itself survives: rings borrow, they do not own.
	if _, ok := shell.Get(b.ID); !ok {
		t.Error("buffer destroyed by ring deletion")
	}
}

func TestSeedLayout(t *testing.T) {
	t.Parallel()

	nav, _ := newTestNavigator()
	l := &config.Layout{Rings: []config.LayoutRing{
		{Name: "docs", Files: nil},
		{Name: "code", Files: nil},
	}}
	if err := nav.SeedLayout(l); err != nil {
		t.Fatalf("SeedLayout = %v", err)
	}
	if nav.CurrentRingName() != "docs" {
		t.Errorf("current ring = %q, want \"docs\"", nav.CurrentRingName())
	}
	if got := nav.RingSize("code"); got != 0 {
		t.Errorf("RingSize(code) = %d, want 0", got)
	}
}

func TestCurrentBuffersOrder(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	shell.NewScratch("one", "")
	nav.AddVisible("work")
	shell.NewScratch("two", "")
	nav.AddVisible("work")

	got := make([]string, 0, 2)
	for _, b := range nav.CurrentBuffers() {
		got = append(got, b.Name)
	}
	want := []string{"one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CurrentBuffers = %v, want %v", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	nav, shell := newTestNavigator()
	shell.NewScratch("a", "")
	nav.AddVisible("work")

	s := nav.Snapshot()
	if s.CurrentRing != "work" {
		t.Errorf("CurrentRing = %q, want \"work\"", s.CurrentRing)
	}
	if len(s.Rings) != 1 || s.Rings[0].Current != "a" {
		t.Errorf("Rings = %+v, want one ring with current \"a\"", s.Rings)
	}
}
