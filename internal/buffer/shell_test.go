// ABOUTME: Tests for the shell buffer table: open, show, kill, hooks
// ABOUTME: Uses t.TempDir files; covers parallel OpenAll and name reuse

package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenReadsContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "hello")

	s := NewShell()
	b, err := s.Open(path)
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if b.Content != "hello" {
		t.Errorf("Content = %q, want \"hello\"", b.Content)
	}
	if vis, _ := s.Visible(); vis != b {
		t.Error("opened buffer is not visible")
	}
}

func TestOpenMissingFileYieldsEmptyBuffer(t *testing.T) {
	t.Parallel()

	s := NewShell()
	b, err := s.Open(filepath.Join(t.TempDir(), "new.txt"))
	if err != nil {
		t.Fatalf("Open missing = %v", err)
	}
	if b.Content != "" {
		t.Errorf("Content = %q, want empty", b.Content)
	}
}

func TestOpenSamePathReturnsExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x")

	s := NewShell()
	first, _ := s.Open(path)
	second, _ := s.Open(path)
	if first != second {
		t.Error("reopening a path created a second buffer")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestOpenAllPreservesOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := writeFile(t, dir, "one.txt", "1")
	p2 := writeFile(t, dir, "two.txt", "2")
	p3 := writeFile(t, dir, "three.txt", "3")

	s := NewShell()
	bufs, err := s.OpenAll([]string{p1, p2, p3})
	if err != nil {
		t.Fatalf("OpenAll = %v", err)
	}
	if len(bufs) != 3 {
		t.Fatalf("opened %d buffers, want 3", len(bufs))
	}
	for i, want := range []string{"1", "2", "3"} {
		if bufs[i].Content != want {
			t.Errorf("buffer %d content = %q, want %q", i, bufs[i].Content, want)
		}
	}
	if vis, _ := s.Visible(); vis != bufs[0] {
		t.Error("first opened buffer is not visible")
	}
}

func TestKillFiresHooksOnce(t *testing.T) {
	t.Parallel()

	s := NewShell()
	b := s.NewScratch("tmp", "")
	var fired []ID
	s.OnKill(func(id ID) { fired = append(fired, id) })

	if !s.Kill(b.ID) {
		t.Fatal("Kill = false")
	}
	if len(fired) != 1 || fired[0] != b.ID {
		t.Errorf("hooks fired = %v, want [%d]", fired, b.ID)
	}
	if s.Kill(b.ID) {
		t.Error("second Kill of same ID = true")
	}
	if len(fired) != 1 {
		t.Errorf("hooks fired %d times after double kill, want 1", len(fired))
	}
}

func TestKillMovesVisible(t *testing.T) {
	t.Parallel()

	s := NewShell()
	a := s.NewScratch("a", "")
	b := s.NewScratch("b", "")

	s.Show(a.ID)
	s.Kill(a.ID)
	vis, ok := s.Visible()
	if !ok || vis != b {
		t.Errorf("visible after kill = %v, want buffer b", vis)
	}
}

func TestScratchNameUniquified(t *testing.T) {
	t.Parallel()

	s := NewShell()
	first := s.NewScratch("page", "")
	second := s.NewScratch("page", "")
	if first.Name == second.Name {
		t.Errorf("scratch names collide: %q", first.Name)
	}
	if second.Name != "page<2>" {
		t.Errorf("second scratch name = %q, want \"page<2>\"", second.Name)
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	// NFD "é" (e + combining acute) must equal NFC "é".
	nfd := "café.txt"
	nfc := "café.txt"
	if NormalizeName(nfd) != NormalizeName(nfc) {
		t.Error("NFD and NFC forms normalize differently")
	}

	// Narrow no-break space becomes ASCII space.
	if got := NormalizeName("a b"); got != "a b" {
		t.Errorf("NormalizeName = %q, want \"a b\"", got)
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"README.md", true},
		{"notes.markdown", true},
		{"NOTES.MD", true},
		{"main.go", false},
		{"plain", false},
	}
	for _, tt := range tests {
		b := &Buffer{Name: tt.name}
		if got := b.IsMarkdown(); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
