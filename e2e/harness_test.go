// ABOUTME: PTY harness for driving the real torus binary in e2e tests
// ABOUTME: Builds the binary once in TestMain; sessions expose send/expect helpers

package e2e

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

var binPath string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	dir, err := os.MkdirTemp("", "torus-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "e2e: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	binPath = filepath.Join(dir, "torus")
	build := exec.Command("go", "build", "-o", binPath, "github.com/mauromedda/torus-go/cmd/torus")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "e2e: building torus: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// session is a running torus process attached to a pseudo-terminal.
type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu  sync.Mutex
	out bytes.Buffer

	pump *errgroup.Group
	done chan error
}

// startTorus launches the binary in a fresh HOME and workdir so user config
// and project files cannot leak into the test.
func startTorus(t *testing.T, args ...string) *session {
	t.Helper()

	home := t.TempDir()
	work := t.TempDir()

	cmd := exec.Command(binPath, args...)
	cmd.Dir = work
	cmd.Env = append(os.Environ(), "HOME="+home, "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting torus: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, pump: &errgroup.Group{}, done: make(chan error, 1)}

	s.pump.Go(func() error {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				// EIO is how a PTY reports the child side closing.
				return nil
			}
		}
	})

	go func() { s.done <- cmd.Wait() }()

	return s
}

func (s *session) close() {
	s.ptmx.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.pump.Wait()
}

// snapshot returns everything the process has written so far.
func (s *session) snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// expectStringTimeout polls the output until want appears or the deadline hits.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if bytes.Contains([]byte(s.snapshot()), []byte(want)) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", want, s.snapshot())
}

func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte(text)); err != nil {
		t.Fatalf("sending %q: %v", text, err)
	}
}

// sendCtrl sends a control character, e.g. sendCtrl(t, 'c') for Ctrl+C.
func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte{c - 'a' + 1}); err != nil {
		t.Fatalf("sending ctrl+%c: %v", c, err)
	}
}

func (s *session) sendEnter(t *testing.T) {
	t.Helper()
	s.send(t, "\r")
}

func (s *session) sendEscape(t *testing.T) {
	t.Helper()
	if _, err := s.ptmx.Write([]byte{0x1b}); err != nil {
		t.Fatalf("sending escape: %v", err)
	}
}

// waitExit blocks until the process exits or the deadline hits.
func (s *session) waitExit(t *testing.T, timeout time.Duration) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output:\n%s", timeout, s.snapshot())
	}
}
