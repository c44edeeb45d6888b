// ABOUTME: CLI entry point for torus with terminal setup
// ABOUTME: Parses flags, loads config and layout, seeds rings, starts the TUI

package main

import (
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the buffer pane.
	_ "github.com/mauromedda/torus-go/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mauromedda/torus-go/internal/buffer"
	"github.com/mauromedda/torus-go/internal/config"
	"github.com/mauromedda/torus-go/internal/keybindings"
	tlog "github.com/mauromedda/torus-go/internal/log"
	"github.com/mauromedda/torus-go/internal/navigator"
	"github.com/mauromedda/torus-go/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("torus %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and starts the Bubble Tea loop.
func run(args cliArgs) error {
	if args.verbose {
		tlog.SetLevel(tlog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := loadConfig(args, cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if args.plain {
		cfg.PlainText = true
	}

	shell := buffer.NewShell()
	nav := navigator.New(shell, cfg)

	layout, err := loadLayout(args, cwd)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}
	if err := nav.SeedLayout(layout); err != nil {
		return fmt.Errorf("seeding layout: %w", err)
	}

	// Files named on the command line go through the same seeding path as a
	// layout, so they end up current just like a layout's first ring.
	if files := args.remaining(); len(files) > 0 {
		ringName := args.ring
		if ringName == "" {
			ringName = cfg.DefaultRing
		}
		cli := &config.Layout{Rings: []config.LayoutRing{{Name: ringName, Files: files}}}
		if err := nav.SeedLayout(cli); err != nil {
			return fmt.Errorf("opening files: %w", err)
		}
	}

	keys := keybindings.New(config.GlobalKeybindingsFile(), config.ProjectKeybindingsFile(cwd))

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("torus needs an interactive terminal")
	}

	tlog.Debug("starting with %d rings, %d buffers", len(nav.RingNames()), shell.Len())

	p := tea.NewProgram(tui.NewApp(nav, keys, cfg, version), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// loadConfig honors --config as an exact file; otherwise global and project
// settings merge as usual.
func loadConfig(args cliArgs, cwd string) (*config.Settings, error) {
	if args.config != "" {
		return config.LoadFile(args.config)
	}
	return config.Load(cwd)
}

// loadLayout reads the layout named by --layout, or the project default when
// the flag is unset. A missing default layout is not an error.
func loadLayout(args cliArgs, cwd string) (*config.Layout, error) {
	if args.layout != "" {
		l, err := config.LoadLayout(args.layout)
		if err != nil {
			return nil, err
		}
		if l == nil {
			return nil, fmt.Errorf("layout file %s not found", args.layout)
		}
		return l, nil
	}
	return config.LoadLayout(config.ProjectLayoutFile(cwd))
}
