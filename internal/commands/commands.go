// ABOUTME: Slash command registry and dispatch for the navigator
// ABOUTME: Commands: add, remove, list, rotate, ring, torus, rings, delete-ring, fetch, export, help

package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mauromedda/torus-go/internal/navigator"
	"github.com/mauromedda/torus-go/pkg/ring"
	"github.com/mauromedda/torus-go/pkg/torus"
)

// Command represents a slash command.
type Command struct {
	Name        string
	Description string
	Execute     func(ctx *Context, args string) (string, error)
}

// Context provides commands access to app state.
type Context struct {
	Nav     *navigator.Navigator
	Version string

	// QuitFn exits the application. Nilable; /quit reports "not available"
	// when nil.
	QuitFn func()
}

// Registry holds all registered slash commands.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerCoreCommands()
	return r
}

// Get returns a command by name. The second result reports whether the name
// was found.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Dispatch parses a "/command args" input, looks up the command, and
// executes it. Returns the command output or an error when the command is
// unknown.
func (r *Registry) Dispatch(ctx *Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if !IsCommand(input) {
		return "", fmt.Errorf("not a command: %q", input)
	}

	raw := input[1:]
	parts := strings.SplitN(raw, " ", 2)
	name := parts[0]
	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	cmd, ok := r.commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command: /%s", name)
	}
	return cmd.Execute(ctx, args)
}

// IsCommand returns true if input starts with '/'.
func IsCommand(input string) bool {
	return len(input) > 0 && input[0] == '/'
}

// parseDirection maps "f"/"forward" and "b"/"backward"; forward when empty.
func parseDirection(arg string) (ring.Direction, error) {
	switch strings.ToLower(arg) {
	case "", "f", "forward":
		return ring.Forward, nil
	case "b", "backward", "back":
		return ring.Backward, nil
	}
	return ring.Forward, fmt.Errorf("unknown direction %q (want f or b)", arg)
}

// registerCoreCommands adds all built-in slash commands to the registry.
func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{
			Name:        "add",
			Description: "Add the visible buffer to a ring (default ring when unnamed)",
			Execute: func(ctx *Context, args string) (string, error) {
				err := ctx.Nav.AddVisible(args)
				switch {
				case errors.Is(err, ring.ErrDuplicate):
					return "already in that ring", nil
				case errors.Is(err, navigator.ErrNoBuffer):
					return "no buffer to add", nil
				case err != nil:
					return "", err
				}
				name := args
				if name == "" {
					name = ctx.Nav.CurrentRingName()
				}
				return fmt.Sprintf("added to ring %q (%d buffers)", name, ctx.Nav.RingSize(name)), nil
			},
		},
		{
			Name:        "remove",
			Description: "Remove the visible buffer from the current ring",
			Execute: func(ctx *Context, _ string) (string, error) {
				if !ctx.Nav.RemoveVisible() {
					return "nothing to remove", nil
				}
				return "removed from current ring", nil
			},
		},
		{
			Name:        "list",
			Description: "List buffers in the current ring",
			Execute: func(ctx *Context, _ string) (string, error) {
				bufs := ctx.Nav.CurrentBuffers()
				if len(bufs) == 0 {
					return "current ring is empty", nil
				}
				names := make([]string, len(bufs))
				for i, b := range bufs {
					names[i] = b.Name
				}
				return strings.Join(names, "  "), nil
			},
		},
		{
			Name:        "rotate",
			Description: "Rotate the current ring (f/b)",
			Execute: func(ctx *Context, args string) (string, error) {
				dir, err := parseDirection(args)
				if err != nil {
					return "", err
				}
				id, ok := ctx.Nav.RotateRing(dir)
				if !ok {
					return "nothing to rotate", nil
				}
				b, _ := ctx.Nav.Shell().Get(id)
				return fmt.Sprintf("→ %s", b.Name), nil
			},
		},
		{
			Name:        "ring",
			Description: "Switch to a ring by (fuzzy) name",
			Execute: func(ctx *Context, args string) (string, error) {
				if args == "" {
					return "", fmt.Errorf("usage: /ring <name>")
				}
				name, _, ok := ctx.Nav.SwitchRing(args)
				if !ok {
					return fmt.Sprintf("no ring matches %q", args), nil
				}
				return fmt.Sprintf("switched to ring %q", name), nil
			},
		},
		{
			Name:        "torus",
			Description: "Rotate the torus to the next non-empty ring (f/b)",
			Execute: func(ctx *Context, args string) (string, error) {
				dir, err := parseDirection(args)
				if err != nil {
					return "", err
				}
				_, err = ctx.Nav.RotateTorus(dir)
				switch {
				case errors.Is(err, torus.ErrNoRings):
					return "no rings yet", nil
				case errors.Is(err, torus.ErrAllEmpty):
					return "all rings are empty", nil
				case err != nil:
					return "", err
				}
				return fmt.Sprintf("→ ring %q", ctx.Nav.CurrentRingName()), nil
			},
		},
		{
			Name:        "rings",
			Description: "List ring names in torus order",
			Execute: func(ctx *Context, _ string) (string, error) {
				names := ctx.Nav.RingNames()
				if len(names) == 0 {
					return "no rings yet", nil
				}
				for i, name := range names {
					names[i] = fmt.Sprintf("%s(%d)", name, ctx.Nav.RingSize(name))
				}
				return strings.Join(names, "  "), nil
			},
		},
		{
			Name:        "delete-ring",
			Description: "Delete the current ring (buffers stay open)",
			Execute: func(ctx *Context, _ string) (string, error) {
				name, ok := ctx.Nav.DeleteCurrentRing()
				if !ok {
					return "no ring to delete", nil
				}
				return fmt.Sprintf("deleted ring %q", name), nil
			},
		},
		{
			Name:        "fetch",
			Description: "Fetch a URL into a scratch buffer and add it to a ring",
			Execute: func(ctx *Context, args string) (string, error) {
				fields := strings.Fields(args)
				if len(fields) == 0 {
					return "", fmt.Errorf("usage: /fetch <url> [ring]")
				}
				ringName := ""
				if len(fields) > 1 {
					ringName = fields[1]
				}
				b, err := ctx.Nav.FetchURL(context.Background(), fields[0], ringName)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("fetched into %q", b.Name), nil
			},
		},
		{
			Name:        "export",
			Description: "Write the ring layout as JSON",
			Execute: func(ctx *Context, args string) (string, error) {
				if args == "" {
					return "", fmt.Errorf("usage: /export <path>")
				}
				if err := writeSnapshot(ctx, args); err != nil {
					return "", err
				}
				return fmt.Sprintf("exported layout to %s", args), nil
			},
		},
		{
			Name:        "quit",
			Description: "Exit",
			Execute: func(ctx *Context, _ string) (string, error) {
				if ctx.QuitFn == nil {
					return "not available", nil
				}
				ctx.QuitFn()
				return "", nil
			},
		},
	}

	for _, cmd := range core {
		r.commands[cmd.Name] = cmd
	}

	r.commands["help"] = &Command{
		Name:        "help",
		Description: "Show available commands",
		Execute: func(_ *Context, _ string) (string, error) {
			var b strings.Builder
			for _, cmd := range r.List() {
				fmt.Fprintf(&b, "/%s — %s\n", cmd.Name, cmd.Description)
			}
			return strings.TrimRight(b.String(), "\n"), nil
		},
	}
}
