// ABOUTME: /export helper bridging the navigator snapshot to the export writer
// ABOUTME: Kept out of commands.go so the registry stays declaration-only

package commands

import "github.com/mauromedda/torus-go/internal/export"

func writeSnapshot(ctx *Context, path string) error {
	return export.WriteFile(path, ctx.Nav.Snapshot())
}
