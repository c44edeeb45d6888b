// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --layout, --ring, --plain, --verbose, --version

package main

import "flag"

type cliArgs struct {
	config  string
	layout  string
	ring    string
	plain   bool
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "", "Config file to use instead of the global/project merge")
	flag.StringVar(&args.layout, "layout", "", "Layout file to seed rings from (default: .torus/layout.yaml)")
	flag.StringVar(&args.ring, "ring", "", "Ring that files given on the command line land in")
	flag.BoolVar(&args.plain, "plain", false, "Disable markdown rendering in the buffer pane")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
