// Package main is the levent showcase: a driver that exercises standalone
// events, the registry, Lua listeners and the interactive TUI mode.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ryder052/LEvent/internal/config"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.TUI {
		if err := runTUI(opts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runShowcase(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Options are the showcase command-line options.
type Options struct {
	ConfigPath string
	TUI        bool
}

func parseFlags() Options {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "showcase.toml", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "showcase.toml", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.TUI, "tui", false, "Run the interactive terminal mode")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "leventshow - typed event dispatch showcase\n\n")
		fmt.Fprintf(os.Stderr, "Usage: leventshow [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  leventshow                  Run the scripted showcase\n")
		fmt.Fprintf(os.Stderr, "  leventshow -tui             Trigger events interactively\n")
		fmt.Fprintf(os.Stderr, "  leventshow -c demo.toml     Use a specific configuration\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("leventshow %s\n", version)
		os.Exit(0)
	}

	return opts
}
