package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// The scheduler invokes the binary with no arguments; that is one
	// observation run.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "run")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "vigil",
	Short:   "Observe-only health agent for a local model service",
	Long:    "Vigil runs contract checks against a local model service, records one JSON event per run, and captures evidence bundles when a run fails.",
	Version: Version,
}
