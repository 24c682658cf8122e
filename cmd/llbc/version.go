package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridable at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("llbc %s\n", Version)
		if GitCommit != "" {
			fmt.Printf("commit: %s\n", GitCommit)
		}
		if BuildDate != "" {
			fmt.Printf("built: %s\n", BuildDate)
		}
	},
}
