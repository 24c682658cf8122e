package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llbc",
	Short: "Inspect serialized LLBC crates",
	Long:  `llbc decodes and pretty-prints serialized crates for debugging extraction output`,
}

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		colorOverride(false)
	case "off":
		colorOverride(true)
	}
}
