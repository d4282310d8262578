package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"treegen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gentree",
	Short: "Tree-node class generator",
	Long:  `gentree reads a declarative node-family spec and emits a target-language source file for it`,
}

func main() {
	rootCmd.Version = version.VersionString()
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "color mode for terminal output (auto|on|off); diagnostics are printed as plain text")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
