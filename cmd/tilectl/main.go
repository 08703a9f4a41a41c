// Package main implements the tilectl CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tilectl",
	Short:        "tilectl - move workspaces between outputs",
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootStateDir   string
	rootSeat       string
	rootVerbose    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Config file merged over ~/.config/tiler/config.toml")
	flags.StringVar(&rootStateDir, "state-dir", "", "State directory (default ~/.local/state/tiler)")
	flags.StringVar(&rootSeat, "seat", "", "Seat to act on (default from config, or seat0)")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Log tree changes to stderr")
}
