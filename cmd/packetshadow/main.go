// Packetshadow is a terminal control shell for wireless monitor mode.
//
// It lists the host's wireless adapters and drives airmon-ng to enable or
// disable monitor mode on them, kill interfering processes and restart
// NetworkManager.
//
// Usage:
//
//	packetshadow [flags]
//	packetshadow version
//
// Most actions need root. Set PACKETSHADOW_LOG_LEVEL=debug to log every
// command and its output to a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/packetshadow/packetshadow/internal/version"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "packetshadow",
	Short: "Wireless monitor mode control shell",
	Long: `PacketShadow lists wireless adapters and switches them in and out of
monitor mode with airmon-ng.

Select an adapter from the list or type its number, then enable or disable
monitor mode, kill interfering processes or restart NetworkManager. The
adapter list is refreshed after every command.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/packetshadow/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "packetshadow %s\n", version.Full())
	},
}
