package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath string
	socketPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:          "tabpick",
	Short:        "Fuzzy-find and focus tmux windows",
	Long:         "tabpick lists the windows of the current tmux session, filters them as you type, and focuses the one you pick.",
	SilenceUsage: true,
	RunE:         runPicker,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tabpick %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tabpick/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "tmux server socket path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
