package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gsh",
	Short: "gsh is an interactive shell for graph datasets",
	Long:  `gsh runs a line-based command shell whose commands load and inspect sets of node IDs and arcs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "gsh.yaml", "Path to the shell configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
