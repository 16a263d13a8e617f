package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/gsh"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gsh",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gsh version %s\n", gsh.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
