package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gsh/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive shell",
	Long:  `Starts a shell session reading commands from stdin and writing status messages to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		plain, _ := cmd.Flags().GetBool("plain")
		listen, _ := cmd.Flags().GetString("listen")

		opts := cli.RunOptions{
			ConfigPath:     configPath,
			ConfigExplicit: cmd.Flags().Changed("config"),
			Debug:          debug,
			NoBanner:       noBanner,
			Plain:          plain,
			Listen:         listen,
		}
		if err := cli.Run(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering of help text")
	runCmd.Flags().String("listen", "", "Serve the command catalog and metrics on this address (e.g. :2112)")

	// Make 'run' the default when no subcommand is given.
	rootCmd.Run = runCmd.Run
}
