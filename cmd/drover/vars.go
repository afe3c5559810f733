package cli

import (
	"github.com/spf13/cobra"

	"github.com/droverlabs/drover/internal/config"
)

// ServerConfig holds the loaded server configuration (set by main)
var ServerConfig *config.Config

// SetupRootCmd configures the root command with all subcommands
func SetupRootCmd(c *config.Config) *cobra.Command {
	ServerConfig = c

	rootCmd := &cobra.Command{
		Use:   "drover",
		Short: "Drover - browser automation worker",
		Long: `Drover is an HTTP worker that drives a shared headless Chromium
instance for screenshots, content extraction, and scripted page actions.

Just type 'drover' to start the server.`,
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	}

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(InstallCmd())
	rootCmd.AddCommand(ConfigCmd())

	return rootCmd
}
