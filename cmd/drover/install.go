package cli

import (
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"
)

// InstallCmd creates the install command
func InstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the browser engine",
		Long: `Download the Playwright driver and a managed Chromium build.

The server installs these on first use; running install ahead of time keeps
the first task fast.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Installing Playwright driver and Chromium...")
			if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
				fmt.Fprintf(os.Stderr, "Install failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Browser engine ready.")
		},
	}
}
