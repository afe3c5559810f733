package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigCmd creates the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration as YAML",
		Run: func(cmd *cobra.Command, args []string) {
			dumpConfig()
		},
	})

	return cmd
}

// showConfig displays the resolved configuration
func showConfig() {
	c := ServerConfig

	fmt.Println("Drover Configuration")
	fmt.Println("====================")
	fmt.Printf("Listen: %s:%d\n", c.Host, c.Port)

	apiKey := "set"
	if c.Auth.APIKey == "" {
		apiKey = "generated at startup"
	}
	fmt.Printf("API key: %s\n", apiKey)
	fmt.Println()

	fmt.Println("Browser:")
	fmt.Printf("  Headless: %v\n", c.IsHeadless())
	fmt.Printf("  Storage: %s\n", c.Browser.StoragePath)
	fmt.Printf("  Navigation timeout: %dms\n", c.Browser.NavTimeoutMs)
	fmt.Printf("  Readiness timeout: %dms\n", c.Browser.WaitTimeoutMs)
	fmt.Printf("  Selector timeout: %dms\n", c.Browser.SelectorTimeoutMs)
	fmt.Println()

	fmt.Printf("Database: %s\n", c.Database.SQLitePath)
	fmt.Printf("Autosave: enabled=%v schedule=%s\n", c.IsAutosaveEnabled(), c.Autosave.Schedule)
	fmt.Printf("Metrics: enabled=%v\n", c.IsMetricsEnabled())
}

// dumpConfig prints the full configuration as YAML
func dumpConfig() {
	c := *ServerConfig
	if c.Auth.APIKey != "" {
		c.Auth.APIKey = "[redacted]"
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
