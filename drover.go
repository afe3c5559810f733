package main

import (
	_ "embed"
	"fmt"
	"os"

	cli "github.com/droverlabs/drover/cmd/drover"
	"github.com/droverlabs/drover/internal/config"

	"github.com/joho/godotenv"
)

//go:embed etc/drover.yaml
var embeddedConfig []byte

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Load embedded config, expanded against the environment
	c, err := config.LoadFromBytes(embeddedConfig)
	if err != nil {
		fmt.Printf("Failed to load embedded config: %v\n", err)
		os.Exit(1)
	}

	// Pass config to CLI and execute
	if err := cli.SetupRootCmd(&c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
