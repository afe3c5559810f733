package config

import (
	"os"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

// LoadFromBytes loads configuration from YAML bytes with environment
// variable expansion.
func LoadFromBytes(data []byte) (Config, error) {
	var c Config
	expanded := os.ExpandEnv(string(data))
	if err := conf.LoadFromYamlBytes([]byte(expanded), &c); err != nil {
		return c, err
	}
	return c, nil
}

// parseBool parses a string as boolean with a default value. Env-expanded
// yaml values arrive as strings, possibly empty.
// Accepts: "true", "1", "yes" as true; empty or other values return default.
func parseBool(s string, defaultVal bool) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return defaultVal
	}
	return s == "true" || s == "1" || s == "yes"
}

type Config struct {
	rest.RestConf
	App struct {
		ProductionMode string `json:",default=false"`
	}
	Auth struct {
		// APIKey is the shared secret clients present. Empty means a
		// random key is generated at startup and every external call
		// is rejected until an explicit key is deployed.
		APIKey string `json:",optional"`
	}
	Browser struct {
		StoragePath       string `json:",default=playwright_storage.json"`
		Headless          string `json:",default=true"`
		NavTimeoutMs      int    `json:",default=30000"`
		WaitTimeoutMs     int    `json:",default=30000"`
		SelectorTimeoutMs int    `json:",default=10000"`
	}
	Database struct {
		SQLitePath string `json:",default=./data/drover.db"`
	}
	Autosave struct {
		Enabled  string `json:",default=true"`
		Schedule string `json:",default=@every 5m"`
	}
	Metrics struct {
		Enabled string `json:",default=true"`
	}
}

func (c Config) IsProductionMode() bool {
	return parseBool(c.App.ProductionMode, false)
}

func (c Config) IsHeadless() bool {
	return parseBool(c.Browser.Headless, true)
}

func (c Config) IsAutosaveEnabled() bool {
	return parseBool(c.Autosave.Enabled, true)
}

func (c Config) IsMetricsEnabled() bool {
	return parseBool(c.Metrics.Enabled, true)
}
