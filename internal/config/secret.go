package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

// ResolveAPIKey returns the shared secret clients must present. When no
// key is configured it generates a random one, which is never persisted:
// every externally-presented key stays invalid until an explicit key is
// deployed.
func (c *Config) ResolveAPIKey() (key string, generated bool) {
	if c.Auth.APIKey != "" {
		return c.Auth.APIKey, false
	}
	c.Auth.APIKey = generateSecret()
	return c.Auth.APIKey, true
}

// generateSecret creates a cryptographically secure random secret.
func generateSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to less secure but still random
		return fmt.Sprintf("drover-%d", os.Getpid())
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
