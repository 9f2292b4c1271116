package config

import (
	"fmt"
	"os"
)

// Validate performs business-rule validation on the loaded
// configuration. It must be called after loading; Load calls it
// automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Paradigm.BundlePath != "" {
		if _, err := os.Stat(c.Paradigm.BundlePath); err != nil {
			return fmt.Errorf("paradigm.bundle_path %s: %w", c.Paradigm.BundlePath, err)
		}
	}

	return nil
}
