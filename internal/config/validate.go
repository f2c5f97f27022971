package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return errors.New("store.path must be set")
	}
	if len(c.Classifier.FlourHints) == 0 {
		return errors.New("classifier.flour_hints must include at least one hint")
	}
	if len(c.Classifier.LiquidHints) == 0 {
		return errors.New("classifier.liquid_hints must include at least one hint")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
