package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Dedup.Threshold < 0 || c.Dedup.Threshold > 100 {
		return fmt.Errorf("dedup.threshold must be in [0, 100] (got %v)", c.Dedup.Threshold)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}
