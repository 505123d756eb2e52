package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Ingest.MaxArtifactSize < 1 {
		errs = append(errs, "ingest.max_artifact_size must be >= 1")
	}
	for _, provider := range c.Ingest.ConnectorProviders {
		if provider == "" {
			errs = append(errs, "ingest.connector_providers must not contain empty names")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
