package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Ingest IngestConfig `json:"ingest"`
}

type IngestConfig struct {
	// MaxArtifactSize caps how large a single test-report or connector
	// artifact may be before it is skipped.
	MaxArtifactSize int64 `json:"max_artifact_size"` // Default: 10 * 1024 * 1024 (10MB)

	// ConnectorProviders is an allowlist of connector provider directory
	// names. Empty means all providers are admitted.
	ConnectorProviders []string `json:"connector_providers"` // Default: empty (all)

	// RedactCredentials enables the credential pattern families in
	// addition to the always-on tool-envelope families.
	RedactCredentials bool `json:"redact_credentials"` // Default: true

	// DemoMode serves fixture commit data instead of opening a repository.
	DemoMode bool `json:"demo_mode"` // Default: false
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Ingest: IngestConfig{
			MaxArtifactSize:    10 * 1024 * 1024,
			ConnectorProviders: nil,
			RedactCredentials:  true,
			DemoMode:           false,
		},
	}
}
