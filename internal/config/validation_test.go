package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Ingest(t *testing.T) {
	t.Run("Zero MaxArtifactSize Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ingest.MaxArtifactSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_artifact_size")
	})

	t.Run("Empty Provider Name Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ingest.ConnectorProviders = []string{"github", ""}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connector_providers")
	})

	t.Run("Named Providers Pass", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ingest.ConnectorProviders = []string{"github", "gitlab"}
		assert.NoError(t, cfg.Validate())
	})
}
