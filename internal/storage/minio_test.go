package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salarydash/internal/config"
)

func TestNewMinIO(t *testing.T) {
	t.Run("endpoint required", func(t *testing.T) {
		s, err := NewMinIO(config.MinIOConfig{})
		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("half configured credentials", func(t *testing.T) {
		s, err := NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "key"})
		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("anonymous client", func(t *testing.T) {
		s, err := NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000"})
		assert.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("static credentials", func(t *testing.T) {
		s, err := NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "key", SecretKey: "secret", UseSSL: true})
		assert.NoError(t, err)
		assert.NotNil(t, s)
	})
}
