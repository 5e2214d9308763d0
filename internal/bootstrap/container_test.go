package bootstrap

import (
	"testing"

	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containerConfig(env, secret string) *config.Config {
	return &config.Config{
		App:      config.AppConfig{Environment: env},
		Database: config.DatabaseConfig{Driver: "memory"},
		Auth: config.AuthConfig{
			JWTSecret:        secret,
			JWTExpiryHours:   1,
			MaxLoginAttempts: 3,
			LockoutMinutes:   1,
		},
	}
}

func TestNewContainer_RefusesEmptySecretInProduction(t *testing.T) {
	infra := NewMemoryInfrastructure(logger.NewNopLogger())

	container, err := NewContainer(containerConfig("production", ""), infra)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, container)
}

func TestNewContainer_SecretRules(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		secret string
	}{
		{name: "production with secret", env: "production", secret: "prod-secret"},
		{name: "development falls back to default", env: "development", secret: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infra := NewMemoryInfrastructure(logger.NewNopLogger())

			container, err := NewContainer(containerConfig(tt.env, tt.secret), infra)
			require.NoError(t, err)
			require.NotNil(t, container)
			assert.NoError(t, container.Close())
		})
	}
}
