package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "config-test-secret-of-at-least-32-chars"

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("WELLBEING_DATABASE_URL", "postgres://localhost:5432/wellbeing_test")
	t.Setenv("WELLBEING_AUTH_JWT_SECRET", testJWTSecret)

	cfg, err := Load()
	require.NoError(t, err)

	// Defaults apply where the environment is silent
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 1440, cfg.Auth.TokenLifetimeMinutes)

	assert.Equal(t, "postgres://localhost:5432/wellbeing_test", cfg.Database.URL)
	assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("WELLBEING_DATABASE_URL", "postgres://localhost:5432/wellbeing_test")
	t.Setenv("WELLBEING_AUTH_JWT_SECRET", testJWTSecret)
	t.Setenv("WELLBEING_SERVER_PORT", "9090")
	t.Setenv("WELLBEING_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WELLBEING_AUTH_TOKEN_LIFETIME_MINUTES", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database url",
			env: map[string]string{
				"WELLBEING_AUTH_JWT_SECRET": testJWTSecret,
			},
		},
		{
			name: "missing jwt secret",
			env: map[string]string{
				"WELLBEING_DATABASE_URL": "postgres://localhost:5432/wellbeing_test",
			},
		},
		{
			name: "jwt secret too short",
			env: map[string]string{
				"WELLBEING_DATABASE_URL":    "postgres://localhost:5432/wellbeing_test",
				"WELLBEING_AUTH_JWT_SECRET": "short",
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"WELLBEING_DATABASE_URL":     "postgres://localhost:5432/wellbeing_test",
				"WELLBEING_AUTH_JWT_SECRET":  testJWTSecret,
				"WELLBEING_SERVER_LOG_LEVEL": "verbose",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
