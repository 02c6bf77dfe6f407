package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingSchemaVersion(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_SchemaMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestValidateEnv_MissingPostgresVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnv_MemoryDriverNeedsOnlySchema(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_DRIVER", "memory")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "db")
	t.Setenv("DISCORD_WEBHOOK_ID", "123")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "CLASSIFIER_URL")
	assert.Contains(t, warnings[2], "DISCORD_WEBHOOK")
}

func TestValidateEnv_UnknownDriver(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_DRIVER", "mongo")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown STORE_DRIVER "mongo"`)
}

func TestValidateEnv_MalformedValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"IMAGE_MAX_BYTES", "5MB"},
		{"UNSAFE_THRESHOLD", "high"},
		{"SESSION_TTL", "30"},
		{"REQUIRE_IMAGE", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
			t.Setenv("STORE_DRIVER", "memory")
			t.Setenv(tt.key, tt.value)

			err := ValidateEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key+"=")
		})
	}
}

func TestValidateEnv_ReportsEveryProblem(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("CANVAS_WIDTH", "wide")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SQLITE_PATH is required")
	assert.Contains(t, err.Error(), "CANVAS_WIDTH")
}

func TestValidateEnvWithWarnings_MemoryDriver(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CLASSIFIER_URL", "http://classifier:8000")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "lost on restart")
}
