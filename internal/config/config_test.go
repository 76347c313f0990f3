package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "WORD_LENGTH", "MAX_ATTEMPTS", "APP_ENV", "LOG_PRETTY", "JWT_SECRET"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 5, c.WordLength)
	assert.Equal(t, 6, c.MaxAttempts)
	assert.Equal(t, "dev_secret_change_me", c.JWTSecret)
	assert.False(t, c.LogPretty)
	assert.False(t, c.Production())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("MAX_ATTEMPTS", "-3")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("APP_ENV", "Production")

	c := FromEnv()
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 6, c.WordLength)
	assert.Equal(t, 6, c.MaxAttempts, "invalid values fall back")
	assert.True(t, c.LogPretty)
	assert.True(t, c.Production())
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DAILY_SALT=from_file\n"), 0o644))
	t.Setenv("DAILY_SALT", "")
	require.NoError(t, os.Unsetenv("DAILY_SALT"))

	c := Load(path)
	assert.Equal(t, "from_file", c.DailySalt)
	require.NoError(t, os.Unsetenv("DAILY_SALT"))
}
