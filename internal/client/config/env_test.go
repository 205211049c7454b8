package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("ANIMALSYS_REQUEST_TIMEOUT", "12s")
	t.Setenv("ANIMALSYS_AUTH_FAILURE_STATUS", "419")
	t.Setenv("ANIMALSYS_SESSION_SECRET", "s3cret")
	t.Setenv("ANIMALSYS_S3_BUCKET", "photos")
	t.Setenv("ANIMALSYS_S3_ACCESS_KEY", "ak")
	t.Setenv("ANIMALSYS_S3_SECRET_KEY", "sk")
	t.Setenv("ANIMALSYS_S3_PATH_STYLE", "true")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 419, cfg.AuthFailureStatus)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "photos", cfg.S3.Bucket)
	assert.Equal(t, "ak", cfg.S3.AccessKey)
	assert.Equal(t, "sk", cfg.S3.SecretKey)
	assert.True(t, cfg.S3.UsePathStyle)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_BadPathStyle(t *testing.T) {
	t.Setenv("ANIMALSYS_S3_PATH_STYLE", "sometimes")

	var cfg Config
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANIMALSYS_S3_PATH_STYLE")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))

	t.Setenv("ANIMALSYS_LOG_FORMAT", "json")
	path := writeFile(t, dir, ".env", "ANIMALSYS_LOG_FORMAT=text\nANIMALSYS_TEST_DOTENV=loaded\n")
	t.Cleanup(func() { _ = os.Unsetenv("ANIMALSYS_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("ANIMALSYS_TEST_DOTENV"))
	assert.Equal(t, "json", os.Getenv("ANIMALSYS_LOG_FORMAT"), "existing variables win")
}
