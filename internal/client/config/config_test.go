package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sainaif/animalsys/internal/common"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// inTempDir moves the test into an empty directory so that a stray .env in
// the package directory is never picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, c.APIBaseURL)
	assert.Equal(t, common.DefaultRequestTimeout, c.RequestTimeout)
	assert.Equal(t, http.StatusUnauthorized, c.AuthFailureStatus)
	assert.NotEmpty(t, c.SessionDBPath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	inTempDir(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, common.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_OriginBuildsBaseURL(t *testing.T) {
	inTempDir(t)
	t.Setenv("ANIMALSYS_ORIGIN", "https://shelter.example/")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://shelter.example/api/v1", cfg.APIBaseURL)
}

func TestLoadConfig_ExplicitBaseURLBeatsOrigin(t *testing.T) {
	inTempDir(t)
	t.Setenv("ANIMALSYS_ORIGIN", "https://shelter.example")
	t.Setenv("ANIMALSYS_API_BASE_URL", "https://api.shelter.example/v2/")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.shelter.example/v2", cfg.APIBaseURL)
}

func TestLoadConfig_LaterOriginReplacesEarlierBaseURL(t *testing.T) {
	dir := inTempDir(t)
	file := writeFile(t, dir, "client.json", `{"api_base_url": "http://from-file:8080/api/v1"}`)
	t.Setenv("ANIMALSYS_ORIGIN", "https://shelter.example")

	cfg, err := LoadConfig([]string{"-c", file})
	require.NoError(t, err)
	assert.Equal(t, "https://shelter.example/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "https://shelter.example", cfg.Origin)
}

func TestLoadConfig_LaterBaseURLBeatsEarlierOrigin(t *testing.T) {
	dir := inTempDir(t)
	file := writeFile(t, dir, "client.yaml", "origin: https://shelter.example\n")
	t.Setenv("ANIMALSYS_API_BASE_URL", "https://api.shelter.example/v2")

	cfg, err := LoadConfig([]string{"-c", file})
	require.NoError(t, err)
	assert.Equal(t, "https://api.shelter.example/v2", cfg.APIBaseURL)
}

func TestSetEndpoint(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://a/api/v1"}

	setEndpoint(cfg, "", "")
	assert.Equal(t, "http://a/api/v1", cfg.APIBaseURL, "an empty source changes nothing")

	setEndpoint(cfg, "http://b/api", "http://o")
	assert.Equal(t, "http://b/api", cfg.APIBaseURL, "base URL wins within one source")
	assert.Equal(t, "http://o", cfg.Origin)

	setEndpoint(cfg, "", "http://p")
	assert.Empty(t, cfg.APIBaseURL)
	assert.Equal(t, "http://p", cfg.Origin)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := inTempDir(t)

	file := writeFile(t, dir, "client.json", `{
		"api_base_url": "http://from-file:8080/api/v1",
		"request_timeout": "10s",
		"log_level": "warn",
		"session_db": "/tmp/file.db"
	}`)
	writeFile(t, dir, ".env", "ANIMALSYS_LOG_LEVEL=error\nANIMALSYS_SESSION_SECRET=dotenv-secret\n")
	t.Setenv("ANIMALSYS_SESSION_DB", "/tmp/env.db")
	t.Cleanup(func() {
		_ = os.Unsetenv("ANIMALSYS_LOG_LEVEL")
		_ = os.Unsetenv("ANIMALSYS_SESSION_SECRET")
	})

	cfg, err := LoadConfig([]string{"-c", file, "-t", "5", "-s", "/tmp/flag.db"})
	require.NoError(t, err)

	want := &Config{
		APIBaseURL:        "http://from-file:8080/api/v1",
		RequestTimeout:    5 * time.Second,
		AuthFailureStatus: http.StatusUnauthorized,
		SessionDBPath:     "/tmp/flag.db",
		SessionSecret:     "dotenv-secret",
		LogLevel:          "error",
		LogFormat:         "text",
		S3:                S3Config{Region: "us-east-1"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_TimeoutFlagUnsetKeepsFileValue(t *testing.T) {
	dir := inTempDir(t)
	file := writeFile(t, dir, "client.json", `{"request_timeout": "1500ms"}`)

	cfg, err := LoadConfig([]string{"-c", file, "-l", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad log level", nil, []string{"-l", "chatty"}},
		{"bad base url", nil, []string{"-a", "not a url"}},
		{"zero timeout", nil, []string{"-t", "0"}},
		{"auth status outside 4xx", map[string]string{"ANIMALSYS_AUTH_FAILURE_STATUS": "500"}, nil},
		{"bad log format", map[string]string{"ANIMALSYS_LOG_FORMAT": "xml"}, nil},
		{"access key without secret", map[string]string{"ANIMALSYS_S3_ACCESS_KEY": "AKIA"}, nil},
		{"bad metrics addr", map[string]string{"ANIMALSYS_METRICS_ADDR": "nohostport"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inTempDir(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tc.args)
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_BadFlagValue(t *testing.T) {
	inTempDir(t)
	_, err := LoadConfig([]string{"-t", "soon"})
	require.Error(t, err)
}

func TestLoadConfig_MissingConfigFile(t *testing.T) {
	dir := inTempDir(t)
	_, err := LoadConfig([]string{"-c", filepath.Join(dir, "absent.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestS3Config_Uploads(t *testing.T) {
	c := S3Config{
		Bucket:       "photos",
		Region:       "eu-central-1",
		Endpoint:     "http://minio:9000",
		AccessKey:    "ak",
		SecretKey:    "sk",
		PublicURL:    "https://cdn.example",
		UsePathStyle: true,
	}
	u := c.Uploads()

	assert.Equal(t, "photos", u.Bucket)
	assert.Equal(t, "eu-central-1", u.Region)
	assert.Equal(t, "http://minio:9000", u.Endpoint)
	assert.Equal(t, "ak", u.AccessKey)
	assert.Equal(t, "sk", u.SecretKey)
	assert.Equal(t, "https://cdn.example", u.PublicURL)
	assert.True(t, u.UsePathStyle)
}
