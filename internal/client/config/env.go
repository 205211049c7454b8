package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type envConfig struct {
	APIBaseURL        string        `env:"ANIMALSYS_API_BASE_URL"`
	Origin            string        `env:"ANIMALSYS_ORIGIN"`
	RequestTimeout    time.Duration `env:"ANIMALSYS_REQUEST_TIMEOUT"`
	AuthFailureStatus int           `env:"ANIMALSYS_AUTH_FAILURE_STATUS"`
	SessionDB         string        `env:"ANIMALSYS_SESSION_DB"`
	SessionSecret     string        `env:"ANIMALSYS_SESSION_SECRET"`
	LogLevel          string        `env:"ANIMALSYS_LOG_LEVEL"`
	LogFormat         string        `env:"ANIMALSYS_LOG_FORMAT"`
	MetricsAddr       string        `env:"ANIMALSYS_METRICS_ADDR"`

	S3Bucket    string `env:"ANIMALSYS_S3_BUCKET"`
	S3Region    string `env:"ANIMALSYS_S3_REGION"`
	S3Endpoint  string `env:"ANIMALSYS_S3_ENDPOINT"`
	S3AccessKey string `env:"ANIMALSYS_S3_ACCESS_KEY"`
	S3SecretKey string `env:"ANIMALSYS_S3_SECRET_KEY"`
	S3PublicURL string `env:"ANIMALSYS_S3_PUBLIC_URL"`
	S3PathStyle string `env:"ANIMALSYS_S3_PATH_STYLE"`
}

// loadDotEnv exports the variables of a .env file into the process
// environment. Variables that are already set win. A missing file is not an
// error.
func loadDotEnv(path string) error {
	if !fileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with the ANIMALSYS_* environment variables that
// are set.
func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setEndpoint(cfg, ec.APIBaseURL, ec.Origin)
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.AuthFailureStatus != 0 {
		cfg.AuthFailureStatus = ec.AuthFailureStatus
	}
	setString(&cfg.SessionDBPath, ec.SessionDB)
	setString(&cfg.SessionSecret, ec.SessionSecret)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.MetricsAddr, ec.MetricsAddr)

	setString(&cfg.S3.Bucket, ec.S3Bucket)
	setString(&cfg.S3.Region, ec.S3Region)
	setString(&cfg.S3.Endpoint, ec.S3Endpoint)
	setString(&cfg.S3.AccessKey, ec.S3AccessKey)
	setString(&cfg.S3.SecretKey, ec.S3SecretKey)
	setString(&cfg.S3.PublicURL, ec.S3PublicURL)
	if ec.S3PathStyle != "" {
		v, err := strconv.ParseBool(ec.S3PathStyle)
		if err != nil {
			return fmt.Errorf("ANIMALSYS_S3_PATH_STYLE: %w", err)
		}
		cfg.S3.UsePathStyle = v
	}
	return nil
}
