package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sainaif/animalsys/internal/flagx"
	"github.com/sainaif/animalsys/internal/timex"
)

// fileConfig is the on-disk shape of the config file. Zero values leave the
// corresponding Config field untouched.
type fileConfig struct {
	APIBaseURL        string         `json:"api_base_url" yaml:"api_base_url"`
	Origin            string         `json:"origin" yaml:"origin"`
	RequestTimeout    timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	AuthFailureStatus int            `json:"auth_failure_status" yaml:"auth_failure_status"`
	SessionDB         string         `json:"session_db" yaml:"session_db"`
	LogLevel          string         `json:"log_level" yaml:"log_level"`
	LogFormat         string         `json:"log_format" yaml:"log_format"`
	MetricsAddr       string         `json:"metrics_addr" yaml:"metrics_addr"`
	S3                fileS3Config   `json:"s3" yaml:"s3"`
}

type fileS3Config struct {
	Bucket       string `json:"bucket" yaml:"bucket"`
	Region       string `json:"region" yaml:"region"`
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
	PublicURL    string `json:"public_url" yaml:"public_url"`
	UsePathStyle *bool  `json:"use_path_style" yaml:"use_path_style"`
}

// parseFile overlays cfg with the file named by -c/-config in args, if any.
// Secrets are deliberately not read from files.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setEndpoint(cfg, fc.APIBaseURL, fc.Origin)
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.AuthFailureStatus != 0 {
		cfg.AuthFailureStatus = fc.AuthFailureStatus
	}
	setString(&cfg.SessionDBPath, fc.SessionDB)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.MetricsAddr, fc.MetricsAddr)

	setString(&cfg.S3.Bucket, fc.S3.Bucket)
	setString(&cfg.S3.Region, fc.S3.Region)
	setString(&cfg.S3.Endpoint, fc.S3.Endpoint)
	setString(&cfg.S3.PublicURL, fc.S3.PublicURL)
	if fc.S3.UsePathStyle != nil {
		cfg.S3.UsePathStyle = *fc.S3.UsePathStyle
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
