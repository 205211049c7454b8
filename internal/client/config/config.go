package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sainaif/animalsys/internal/client/uploads"
	"github.com/sainaif/animalsys/internal/common"
	"github.com/sainaif/animalsys/internal/filex"
)

type Config struct {
	APIBaseURL        string        `validate:"required,http_url"`
	Origin            string        `validate:"omitempty,http_url"`
	RequestTimeout    time.Duration `validate:"gt=0"`
	AuthFailureStatus int           `validate:"gte=400,lte=499"`
	SessionDBPath     string        `validate:"required"`
	SessionSecret     string
	LogLevel          string `validate:"oneof=debug info warn error"`
	LogFormat         string `validate:"oneof=text json"`
	MetricsAddr       string `validate:"omitempty,hostname_port"`
	S3                S3Config
}

type S3Config struct {
	Bucket       string
	Region       string
	Endpoint     string `validate:"omitempty,http_url"`
	AccessKey    string
	SecretKey    string `validate:"required_with=AccessKey"`
	PublicURL    string `validate:"omitempty,http_url"`
	UsePathStyle bool
}

// Uploads converts the S3 section for the uploads package.
func (c S3Config) Uploads() uploads.Config {
	return uploads.Config{
		Bucket:       c.Bucket,
		Region:       c.Region,
		Endpoint:     c.Endpoint,
		AccessKey:    c.AccessKey,
		SecretKey:    c.SecretKey,
		PublicURL:    c.PublicURL,
		UsePathStyle: c.UsePathStyle,
	}
}

// LoadDefaults populates c with defaults. APIBaseURL stays empty so that a
// configured origin can still supply it; see resolveBaseURL.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = common.DefaultRequestTimeout
	c.AuthFailureStatus = http.StatusUnauthorized
	c.SessionDBPath = filex.DefaultSessionPath()
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.S3.Region = "us-east-1"
}

// LoadConfig builds a Config from defaults, the config file, the
// environment and args (without the program name), then validates it.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	cfg.resolveBaseURL()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setEndpoint applies one source's base URL and origin. Within a source an
// explicit base URL beats the origin; an origin alone replaces a base URL
// taken from an earlier source.
func setEndpoint(cfg *Config, baseURL, origin string) {
	switch {
	case baseURL != "":
		cfg.APIBaseURL = baseURL
		setString(&cfg.Origin, origin)
	case origin != "":
		cfg.Origin = origin
		cfg.APIBaseURL = ""
	}
}

func (c *Config) resolveBaseURL() {
	switch {
	case c.APIBaseURL != "":
	case c.Origin != "":
		c.APIBaseURL = strings.TrimRight(c.Origin, "/") + common.APIPathPrefix
	default:
		c.APIBaseURL = common.DefaultAPIBaseURL
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
