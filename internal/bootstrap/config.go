package bootstrap

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	MongoURI string        `yaml:"mongo_uri" env:"ANIMALSYS_MONGO_URI" env-default:"mongodb://localhost:27017" validate:"required,startswith=mongodb"`
	Database string        `yaml:"database" env:"ANIMALSYS_MONGO_DATABASE" env-default:"animalsys" validate:"required"`
	Timeout  time.Duration `yaml:"timeout" env:"ANIMALSYS_MONGO_TIMEOUT" env-default:"10s" validate:"gt=0"`

	// AppUser, when set, is created with readWrite on Database.
	AppUser     string `yaml:"app_user" env:"ANIMALSYS_MONGO_APP_USER"`
	AppPassword string `yaml:"app_password" env:"ANIMALSYS_MONGO_APP_PASSWORD" validate:"required_with=AppUser"`

	LogLevel  string `yaml:"log_level" env:"ANIMALSYS_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" env:"ANIMALSYS_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// LoadConfig reads the YAML file at path, when given, and the environment.
// Environment variables override the file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load bootstrap config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid bootstrap config: %w", err)
	}
	return &cfg, nil
}
