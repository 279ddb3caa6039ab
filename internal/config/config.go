package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains service configuration parameters.
type Config struct {
	AppName   string   `env:"APP_NAME" envDefault:"Atlas"`
	Debug     bool     `env:"DEBUG" envDefault:"false"`
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	Database  Database `envPrefix:"DATABASE_"`
	JWT       JWT      `envPrefix:"JWT_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

// Database contains database connection parameters.
type Database struct {
	URL string `env:"URL,notEmpty"`
}

// JWT contains access token parameters.
type JWT struct {
	Secret         string        `env:"SECRET,notEmpty"`
	Algorithm      string        `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
}

var loadDotEnv = godotenv.Load

// Load reads an optional .env file and then parses the environment.
// Variables already present in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := loadDotEnv(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TOKEN_TTL must be positive")
	}

	return &cfg, nil
}
