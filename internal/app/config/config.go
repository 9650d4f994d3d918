// Package config loads the service configuration.
//
// Values come from an optional YAML file, then environment variables
// override them. The result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"movie_backend/internal/feature/movies/domain/logo"
	"movie_backend/internal/feature/movies/usecase"
	"movie_backend/internal/platform/externalapi/tmdb"
)

// ErrMissingAPIKey is returned when no TMDB API key is configured.
var ErrMissingAPIKey = errors.New("API_KEY environment variable is required")

// DefaultPort is the listen port when neither the file nor PORT sets one.
const DefaultPort = 4000

type CORS struct {
	AllowOrigins     []string `yaml:"allowOrigins" validate:"dive,url"`
	AllowCredentials bool     `yaml:"allowCredentials"`
}

type TMDB struct {
	APIKey       string        `yaml:"-" validate:"required"`
	BaseURL      string        `yaml:"baseURL" validate:"required,url"`
	ImageBaseURL string        `yaml:"imageBaseURL" validate:"required,url"`
	Language     string        `yaml:"language" validate:"required"`
	Timeout      time.Duration `yaml:"timeout" validate:"gt=0"`
}

type Logo struct {
	PrimaryLanguage  string `yaml:"primaryLanguage" validate:"required"`
	FallbackLanguage string `yaml:"fallbackLanguage"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Config is the whole service configuration.
type Config struct {
	Port int  `yaml:"port" validate:"min=1,max=65535"`
	CORS CORS `yaml:"cors"`
	TMDB TMDB `yaml:"tmdb"`
	Logo Logo `yaml:"logo"`
	Log  Log  `yaml:"log"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port: DefaultPort,
		CORS: CORS{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowCredentials: true,
		},
		TMDB: TMDB{
			BaseURL:      tmdb.DefaultBaseURL,
			ImageBaseURL: logo.DefaultImageBaseURL,
			Language:     usecase.DefaultLanguage,
			Timeout:      tmdb.DefaultTimeout,
		},
		Logo: Logo{
			PrimaryLanguage:  logo.DefaultPreference.Primary,
			FallbackLanguage: logo.DefaultPreference.Fallback,
		},
		Log: Log{Level: "info", Format: "json"},
	}
}

// Path returns CONFIG_PATH, or config.yaml in the working directory.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(cwd, "config.yaml")
}

// Load reads path (a missing file is not an error), applies the
// environment and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg, reporting a missing API key as ErrMissingAPIKey.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// TMDBClient returns the settings of the upstream client.
func (c Config) TMDBClient() tmdb.Config {
	return tmdb.Config{
		APIKey:  c.TMDB.APIKey,
		BaseURL: c.TMDB.BaseURL,
		Timeout: c.TMDB.Timeout,
	}
}

// LogoPreference returns the language chain used to pick logos.
func (c Config) LogoPreference() logo.Preference {
	return logo.Preference{
		Primary:  c.Logo.PrimaryLanguage,
		Fallback: c.Logo.FallbackLanguage,
	}
}

func applyEnv(cfg *Config) error {
	cfg.TMDB.APIKey = os.Getenv("API_KEY")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be a number: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("TMDB_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TMDB_TIMEOUT must be a duration: %w", err)
		}
		cfg.TMDB.Timeout = d
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORS.AllowOrigins = splitList(v)
	}

	setString(&cfg.TMDB.BaseURL, "TMDB_BASE_URL")
	setString(&cfg.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL")
	setString(&cfg.TMDB.Language, "TMDB_LANGUAGE")
	setString(&cfg.Logo.PrimaryLanguage, "LOGO_PRIMARY_LANGUAGE")
	setString(&cfg.Logo.FallbackLanguage, "LOGO_FALLBACK_LANGUAGE")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
