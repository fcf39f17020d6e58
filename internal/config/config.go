package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string
	DBPath       string
	APIURL       string
	AssetBaseURL string
	HRUserID     string
	HTTPTimeout  time.Duration
	LogLevel     slog.Level
	LogFormat    string

	// EndpointOverrides maps form types to replacement save paths.
	EndpointOverrides map[string]string
}

// endpointsFile is the YAML layout of ENDPOINTS_FILE.
type endpointsFile struct {
	Endpoints map[string]string `yaml:"endpoints"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	c := &Config{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "review.db"),
		APIURL:    strings.TrimRight(get("ONBOARDING_API_URL", "http://localhost:5000/api"), "/"),
		HRUserID:  get("HR_USER_ID", ""),
		LogFormat: strings.ToLower(get("LOG_FORMAT", "text")),
	}

	if _, err := url.ParseRequestURI(c.APIURL); err != nil {
		return nil, fmt.Errorf("ONBOARDING_API_URL: %w", err)
	}
	c.AssetBaseURL = strings.TrimRight(get("ASSET_BASE_URL", origin(c.APIURL)), "/")

	if v := get("HTTP_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		c.HTTPTimeout = d
	}

	if err := c.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if path := get("ENDPOINTS_FILE", ""); path != "" {
		overrides, err := LoadEndpoints(path)
		if err != nil {
			return nil, err
		}
		c.EndpointOverrides = overrides
	}
	return c, nil
}

// LoadEndpoints parses a YAML file of the form
//
//	endpoints:
//	  education: /onboarding/v2/save-education
func LoadEndpoints(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}
	var f endpointsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse endpoints file %s: %w", path, err)
	}
	return f.Endpoints, nil
}

// origin strips the path from an absolute URL: signature images are
// served from the API host root, not under its /api prefix.
func origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host
}

// Logger builds the process logger for c.
func (c *Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
