package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/csg33k/hr-review-portal/internal/config"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := config.FromEnv(env(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.Port != "8080" || c.DBPath != "review.db" {
		t.Errorf("port/db = %q/%q", c.Port, c.DBPath)
	}
	if c.APIURL != "http://localhost:5000/api" {
		t.Errorf("APIURL = %q", c.APIURL)
	}
	if c.AssetBaseURL != "http://localhost:5000" {
		t.Errorf("AssetBaseURL should default to the API origin, got %q", c.AssetBaseURL)
	}
	if c.HTTPTimeout != 0 {
		t.Errorf("HTTPTimeout = %v, want 0", c.HTTPTimeout)
	}
	if c.LogLevel != slog.LevelInfo || c.LogFormat != "text" {
		t.Errorf("log = %v/%q", c.LogLevel, c.LogFormat)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := config.FromEnv(env(map[string]string{
		"PORT":               "9090",
		"ONBOARDING_API_URL": "https://hr.example.com/api/",
		"ASSET_BASE_URL":     "https://cdn.example.com/",
		"HR_USER_ID":         "hr-7",
		"HTTP_TIMEOUT":       "15s",
		"LOG_LEVEL":          "debug",
		"LOG_FORMAT":         "JSON",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.Port != "9090" || c.HRUserID != "hr-7" {
		t.Errorf("port/hr = %q/%q", c.Port, c.HRUserID)
	}
	if c.APIURL != "https://hr.example.com/api" || c.AssetBaseURL != "https://cdn.example.com" {
		t.Errorf("urls = %q / %q", c.APIURL, c.AssetBaseURL)
	}
	if c.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v", c.HTTPTimeout)
	}
	if c.LogLevel != slog.LevelDebug || c.LogFormat != "json" {
		t.Errorf("log = %v/%q", c.LogLevel, c.LogFormat)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	for name, m := range map[string]map[string]string{
		"timeout":   {"HTTP_TIMEOUT": "soon"},
		"log level": {"LOG_LEVEL": "chatty"},
		"api url":   {"ONBOARDING_API_URL": "not a url"},
		"endpoints": {"ENDPOINTS_FILE": filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		if _, err := config.FromEnv(env(m)); err == nil {
			t.Errorf("%s: want error", name)
		}
	}
}

func TestFromEnv_EndpointsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	yaml := "endpoints:\n  education: /onboarding/v2/save-education\n  w4-form: /onboarding/save-w4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := config.FromEnv(env(map[string]string{"ENDPOINTS_FILE": path}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got := c.EndpointOverrides["education"]; got != "/onboarding/v2/save-education" {
		t.Errorf("education override = %q", got)
	}
	if got := c.EndpointOverrides["w4-form"]; got != "/onboarding/save-w4" {
		t.Errorf("w4-form override = %q", got)
	}
}

func TestLoadEndpoints_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte("endpoints: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadEndpoints(path); err == nil {
		t.Error("want parse error")
	}
}
