package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CUSP_API_BASE_URL", "http://api.example/")
	t.Setenv("CUSP_ASSET_BASE_URL", "")
	t.Setenv("STATE_DIR", "")
	t.Setenv("VERIFY_INTERVAL_SECONDS", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://api.example" {
		t.Errorf("base url = %q, trailing slash should be trimmed", cfg.APIBaseURL)
	}
	if cfg.StateDir != "storage/state" {
		t.Errorf("state dir = %q", cfg.StateDir)
	}
	if cfg.VerifyInterval() != 5*time.Second {
		t.Errorf("verify interval = %v", cfg.VerifyInterval())
	}
	if len(cfg.CorsOrigins) != 0 {
		t.Errorf("cors origins = %v", cfg.CorsOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CUSP_API_BASE_URL", "http://api.example")
	t.Setenv("VERIFY_INTERVAL_SECONDS", "30")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()
	if cfg.VerifyInterval() != 30*time.Second {
		t.Errorf("verify interval = %v", cfg.VerifyInterval())
	}
	if len(cfg.CorsOrigins) != 2 || cfg.CorsOrigins[1] != "http://b.example" {
		t.Errorf("cors origins = %v", cfg.CorsOrigins)
	}
}

func TestVerifyIntervalFloor(t *testing.T) {
	cfg := Config{VerifyIntervalSeconds: 0}
	if cfg.VerifyInterval() != 5*time.Second {
		t.Errorf("interval = %v", cfg.VerifyInterval())
	}
	cfg.VerifyIntervalSeconds = -3
	if cfg.VerifyInterval() != 5*time.Second {
		t.Errorf("negative interval = %v", cfg.VerifyInterval())
	}
}

func TestMissingBaseURLPanics(t *testing.T) {
	t.Setenv("CUSP_API_BASE_URL", "")
	defer func() {
		if recover() == nil {
			t.Error("Load did not panic without CUSP_API_BASE_URL")
		}
	}()
	Load()
}
