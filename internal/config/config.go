package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	APIBaseURL            string
	AssetBaseURL          string
	StateDir              string
	VerifyIntervalSeconds int
	CorsOrigins           []string
}

func Load() Config {
	return Config{
		APIBaseURL:            strings.TrimRight(mustEnv("CUSP_API_BASE_URL"), "/"),
		AssetBaseURL:          strings.TrimRight(envOr("CUSP_ASSET_BASE_URL", ""), "/"),
		StateDir:              envOr("STATE_DIR", "storage/state"),
		VerifyIntervalSeconds: envOrInt("VERIFY_INTERVAL_SECONDS", 5),
		CorsOrigins:           parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

// VerifyInterval is the session guard's re-check period.
func (c Config) VerifyInterval() time.Duration {
	seconds := c.VerifyIntervalSeconds
	if seconds <= 0 {
		seconds = 5
	}
	return time.Duration(seconds) * time.Second
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
