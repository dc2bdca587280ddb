package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Auth.APIKeys)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "packaging_service", cfg.Database.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
	assert.Equal(t, 2, cfg.Database.CircuitBreakerSuccessThreshold)
	assert.Equal(t, 30*time.Second, cfg.Database.CircuitBreakerTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-one, key-two")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "packaging_test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"key-one": true, "key-two": true}, cfg.Auth.APIKeys)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, "packaging_test", cfg.Database.DatabaseName)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("AUTH_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Auth.Enabled)
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]bool
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single key", input: "abc", expected: map[string]bool{"abc": true}},
		{name: "trims whitespace", input: " a , b ", expected: map[string]bool{"a": true, "b": true}},
		{name: "skips empty entries", input: "a,,b,", expected: map[string]bool{"a": true, "b": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseAPIKeys(tt.input))
		})
	}
}

func TestParseCORSOrigins(t *testing.T) {
	t.Run("defaults when empty", func(t *testing.T) {
		origins := parseCORSOrigins("")
		assert.Contains(t, origins, "http://localhost:3000")
		assert.Len(t, origins, 2)
	})

	t.Run("appends configured origins", func(t *testing.T) {
		origins := parseCORSOrigins("https://app.example.com, https://admin.example.com")
		assert.Contains(t, origins, "https://app.example.com")
		assert.Contains(t, origins, "https://admin.example.com")
		assert.Contains(t, origins, "http://localhost:3000")
	})
}
