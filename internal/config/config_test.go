package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DRAFT_STORE_PATH", "/tmp/booking-test.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.Client.APIBaseURL)
	assert.Equal(t, []string{"/health", "/test-db", "/tours"}, cfg.Client.ProbePaths)
	assert.Equal(t, 5*time.Second, cfg.Client.ProbeTimeout)
	assert.Equal(t, 10*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Client.SubmitTimeout)
	assert.Equal(t, "5000", cfg.DevServer.Port)
	assert.Equal(t, "development", cfg.DevServer.Environment)
	assert.Equal(t, []string{"*"}, cfg.DevServer.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("API_PROBE_PATHS", "/ping, /tours")
	t.Setenv("API_SUBMIT_TIMEOUT_SECONDS", "30")
	t.Setenv("DRAFT_STORE_PATH", "/tmp/booking-test.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.Client.APIBaseURL)
	assert.Equal(t, []string{"/ping", "/tours"}, cfg.Client.ProbePaths)
	assert.Equal(t, 30*time.Second, cfg.Client.SubmitTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.DevServer.AllowedOrigins)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("API_PROBE_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("DRAFT_STORE_PATH", "/tmp/booking-test.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Client.ProbeTimeout)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		valid  bool
	}{
		{"Defaults are valid", func(*Config) {}, true},
		{"Missing base URL", func(c *Config) { c.Client.APIBaseURL = "" }, false},
		{"Non-HTTP base URL", func(c *Config) { c.Client.APIBaseURL = "ftp://example.com" }, false},
		{"No probe paths", func(c *Config) { c.Client.ProbePaths = nil }, false},
		{"Missing store path", func(c *Config) { c.Store.Path = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Client: ClientConfig{
					APIBaseURL: "http://localhost:5000/api",
					ProbePaths: []string{"/health"},
				},
				Store: StoreConfig{Path: "/tmp/store.json"},
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
