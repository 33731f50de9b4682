package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the booking client and the dev server.
type Config struct {
	// Client configuration (outbound API access)
	Client ClientConfig

	// Draft store configuration
	Store StoreConfig

	// Dev server configuration
	DevServer DevServerConfig
}

// ClientConfig holds backend API access configuration.
type ClientConfig struct {
	APIBaseURL     string        // e.g. http://localhost:5000/api
	ProbePaths     []string      // ordered liveness probe paths, tried in sequence
	ProbeTimeout   time.Duration // per-attempt probe bound
	RequestTimeout time.Duration // catalog/auth request bound
	SubmitTimeout  time.Duration // booking submission bound
	LogLevel       string        // debug, info, warn, error
}

// StoreConfig holds local draft store configuration.
type StoreConfig struct {
	Path string // JSON key/value file holding drafts and the login return marker
}

// DevServerConfig holds configuration for the local stub backend.
type DevServerConfig struct {
	Port           string
	Environment    string // development, staging, production
	JWTSecret      string
	TokenExpiry    time.Duration
	DatabaseURL    string // optional; empty selects the in-memory tour store
	AllowedOrigins []string
	BcryptCost     int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Client: ClientConfig{
			APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api"),
			ProbePaths:     getEnvAsSlice("API_PROBE_PATHS", []string{"/health", "/test-db", "/tours"}),
			ProbeTimeout:   time.Duration(getEnvAsInt("API_PROBE_TIMEOUT_SECONDS", 5)) * time.Second,
			RequestTimeout: time.Duration(getEnvAsInt("API_REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
			SubmitTimeout:  time.Duration(getEnvAsInt("API_SUBMIT_TIMEOUT_SECONDS", 15)) * time.Second,
			LogLevel:       getEnv("LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Path: getEnv("DRAFT_STORE_PATH", defaultStorePath()),
		},
		DevServer: DevServerConfig{
			Port:           getEnv("PORT", "5000"),
			Environment:    getEnv("ENVIRONMENT", "development"),
			JWTSecret:      getEnv("JWT_SECRET", ""),
			TokenExpiry:    time.Duration(getEnvAsInt("JWT_TOKEN_EXPIRY_SECONDS", 86400)) * time.Second,
			DatabaseURL:    getEnv("DATABASE_URL", ""),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			BcryptCost:     getEnvAsInt("BCRYPT_COST", 12),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Client.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}

	if !strings.HasPrefix(c.Client.APIBaseURL, "http://") && !strings.HasPrefix(c.Client.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", c.Client.APIBaseURL)
	}

	if len(c.Client.ProbePaths) == 0 {
		return fmt.Errorf("API_PROBE_PATHS must list at least one probe path")
	}

	if c.Store.Path == "" {
		return fmt.Errorf("DRAFT_STORE_PATH is required")
	}

	return nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".travel-booking.json"
	}
	return home + string(os.PathSeparator) + ".travel-booking.json"
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
