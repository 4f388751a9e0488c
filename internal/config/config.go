package config

import (
	"os"
	"time"

	"github.com/havenstay/backend/internal/utils"
)

const (
	AppName = "havenstay-backend"

	DefaultAppPort      = "8080"
	DefaultAppURL       = "http://localhost:5173"
	DefaultStoreBackend = "sqlite"
	DefaultDataDir      = "data"
	DefaultTokenExpiry  = 24 * time.Hour

	// Simulated round-trip latencies carried over from the demo client:
	// they stand in for the network boundary a real deployment would have.
	DefaultAuthDelay        = 1000 * time.Millisecond
	DefaultLoadDelay        = 500 * time.Millisecond
	DefaultBookingLoadDelay = 300 * time.Millisecond
	DefaultMutateDelay      = 300 * time.Millisecond

	// DemoPassword is the single shared credential of the seeded demo
	// identities.
	DemoPassword = "123456"
)

// Config holds all application configuration.
type Config struct {
	AppName      string
	AppPort      string
	AppURL       string
	StoreBackend string // memory | filesystem | sqlite
	DataDir      string

	JWTSecret   []byte
	TokenExpiry time.Duration

	AuthDelay        time.Duration
	LoadDelay        time.Duration
	BookingLoadDelay time.Duration
	MutateDelay      time.Duration
}

// LoadConfig reads configuration from the environment, applying defaults
// for everything not set.
func LoadConfig() *Config {
	cfg := &Config{
		AppName:      AppName,
		AppPort:      envOr("APP_PORT", DefaultAppPort),
		AppURL:       envOr("APP_URL", DefaultAppURL),
		StoreBackend: envOr("STORE_BACKEND", DefaultStoreBackend),
		DataDir:      envOr("DATA_DIR", DefaultDataDir),
		JWTSecret:    []byte(envOr("JWT_SECRET", "")),
		TokenExpiry:  envDurationOr("TOKEN_EXPIRY", DefaultTokenExpiry),

		AuthDelay:        envDurationOr("SIMULATED_AUTH_DELAY", DefaultAuthDelay),
		LoadDelay:        envDurationOr("SIMULATED_LOAD_DELAY", DefaultLoadDelay),
		BookingLoadDelay: envDurationOr("SIMULATED_BOOKING_LOAD_DELAY", DefaultBookingLoadDelay),
		MutateDelay:      envDurationOr("SIMULATED_MUTATE_DELAY", DefaultMutateDelay),
	}

	if len(cfg.JWTSecret) == 0 {
		// Demo default; a real deployment sets JWT_SECRET.
		cfg.JWTSecret = []byte("havenstay-demo-secret")
		utils.Logger.Warn("JWT_SECRET not set; using insecure demo secret")
	}

	return cfg
}

// TestConfig returns a config with zeroed latencies for deterministic tests.
func TestConfig() *Config {
	return &Config{
		AppName:      AppName,
		AppPort:      DefaultAppPort,
		AppURL:       DefaultAppURL,
		StoreBackend: "memory",
		JWTSecret:    []byte("test-secret"),
		TokenExpiry:  DefaultTokenExpiry,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s %q, using default %v", key, v, fallback)
		return fallback
	}
	return d
}
