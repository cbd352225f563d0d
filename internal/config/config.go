package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the solar estimation
// service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the API and monitoring server.
// - RemoteTimeout: The bound on a single remote irradiance query.
// - RemoteRateLimit: Requests per second allowed against the remote source.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env             string         // Env is the current environment: local, development, production.
	Port            int            // Port is the API server port.
	RemoteTimeout   time.Duration  // RemoteTimeout bounds one NASA POWER query.
	RemoteRateLimit int            // RemoteRateLimit is requests/second against the remote source.
	Database        PostgresConfig // Database holds the postgres database configuration.
}

// PostgresConfig struct holds the configuration details for connecting
// to a PostgreSQL database. An empty Host disables persistence: the
// service then runs compute-only.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment (and an
// optional .env file) and returns a Config struct. It panics on
// malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("HELIOS_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	remoteTimeout, err := time.ParseDuration(setDefaultEnv("HELIOS_REMOTE_TIMEOUT", "5s"))
	if err != nil {
		panic("failed to parse remote timeout from configuration")
	}

	rateLimit, err := strconv.Atoi(setDefaultEnv("HELIOS_REMOTE_RATE_LIMIT", "2"))
	if err != nil {
		panic("failed to parse remote rate limit from configuration, must be an integer")
	}

	return &Config{
		Env:             setDefaultEnv("HELIOS_ENV", "production"),
		Port:            port,
		RemoteTimeout:   remoteTimeout,
		RemoteRateLimit: rateLimit,
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     setDefaultEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
