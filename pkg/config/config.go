package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Env             string `validate:"oneof=development production"`
	StoreDriver     string `validate:"oneof=sqlite postgres mongo"`
	SQLitePath      string `validate:"required_if=StoreDriver sqlite"`
	PostgresConnStr string `validate:"required_if=StoreDriver postgres"`
	MongoURI        string `validate:"required_if=StoreDriver mongo"`
}

// Load reads configuration from the environment, applying a .env file first
// when one is present.
func Load() (*Config, error) {
	// Missing .env is fine; environment variables alone are enough.
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("ALUMNI_ENV", "development"),
		StoreDriver:     getEnv("ALUMNI_STORE_DRIVER", DriverSQLite),
		SQLitePath:      getEnv("ALUMNI_SQLITE_PATH", defaultSQLitePath()),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:        getEnv("MONGO_URI", ""),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "alumni-connect.db"
	}
	return filepath.Join(home, ".alumni-connect", "alumni-connect.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
