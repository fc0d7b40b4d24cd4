// Package config handles environment settings and parsing of the
// mapping file that declares each source extract's schema.
package config

import (
	"errors"
	"os"
)

// Config holds all configuration for the application,
// typically loaded from environment variables.
type Config struct {
	SQLConnString string
}

// LoadConfig loads application settings from environment variables
// (which should be populated by the .env file in main.go).
func LoadConfig() (*Config, error) {
	sqlConn := os.Getenv("SQL_CONNECTION_STRING")
	if sqlConn == "" {
		return nil, errors.New("SQL_CONNECTION_STRING environment variable not set")
	}

	return &Config{SQLConnString: sqlConn}, nil
}
