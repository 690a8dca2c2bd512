package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds connection settings for the KAT run store
type DatabaseSettings struct {
	Type string `mapstructure:"type" yaml:"type" validate:"required,oneof=postgres sqlite"`
	// DSN is the driver connection string. Empty selects an in-memory SQLite database.
	DSN    string `mapstructure:"dsn" yaml:"dsn"`
	DBName string `mapstructure:"db_name" yaml:"db_name" validate:"omitempty,max=63"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	// DBName is interpolated into CREATE DATABASE.
	for _, r := range s.DBName {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return fmt.Errorf("invalid database name %q", s.DBName)
		}
	}

	return nil
}
