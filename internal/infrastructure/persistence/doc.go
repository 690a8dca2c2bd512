// Package persistence stores known-answer suite runs with GORM on SQLite or
// PostgreSQL.
package persistence
