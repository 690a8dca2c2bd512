// Package models contains the GORM models of stored KAT runs and their
// conversions to and from the domain types.
package models
