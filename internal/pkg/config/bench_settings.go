package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Speed test defaults
const (
	DefaultBenchBlockSize = 16 * 1024
	DefaultBenchInner     = 16
	DefaultBenchOuter     = 8
	DefaultBenchKeySize   = 128

	MaxBenchSessionBytes = 256 << 20
)

// BenchSettings configures a speed test: Outer sessions per mechanism and
// direction, each fed Inner updates of a zeroed BlockSize buffer.
type BenchSettings struct {
	// Mechanism restricts the run to one of ECB, CBC, CTR or GCM; empty runs all four.
	Mechanism string `mapstructure:"mechanism" yaml:"mechanism" validate:"omitempty,oneof=ECB CBC CTR GCM"`
	// Direction restricts the run to encrypt or decrypt; empty runs both.
	Direction string `mapstructure:"direction" yaml:"direction" validate:"omitempty,oneof=encrypt decrypt"`
	BlockSize int    `mapstructure:"block_size" yaml:"block_size" validate:"required,min=16,max=16777216"`
	Inner     int    `mapstructure:"inner" yaml:"inner" validate:"required,min=1,max=100000"`
	Outer     int    `mapstructure:"outer" yaml:"outer" validate:"required,min=1,max=100000"`
	KeySize   int    `mapstructure:"key_size" yaml:"key_size" validate:"required,oneof=128 192 256"`
}

// NewBenchSettings returns settings filled with the defaults.
func NewBenchSettings() *BenchSettings {
	return &BenchSettings{
		BlockSize: DefaultBenchBlockSize,
		Inner:     DefaultBenchInner,
		Outer:     DefaultBenchOuter,
		KeySize:   DefaultBenchKeySize,
	}
}

// Validate checks that all fields in BenchSettings are valid
func (s *BenchSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BenchSettings: %w", err)
	}

	// ECB and CBC refuse partial trailing blocks at final
	if s.BlockSize%16 != 0 {
		return fmt.Errorf("block size must be a multiple of 16 bytes")
	}

	// GCM decryption holds a whole session's input until final
	if int64(s.BlockSize)*int64(s.Inner) > MaxBenchSessionBytes {
		return fmt.Errorf("block size times inner rounds must not exceed %d bytes", MaxBenchSessionBytes)
	}

	return nil
}
