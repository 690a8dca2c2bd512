//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(s *BenchSettings)
		expectedError bool
	}{
		{"defaults", func(*BenchSettings) {}, false},
		{"single mechanism and direction", func(s *BenchSettings) {
			s.Mechanism = "GCM"
			s.Direction = "decrypt"
		}, false},
		{"unknown mechanism", func(s *BenchSettings) { s.Mechanism = "OFB" }, true},
		{"unknown direction", func(s *BenchSettings) { s.Direction = "both" }, true},
		{"unaligned block size", func(s *BenchSettings) { s.BlockSize = 1000 }, true},
		{"block size too small", func(s *BenchSettings) { s.BlockSize = 8 }, true},
		{"zero inner rounds", func(s *BenchSettings) { s.Inner = 0 }, true},
		{"zero outer rounds", func(s *BenchSettings) { s.Outer = 0 }, true},
		{"session too large", func(s *BenchSettings) { s.BlockSize = 16 << 20; s.Inner = 17 }, true},
		{"bad key size", func(s *BenchSettings) { s.KeySize = 512 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBenchSettings()
			tt.mutate(s)
			err := s.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}
