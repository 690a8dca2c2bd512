package bench

import (
	"context"

	"github.com/skiselkov/crypto-test/internal/pkg/config"
)

// Service measures session throughput.
type Service interface {
	// Run times settings.Outer sessions per mechanism and direction, each
	// fed settings.Inner updates of a zeroed settings.BlockSize buffer.
	Run(ctx context.Context, settings *config.BenchSettings) (*Report, error)
}
