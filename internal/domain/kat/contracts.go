package kat

import (
	"context"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// Service runs the known-answer suite and exposes stored runs.
type Service interface {
	// Run executes every vector of mech (all mechanisms for zero) in both
	// directions. A failing vector is reported in the Run, not as an error;
	// the error is reserved for cancellation and persistence problems.
	Run(ctx context.Context, mech crypto.Mechanism) (*Run, error)

	// List returns stored runs matching the query.
	List(ctx context.Context, query *RunQuery) ([]*Run, error)

	// GetByID returns one stored run with its results.
	GetByID(ctx context.Context, runID string) (*Run, error)
}

// RunRepository persists suite runs.
type RunRepository interface {
	Create(ctx context.Context, run *Run) error
	List(ctx context.Context, query *RunQuery) ([]*Run, error)
	GetByID(ctx context.Context, runID string) (*Run, error)
}
