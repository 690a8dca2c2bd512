package app

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"
)

// katService implements the kat.Service interface
type katService struct {
	sessions crypto.SessionFactory
	runRepo  kat.RunRepository
	logger   logger.Logger
}

// NewKATService creates a new katService instance. runRepo may be nil, in
// which case runs are reported but not stored.
func NewKATService(sessions crypto.SessionFactory, runRepo kat.RunRepository, logger logger.Logger) (kat.Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session factory must not be nil")
	}
	return &katService{
		sessions: sessions,
		runRepo:  runRepo,
		logger:   logger,
	}, nil
}

// Run executes the known-answer vectors of mech, or all of them for zero
func (s *katService) Run(ctx context.Context, mech crypto.Mechanism) (*kat.Run, error) {
	run := &kat.Run{
		ID:              uuid.New().String(),
		DateTimeStarted: time.Now(),
	}
	if mech != 0 {
		run.Mechanism = mech.String()
	}

	for _, v := range kat.Filter(kat.Vectors(), mech) {
		for _, dir := range []crypto.Direction{crypto.Encrypt, crypto.Decrypt} {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("kat run %s interrupted: %w", run.ID, err)
			}

			result := s.check(v, dir)
			if result.Passed {
				run.Passed++
			} else {
				run.Failed++
			}
			run.Results = append(run.Results, result)
		}
	}
	run.DateTimeFinished = time.Now()

	if run.OK() {
		s.logger.Info(fmt.Sprintf("KAT run %s: %d passed", run.ID, run.Passed))
	} else {
		s.logger.Warn(fmt.Sprintf("KAT run %s: %d passed, %d failed", run.ID, run.Passed, run.Failed))
	}

	if s.runRepo != nil {
		if err := s.runRepo.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("failed to store kat run: %w", err)
		}
	}

	return run, nil
}

// check drives one vector through a single session: init, one update over
// the whole input, final, then a copy-by-copy comparison.
func (s *katService) check(v kat.Vector, dir crypto.Direction) kat.Result {
	result := kat.Result{
		Vector:    v.Name(),
		Mechanism: v.Mechanism.String(),
		Number:    v.Number,
		Direction: dir.Short(),
		Offset:    -1,
	}
	label := result.Label()

	fail := func(stage string, err error) kat.Result {
		result.Stage = stage
		result.Detail = err.Error()
		s.logger.Error(fmt.Sprintf("%s %s problem: %v", label, stage, err))
		return result
	}

	sess, err := s.sessions.NewSession(v.Mechanism, dir, v.Key, v.Params())
	if err != nil {
		return fail("init", err)
	}

	out, err := sess.Update(v.Input(dir))
	if err != nil {
		return fail("update", err)
	}

	rest, err := sess.Final()
	if err != nil {
		return fail("final", err)
	}
	out = append(out, rest...)

	if off := v.Mismatch(dir, out); off >= 0 {
		result.Stage = "compare"
		result.Offset = off
		result.Detail = fmt.Sprintf("BAD at %d: expected %s; got %s",
			off, hex.EncodeToString(blockAt(v.Expected(dir), off)), hex.EncodeToString(blockAt(out, off)))
		s.logger.Warn(fmt.Sprintf("%s: %s", label, result.Detail))
		return result
	}

	result.Passed = true
	s.logger.Info(label + ": OK")
	return result
}

// List returns stored runs matching the query
func (s *katService) List(ctx context.Context, query *kat.RunQuery) ([]*kat.Run, error) {
	if s.runRepo == nil {
		return nil, fmt.Errorf("no run repository configured")
	}
	if query == nil {
		query = kat.NewRunQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run query: %w", err)
	}

	runs, err := s.runRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list kat runs: %w", err)
	}
	return runs, nil
}

// GetByID returns one stored run
func (s *katService) GetByID(ctx context.Context, runID string) (*kat.Run, error) {
	if s.runRepo == nil {
		return nil, fmt.Errorf("no run repository configured")
	}

	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get kat run %s: %w", runID, err)
	}
	return run, nil
}

// blockAt returns up to one cipher block of b starting at off.
func blockAt(b []byte, off int) []byte {
	if off >= len(b) {
		return nil
	}
	end := off + crypto.BlockSize
	if end > len(b) {
		end = len(b)
	}
	return b[off:end]
}
