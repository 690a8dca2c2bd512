//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/stretchr/testify/mock"
)

// MockRunRepository is a mock implementation of kat.RunRepository
type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(ctx context.Context, run *kat.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) List(ctx context.Context, query *kat.RunQuery) ([]*kat.Run, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kat.Run), args.Error(1)
}

func (m *MockRunRepository) GetByID(ctx context.Context, runID string) (*kat.Run, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kat.Run), args.Error(1)
}

// corruptingFactory wraps real sessions and flips one output bit for the
// selected mechanism and direction.
type corruptingFactory struct {
	inner crypto.SessionFactory
	mech  crypto.Mechanism
	dir   crypto.Direction
}

func (f *corruptingFactory) NewSession(mech crypto.Mechanism, dir crypto.Direction, key []byte, params crypto.Params) (crypto.Session, error) {
	sess, err := f.inner.NewSession(mech, dir, key, params)
	if err != nil || mech != f.mech || dir != f.dir {
		return sess, err
	}
	return &corruptingSession{Session: sess}, nil
}

type corruptingSession struct {
	crypto.Session
}

func (s *corruptingSession) Update(data []byte) ([]byte, error) {
	out, err := s.Session.Update(data)
	if len(out) > 20 {
		out[20] ^= 0x01
	}
	return out, err
}

// failingFactory refuses to open any session.
type failingFactory struct {
	err error
}

func (f *failingFactory) NewSession(crypto.Mechanism, crypto.Direction, []byte, crypto.Params) (crypto.Session, error) {
	return nil, f.err
}
