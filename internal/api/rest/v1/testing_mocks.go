//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/stretchr/testify/mock"
)

// MockKATService is a mock implementation of kat.Service
type MockKATService struct {
	mock.Mock
}

func (m *MockKATService) Run(ctx context.Context, mech crypto.Mechanism) (*kat.Run, error) {
	args := m.Called(ctx, mech)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kat.Run), args.Error(1)
}

func (m *MockKATService) List(ctx context.Context, query *kat.RunQuery) ([]*kat.Run, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kat.Run), args.Error(1)
}

func (m *MockKATService) GetByID(ctx context.Context, runID string) (*kat.Run, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kat.Run), args.Error(1)
}
