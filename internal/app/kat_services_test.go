//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKATService_AllVectorsPass(t *testing.T) {
	log, buf := testutil.SetupBufferLogger(t)
	repo := new(MockRunRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*kat.Run")).Return(nil)

	service, err := NewKATService(cryptography.NewSessionFactory(), repo, log)
	require.NoError(t, err)

	run, err := service.Run(context.Background(), 0)
	require.NoError(t, err)

	assert.True(t, run.OK())
	assert.Equal(t, 2*len(kat.Vectors()), run.Passed)
	assert.Len(t, run.Results, run.Passed)
	assert.NoError(t, run.Validate())

	output := buf.String()
	assert.Contains(t, output, "ECB/1/E: OK")
	assert.Contains(t, output, "GCM/14/D: OK")
	assert.NotContains(t, output, "BAD")

	repo.AssertExpectations(t)
}

func TestKATService_MechanismFilter(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	service, err := NewKATService(cryptography.NewSessionFactory(), nil, log)
	require.NoError(t, err)

	run, err := service.Run(context.Background(), crypto.MechanismCTR)
	require.NoError(t, err)

	assert.Equal(t, "CTR", run.Mechanism)
	assert.Equal(t, 6, run.Passed)
	for _, r := range run.Results {
		assert.Equal(t, "CTR", r.Mechanism)
	}
}

func TestKATService_ReportsMismatch(t *testing.T) {
	log, buf := testutil.SetupBufferLogger(t)
	factory := &corruptingFactory{
		inner: cryptography.NewSessionFactory(),
		mech:  crypto.MechanismECB,
		dir:   crypto.Encrypt,
	}
	service, err := NewKATService(factory, nil, log)
	require.NoError(t, err)

	run, err := service.Run(context.Background(), crypto.MechanismECB)
	require.NoError(t, err)

	assert.False(t, run.OK())
	assert.Equal(t, 9, run.Failed)
	assert.Equal(t, 9, run.Passed)

	first := run.Results[0]
	assert.Equal(t, "ECB/1/E", first.Label())
	assert.False(t, first.Passed)
	assert.Equal(t, "compare", first.Stage)
	assert.Equal(t, crypto.BlockSize, first.Offset)
	assert.Contains(t, buf.String(), "ECB/1/E: BAD at 16: expected ")
	assert.True(t, run.Results[1].Passed)
}

func TestKATService_ReportsInitProblem(t *testing.T) {
	log, buf := testutil.SetupBufferLogger(t)
	service, err := NewKATService(&failingFactory{err: crypto.ErrInvalidMechanism}, nil, log)
	require.NoError(t, err)

	run, err := service.Run(context.Background(), crypto.MechanismGCM)
	require.NoError(t, err)

	assert.Equal(t, 0, run.Passed)
	assert.Equal(t, 20, run.Failed)
	assert.Equal(t, "init", run.Results[0].Stage)
	assert.Contains(t, buf.String(), "GCM/1/E init problem: ")
}

func TestKATService_Cancelled(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := new(MockRunRepository)
	service, err := NewKATService(cryptography.NewSessionFactory(), repo, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = service.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestKATService_StoreFailure(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := new(MockRunRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	service, err := NewKATService(cryptography.NewSessionFactory(), repo, log)
	require.NoError(t, err)

	_, err = service.Run(context.Background(), crypto.MechanismCBC)
	assert.ErrorContains(t, err, "disk full")
}

func TestKATService_ListAndGet(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	repo := new(MockRunRepository)
	stored := &kat.Run{ID: "3f1c7c1e-8a54-4c5e-9b7f-0d2a3c4b5e6f"}

	repo.On("List", mock.Anything, mock.AnythingOfType("*kat.RunQuery")).Return([]*kat.Run{stored}, nil)
	repo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, kat.ErrRunNotFound)

	service, err := NewKATService(cryptography.NewSessionFactory(), repo, log)
	require.NoError(t, err)

	runs, err := service.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	_, err = service.List(context.Background(), &kat.RunQuery{Limit: 5000})
	assert.Error(t, err)

	run, err := service.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, run)

	_, err = service.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, kat.ErrRunNotFound)
}

func TestKATService_NoRepository(t *testing.T) {
	service, err := NewKATService(cryptography.NewSessionFactory(), nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.List(context.Background(), nil)
	assert.Error(t, err)
	_, err = service.GetByID(context.Background(), "x")
	assert.Error(t, err)

	_, err = NewKATService(nil, nil, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
