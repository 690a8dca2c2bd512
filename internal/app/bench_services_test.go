//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBenchSettings() *config.BenchSettings {
	s := config.NewBenchSettings()
	s.BlockSize = 256
	s.Inner = 3
	s.Outer = 2
	return s
}

func TestBenchService_AllMechanisms(t *testing.T) {
	log, buf := testutil.SetupBufferLogger(t)
	service, err := NewBenchService(cryptography.NewSessionFactory(), log)
	require.NoError(t, err)

	report, err := service.Run(context.Background(), smallBenchSettings())
	require.NoError(t, err)

	require.Len(t, report.Results, 8)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "GCM", report.Results[0].Mechanism)
	assert.Equal(t, "E", report.Results[0].Direction)
	assert.Equal(t, "ECB", report.Results[7].Mechanism)
	assert.Equal(t, "D", report.Results[7].Direction)

	for _, r := range report.Results {
		assert.Equal(t, 2, r.Sessions)
		assert.Equal(t, int64(2*3*256), r.Bytes)
		if r.Mechanism == "GCM" && r.Direction == "D" {
			assert.Equal(t, 2, r.AuthFailures)
		} else {
			assert.Zero(t, r.AuthFailures)
		}
	}

	assert.Contains(t, buf.String(), "CPU AES instructions")
	assert.Contains(t, buf.String(), "CTR/D: ")
}

func TestBenchService_Filtered(t *testing.T) {
	service, err := NewBenchService(cryptography.NewSessionFactory(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	s := smallBenchSettings()
	s.Mechanism = "CBC"
	s.Direction = "decrypt"
	s.KeySize = 256

	report, err := service.Run(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "CBC", report.Results[0].Mechanism)
	assert.Equal(t, "D", report.Results[0].Direction)
}

func TestBenchService_InvalidSettings(t *testing.T) {
	service, err := NewBenchService(cryptography.NewSessionFactory(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	s := smallBenchSettings()
	s.BlockSize = 100
	_, err = service.Run(context.Background(), s)
	assert.Error(t, err)
}

func TestBenchService_Cancelled(t *testing.T) {
	service, err := NewBenchService(cryptography.NewSessionFactory(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = service.Run(ctx, smallBenchSettings())
	assert.ErrorIs(t, err, context.Canceled)
}
