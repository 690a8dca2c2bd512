//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/infrastructure/persistence"
	"github.com/skiselkov/crypto-test/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KATService kat.Service

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	katService, err := NewKATService(cryptography.NewSessionFactory(), dbContext.RunRepo, logger)
	require.NoError(t, err, "Failed to create kat service")

	return &TestServices{
		KATService: katService,
		DBContext:  dbContext,
	}
}
