//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	RunRepo kat.RunRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	runRepo, err := NewGormKATRunRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create kat run repository")

	return &TestContext{
		DB:      db,
		RunRepo: runRepo,
	}
}

// CreateTestRun creates a run with one passing and one failing result
func CreateTestRun(t *testing.T, mechanism string, started time.Time) *kat.Run {
	t.Helper()

	mech := mechanism
	if mech == "" {
		mech = "ECB"
	}

	return &kat.Run{
		ID:               uuid.NewString(),
		DateTimeStarted:  started,
		DateTimeFinished: started.Add(time.Second),
		Mechanism:        mechanism,
		Passed:           1,
		Failed:           1,
		Results: []kat.Result{
			{Vector: mech + "/1", Mechanism: mech, Number: 1, Direction: "E", Passed: true, Offset: -1},
			{Vector: mech + "/1", Mechanism: mech, Number: 1, Direction: "D", Stage: "compare",
				Detail: "BAD at 0: expected 00; got 01", Offset: 0},
		},
	}
}
