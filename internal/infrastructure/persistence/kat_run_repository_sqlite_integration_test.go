//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKATRunRepository_Sqlite_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	run := CreateTestRun(t, "GCM", time.Now())
	require.NoError(t, ctx.RunRepo.Create(context.Background(), run))

	fetched, err := ctx.RunRepo.GetByID(context.Background(), run.ID)
	require.NoError(t, err)

	assert.Equal(t, run.ID, fetched.ID)
	assert.Equal(t, "GCM", fetched.Mechanism)
	assert.Equal(t, 1, fetched.Failed)
	require.Len(t, fetched.Results, 2)
	assert.Equal(t, "GCM/1/E", fetched.Results[0].Label())
	assert.Equal(t, "compare", fetched.Results[1].Stage)
	assert.Equal(t, 0, fetched.Results[1].Offset)
}

func TestKATRunRepository_Sqlite_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.RunRepo.GetByID(context.Background(), "7a0d8f1e-5a3c-4b6e-9d2f-1c0b9a8e7d6c")
	assert.ErrorIs(t, err, kat.ErrRunNotFound)
}

func TestKATRunRepository_Sqlite_RejectsInvalidRun(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	run := CreateTestRun(t, "", time.Now())
	run.ID = "not-a-uuid"
	assert.Error(t, ctx.RunRepo.Create(context.Background(), run))
}

func TestKATRunRepository_Sqlite_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	base := time.Now().Add(-time.Hour)
	older := CreateTestRun(t, "CBC", base)
	newer := CreateTestRun(t, "", base.Add(time.Minute))
	passing := CreateTestRun(t, "CBC", base.Add(2*time.Minute))
	passing.Failed = 0
	passing.Passed = 2
	passing.Results[1].Passed = true
	passing.Results[1].Stage = ""
	passing.Results[1].Offset = -1

	for _, r := range []*kat.Run{older, newer, passing} {
		require.NoError(t, ctx.RunRepo.Create(context.Background(), r))
	}

	all, err := ctx.RunRepo.List(context.Background(), kat.NewRunQuery())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, passing.ID, all[0].ID)
	assert.Empty(t, all[0].Results)

	cbc, err := ctx.RunRepo.List(context.Background(), &kat.RunQuery{Mechanism: "CBC", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, cbc, 2)
	assert.Equal(t, older.ID, cbc[0].ID)

	failed, err := ctx.RunRepo.List(context.Background(), &kat.RunQuery{OnlyFailed: true})
	require.NoError(t, err)
	assert.Len(t, failed, 2)

	page, err := ctx.RunRepo.List(context.Background(), &kat.RunQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, newer.ID, page[0].ID)

	_, err = ctx.RunRepo.List(context.Background(), &kat.RunQuery{SortOrder: "sideways"})
	assert.Error(t, err)
}
