//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKATRunModel_FromDomain(t *testing.T) {
	now := time.Now()
	run := &kat.Run{
		ID:               "0b6f9a8e-3a53-4f55-9f7e-6f5b2c1d0e9a",
		DateTimeStarted:  now,
		DateTimeFinished: now.Add(time.Second),
		Mechanism:        "GCM",
		Passed:           1,
		Failed:           1,
		Results: []kat.Result{
			{Vector: "GCM/1", Mechanism: "GCM", Number: 1, Direction: "E", Passed: true, Offset: -1},
			{Vector: "GCM/1", Mechanism: "GCM", Number: 1, Direction: "D", Stage: "final", Detail: "authentication failure", Offset: -1},
		},
	}

	model := &KATRunModel{}
	model.FromDomain(run)

	assert.Equal(t, run.ID, model.ID)
	assert.Equal(t, run.Mechanism, model.Mechanism)
	assert.Equal(t, run.Passed, model.Passed)
	assert.Equal(t, run.Failed, model.Failed)
	require.Len(t, model.Results, 2)
	assert.Equal(t, run.ID, model.Results[1].RunID)
	assert.Equal(t, 1, model.Results[1].Position)
	assert.Equal(t, "final", model.Results[1].Stage)
}

func TestKATRunModel_ToDomain(t *testing.T) {
	now := time.Now()
	model := &KATRunModel{
		ID:               "0b6f9a8e-3a53-4f55-9f7e-6f5b2c1d0e9a",
		DateTimeStarted:  now,
		DateTimeFinished: now,
		Passed:           2,
		Results: []KATResultModel{
			{RunID: "0b6f9a8e-3a53-4f55-9f7e-6f5b2c1d0e9a", Vector: "CTR/2", Mechanism: "CTR", Number: 2, Direction: "E", Passed: true, Offset: -1},
			{RunID: "0b6f9a8e-3a53-4f55-9f7e-6f5b2c1d0e9a", Position: 1, Vector: "CTR/2", Mechanism: "CTR", Number: 2, Direction: "D", Passed: true, Offset: -1},
		},
	}

	run := model.ToDomain()

	assert.Equal(t, model.ID, run.ID)
	assert.Equal(t, model.DateTimeStarted, run.DateTimeStarted)
	assert.Empty(t, run.Mechanism)
	require.Len(t, run.Results, 2)
	assert.Equal(t, "CTR/2/D", run.Results[1].Label())
	assert.NoError(t, run.Validate())
}
