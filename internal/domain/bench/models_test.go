//go:build unit
// +build unit

package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResult_MiBPerSecond(t *testing.T) {
	r := Result{Bytes: 8 << 20, Elapsed: 2 * time.Second}
	assert.InDelta(t, 4.0, r.MiBPerSecond(), 1e-9)

	r.Elapsed = 0
	assert.Equal(t, 0.0, r.MiBPerSecond())
}
