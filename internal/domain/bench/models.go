package bench

import (
	"time"

	"github.com/skiselkov/crypto-test/internal/pkg/config"
)

// Result is the throughput of one mechanism in one direction.
type Result struct {
	Mechanism string
	Direction string
	Sessions  int
	Bytes     int64
	Elapsed   time.Duration
	// AuthFailures counts GCM decrypt sessions whose final rejected the
	// supplied tag. Every such session is expected to fail.
	AuthFailures int
}

// MiBPerSecond returns the throughput in MiB/s.
func (r *Result) MiBPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Bytes) / (1 << 20) / secs
}

// Report is one speed test over all requested mechanisms and directions.
type Report struct {
	ID          string
	GOARCH      string
	HardwareAES bool
	Settings    config.BenchSettings
	Started     time.Time
	Results     []Result
}
