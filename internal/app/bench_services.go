package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/skiselkov/crypto-test/internal/domain/bench"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"
	"golang.org/x/sys/cpu"
)

// benchOrder is the order in which mechanisms are timed.
var benchOrder = []crypto.Mechanism{
	crypto.MechanismGCM,
	crypto.MechanismCBC,
	crypto.MechanismCTR,
	crypto.MechanismECB,
}

// benchService implements the bench.Service interface
type benchService struct {
	sessions crypto.SessionFactory
	logger   logger.Logger
}

// NewBenchService creates a new benchService instance
func NewBenchService(sessions crypto.SessionFactory, logger logger.Logger) (bench.Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session factory must not be nil")
	}
	return &benchService{
		sessions: sessions,
		logger:   logger,
	}, nil
}

// Run times every requested mechanism, all encryptions first
func (s *benchService) Run(ctx context.Context, settings *config.BenchSettings) (*bench.Report, error) {
	if settings == nil {
		settings = config.NewBenchSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	mechs := benchOrder
	if settings.Mechanism != "" {
		mech, err := crypto.ParseMechanism(settings.Mechanism)
		if err != nil {
			return nil, err
		}
		mechs = []crypto.Mechanism{mech}
	}

	dirs := []crypto.Direction{crypto.Encrypt, crypto.Decrypt}
	if settings.Direction != "" {
		dir, err := crypto.ParseDirection(settings.Direction)
		if err != nil {
			return nil, err
		}
		dirs = []crypto.Direction{dir}
	}

	report := &bench.Report{
		ID:          uuid.New().String(),
		GOARCH:      runtime.GOARCH,
		HardwareAES: hardwareAES(),
		Settings:    *settings,
		Started:     time.Now(),
	}
	s.logger.Info(fmt.Sprintf("Speed test %s on %s (CPU AES instructions: %t)", report.ID, report.GOARCH, report.HardwareAES))

	for _, dir := range dirs {
		for _, mech := range mechs {
			result, err := s.time(ctx, mech, dir, settings)
			if err != nil {
				return nil, err
			}
			s.logger.Info(fmt.Sprintf("%s/%s: %d bytes in %v, %.2f MiB/s",
				result.Mechanism, result.Direction, result.Bytes, result.Elapsed, result.MiBPerSecond()))
			report.Results = append(report.Results, *result)
		}
	}

	return report, nil
}

func (s *benchService) time(ctx context.Context, mech crypto.Mechanism, dir crypto.Direction, settings *config.BenchSettings) (*bench.Result, error) {
	key := make([]byte, settings.KeySize/8)
	input := make([]byte, settings.BlockSize)
	label := mech.String() + "/" + dir.Short()

	result := &bench.Result{
		Mechanism: mech.String(),
		Direction: dir.Short(),
	}

	start := time.Now()
	for i := 0; i < settings.Outer; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("speed test interrupted: %w", err)
		}

		sess, err := s.sessions.NewSession(mech, dir, key, benchParams(mech, dir))
		if err != nil {
			return nil, fmt.Errorf("%s init problem: %w", label, err)
		}

		for j := 0; j < settings.Inner; j++ {
			if _, err := sess.Update(input); err != nil {
				return nil, fmt.Errorf("%s update problem: %w", label, err)
			}
		}

		_, err = sess.Final()
		switch {
		case err == nil:
		case mech == crypto.MechanismGCM && dir == crypto.Decrypt && errors.Is(err, crypto.ErrAuthenticationFailure):
			result.AuthFailures++
		default:
			return nil, fmt.Errorf("%s final problem: %w", label, err)
		}

		result.Sessions++
		result.Bytes += int64(settings.Inner) * int64(settings.BlockSize)
	}
	result.Elapsed = time.Since(start)

	return result, nil
}

// benchParams returns all-zero parameters. GCM decryption is given a zero
// tag that will not verify, so it times the full verification path.
func benchParams(mech crypto.Mechanism, dir crypto.Direction) crypto.Params {
	switch mech {
	case crypto.MechanismCBC:
		return &crypto.CBCParams{IV: make([]byte, crypto.BlockSize)}
	case crypto.MechanismCTR:
		return &crypto.CTRParams{Counter: make([]byte, crypto.BlockSize), CounterBits: 64}
	case crypto.MechanismGCM:
		p := &crypto.GCMParams{IV: make([]byte, crypto.GCMStandardIVSize), TagBits: crypto.GCMMaxTagBits}
		if dir == crypto.Decrypt {
			p.Tag = make([]byte, crypto.GCMMaxTagBits/8)
		}
		return p
	default:
		return nil
	}
}

// hardwareAES reports whether the CPU advertises AES instructions.
func hardwareAES() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasAES
	case "arm64":
		return cpu.ARM64.HasAES
	case "s390x":
		return cpu.S390X.HasAES
	default:
		return false
	}
}
