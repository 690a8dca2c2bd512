package commands

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/app"
	"github.com/skiselkov/crypto-test/internal/domain/bench"
	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// BenchCommandHandler runs the session speed test from the command line.
type BenchCommandHandler struct {
	benchService bench.Service
	logger       logger.Logger
}

// NewBenchCommandHandler initializes and returns a BenchCommandHandler instance.
func NewBenchCommandHandler(log logger.Logger) (*BenchCommandHandler, error) {
	benchService, err := app.NewBenchService(cryptography.NewSessionFactory(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create bench service: %w", err)
	}

	return &BenchCommandHandler{
		benchService: benchService,
		logger:       log,
	}, nil
}

// BenchCmd times the requested mechanisms and directions
func (commandHandler *BenchCommandHandler) BenchCmd(cmd *cobra.Command, _ []string) error {
	settings := config.NewBenchSettings()

	var err error
	if settings.Mechanism, err = cmd.Flags().GetString("mechanism"); err != nil {
		return fmt.Errorf("invalid mechanism flag: %w", err)
	}
	if settings.Direction, err = cmd.Flags().GetString("direction"); err != nil {
		return fmt.Errorf("invalid direction flag: %w", err)
	}
	if settings.BlockSize, err = cmd.Flags().GetInt("block-size"); err != nil {
		return fmt.Errorf("invalid block-size flag: %w", err)
	}
	if settings.Inner, err = cmd.Flags().GetInt("inner"); err != nil {
		return fmt.Errorf("invalid inner flag: %w", err)
	}
	if settings.Outer, err = cmd.Flags().GetInt("outer"); err != nil {
		return fmt.Errorf("invalid outer flag: %w", err)
	}
	if settings.KeySize, err = cmd.Flags().GetInt("key-size"); err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}

	report, err := commandHandler.benchService.Run(cmd.Context(), settings)
	if err != nil {
		return err
	}

	for _, r := range report.Results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s %12d bytes %12v %10.2f MiB/s\n",
			r.Mechanism, r.Direction, r.Bytes, r.Elapsed, r.MiBPerSecond())
	}
	return nil
}

// InitBenchCommands registers the bench command
func InitBenchCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}
	handler, err := NewBenchCommandHandler(log)
	if err != nil {
		return err
	}

	var benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Measure AES session throughput",
		RunE:  handler.BenchCmd,
	}
	benchCmd.Flags().StringP("mechanism", "m", "", "Restrict the run to ECB, CBC, CTR or GCM")
	benchCmd.Flags().StringP("direction", "d", "", "Restrict the run to encrypt or decrypt")
	benchCmd.Flags().IntP("block-size", "", config.DefaultBenchBlockSize, "Bytes fed per update")
	benchCmd.Flags().IntP("inner", "", config.DefaultBenchInner, "Updates per session")
	benchCmd.Flags().IntP("outer", "", config.DefaultBenchOuter, "Sessions per mechanism and direction")
	benchCmd.Flags().IntP("key-size", "", config.DefaultBenchKeySize, "AES key size in bits")
	rootCmd.AddCommand(benchCmd)

	return nil
}
