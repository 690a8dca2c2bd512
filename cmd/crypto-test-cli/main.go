// Package main is the entry point for the crypto-test-cli application.
// It registers the kat, bench and AES file commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"os"

	commands "github.com/skiselkov/crypto-test/cmd/crypto-test-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-test-cli",
		Short: "AES mode known-answer tests and speed tests",
		Long: `crypto-test-cli exercises a constant-time AES implementation in ECB, CBC,
CTR and GCM modes. It runs the known-answer vectors, measures session
throughput and encrypts or decrypts files with AES-GCM.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKATCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize kat commands: %w", err)
	}

	if err := commands.InitBenchCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize bench commands: %w", err)
	}

	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	return nil
}
