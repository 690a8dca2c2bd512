package commands

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/app"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/infrastructure/cryptography"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// KATCommandHandler runs the known-answer suite from the command line.
type KATCommandHandler struct {
	sessions crypto.SessionFactory
	logger   logger.Logger
}

// NewKATCommandHandler initializes and returns a KATCommandHandler instance.
func NewKATCommandHandler(log logger.Logger) *KATCommandHandler {
	return &KATCommandHandler{
		sessions: cryptography.NewSessionFactory(),
		logger:   log,
	}
}

// RunKATCmd runs the vectors and fails when any vector check fails
func (commandHandler *KATCommandHandler) RunKATCmd(cmd *cobra.Command, _ []string) error {
	mechanism, err := cmd.Flags().GetString("mechanism")
	if err != nil {
		return fmt.Errorf("invalid mechanism flag: %w", err)
	}
	dbType, err := cmd.Flags().GetString("db-type")
	if err != nil {
		return fmt.Errorf("invalid db-type flag: %w", err)
	}
	dsn, err := cmd.Flags().GetString("db-dsn")
	if err != nil {
		return fmt.Errorf("invalid db-dsn flag: %w", err)
	}

	var mech crypto.Mechanism
	if mechanism != "" {
		if mech, err = crypto.ParseMechanism(mechanism); err != nil {
			return err
		}
	}

	var runRepo kat.RunRepository
	if dsn != "" {
		repo, closeDB, err := openRunRepository(config.DatabaseSettings{Type: dbType, DSN: dsn}, commandHandler.logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeDB(); err != nil {
				commandHandler.logger.Warn("failed to close database: ", err)
			}
		}()
		runRepo = repo
	}

	service, err := app.NewKATService(commandHandler.sessions, runRepo, commandHandler.logger)
	if err != nil {
		return err
	}

	run, err := service.Run(cmd.Context(), mech)
	if err != nil {
		return err
	}

	if !run.OK() {
		return fmt.Errorf("%d of %d vector checks failed", run.Failed, run.Passed+run.Failed)
	}
	return nil
}

// InitKATCommands registers the kat command
func InitKATCommands(rootCmd *cobra.Command) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}
	handler := NewKATCommandHandler(log)

	var katCmd = &cobra.Command{
		Use:   "kat",
		Short: "Run the AES known-answer tests",
		Long: `Runs every built-in ECB, CBC, CTR and GCM vector in both directions and
logs one line per vector. Exits non-zero if any vector fails.`,
		RunE: handler.RunKATCmd,
	}
	katCmd.Flags().StringP("mechanism", "m", "", "Restrict the run to ECB, CBC, CTR or GCM")
	katCmd.Flags().StringP("db-type", "", config.SqliteDbType, "Run store type (sqlite or postgres)")
	katCmd.Flags().StringP("db-dsn", "", "", "Store the run in this database")
	rootCmd.AddCommand(katCmd)

	return nil
}
