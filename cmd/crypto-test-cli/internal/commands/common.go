package commands

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/infrastructure/persistence"
	"github.com/skiselkov/crypto-test/internal/pkg/config"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openRunRepository connects to the run store and migrates its schema.
func openRunRepository(settings config.DatabaseSettings, log logger.Logger) (kat.RunRepository, func() error, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	closeDB := func() error { return persistence.CloseDB(db) }

	if err := persistence.AutoMigrate(db); err != nil {
		_ = closeDB()
		return nil, nil, err
	}

	repo, err := persistence.NewGormKATRunRepository(db, log)
	if err != nil {
		_ = closeDB()
		return nil, nil, fmt.Errorf("failed to create kat run repository: %w", err)
	}

	return repo, closeDB, nil
}
