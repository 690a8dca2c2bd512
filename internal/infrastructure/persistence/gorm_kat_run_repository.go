package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/infrastructure/persistence/models"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKATRunRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKATRunRepository creates a new GORM-based RunRepository implementation
func NewGormKATRunRepository(db *gorm.DB, logger logger.Logger) (kat.RunRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormKATRunRepository{
		db:     db,
		logger: logger,
	}, nil
}

// AutoMigrate creates or updates the kat_runs and kat_results tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KATRunModel{}, &models.KATResultModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (r *gormKATRunRepository) Create(ctx context.Context, run *kat.Run) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KATRunModel{}
	model.FromDomain(run)

	// Results are inserted with the run through the has-many association.
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create kat run: %w", err)
	}

	r.logger.Info("Created kat run with id ", run.ID)
	return nil
}

// List returns run summaries without their per-vector results
func (r *gormKATRunRepository) List(ctx context.Context, query *kat.RunQuery) ([]*kat.Run, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KATRunModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KATRunModel{})

	if query.Mechanism != "" {
		dbQuery = dbQuery.Where("mechanism = ?", query.Mechanism)
	}
	if query.OnlyFailed {
		dbQuery = dbQuery.Where("failed > 0")
	}

	order := query.SortOrder
	if order == "" {
		order = "desc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("date_time_started %s", order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch kat runs: %w", err)
	}

	domainList := make([]*kat.Run, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

// GetByID returns a run with its results in report order
func (r *gormKATRunRepository) GetByID(ctx context.Context, runID string) (*kat.Run, error) {
	var model models.KATRunModel
	err := r.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ?", runID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", kat.ErrRunNotFound, runID)
		}
		return nil, fmt.Errorf("failed to fetch kat run: %w", err)
	}
	return model.ToDomain(), nil
}
