package persistence

import (
	"context"
	"fmt"

	"geraetewart-server/internal/infra/sql"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	"geraetewart-server/internal/maintenance/persistence/internal"
	"geraetewart-server/internal/maintenance/usecases"
)

func NewRunLogRepository(orm sql.ORM) (*SimpleRunLogRepository, error) {
	err := orm.AutoMigrate(&internal.RunLog{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRunLogRepository{orm: orm}, nil
}

var _ usecases.RunLogRepository = (*SimpleRunLogRepository)(nil)

type SimpleRunLogRepository struct {
	orm sql.ORM
}

func (r *SimpleRunLogRepository) Create(ctx context.Context, runLog maintenanceDomain.RunLog) error {
	entity := internal.FromRunLog(runLog)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating run log in database: %w", err)
	}

	return nil
}

func (r *SimpleRunLogRepository) Update(ctx context.Context, runLog maintenanceDomain.RunLog) error {
	entity := internal.FromRunLog(runLog)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating run log in database: %w", err)
	}

	return nil
}

func (r *SimpleRunLogRepository) FindRecent(ctx context.Context, limit int) ([]maintenanceDomain.RunLog, error) {
	var entities []internal.RunLog
	err := r.orm.
		WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]maintenanceDomain.RunLog, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
