package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"geraetewart-server/internal/infra/sql"
	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	"geraetewart-server/internal/maintenance/persistence/internal"
	"geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

func NewRecordRepository(orm sql.ORM) (*SimpleRecordRepository, error) {
	err := orm.AutoMigrate(&internal.Record{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRecordRepository{orm: orm}, nil
}

var _ usecases.RecordRepository = (*SimpleRecordRepository)(nil)

type SimpleRecordRepository struct {
	orm sql.ORM
}

func (r *SimpleRecordRepository) Create(ctx context.Context, record maintenanceDomain.Record) error {
	entity := internal.FromRecord(record)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrRecordDuplicate
	}
	if err != nil {
		return fmt.Errorf("creating record in database: %w", err)
	}

	return nil
}

func (r *SimpleRecordRepository) GetByID(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Record, error) {
	var entity internal.Record
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return maintenanceDomain.Record{}, usecases.ErrRecordNotFound
	}

	if err != nil {
		return maintenanceDomain.Record{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleRecordRepository) FindAll(
	ctx context.Context,
	filter usecases.RecordFilter,
	pagination usecases.Pagination,
) ([]maintenanceDomain.Record, int, error) {
	conditions := "1 = 1"
	args := []any{}

	if filter.EquipmentID != "" {
		conditions += " AND equipment_id = ?"
		args = append(args, filter.EquipmentID.String())
	}
	if filter.TemplateID != "" {
		conditions += " AND template_id = ?"
		args = append(args, filter.TemplateID.String())
	}
	if filter.Status != "" {
		conditions += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.DueBefore != nil {
		conditions += " AND due_date < ?"
		args = append(args, *filter.DueBefore)
	}

	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Record{})

	err := query.Where(conditions, args...).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Record
	err = query.
		Where(conditions, args...).
		Order("due_date ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]maintenanceDomain.Record, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleRecordRepository) ExistsForDay(
	ctx context.Context,
	equipmentID, templateID shareddomain.ID,
	candidate time.Time,
) (bool, error) {
	dayStart, dayEnd := utils.DayBounds(candidate)

	var count int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Record{}).
		Where("equipment_id = ? AND template_id = ? AND due_date BETWEEN ? AND ?",
			equipmentID.String(), templateID.String(), dayStart, dayEnd).
		Count(&count).
		Error()

	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (r *SimpleRecordRepository) Update(ctx context.Context, record maintenanceDomain.Record) error {
	entity := internal.FromRecord(record)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating record in database: %w", err)
	}

	return nil
}

func (r *SimpleRecordRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	err := r.orm.
		WithContext(ctx).
		Where("id = ?", id.String()).
		Delete(&internal.Record{}).
		Error()

	if err != nil {
		return fmt.Errorf("deleting record in database: %w", err)
	}

	return nil
}
