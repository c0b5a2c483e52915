package persistence

import (
	"context"
	"errors"
	"fmt"

	"geraetewart-server/internal/infra/sql"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	"geraetewart-server/internal/inventory/persistence/internal"
	"geraetewart-server/internal/inventory/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

func NewEquipmentRepository(orm sql.ORM) (*SimpleEquipmentRepository, error) {
	err := orm.AutoMigrate(&internal.Equipment{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleEquipmentRepository{orm: orm}, nil
}

var _ usecases.EquipmentRepository = (*SimpleEquipmentRepository)(nil)

type SimpleEquipmentRepository struct {
	orm sql.ORM
}

func (r *SimpleEquipmentRepository) Create(ctx context.Context, equipment inventoryDomain.Equipment) error {
	entity := internal.FromEquipment(equipment)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating equipment in database: %w", err)
	}

	return nil
}

func (r *SimpleEquipmentRepository) GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Equipment, error) {
	var entity internal.Equipment
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return inventoryDomain.Equipment{}, usecases.ErrEquipmentNotFound
	}

	if err != nil {
		return inventoryDomain.Equipment{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleEquipmentRepository) FindAll(
	ctx context.Context,
	filter usecases.EquipmentFilter,
	pagination usecases.Pagination,
) ([]inventoryDomain.Equipment, int, error) {
	conditions := "deleted_at IS NULL"
	args := []any{}

	if filter.CategoryID != "" {
		conditions += " AND category_id = ?"
		args = append(args, filter.CategoryID.String())
	}
	if filter.LocationID != "" {
		conditions += " AND location_id = ?"
		args = append(args, filter.LocationID.String())
	}
	if filter.Status != "" {
		conditions += " AND status = ?"
		args = append(args, string(filter.Status))
	}

	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Equipment{})

	err := query.Where(conditions, args...).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Equipment
	err = query.
		Where(conditions, args...).
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]inventoryDomain.Equipment, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleEquipmentRepository) FindAllActive(ctx context.Context) ([]inventoryDomain.Equipment, error) {
	var entities []internal.Equipment
	err := r.orm.
		WithContext(ctx).
		Where("status = ? AND deleted_at IS NULL", string(inventoryDomain.EquipmentStatusActive)).
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]inventoryDomain.Equipment, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleEquipmentRepository) Update(ctx context.Context, equipment inventoryDomain.Equipment) error {
	entity := internal.FromEquipment(equipment)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating equipment in database: %w", err)
	}

	return nil
}

func (r *SimpleEquipmentRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	equipment, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	equipment.SoftDelete()
	return r.Update(ctx, equipment)
}
