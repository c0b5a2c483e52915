package persistence

import (
	"context"
	"errors"
	"fmt"

	"geraetewart-server/internal/infra/sql"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	"geraetewart-server/internal/maintenance/persistence/internal"
	"geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

func NewTemplateRepository(orm sql.ORM) (*SimpleTemplateRepository, error) {
	err := orm.AutoMigrate(&internal.Template{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTemplateRepository{orm: orm}, nil
}

var _ usecases.TemplateRepository = (*SimpleTemplateRepository)(nil)

type SimpleTemplateRepository struct {
	orm sql.ORM
}

func (r *SimpleTemplateRepository) Create(ctx context.Context, template maintenanceDomain.Template) error {
	entity := internal.FromTemplate(template)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating template in database: %w", err)
	}

	return nil
}

func (r *SimpleTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Template, error) {
	var entity internal.Template
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return maintenanceDomain.Template{}, usecases.ErrTemplateNotFound
	}

	if err != nil {
		return maintenanceDomain.Template{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleTemplateRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]maintenanceDomain.Template, int, error) {
	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Template{})

	err := query.Where("deleted_at IS NULL").Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Template
	err = query.
		Where("deleted_at IS NULL").
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]maintenanceDomain.Template, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleTemplateRepository) FindAllActive(ctx context.Context) ([]maintenanceDomain.Template, error) {
	var entities []internal.Template
	err := r.orm.
		WithContext(ctx).
		Where("is_active = ? AND deleted_at IS NULL", true).
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]maintenanceDomain.Template, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleTemplateRepository) Update(ctx context.Context, template maintenanceDomain.Template) error {
	entity := internal.FromTemplate(template)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating template in database: %w", err)
	}

	return nil
}

func (r *SimpleTemplateRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	template, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	template.SoftDelete()
	return r.Update(ctx, template)
}
