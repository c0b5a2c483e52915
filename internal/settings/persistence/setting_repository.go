package persistence

import (
	"context"
	"errors"
	"fmt"

	"geraetewart-server/internal/infra/sql"
	settingsDomain "geraetewart-server/internal/settings/domain"
	"geraetewart-server/internal/settings/persistence/internal"
	"geraetewart-server/internal/settings/usecases"
)

func NewSettingRepository(orm sql.ORM) (*SimpleSettingRepository, error) {
	err := orm.AutoMigrate(&internal.Setting{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSettingRepository{orm: orm}, nil
}

var _ usecases.SettingRepository = (*SimpleSettingRepository)(nil)

type SimpleSettingRepository struct {
	orm sql.ORM
}

func (r *SimpleSettingRepository) Upsert(ctx context.Context, setting settingsDomain.Setting) error {
	entity := internal.FromSetting(setting)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("storing setting in database: %w", err)
	}

	return nil
}

func (r *SimpleSettingRepository) GetByKey(ctx context.Context, key string) (settingsDomain.Setting, error) {
	var entity internal.Setting
	err := r.orm.
		WithContext(ctx).
		First(&entity, "key = ?", key).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return settingsDomain.Setting{}, usecases.ErrSettingNotFound
	}

	if err != nil {
		return settingsDomain.Setting{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleSettingRepository) FindAll(ctx context.Context) ([]settingsDomain.Setting, error) {
	var entities []internal.Setting
	err := r.orm.
		WithContext(ctx).
		Order("key ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]settingsDomain.Setting, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleSettingRepository) Delete(ctx context.Context, key string) error {
	_, err := r.GetByKey(ctx, key)
	if err != nil {
		return err
	}

	err = r.orm.
		WithContext(ctx).
		Where("key = ?", key).
		Delete(&internal.Setting{}).
		Error()

	if err != nil {
		return fmt.Errorf("deleting setting from database: %w", err)
	}

	return nil
}
