package persistence

import (
	"context"
	"errors"
	"fmt"

	"geraetewart-server/internal/infra/sql"
	missionsDomain "geraetewart-server/internal/missions/domain"
	"geraetewart-server/internal/missions/persistence/internal"
	"geraetewart-server/internal/missions/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

func NewMissionRepository(orm sql.ORM) (*SimpleMissionRepository, error) {
	err := orm.AutoMigrate(&internal.Mission{}, &internal.MissionParticipant{}, &internal.MissionEquipment{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleMissionRepository{orm: orm}, nil
}

var _ usecases.MissionRepository = (*SimpleMissionRepository)(nil)

type SimpleMissionRepository struct {
	orm sql.ORM
}

func (r *SimpleMissionRepository) Create(ctx context.Context, mission missionsDomain.Mission) error {
	entity := internal.FromMission(mission)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating mission in database: %w", err)
	}

	return nil
}

func (r *SimpleMissionRepository) GetByID(ctx context.Context, id shareddomain.ID) (missionsDomain.Mission, error) {
	var entity internal.Mission
	err := r.orm.
		WithContext(ctx).
		Preload("Participants").
		Preload("Equipment").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return missionsDomain.Mission{}, usecases.ErrMissionNotFound
	}

	if err != nil {
		return missionsDomain.Mission{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleMissionRepository) FindAll(
	ctx context.Context,
	filter usecases.MissionFilter,
	pagination usecases.Pagination,
) ([]missionsDomain.Mission, int, error) {
	conditions := "deleted_at IS NULL"
	args := []any{}

	if filter.Kind != "" {
		conditions += " AND kind = ?"
		args = append(args, string(filter.Kind))
	}
	if filter.From != nil {
		conditions += " AND date >= ?"
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions += " AND date <= ?"
		args = append(args, *filter.To)
	}

	var total int64
	query := r.orm.WithContext(ctx).Model(&internal.Mission{})

	err := query.Where(conditions, args...).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Mission
	err = query.
		Where(conditions, args...).
		Preload("Participants").
		Preload("Equipment").
		Order("date DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()

	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]missionsDomain.Mission, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleMissionRepository) Update(ctx context.Context, mission missionsDomain.Mission) error {
	entity := internal.FromMission(mission)

	// Participant and equipment links are replaced wholesale so the
	// stored set always mirrors the domain object.
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.Where("mission_id = ?", entity.ID).Delete(&internal.MissionParticipant{}).Error()
		if err != nil {
			return fmt.Errorf("clearing participants: %w", err)
		}

		err = tx.Where("mission_id = ?", entity.ID).Delete(&internal.MissionEquipment{}).Error()
		if err != nil {
			return fmt.Errorf("clearing equipment links: %w", err)
		}

		err = tx.Save(&entity).Error()
		if err != nil {
			return fmt.Errorf("saving mission: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("updating mission in database: %w", err)
	}

	return nil
}

func (r *SimpleMissionRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	mission, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if mission.IsDeleted() {
		return usecases.ErrMissionNotFound
	}

	mission.SoftDelete()

	return r.Update(ctx, mission)
}
