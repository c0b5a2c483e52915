package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	missionsDomain "geraetewart-server/internal/missions/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type MissionService interface {
	CreateMission(ctx context.Context, mission missionsDomain.Mission) error
	GetMission(ctx context.Context, id shareddomain.ID) (missionsDomain.Mission, error)
	ListMissions(ctx context.Context, filter MissionFilter, pagination Pagination) ([]missionsDomain.Mission, int, error)
	UpdateMission(ctx context.Context, mission missionsDomain.Mission) error
	DeleteMission(ctx context.Context, id shareddomain.ID) error
}

func NewMissionService(repository MissionRepository) *SimpleMissionService {
	return &SimpleMissionService{
		repository: repository,
	}
}

var _ MissionService = (*SimpleMissionService)(nil)

type SimpleMissionService struct {
	repository MissionRepository
}

func (s *SimpleMissionService) CreateMission(ctx context.Context, mission missionsDomain.Mission) error {
	err := s.repository.Create(ctx, mission)
	if err != nil {
		slog.Error("creating mission", slog.String("error", err.Error()))
		return fmt.Errorf("creating mission: %w", err)
	}

	slog.Info("mission created successfully",
		slog.String("id", mission.ID.String()),
		slog.String("kind", string(mission.Kind)),
		slog.String("title", mission.Title))

	return nil
}

func (s *SimpleMissionService) GetMission(ctx context.Context, id shareddomain.ID) (missionsDomain.Mission, error) {
	mission, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMissionNotFound) {
			return missionsDomain.Mission{}, ErrMissionNotFound
		}
		slog.Error("getting mission", slog.String("error", err.Error()))
		return missionsDomain.Mission{}, fmt.Errorf("getting mission: %w", err)
	}

	return mission, nil
}

func (s *SimpleMissionService) ListMissions(ctx context.Context, filter MissionFilter, pagination Pagination) ([]missionsDomain.Mission, int, error) {
	missions, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing missions", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing missions: %w", err)
	}

	return missions, total, nil
}

func (s *SimpleMissionService) UpdateMission(ctx context.Context, mission missionsDomain.Mission) error {
	current, err := s.repository.GetByID(ctx, mission.ID)
	if err != nil {
		if errors.Is(err, ErrMissionNotFound) {
			return ErrMissionNotFound
		}
		return fmt.Errorf("getting mission: %w", err)
	}

	if current.IsDeleted() {
		return ErrMissionNotFound
	}

	err = s.repository.Update(ctx, mission)
	if err != nil {
		slog.Error("updating mission", slog.String("error", err.Error()))
		return fmt.Errorf("updating mission: %w", err)
	}

	return nil
}

func (s *SimpleMissionService) DeleteMission(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMissionNotFound) {
			return ErrMissionNotFound
		}
		slog.Error("deleting mission", slog.String("error", err.Error()))
		return fmt.Errorf("deleting mission: %w", err)
	}

	return nil
}
