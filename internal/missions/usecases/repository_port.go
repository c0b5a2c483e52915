package usecases

import (
	"context"
	"errors"
	"time"

	missionsDomain "geraetewart-server/internal/missions/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

var ErrMissionNotFound = errors.New("mission not found")

type Pagination struct {
	Limit  int
	Offset int
}

// MissionFilter narrows mission listings; zero values mean "no filter".
type MissionFilter struct {
	Kind missionsDomain.MissionKind
	From *time.Time
	To   *time.Time
}

type MissionRepository interface {
	Create(ctx context.Context, mission missionsDomain.Mission) error
	GetByID(ctx context.Context, id shareddomain.ID) (missionsDomain.Mission, error)
	FindAll(ctx context.Context, filter MissionFilter, pagination Pagination) ([]missionsDomain.Mission, int, error)
	Update(ctx context.Context, mission missionsDomain.Mission) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
