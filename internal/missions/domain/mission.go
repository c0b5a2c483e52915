package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type MissionKind string

const (
	MissionKindMission  MissionKind = "mission"
	MissionKindExercise MissionKind = "exercise"
)

func (k MissionKind) IsValid() bool {
	return k == MissionKindMission || k == MissionKindExercise
}

// Mission is a deployment or exercise the department took part in,
// with the persons and equipment that were involved.
type Mission struct {
	ID             shareddomain.ID
	Version        shareddomain.Version
	Kind           MissionKind
	Title          string
	Description    string
	Date           utils.Time
	LocationID     *shareddomain.ID
	ParticipantIDs []shareddomain.ID
	EquipmentIDs   []shareddomain.ID
	CreatedAt      utils.Time
	UpdatedAt      utils.Time
	DeletedAt      *utils.Time
}

func (m *Mission) IsDeleted() bool {
	return m.DeletedAt != nil
}

func (m *Mission) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	m.DeletedAt = &now
	m.UpdatedAt = now
}

func NewMissionBuilder() *missionBuilder {
	return &missionBuilder{}
}

type missionBuilder struct {
	actions []missionHandler
}

type missionHandler func(v *Mission) error

func (b *missionBuilder) WithKind(value MissionKind) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		if !value.IsValid() {
			return ErrMissionKindInvalid
		}
		d.Kind = value
		return nil
	})
	return b
}

func (b *missionBuilder) WithTitle(value string) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		d.Title = value
		return nil
	})
	return b
}

func (b *missionBuilder) WithDescription(value string) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		d.Description = value
		return nil
	})
	return b
}

func (b *missionBuilder) WithDate(value time.Time) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		d.Date = utils.Time{Time: value}
		return nil
	})
	return b
}

func (b *missionBuilder) WithLocationID(value shareddomain.ID) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		d.LocationID = &value
		return nil
	})
	return b
}

func (b *missionBuilder) WithParticipantIDs(values ...shareddomain.ID) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		d.ParticipantIDs = append(d.ParticipantIDs, values...)
		return nil
	})
	return b
}

func (b *missionBuilder) WithEquipmentIDs(values ...shareddomain.ID) *missionBuilder {
	b.actions = append(b.actions, func(d *Mission) error {
		d.EquipmentIDs = append(d.EquipmentIDs, values...)
		return nil
	})
	return b
}

func (b *missionBuilder) Build() (Mission, error) {
	now := utils.Time{Time: time.Now()}
	result := Mission{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Kind:      MissionKindMission,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Mission{}, err
		}
	}

	if result.Title == "" {
		return Mission{}, ErrMissionTitleRequired
	}

	if result.Date.IsZero() {
		return Mission{}, ErrMissionDateRequired
	}

	return result, nil
}
