package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Location struct {
	ID          shareddomain.ID
	Name        shareddomain.Name
	Description shareddomain.Description
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
}

func NewLocationBuilder() *locationBuilder {
	return &locationBuilder{}
}

type locationBuilder struct {
	actions []locationHandler
}

type locationHandler func(v *Location) error

func (b *locationBuilder) WithName(value string) *locationBuilder {
	b.actions = append(b.actions, func(d *Location) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *locationBuilder) WithDescription(value string) *locationBuilder {
	b.actions = append(b.actions, func(d *Location) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *locationBuilder) Build() (Location, error) {
	now := utils.Time{Time: time.Now()}
	result := Location{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Location{}, err
		}
	}

	if result.Name == "" {
		return Location{}, ErrLocationNameRequired
	}

	return result, nil
}
