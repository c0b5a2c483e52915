package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Category struct {
	ID          shareddomain.ID
	Name        shareddomain.Name
	Description shareddomain.Description
	CreatedAt   utils.Time
	UpdatedAt   utils.Time
}

func NewCategoryBuilder() *categoryBuilder {
	return &categoryBuilder{}
}

type categoryBuilder struct {
	actions []categoryHandler
}

type categoryHandler func(v *Category) error

func (b *categoryBuilder) WithName(value string) *categoryBuilder {
	b.actions = append(b.actions, func(d *Category) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *categoryBuilder) WithDescription(value string) *categoryBuilder {
	b.actions = append(b.actions, func(d *Category) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *categoryBuilder) Build() (Category, error) {
	now := utils.Time{Time: time.Now()}
	result := Category{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Category{}, err
		}
	}

	if result.Name == "" {
		return Category{}, ErrCategoryNameRequired
	}

	return result, nil
}
