package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Person struct {
	ID        shareddomain.ID
	Name      shareddomain.Name
	Email     shareddomain.Email
	Phone     string
	IsActive  bool
	CreatedAt utils.Time
	UpdatedAt utils.Time
	DeletedAt *utils.Time
}

func (p *Person) IsDeleted() bool {
	return p.DeletedAt != nil
}

func (p *Person) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	p.DeletedAt = &now
	p.IsActive = false
	p.UpdatedAt = now
}

func NewPersonBuilder() *personBuilder {
	return &personBuilder{}
}

type personBuilder struct {
	actions []personHandler
}

type personHandler func(v *Person) error

func (b *personBuilder) WithName(value string) *personBuilder {
	b.actions = append(b.actions, func(d *Person) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *personBuilder) WithEmail(value string) *personBuilder {
	b.actions = append(b.actions, func(d *Person) error {
		if value == "" {
			return nil
		}
		if err := utils.ValidateEmail(value); err != nil {
			return err
		}
		d.Email = shareddomain.Email(value)
		return nil
	})
	return b
}

func (b *personBuilder) WithPhone(value string) *personBuilder {
	b.actions = append(b.actions, func(d *Person) error {
		d.Phone = value
		return nil
	})
	return b
}

func (b *personBuilder) Build() (Person, error) {
	now := utils.Time{Time: time.Now()}
	result := Person{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Person{}, err
		}
	}

	if result.Name == "" {
		return Person{}, ErrPersonNameRequired
	}

	return result, nil
}
