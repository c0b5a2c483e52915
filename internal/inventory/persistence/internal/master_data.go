package internal

import (
	"geraetewart-server/internal/infra/utils"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Category struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;uniqueIndex"`
	Description string     `json:"description"`
	CreatedAt   utils.Time `json:"created_at"`
	UpdatedAt   utils.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (m Category) ToDomain() inventoryDomain.Category {
	return inventoryDomain.Category{
		ID:          shareddomain.ID(m.ID),
		Name:        shareddomain.Name(m.Name),
		Description: shareddomain.Description(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromCategory(value inventoryDomain.Category) Category {
	return Category{
		ID:          value.ID.String(),
		Name:        string(value.Name),
		Description: string(value.Description),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}

type Location struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;uniqueIndex"`
	Description string     `json:"description"`
	CreatedAt   utils.Time `json:"created_at"`
	UpdatedAt   utils.Time `json:"updated_at"`
}

func (Location) TableName() string {
	return "locations"
}

func (m Location) ToDomain() inventoryDomain.Location {
	return inventoryDomain.Location{
		ID:          shareddomain.ID(m.ID),
		Name:        shareddomain.Name(m.Name),
		Description: shareddomain.Description(m.Description),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromLocation(value inventoryDomain.Location) Location {
	return Location{
		ID:          value.ID.String(),
		Name:        string(value.Name),
		Description: string(value.Description),
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}

type Person struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" gorm:"not null"`
	Email     string      `json:"email" gorm:"index"`
	Phone     string      `json:"phone"`
	IsActive  bool        `json:"is_active" gorm:"default:true"`
	CreatedAt utils.Time  `json:"created_at"`
	UpdatedAt utils.Time  `json:"updated_at"`
	DeletedAt *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Person) TableName() string {
	return "persons"
}

func (m Person) ToDomain() inventoryDomain.Person {
	result := inventoryDomain.Person{
		ID:        shareddomain.ID(m.ID),
		Name:      shareddomain.Name(m.Name),
		Email:     shareddomain.Email(m.Email),
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	result.DeletedAt = m.DeletedAt

	return result
}

func FromPerson(value inventoryDomain.Person) Person {
	result := Person{
		ID:        value.ID.String(),
		Name:      string(value.Name),
		Email:     string(value.Email),
		Phone:     value.Phone,
		IsActive:  value.IsActive,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}

	result.DeletedAt = value.DeletedAt

	return result
}
