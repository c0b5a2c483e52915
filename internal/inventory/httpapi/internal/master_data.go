package internal

import (
	"time"

	inventoryDomain "geraetewart-server/internal/inventory/domain"
)

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func ToCategoryResponse(category inventoryDomain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        string(category.Name),
		Description: string(category.Description),
		CreatedAt:   category.CreatedAt.Time,
		UpdatedAt:   category.UpdatedAt.Time,
	}
}

type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LocationCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LocationUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func ToLocationResponse(location inventoryDomain.Location) LocationResponse {
	return LocationResponse{
		ID:          location.ID.String(),
		Name:        string(location.Name),
		Description: string(location.Description),
		CreatedAt:   location.CreatedAt.Time,
		UpdatedAt:   location.UpdatedAt.Time,
	}
}

type PersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PersonCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PersonUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func ToPersonResponse(person inventoryDomain.Person) PersonResponse {
	return PersonResponse{
		ID:        person.ID.String(),
		Name:      string(person.Name),
		Email:     string(person.Email),
		Phone:     person.Phone,
		IsActive:  person.IsActive,
		CreatedAt: person.CreatedAt.Time,
		UpdatedAt: person.UpdatedAt.Time,
	}
}
