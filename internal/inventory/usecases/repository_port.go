package usecases

import (
	"context"
	"errors"

	inventoryDomain "geraetewart-server/internal/inventory/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrPersonNotFound    = errors.New("person not found")
)

type Pagination struct {
	Limit  int
	Offset int
}

// EquipmentFilter narrows equipment listings; zero values mean "no filter".
type EquipmentFilter struct {
	CategoryID shareddomain.ID
	LocationID shareddomain.ID
	Status     inventoryDomain.EquipmentStatus
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment inventoryDomain.Equipment) error
	GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Equipment, error)
	FindAll(ctx context.Context, filter EquipmentFilter, pagination Pagination) ([]inventoryDomain.Equipment, int, error)
	FindAllActive(ctx context.Context) ([]inventoryDomain.Equipment, error)
	Update(ctx context.Context, equipment inventoryDomain.Equipment) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category inventoryDomain.Category) error
	GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Category, error)
	FindAll(ctx context.Context) ([]inventoryDomain.Category, error)
	Update(ctx context.Context, category inventoryDomain.Category) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type LocationRepository interface {
	Create(ctx context.Context, location inventoryDomain.Location) error
	GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Location, error)
	FindAll(ctx context.Context) ([]inventoryDomain.Location, error)
	Update(ctx context.Context, location inventoryDomain.Location) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type PersonRepository interface {
	Create(ctx context.Context, person inventoryDomain.Person) error
	GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Person, error)
	FindAll(ctx context.Context) ([]inventoryDomain.Person, error)
	Update(ctx context.Context, person inventoryDomain.Person) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
