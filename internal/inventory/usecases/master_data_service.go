package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	inventoryDomain "geraetewart-server/internal/inventory/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

// MasterDataService bundles the small category/location/person registries
// that the rest of the application references.
type MasterDataService interface {
	CreateCategory(ctx context.Context, category inventoryDomain.Category) error
	GetCategory(ctx context.Context, id shareddomain.ID) (inventoryDomain.Category, error)
	ListCategories(ctx context.Context) ([]inventoryDomain.Category, error)
	UpdateCategory(ctx context.Context, category inventoryDomain.Category) error
	DeleteCategory(ctx context.Context, id shareddomain.ID) error

	CreateLocation(ctx context.Context, location inventoryDomain.Location) error
	GetLocation(ctx context.Context, id shareddomain.ID) (inventoryDomain.Location, error)
	ListLocations(ctx context.Context) ([]inventoryDomain.Location, error)
	UpdateLocation(ctx context.Context, location inventoryDomain.Location) error
	DeleteLocation(ctx context.Context, id shareddomain.ID) error

	CreatePerson(ctx context.Context, person inventoryDomain.Person) error
	GetPerson(ctx context.Context, id shareddomain.ID) (inventoryDomain.Person, error)
	ListPersons(ctx context.Context) ([]inventoryDomain.Person, error)
	UpdatePerson(ctx context.Context, person inventoryDomain.Person) error
	DeletePerson(ctx context.Context, id shareddomain.ID) error
}

func NewMasterDataService(
	categories CategoryRepository,
	locations LocationRepository,
	persons PersonRepository,
) *SimpleMasterDataService {
	return &SimpleMasterDataService{
		categories: categories,
		locations:  locations,
		persons:    persons,
	}
}

var _ MasterDataService = (*SimpleMasterDataService)(nil)

type SimpleMasterDataService struct {
	categories CategoryRepository
	locations  LocationRepository
	persons    PersonRepository
}

func (s *SimpleMasterDataService) CreateCategory(ctx context.Context, category inventoryDomain.Category) error {
	if err := s.categories.Create(ctx, category); err != nil {
		slog.Error("creating category", slog.String("error", err.Error()))
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

func (s *SimpleMasterDataService) GetCategory(ctx context.Context, id shareddomain.ID) (inventoryDomain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return inventoryDomain.Category{}, ErrCategoryNotFound
		}
		return inventoryDomain.Category{}, fmt.Errorf("getting category: %w", err)
	}
	return category, nil
}

func (s *SimpleMasterDataService) ListCategories(ctx context.Context) ([]inventoryDomain.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

func (s *SimpleMasterDataService) UpdateCategory(ctx context.Context, category inventoryDomain.Category) error {
	if _, err := s.categories.GetByID(ctx, category.ID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting category: %w", err)
	}
	return s.categories.Update(ctx, category)
}

func (s *SimpleMasterDataService) DeleteCategory(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("getting category: %w", err)
	}
	return s.categories.Delete(ctx, id)
}

func (s *SimpleMasterDataService) CreateLocation(ctx context.Context, location inventoryDomain.Location) error {
	if err := s.locations.Create(ctx, location); err != nil {
		slog.Error("creating location", slog.String("error", err.Error()))
		return fmt.Errorf("creating location: %w", err)
	}
	return nil
}

func (s *SimpleMasterDataService) GetLocation(ctx context.Context, id shareddomain.ID) (inventoryDomain.Location, error) {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return inventoryDomain.Location{}, ErrLocationNotFound
		}
		return inventoryDomain.Location{}, fmt.Errorf("getting location: %w", err)
	}
	return location, nil
}

func (s *SimpleMasterDataService) ListLocations(ctx context.Context) ([]inventoryDomain.Location, error) {
	locations, err := s.locations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}

func (s *SimpleMasterDataService) UpdateLocation(ctx context.Context, location inventoryDomain.Location) error {
	if _, err := s.locations.GetByID(ctx, location.ID); err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("getting location: %w", err)
	}
	return s.locations.Update(ctx, location)
}

func (s *SimpleMasterDataService) DeleteLocation(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.locations.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("getting location: %w", err)
	}
	return s.locations.Delete(ctx, id)
}

func (s *SimpleMasterDataService) CreatePerson(ctx context.Context, person inventoryDomain.Person) error {
	if err := s.persons.Create(ctx, person); err != nil {
		slog.Error("creating person", slog.String("error", err.Error()))
		return fmt.Errorf("creating person: %w", err)
	}
	return nil
}

func (s *SimpleMasterDataService) GetPerson(ctx context.Context, id shareddomain.ID) (inventoryDomain.Person, error) {
	person, err := s.persons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return inventoryDomain.Person{}, ErrPersonNotFound
		}
		return inventoryDomain.Person{}, fmt.Errorf("getting person: %w", err)
	}
	return person, nil
}

func (s *SimpleMasterDataService) ListPersons(ctx context.Context) ([]inventoryDomain.Person, error) {
	persons, err := s.persons.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	return persons, nil
}

func (s *SimpleMasterDataService) UpdatePerson(ctx context.Context, person inventoryDomain.Person) error {
	existing, err := s.persons.GetByID(ctx, person.ID)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return ErrPersonNotFound
		}
		return fmt.Errorf("getting person: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("person is deleted")
	}

	return s.persons.Update(ctx, person)
}

func (s *SimpleMasterDataService) DeletePerson(ctx context.Context, id shareddomain.ID) error {
	person, err := s.persons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			return ErrPersonNotFound
		}
		return fmt.Errorf("getting person: %w", err)
	}

	if person.IsDeleted() {
		return errors.New("person is already deleted")
	}

	return s.persons.Delete(ctx, id)
}
