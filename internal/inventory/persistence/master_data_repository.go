package persistence

import (
	"context"
	"errors"
	"fmt"

	"geraetewart-server/internal/infra/sql"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	"geraetewart-server/internal/inventory/persistence/internal"
	"geraetewart-server/internal/inventory/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

func NewCategoryRepository(orm sql.ORM) (*SimpleCategoryRepository, error) {
	err := orm.AutoMigrate(&internal.Category{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCategoryRepository{orm: orm}, nil
}

var _ usecases.CategoryRepository = (*SimpleCategoryRepository)(nil)

type SimpleCategoryRepository struct {
	orm sql.ORM
}

func (r *SimpleCategoryRepository) Create(ctx context.Context, category inventoryDomain.Category) error {
	entity := internal.FromCategory(category)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating category in database: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Category, error) {
	var entity internal.Category
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return inventoryDomain.Category{}, usecases.ErrCategoryNotFound
	}

	if err != nil {
		return inventoryDomain.Category{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCategoryRepository) FindAll(ctx context.Context) ([]inventoryDomain.Category, error) {
	var entities []internal.Category
	err := r.orm.
		WithContext(ctx).
		Order("name ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]inventoryDomain.Category, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleCategoryRepository) Update(ctx context.Context, category inventoryDomain.Category) error {
	entity := internal.FromCategory(category)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating category in database: %w", err)
	}

	return nil
}

func (r *SimpleCategoryRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Where("id = ?", id.String()).
		Delete(&internal.Category{}).
		Error()

	if err != nil {
		return fmt.Errorf("deleting category in database: %w", err)
	}

	return nil
}

func NewLocationRepository(orm sql.ORM) (*SimpleLocationRepository, error) {
	err := orm.AutoMigrate(&internal.Location{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleLocationRepository{orm: orm}, nil
}

var _ usecases.LocationRepository = (*SimpleLocationRepository)(nil)

type SimpleLocationRepository struct {
	orm sql.ORM
}

func (r *SimpleLocationRepository) Create(ctx context.Context, location inventoryDomain.Location) error {
	entity := internal.FromLocation(location)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating location in database: %w", err)
	}

	return nil
}

func (r *SimpleLocationRepository) GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Location, error) {
	var entity internal.Location
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return inventoryDomain.Location{}, usecases.ErrLocationNotFound
	}

	if err != nil {
		return inventoryDomain.Location{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleLocationRepository) FindAll(ctx context.Context) ([]inventoryDomain.Location, error) {
	var entities []internal.Location
	err := r.orm.
		WithContext(ctx).
		Order("name ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]inventoryDomain.Location, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimpleLocationRepository) Update(ctx context.Context, location inventoryDomain.Location) error {
	entity := internal.FromLocation(location)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating location in database: %w", err)
	}

	return nil
}

func (r *SimpleLocationRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Where("id = ?", id.String()).
		Delete(&internal.Location{}).
		Error()

	if err != nil {
		return fmt.Errorf("deleting location in database: %w", err)
	}

	return nil
}

func NewPersonRepository(orm sql.ORM) (*SimplePersonRepository, error) {
	err := orm.AutoMigrate(&internal.Person{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimplePersonRepository{orm: orm}, nil
}

var _ usecases.PersonRepository = (*SimplePersonRepository)(nil)

type SimplePersonRepository struct {
	orm sql.ORM
}

func (r *SimplePersonRepository) Create(ctx context.Context, person inventoryDomain.Person) error {
	entity := internal.FromPerson(person)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating person in database: %w", err)
	}

	return nil
}

func (r *SimplePersonRepository) GetByID(ctx context.Context, id shareddomain.ID) (inventoryDomain.Person, error) {
	var entity internal.Person
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return inventoryDomain.Person{}, usecases.ErrPersonNotFound
	}

	if err != nil {
		return inventoryDomain.Person{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimplePersonRepository) FindAll(ctx context.Context) ([]inventoryDomain.Person, error) {
	var entities []internal.Person
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("name ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]inventoryDomain.Person, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

func (r *SimplePersonRepository) Update(ctx context.Context, person inventoryDomain.Person) error {
	entity := internal.FromPerson(person)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating person in database: %w", err)
	}

	return nil
}

func (r *SimplePersonRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	person, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	person.SoftDelete()
	return r.Update(ctx, person)
}
