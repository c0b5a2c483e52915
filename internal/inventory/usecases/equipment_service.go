package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	inventoryDomain "geraetewart-server/internal/inventory/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type EquipmentService interface {
	CreateEquipment(ctx context.Context, equipment inventoryDomain.Equipment) error
	GetEquipment(ctx context.Context, id shareddomain.ID) (inventoryDomain.Equipment, error)
	ListEquipment(ctx context.Context, filter EquipmentFilter, pagination Pagination) ([]inventoryDomain.Equipment, int, error)
	UpdateEquipment(ctx context.Context, equipment inventoryDomain.Equipment) error
	DeleteEquipment(ctx context.Context, id shareddomain.ID) error
	MarkEquipmentChecked(ctx context.Context, id shareddomain.ID, at time.Time) error
}

func NewEquipmentService(repository EquipmentRepository) *SimpleEquipmentService {
	return &SimpleEquipmentService{
		repository: repository,
	}
}

var _ EquipmentService = (*SimpleEquipmentService)(nil)

type SimpleEquipmentService struct {
	repository EquipmentRepository
}

func (s *SimpleEquipmentService) CreateEquipment(ctx context.Context, equipment inventoryDomain.Equipment) error {
	err := s.repository.Create(ctx, equipment)
	if err != nil {
		slog.Error("creating equipment", slog.String("error", err.Error()))
		return fmt.Errorf("creating equipment: %w", err)
	}

	slog.Info("equipment created successfully",
		slog.String("id", equipment.ID.String()),
		slog.String("name", string(equipment.Name)))

	return nil
}

func (s *SimpleEquipmentService) GetEquipment(ctx context.Context, id shareddomain.ID) (inventoryDomain.Equipment, error) {
	equipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return inventoryDomain.Equipment{}, ErrEquipmentNotFound
		}
		slog.Error("getting equipment", slog.String("error", err.Error()))
		return inventoryDomain.Equipment{}, fmt.Errorf("getting equipment: %w", err)
	}

	return equipment, nil
}

func (s *SimpleEquipmentService) ListEquipment(
	ctx context.Context,
	filter EquipmentFilter,
	pagination Pagination,
) ([]inventoryDomain.Equipment, int, error) {
	equipment, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing equipment", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing equipment: %w", err)
	}

	return equipment, total, nil
}

func (s *SimpleEquipmentService) UpdateEquipment(ctx context.Context, equipment inventoryDomain.Equipment) error {
	existing, err := s.repository.GetByID(ctx, equipment.ID)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return ErrEquipmentNotFound
		}
		return fmt.Errorf("getting equipment: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("equipment is deleted")
	}

	err = s.repository.Update(ctx, equipment)
	if err != nil {
		slog.Error("updating equipment", slog.String("error", err.Error()))
		return fmt.Errorf("updating equipment: %w", err)
	}

	return nil
}

func (s *SimpleEquipmentService) DeleteEquipment(ctx context.Context, id shareddomain.ID) error {
	equipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return ErrEquipmentNotFound
		}
		return fmt.Errorf("getting equipment: %w", err)
	}

	if equipment.IsDeleted() {
		return errors.New("equipment is already deleted")
	}

	err = s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting equipment", slog.String("error", err.Error()))
		return fmt.Errorf("deleting equipment: %w", err)
	}

	return nil
}

func (s *SimpleEquipmentService) MarkEquipmentChecked(ctx context.Context, id shareddomain.ID, at time.Time) error {
	equipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			return ErrEquipmentNotFound
		}
		return fmt.Errorf("getting equipment: %w", err)
	}

	equipment.MarkChecked(at)
	return s.repository.Update(ctx, equipment)
}
