package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type RecordService interface {
	CreateRecord(ctx context.Context, record maintenanceDomain.Record) error
	GetRecord(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Record, error)
	ListRecords(ctx context.Context, filter RecordFilter, pagination Pagination) ([]maintenanceDomain.Record, int, error)
	UpdateRecord(ctx context.Context, record maintenanceDomain.Record) error
	StartRecord(ctx context.Context, id shareddomain.ID) error
	CompleteRecord(ctx context.Context, id shareddomain.ID, performedBy *shareddomain.ID, at time.Time) error
	DeleteRecord(ctx context.Context, id shareddomain.ID) error
}

func NewRecordService(repository RecordRepository) *SimpleRecordService {
	return &SimpleRecordService{
		repository: repository,
	}
}

var _ RecordService = (*SimpleRecordService)(nil)

type SimpleRecordService struct {
	repository RecordRepository
}

func (s *SimpleRecordService) CreateRecord(ctx context.Context, record maintenanceDomain.Record) error {
	err := s.repository.Create(ctx, record)
	if errors.Is(err, ErrRecordDuplicate) {
		return ErrRecordDuplicate
	}
	if err != nil {
		slog.Error("creating record", slog.String("error", err.Error()))
		return fmt.Errorf("creating record: %w", err)
	}

	return nil
}

func (s *SimpleRecordService) GetRecord(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Record, error) {
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return maintenanceDomain.Record{}, ErrRecordNotFound
		}
		return maintenanceDomain.Record{}, fmt.Errorf("getting record: %w", err)
	}

	return record, nil
}

func (s *SimpleRecordService) ListRecords(ctx context.Context, filter RecordFilter, pagination Pagination) ([]maintenanceDomain.Record, int, error) {
	records, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing records: %w", err)
	}

	return records, total, nil
}

func (s *SimpleRecordService) UpdateRecord(ctx context.Context, record maintenanceDomain.Record) error {
	if _, err := s.repository.GetByID(ctx, record.ID); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}

	err := s.repository.Update(ctx, record)
	if err != nil {
		slog.Error("updating record", slog.String("error", err.Error()))
		return fmt.Errorf("updating record: %w", err)
	}

	return nil
}

func (s *SimpleRecordService) StartRecord(ctx context.Context, id shareddomain.ID) error {
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}

	if record.IsCompleted() {
		return errors.New("record is already completed")
	}

	record.Start()
	return s.repository.Update(ctx, record)
}

func (s *SimpleRecordService) CompleteRecord(ctx context.Context, id shareddomain.ID, performedBy *shareddomain.ID, at time.Time) error {
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}

	if record.IsCompleted() {
		return errors.New("record is already completed")
	}

	record.Complete(performedBy, at)

	err = s.repository.Update(ctx, record)
	if err != nil {
		slog.Error("completing record", slog.String("error", err.Error()))
		return fmt.Errorf("completing record: %w", err)
	}

	slog.Info("maintenance record completed", slog.String("id", record.ID.String()))

	return nil
}

func (s *SimpleRecordService) DeleteRecord(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		slog.Error("deleting record", slog.String("error", err.Error()))
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}
