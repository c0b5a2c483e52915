package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, template maintenanceDomain.Template) error
	GetTemplate(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Template, error)
	ListTemplates(ctx context.Context, pagination Pagination) ([]maintenanceDomain.Template, int, error)
	UpdateTemplate(ctx context.Context, template maintenanceDomain.Template) error
	DeleteTemplate(ctx context.Context, id shareddomain.ID) error
	ActivateTemplate(ctx context.Context, id shareddomain.ID) error
	DeactivateTemplate(ctx context.Context, id shareddomain.ID) error
}

func NewTemplateService(repository TemplateRepository) *SimpleTemplateService {
	return &SimpleTemplateService{
		repository: repository,
	}
}

var _ TemplateService = (*SimpleTemplateService)(nil)

type SimpleTemplateService struct {
	repository TemplateRepository
}

func (s *SimpleTemplateService) CreateTemplate(ctx context.Context, template maintenanceDomain.Template) error {
	err := s.repository.Create(ctx, template)
	if err != nil {
		slog.Error("creating template", slog.String("error", err.Error()))
		return fmt.Errorf("creating template: %w", err)
	}

	slog.Info("maintenance template created",
		slog.String("id", template.ID.String()),
		slog.String("name", string(template.Name)),
		slog.Int("interval_months", template.IntervalMonths))

	return nil
}

func (s *SimpleTemplateService) GetTemplate(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Template, error) {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return maintenanceDomain.Template{}, ErrTemplateNotFound
		}
		return maintenanceDomain.Template{}, fmt.Errorf("getting template: %w", err)
	}

	return template, nil
}

func (s *SimpleTemplateService) ListTemplates(ctx context.Context, pagination Pagination) ([]maintenanceDomain.Template, int, error) {
	templates, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing templates: %w", err)
	}

	return templates, total, nil
}

func (s *SimpleTemplateService) UpdateTemplate(ctx context.Context, template maintenanceDomain.Template) error {
	existing, err := s.repository.GetByID(ctx, template.ID)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("getting template: %w", err)
	}

	if existing.IsDeleted() {
		return errors.New("template is deleted")
	}

	if template.IntervalMonths < 0 {
		return maintenanceDomain.ErrTemplateIntervalInvalid
	}

	err = s.repository.Update(ctx, template)
	if err != nil {
		slog.Error("updating template", slog.String("error", err.Error()))
		return fmt.Errorf("updating template: %w", err)
	}

	return nil
}

func (s *SimpleTemplateService) DeleteTemplate(ctx context.Context, id shareddomain.ID) error {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("getting template: %w", err)
	}

	if template.IsDeleted() {
		return errors.New("template is already deleted")
	}

	return s.repository.Delete(ctx, id)
}

func (s *SimpleTemplateService) ActivateTemplate(ctx context.Context, id shareddomain.ID) error {
	return s.setActive(ctx, id, true)
}

func (s *SimpleTemplateService) DeactivateTemplate(ctx context.Context, id shareddomain.ID) error {
	return s.setActive(ctx, id, false)
}

func (s *SimpleTemplateService) setActive(ctx context.Context, id shareddomain.ID, active bool) error {
	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("getting template: %w", err)
	}

	if template.IsDeleted() {
		return errors.New("template is deleted")
	}

	if active {
		template.Activate()
	} else {
		template.Deactivate()
	}

	return s.repository.Update(ctx, template)
}
