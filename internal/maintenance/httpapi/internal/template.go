package internal

import (
	"time"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
)

type TemplateResponse struct {
	ID                  string    `json:"id"`
	Version             int       `json:"version"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	CategoryID          *string   `json:"category_id,omitempty"`
	IntervalMonths      int       `json:"interval_months"`
	ResponsiblePersonID *string   `json:"responsible_person_id,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type TemplateCreateRequest struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	CategoryID          *string `json:"category_id,omitempty"`
	IntervalMonths      int     `json:"interval_months"`
	ResponsiblePersonID *string `json:"responsible_person_id,omitempty"`
}

type TemplateUpdateRequest struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	CategoryID          *string `json:"category_id,omitempty"`
	IntervalMonths      *int    `json:"interval_months,omitempty"`
	ResponsiblePersonID *string `json:"responsible_person_id,omitempty"`
}

func ToTemplateResponse(template maintenanceDomain.Template) TemplateResponse {
	response := TemplateResponse{
		ID:             template.ID.String(),
		Version:        int(template.Version),
		Name:           string(template.Name),
		Description:    string(template.Description),
		IntervalMonths: template.IntervalMonths,
		IsActive:       template.IsActive,
		CreatedAt:      template.CreatedAt.Time,
		UpdatedAt:      template.UpdatedAt.Time,
	}

	if template.CategoryID != nil {
		categoryID := template.CategoryID.String()
		response.CategoryID = &categoryID
	}

	if template.ResponsiblePersonID != nil {
		personID := template.ResponsiblePersonID.String()
		response.ResponsiblePersonID = &personID
	}

	return response
}
