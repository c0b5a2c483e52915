package internal

import (
	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Template struct {
	ID                  string      `json:"id" gorm:"primaryKey"`
	Version             int         `json:"version"`
	Name                string      `json:"name" gorm:"not null"`
	Description         string      `json:"description"`
	CategoryID          *string     `json:"category_id,omitempty" gorm:"index"`
	IntervalMonths      int         `json:"interval_months" gorm:"not null"`
	ResponsiblePersonID *string     `json:"responsible_person_id,omitempty"`
	IsActive            bool        `json:"is_active" gorm:"default:true"`
	CreatedAt           utils.Time  `json:"created_at"`
	UpdatedAt           utils.Time  `json:"updated_at"`
	DeletedAt           *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Template) TableName() string {
	return "maintenance_templates"
}

func (m Template) ToDomain() maintenanceDomain.Template {
	result := maintenanceDomain.Template{
		ID:             shareddomain.ID(m.ID),
		Version:        shareddomain.Version(m.Version),
		Name:           shareddomain.Name(m.Name),
		Description:    shareddomain.Description(m.Description),
		IntervalMonths: m.IntervalMonths,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.CategoryID != nil {
		categoryID := shareddomain.ID(*m.CategoryID)
		result.CategoryID = &categoryID
	}

	if m.ResponsiblePersonID != nil {
		personID := shareddomain.ID(*m.ResponsiblePersonID)
		result.ResponsiblePersonID = &personID
	}

	result.DeletedAt = m.DeletedAt

	return result
}

func FromTemplate(value maintenanceDomain.Template) Template {
	result := Template{
		ID:             value.ID.String(),
		Version:        int(value.Version),
		Name:           string(value.Name),
		Description:    string(value.Description),
		IntervalMonths: value.IntervalMonths,
		IsActive:       value.IsActive,
		CreatedAt:      value.CreatedAt,
		UpdatedAt:      value.UpdatedAt,
	}

	if value.CategoryID != nil {
		categoryID := value.CategoryID.String()
		result.CategoryID = &categoryID
	}

	if value.ResponsiblePersonID != nil {
		personID := value.ResponsiblePersonID.String()
		result.ResponsiblePersonID = &personID
	}

	result.DeletedAt = value.DeletedAt

	return result
}
