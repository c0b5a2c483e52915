package internal

import (
	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

// Record carries a denormalized due_day column so the store can enforce
// at most one generated record per (equipment, template, calendar day).
// Concurrent generation runs then collide on the constraint instead of
// double-inserting.
type Record struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	Version       int         `json:"version"`
	EquipmentID   string      `json:"equipment_id" gorm:"not null;uniqueIndex:idx_records_pair_due_day"`
	TemplateID    string      `json:"template_id" gorm:"not null;uniqueIndex:idx_records_pair_due_day"`
	DueDate       utils.Time  `json:"due_date" gorm:"not null"`
	DueDay        string      `json:"due_day" gorm:"not null;uniqueIndex:idx_records_pair_due_day"`
	Status        string      `json:"status" gorm:"not null;default:pending"`
	PerformedByID *string     `json:"performed_by_id,omitempty"`
	PerformedAt   *utils.Time `json:"performed_at,omitempty"`
	Notes         string      `json:"notes"`
	CreatedAt     utils.Time  `json:"created_at"`
	UpdatedAt     utils.Time  `json:"updated_at"`
}

func (Record) TableName() string {
	return "maintenance_records"
}

func (m Record) ToDomain() maintenanceDomain.Record {
	result := maintenanceDomain.Record{
		ID:          shareddomain.ID(m.ID),
		Version:     shareddomain.Version(m.Version),
		EquipmentID: shareddomain.ID(m.EquipmentID),
		TemplateID:  shareddomain.ID(m.TemplateID),
		DueDate:     m.DueDate,
		Status:      maintenanceDomain.RecordStatus(m.Status),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if m.PerformedByID != nil {
		personID := shareddomain.ID(*m.PerformedByID)
		result.PerformedByID = &personID
	}

	result.PerformedAt = m.PerformedAt

	return result
}

func FromRecord(value maintenanceDomain.Record) Record {
	result := Record{
		ID:          value.ID.String(),
		Version:     int(value.Version),
		EquipmentID: value.EquipmentID.String(),
		TemplateID:  value.TemplateID.String(),
		DueDate:     value.DueDate,
		DueDay:      value.DueDay(),
		Status:      string(value.Status),
		Notes:       value.Notes,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}

	if value.PerformedByID != nil {
		personID := value.PerformedByID.String()
		result.PerformedByID = &personID
	}

	result.PerformedAt = value.PerformedAt

	return result
}
