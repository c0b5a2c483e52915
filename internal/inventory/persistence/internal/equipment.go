package internal

import (
	"geraetewart-server/internal/infra/utils"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type Equipment struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	Version         int         `json:"version"`
	Name            string      `json:"name" gorm:"not null"`
	InventoryNumber string      `json:"inventory_number" gorm:"index"`
	CategoryID      *string     `json:"category_id,omitempty" gorm:"index"`
	LocationID      *string     `json:"location_id,omitempty" gorm:"index"`
	Status          string      `json:"status" gorm:"not null;default:active"`
	PurchaseDate    *utils.Time `json:"purchase_date,omitempty"`
	LastCheckDate   *utils.Time `json:"last_check_date,omitempty"`
	Notes           string      `json:"notes"`
	CreatedAt       utils.Time  `json:"created_at"`
	UpdatedAt       utils.Time  `json:"updated_at"`
	DeletedAt       *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Equipment) TableName() string {
	return "equipment"
}

func (m Equipment) ToDomain() inventoryDomain.Equipment {
	result := inventoryDomain.Equipment{
		ID:              shareddomain.ID(m.ID),
		Version:         shareddomain.Version(m.Version),
		Name:            shareddomain.Name(m.Name),
		InventoryNumber: m.InventoryNumber,
		Status:          inventoryDomain.EquipmentStatus(m.Status),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.CategoryID != nil {
		categoryID := shareddomain.ID(*m.CategoryID)
		result.CategoryID = &categoryID
	}

	if m.LocationID != nil {
		locationID := shareddomain.ID(*m.LocationID)
		result.LocationID = &locationID
	}

	result.PurchaseDate = m.PurchaseDate
	result.LastCheckDate = m.LastCheckDate
	result.DeletedAt = m.DeletedAt

	return result
}

func FromEquipment(value inventoryDomain.Equipment) Equipment {
	result := Equipment{
		ID:              value.ID.String(),
		Version:         int(value.Version),
		Name:            string(value.Name),
		InventoryNumber: value.InventoryNumber,
		Status:          string(value.Status),
		Notes:           value.Notes,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
	}

	if value.CategoryID != nil {
		categoryID := value.CategoryID.String()
		result.CategoryID = &categoryID
	}

	if value.LocationID != nil {
		locationID := value.LocationID.String()
		result.LocationID = &locationID
	}

	result.PurchaseDate = value.PurchaseDate
	result.LastCheckDate = value.LastCheckDate
	result.DeletedAt = value.DeletedAt

	return result
}
