package internal

import (
	"time"

	inventoryDomain "geraetewart-server/internal/inventory/domain"
)

type EquipmentResponse struct {
	ID              string     `json:"id"`
	Version         int        `json:"version"`
	Name            string     `json:"name"`
	InventoryNumber string     `json:"inventory_number"`
	CategoryID      *string    `json:"category_id,omitempty"`
	LocationID      *string    `json:"location_id,omitempty"`
	Status          string     `json:"status"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	LastCheckDate   *time.Time `json:"last_check_date,omitempty"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type EquipmentCreateRequest struct {
	Name            string     `json:"name"`
	InventoryNumber string     `json:"inventory_number"`
	CategoryID      *string    `json:"category_id,omitempty"`
	LocationID      *string    `json:"location_id,omitempty"`
	Status          *string    `json:"status,omitempty"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	LastCheckDate   *time.Time `json:"last_check_date,omitempty"`
	Notes           string     `json:"notes"`
}

type EquipmentUpdateRequest struct {
	Name            *string    `json:"name,omitempty"`
	InventoryNumber *string    `json:"inventory_number,omitempty"`
	CategoryID      *string    `json:"category_id,omitempty"`
	LocationID      *string    `json:"location_id,omitempty"`
	Status          *string    `json:"status,omitempty"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

type EquipmentCheckRequest struct {
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

func ToEquipmentResponse(equipment inventoryDomain.Equipment) EquipmentResponse {
	response := EquipmentResponse{
		ID:              equipment.ID.String(),
		Version:         int(equipment.Version),
		Name:            string(equipment.Name),
		InventoryNumber: equipment.InventoryNumber,
		Status:          string(equipment.Status),
		Notes:           equipment.Notes,
		CreatedAt:       equipment.CreatedAt.Time,
		UpdatedAt:       equipment.UpdatedAt.Time,
	}

	if equipment.CategoryID != nil {
		categoryID := equipment.CategoryID.String()
		response.CategoryID = &categoryID
	}

	if equipment.LocationID != nil {
		locationID := equipment.LocationID.String()
		response.LocationID = &locationID
	}

	if equipment.PurchaseDate != nil {
		response.PurchaseDate = &equipment.PurchaseDate.Time
	}

	if equipment.LastCheckDate != nil {
		response.LastCheckDate = &equipment.LastCheckDate.Time
	}

	return response
}
