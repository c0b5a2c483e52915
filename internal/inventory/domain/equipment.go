package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type EquipmentStatus string

const (
	EquipmentStatusActive  EquipmentStatus = "active"
	EquipmentStatusDefect  EquipmentStatus = "defect"
	EquipmentStatusRetired EquipmentStatus = "retired"
)

type Equipment struct {
	ID              shareddomain.ID
	Version         shareddomain.Version
	Name            shareddomain.Name
	InventoryNumber string
	CategoryID      *shareddomain.ID
	LocationID      *shareddomain.ID
	Status          EquipmentStatus
	PurchaseDate    *utils.Time
	LastCheckDate   *utils.Time
	Notes           string
	CreatedAt       utils.Time
	UpdatedAt       utils.Time
	DeletedAt       *utils.Time
}

func (e *Equipment) IsDeleted() bool {
	return e.DeletedAt != nil
}

func (e *Equipment) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	e.DeletedAt = &now
	e.UpdatedAt = now
}

func (e *Equipment) Retire() {
	e.Status = EquipmentStatusRetired
	e.UpdatedAt = utils.Time{Time: time.Now()}
}

// MarkChecked records that the equipment was inspected at the given time.
// The last check date is the preferred baseline for due-date projection.
func (e *Equipment) MarkChecked(at time.Time) {
	checked := utils.Time{Time: at}
	e.LastCheckDate = &checked
	e.UpdatedAt = utils.Time{Time: time.Now()}
}

// ProjectionBaseline returns the date due-date projection starts from:
// the last check date when present, else the purchase date, else now.
func (e *Equipment) ProjectionBaseline(now time.Time) time.Time {
	if e.LastCheckDate != nil && !e.LastCheckDate.IsZero() {
		return e.LastCheckDate.Time
	}
	if e.PurchaseDate != nil && !e.PurchaseDate.IsZero() {
		return e.PurchaseDate.Time
	}
	return now
}

func NewEquipmentBuilder() *equipmentBuilder {
	return &equipmentBuilder{}
}

type equipmentBuilder struct {
	actions []equipmentHandler
}

type equipmentHandler func(v *Equipment) error

func (b *equipmentBuilder) WithName(value string) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithInventoryNumber(value string) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		d.InventoryNumber = value
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithCategoryID(value shareddomain.ID) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		d.CategoryID = &value
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithLocationID(value shareddomain.ID) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		d.LocationID = &value
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithStatus(value EquipmentStatus) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		d.Status = value
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithPurchaseDate(value time.Time) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		purchased := utils.Time{Time: value}
		d.PurchaseDate = &purchased
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithLastCheckDate(value time.Time) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		checked := utils.Time{Time: value}
		d.LastCheckDate = &checked
		return nil
	})
	return b
}

func (b *equipmentBuilder) WithNotes(value string) *equipmentBuilder {
	b.actions = append(b.actions, func(d *Equipment) error {
		d.Notes = value
		return nil
	})
	return b
}

func (b *equipmentBuilder) Build() (Equipment, error) {
	now := utils.Time{Time: time.Now()}
	result := Equipment{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Status:    EquipmentStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Equipment{}, err
		}
	}

	if result.Name == "" {
		return Equipment{}, ErrEquipmentNameRequired
	}

	return result, nil
}
