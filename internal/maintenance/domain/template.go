package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

// Template describes a recurring maintenance duty: how often equipment of a
// category is due and who is responsible for carrying it out.
type Template struct {
	ID                  shareddomain.ID
	Version             shareddomain.Version
	Name                shareddomain.Name
	Description         shareddomain.Description
	CategoryID          *shareddomain.ID
	IntervalMonths      int
	ResponsiblePersonID *shareddomain.ID
	IsActive            bool
	CreatedAt           utils.Time
	UpdatedAt           utils.Time
	DeletedAt           *utils.Time
}

func (t *Template) IsDeleted() bool {
	return t.DeletedAt != nil
}

func (t *Template) SoftDelete() {
	now := utils.Time{Time: time.Now()}
	t.DeletedAt = &now
	t.IsActive = false
	t.UpdatedAt = now
}

func (t *Template) Activate() {
	t.IsActive = true
	t.UpdatedAt = utils.Time{Time: time.Now()}
}

func (t *Template) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = utils.Time{Time: time.Now()}
}

// MatchesEquipment reports whether this template applies to the given
// equipment. A template without a category applies to all equipment,
// otherwise the categories must be equal.
func (t *Template) MatchesEquipment(equipment inventoryDomain.Equipment) bool {
	if t.CategoryID == nil {
		return true
	}
	if equipment.CategoryID == nil {
		return false
	}
	return *t.CategoryID == *equipment.CategoryID
}

// HasValidInterval reports whether the template can be projected at all.
// Templates without a positive interval are skipped, never errored.
func (t *Template) HasValidInterval() bool {
	return t.IntervalMonths > 0
}

func NewTemplateBuilder() *templateBuilder {
	return &templateBuilder{}
}

type templateBuilder struct {
	actions []templateHandler
}

type templateHandler func(v *Template) error

func (b *templateBuilder) WithName(value string) *templateBuilder {
	b.actions = append(b.actions, func(d *Template) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *templateBuilder) WithDescription(value string) *templateBuilder {
	b.actions = append(b.actions, func(d *Template) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *templateBuilder) WithCategoryID(value shareddomain.ID) *templateBuilder {
	b.actions = append(b.actions, func(d *Template) error {
		d.CategoryID = &value
		return nil
	})
	return b
}

func (b *templateBuilder) WithIntervalMonths(value int) *templateBuilder {
	b.actions = append(b.actions, func(d *Template) error {
		d.IntervalMonths = value
		return nil
	})
	return b
}

func (b *templateBuilder) WithResponsiblePersonID(value shareddomain.ID) *templateBuilder {
	b.actions = append(b.actions, func(d *Template) error {
		d.ResponsiblePersonID = &value
		return nil
	})
	return b
}

func (b *templateBuilder) Build() (Template, error) {
	now := utils.Time{Time: time.Now()}
	result := Template{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Template{}, err
		}
	}

	if result.Name == "" {
		return Template{}, ErrTemplateNameRequired
	}

	if result.IntervalMonths < 0 {
		return Template{}, ErrTemplateIntervalInvalid
	}

	return result, nil
}
