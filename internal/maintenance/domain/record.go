package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type RecordStatus string

const (
	RecordStatusPending    RecordStatus = "pending"
	RecordStatusScheduled  RecordStatus = "scheduled"
	RecordStatusInProgress RecordStatus = "in_progress"
	RecordStatusCompleted  RecordStatus = "completed"
)

// Record is one due maintenance for one piece of equipment. Generated
// records start out pending; execution moves them through the remaining
// statuses.
type Record struct {
	ID            shareddomain.ID
	Version       shareddomain.Version
	EquipmentID   shareddomain.ID
	TemplateID    shareddomain.ID
	DueDate       utils.Time
	Status        RecordStatus
	PerformedByID *shareddomain.ID
	PerformedAt   *utils.Time
	Notes         string
	CreatedAt     utils.Time
	UpdatedAt     utils.Time
}

// DueDay is the calendar day the record is due on. Uniqueness of
// generated records is enforced per (equipment, template, due day).
func (r *Record) DueDay() string {
	return utils.DayKey(r.DueDate.Time)
}

func (r *Record) Start() {
	r.Status = RecordStatusInProgress
	r.UpdatedAt = utils.Time{Time: time.Now()}
}

func (r *Record) Schedule() {
	r.Status = RecordStatusScheduled
	r.UpdatedAt = utils.Time{Time: time.Now()}
}

func (r *Record) Complete(performedBy *shareddomain.ID, at time.Time) {
	r.Status = RecordStatusCompleted
	if performedBy != nil {
		r.PerformedByID = performedBy
	}
	performedAt := utils.Time{Time: at}
	r.PerformedAt = &performedAt
	r.UpdatedAt = utils.Time{Time: time.Now()}
}

func (r *Record) IsCompleted() bool {
	return r.Status == RecordStatusCompleted
}

// IsOverdue reports whether an open record's due date has passed.
func (r *Record) IsOverdue(now time.Time) bool {
	if r.IsCompleted() {
		return false
	}
	return r.DueDate.Time.Before(now)
}

func NewRecordBuilder() *recordBuilder {
	return &recordBuilder{}
}

type recordBuilder struct {
	actions []recordHandler
}

type recordHandler func(v *Record) error

func (b *recordBuilder) WithEquipmentID(value shareddomain.ID) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.EquipmentID = value
		return nil
	})
	return b
}

func (b *recordBuilder) WithTemplateID(value shareddomain.ID) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.TemplateID = value
		return nil
	})
	return b
}

func (b *recordBuilder) WithDueDate(value time.Time) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.DueDate = utils.Time{Time: value}
		return nil
	})
	return b
}

func (b *recordBuilder) WithStatus(value RecordStatus) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.Status = value
		return nil
	})
	return b
}

func (b *recordBuilder) WithPerformedByID(value *shareddomain.ID) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.PerformedByID = value
		return nil
	})
	return b
}

func (b *recordBuilder) WithNotes(value string) *recordBuilder {
	b.actions = append(b.actions, func(d *Record) error {
		d.Notes = value
		return nil
	})
	return b
}

func (b *recordBuilder) Build() (Record, error) {
	now := utils.Time{Time: time.Now()}
	result := Record{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Status:    RecordStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Record{}, err
		}
	}

	if result.EquipmentID == "" {
		return Record{}, ErrRecordEquipmentRequired
	}

	if result.TemplateID == "" {
		return Record{}, ErrRecordTemplateRequired
	}

	if result.DueDate.IsZero() {
		return Record{}, ErrRecordDueDateRequired
	}

	return result, nil
}
