package usecases

import (
	"context"
	"errors"
	"time"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

var (
	ErrTemplateNotFound = errors.New("maintenance template not found")
	ErrRecordNotFound   = errors.New("maintenance record not found")
	ErrRunLogNotFound   = errors.New("run log not found")
	// ErrRecordDuplicate signals the store rejected an insert because a
	// record for the same (equipment, template, due day) already exists.
	ErrRecordDuplicate = errors.New("maintenance record already exists for that day")
)

type Pagination struct {
	Limit  int
	Offset int
}

// RecordFilter narrows record listings; zero values mean "no filter".
type RecordFilter struct {
	EquipmentID shareddomain.ID
	TemplateID  shareddomain.ID
	Status      maintenanceDomain.RecordStatus
	DueBefore   *time.Time
}

type TemplateRepository interface {
	Create(ctx context.Context, template maintenanceDomain.Template) error
	GetByID(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Template, error)
	FindAll(ctx context.Context, pagination Pagination) ([]maintenanceDomain.Template, int, error)
	FindAllActive(ctx context.Context) ([]maintenanceDomain.Template, error)
	Update(ctx context.Context, template maintenanceDomain.Template) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type RecordRepository interface {
	// Create inserts a record and returns ErrRecordDuplicate when the
	// per-day uniqueness constraint rejects it.
	Create(ctx context.Context, record maintenanceDomain.Record) error
	GetByID(ctx context.Context, id shareddomain.ID) (maintenanceDomain.Record, error)
	FindAll(ctx context.Context, filter RecordFilter, pagination Pagination) ([]maintenanceDomain.Record, int, error)
	// ExistsForDay reports whether a record for the pair exists whose due
	// date falls anywhere within the calendar day of the candidate.
	ExistsForDay(ctx context.Context, equipmentID, templateID shareddomain.ID, candidate time.Time) (bool, error)
	Update(ctx context.Context, record maintenanceDomain.Record) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

type RunLogRepository interface {
	Create(ctx context.Context, runLog maintenanceDomain.RunLog) error
	Update(ctx context.Context, runLog maintenanceDomain.RunLog) error
	FindRecent(ctx context.Context, limit int) ([]maintenanceDomain.RunLog, error)
}
