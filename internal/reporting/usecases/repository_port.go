package usecases

import (
	"context"
	"time"
)

// StatusCount is one aggregate bucket from the reporting queries.
type StatusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

// RecordSummary is a flattened maintenance record row joined with the
// equipment and template names the report prints.
type RecordSummary struct {
	RecordID      string    `json:"record_id"`
	EquipmentID   string    `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	TemplateName  string    `json:"template_name"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"`
}

type ReportRepository interface {
	EquipmentStatusCounts(ctx context.Context) ([]StatusCount, error)
	RecordStatusCounts(ctx context.Context) ([]StatusCount, error)
	OverdueRecords(ctx context.Context, asOf time.Time, limit int) ([]RecordSummary, error)
	DueSoonRecords(ctx context.Context, asOf time.Time, days int, limit int) ([]RecordSummary, error)
}
