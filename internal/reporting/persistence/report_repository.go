package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"geraetewart-server/internal/infra/sql"
	"geraetewart-server/internal/reporting/usecases"
)

// Every query selects a single row_to_json column so the rows come back
// as one JSON document each, matching what Database.Query returns.
const (
	equipmentStatusCountsQuery = `
SELECT row_to_json(t) FROM (
  SELECT status, COUNT(*) AS total
  FROM equipment
  WHERE deleted_at IS NULL
  GROUP BY status
  ORDER BY status
) t`

	recordStatusCountsQuery = `
SELECT row_to_json(t) FROM (
  SELECT status, COUNT(*) AS total
  FROM maintenance_records
  GROUP BY status
  ORDER BY status
) t`

	// Open means any status but completed, mirroring Record.IsOverdue.
	overdueRecordsQuery = `
SELECT row_to_json(t) FROM (
  SELECT r.id AS record_id,
         e.id AS equipment_id,
         e.name AS equipment_name,
         mt.name AS template_name,
         r.due_date,
         r.status
  FROM maintenance_records r
  JOIN equipment e ON e.id = r.equipment_id
  JOIN maintenance_templates mt ON mt.id = r.template_id
  WHERE r.status <> 'completed'
    AND r.due_date < $1
  ORDER BY r.due_date ASC
  LIMIT $2
) t`

	dueSoonRecordsQuery = `
SELECT row_to_json(t) FROM (
  SELECT r.id AS record_id,
         e.id AS equipment_id,
         e.name AS equipment_name,
         mt.name AS template_name,
         r.due_date,
         r.status
  FROM maintenance_records r
  JOIN equipment e ON e.id = r.equipment_id
  JOIN maintenance_templates mt ON mt.id = r.template_id
  WHERE r.status <> 'completed'
    AND r.due_date >= $1
    AND r.due_date < $2
  ORDER BY r.due_date ASC
  LIMIT $3
) t`
)

func NewReportRepository(database sql.Database) *SimpleReportRepository {
	return &SimpleReportRepository{database: database}
}

var _ usecases.ReportRepository = (*SimpleReportRepository)(nil)

type SimpleReportRepository struct {
	database sql.Database
}

func (r *SimpleReportRepository) EquipmentStatusCounts(ctx context.Context) ([]usecases.StatusCount, error) {
	rows, err := r.database.Query(ctx, equipmentStatusCountsQuery)
	if err != nil {
		return nil, fmt.Errorf("equipment status query: %w", err)
	}

	return unmarshalRows[usecases.StatusCount](rows)
}

func (r *SimpleReportRepository) RecordStatusCounts(ctx context.Context) ([]usecases.StatusCount, error) {
	rows, err := r.database.Query(ctx, recordStatusCountsQuery)
	if err != nil {
		return nil, fmt.Errorf("record status query: %w", err)
	}

	return unmarshalRows[usecases.StatusCount](rows)
}

func (r *SimpleReportRepository) OverdueRecords(ctx context.Context, asOf time.Time, limit int) ([]usecases.RecordSummary, error) {
	rows, err := r.database.Query(ctx, overdueRecordsQuery, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("overdue records query: %w", err)
	}

	return unmarshalRows[usecases.RecordSummary](rows)
}

func (r *SimpleReportRepository) DueSoonRecords(ctx context.Context, asOf time.Time, days int, limit int) ([]usecases.RecordSummary, error) {
	until := asOf.AddDate(0, 0, days)

	rows, err := r.database.Query(ctx, dueSoonRecordsQuery, asOf, until, limit)
	if err != nil {
		return nil, fmt.Errorf("due soon records query: %w", err)
	}

	return unmarshalRows[usecases.RecordSummary](rows)
}

func unmarshalRows[T any](rows [][]byte) ([]T, error) {
	result := make([]T, 0, len(rows))
	for _, row := range rows {
		var value T
		if err := json.Unmarshal(row, &value); err != nil {
			return nil, fmt.Errorf("decoding report row: %w", err)
		}
		result = append(result, value)
	}
	return result, nil
}
