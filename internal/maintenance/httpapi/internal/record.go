package internal

import (
	"time"

	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	maintenanceUsecases "geraetewart-server/internal/maintenance/usecases"
)

type RecordResponse struct {
	ID            string     `json:"id"`
	Version       int        `json:"version"`
	EquipmentID   string     `json:"equipment_id"`
	TemplateID    string     `json:"template_id"`
	DueDate       time.Time  `json:"due_date"`
	Status        string     `json:"status"`
	PerformedByID *string    `json:"performed_by_id,omitempty"`
	PerformedAt   *time.Time `json:"performed_at,omitempty"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type RecordCreateRequest struct {
	EquipmentID   string    `json:"equipment_id"`
	TemplateID    string    `json:"template_id"`
	DueDate       time.Time `json:"due_date"`
	PerformedByID *string   `json:"performed_by_id,omitempty"`
	Notes         string    `json:"notes"`
}

type RecordUpdateRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type RecordCompleteRequest struct {
	PerformedByID *string    `json:"performed_by_id,omitempty"`
	PerformedAt   *time.Time `json:"performed_at,omitempty"`
}

func ToRecordResponse(record maintenanceDomain.Record) RecordResponse {
	response := RecordResponse{
		ID:          record.ID.String(),
		Version:     int(record.Version),
		EquipmentID: record.EquipmentID.String(),
		TemplateID:  record.TemplateID.String(),
		DueDate:     record.DueDate.Time,
		Status:      string(record.Status),
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt.Time,
		UpdatedAt:   record.UpdatedAt.Time,
	}

	if record.PerformedByID != nil {
		personID := record.PerformedByID.String()
		response.PerformedByID = &personID
	}

	if record.PerformedAt != nil {
		response.PerformedAt = &record.PerformedAt.Time
	}

	return response
}

type GenerationResponse struct {
	Created                  int       `json:"created"`
	Skipped                  int       `json:"skipped"`
	Errors                   int       `json:"errors"`
	EquipmentWithoutTemplate []string  `json:"equipment_without_template,omitempty"`
	Timestamp                time.Time `json:"timestamp"`
}

func ToGenerationResponse(report maintenanceUsecases.RunReport) GenerationResponse {
	return GenerationResponse{
		Created:                  report.Created,
		Skipped:                  report.Skipped,
		Errors:                   report.Errors,
		EquipmentWithoutTemplate: report.EquipmentWithoutTemplate,
		Timestamp:                report.Timestamp,
	}
}

type RunLogResponse struct {
	ID              string     `json:"id"`
	JobName         string     `json:"job_name"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationSeconds float64    `json:"duration_seconds"`
	Details         string     `json:"details"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
}

func ToRunLogResponse(runLog maintenanceDomain.RunLog) RunLogResponse {
	response := RunLogResponse{
		ID:              runLog.ID.String(),
		JobName:         runLog.JobName,
		Status:          string(runLog.Status),
		StartedAt:       runLog.StartedAt.Time,
		DurationSeconds: runLog.DurationSeconds,
		Details:         runLog.Details,
		ErrorMessage:    runLog.ErrorMessage,
	}

	if runLog.CompletedAt != nil {
		response.CompletedAt = &runLog.CompletedAt.Time
	}

	return response
}
