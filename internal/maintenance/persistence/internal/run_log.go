package internal

import (
	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type RunLog struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	JobName         string      `json:"job_name" gorm:"index;not null"`
	Status          string      `json:"status" gorm:"not null"`
	StartedAt       utils.Time  `json:"started_at" gorm:"index"`
	CompletedAt     *utils.Time `json:"completed_at,omitempty"`
	DurationSeconds float64     `json:"duration_seconds"`
	Details         string      `json:"details"`
	ErrorMessage    *string     `json:"error_message,omitempty"`
}

func (RunLog) TableName() string {
	return "job_run_logs"
}

func (m RunLog) ToDomain() maintenanceDomain.RunLog {
	return maintenanceDomain.RunLog{
		ID:              shareddomain.ID(m.ID),
		JobName:         m.JobName,
		Status:          maintenanceDomain.RunStatus(m.Status),
		StartedAt:       m.StartedAt,
		CompletedAt:     m.CompletedAt,
		DurationSeconds: m.DurationSeconds,
		Details:         m.Details,
		ErrorMessage:    m.ErrorMessage,
	}
}

func FromRunLog(value maintenanceDomain.RunLog) RunLog {
	return RunLog{
		ID:              value.ID.String(),
		JobName:         value.JobName,
		Status:          string(value.Status),
		StartedAt:       value.StartedAt,
		CompletedAt:     value.CompletedAt,
		DurationSeconds: value.DurationSeconds,
		Details:         value.Details,
		ErrorMessage:    value.ErrorMessage,
	}
}
