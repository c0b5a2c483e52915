package domain

import (
	"time"

	"geraetewart-server/internal/infra/utils"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// RunLog is the durable trace of one generation run. A run starts in the
// running state and ends in success or error; per-candidate failures are
// carried in the details, a run-fatal failure in the error message.
type RunLog struct {
	ID              shareddomain.ID
	JobName         string
	Status          RunStatus
	StartedAt       utils.Time
	CompletedAt     *utils.Time
	DurationSeconds float64
	Details         string
	ErrorMessage    *string
}

func NewRunLog(jobName string) (RunLog, error) {
	if jobName == "" {
		return RunLog{}, ErrRunLogJobNameRequired
	}

	return RunLog{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		JobName:   jobName,
		Status:    RunStatusRunning,
		StartedAt: utils.Time{Time: time.Now()},
	}, nil
}

func (l *RunLog) Succeed(details string) {
	l.finish(RunStatusSuccess)
	l.Details = details
}

func (l *RunLog) Fail(message string) {
	l.finish(RunStatusError)
	l.ErrorMessage = &message
}

func (l *RunLog) finish(status RunStatus) {
	now := utils.Time{Time: time.Now()}
	l.Status = status
	l.CompletedAt = &now
	l.DurationSeconds = now.Sub(l.StartedAt.Time).Seconds()
}
