package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"geraetewart-server/internal/infra/async"
	inventoryUsecases "geraetewart-server/internal/inventory/usecases"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

const (
	JobNameMaintenanceGeneration = "maintenance_generation"

	RunsTopic    async.BrokerTopicName = "maintenance_runs"
	RecordsTopic async.BrokerTopicName = "maintenance_records"

	RunCompletedEvent  = "run_completed"
	RunFailedEvent     = "run_failed"
	RecordCreatedEvent = "record_created"
)

// RunReport is the outcome of one generation run.
type RunReport struct {
	Mode                     GenerationMode `json:"mode"`
	Created                  int            `json:"created"`
	Skipped                  int            `json:"skipped"`
	Errors                   int            `json:"errors"`
	EquipmentWithoutTemplate []string       `json:"equipment_without_template,omitempty"`
	Timestamp                time.Time      `json:"timestamp"`
}

type GenerationService interface {
	// Generate runs one full batch: project due dates for every active
	// (equipment, template) pair, skip duplicates, write pending records.
	Generate(ctx context.Context, mode GenerationMode) (RunReport, error)
	ListRuns(ctx context.Context, limit int) ([]maintenanceDomain.RunLog, error)
}

func NewGenerationService(
	equipment inventoryUsecases.EquipmentRepository,
	templates TemplateRepository,
	records RecordRepository,
	runLogs RunLogRepository,
	broker async.InternalBroker,
) *SimpleGenerationService {
	return &SimpleGenerationService{
		equipment: equipment,
		templates: templates,
		records:   records,
		runLogs:   runLogs,
		broker:    broker,
		now:       time.Now,
	}
}

var _ GenerationService = (*SimpleGenerationService)(nil)

type SimpleGenerationService struct {
	equipment inventoryUsecases.EquipmentRepository
	templates TemplateRepository
	records   RecordRepository
	runLogs   RunLogRepository
	broker    async.InternalBroker

	// now is swappable for deterministic tests.
	now func() time.Time
}

func (s *SimpleGenerationService) Generate(ctx context.Context, mode GenerationMode) (RunReport, error) {
	if !mode.IsValid() {
		return RunReport{}, fmt.Errorf("invalid generation mode: %q", mode)
	}

	runLog, err := maintenanceDomain.NewRunLog(JobNameMaintenanceGeneration)
	if err != nil {
		return RunReport{}, fmt.Errorf("creating run log: %w", err)
	}

	if err := s.runLogs.Create(ctx, runLog); err != nil {
		slog.Warn("persisting run log start", slog.String("error", err.Error()))
	}

	report, err := s.run(ctx, mode)
	if err != nil {
		runLog.Fail(err.Error())
		if updateErr := s.runLogs.Update(ctx, runLog); updateErr != nil {
			slog.Warn("persisting failed run log", slog.String("error", updateErr.Error()))
		}
		s.publish(ctx, RunsTopic, RunFailedEvent, err.Error())
		return RunReport{}, err
	}

	details, marshalErr := json.Marshal(report)
	if marshalErr != nil {
		details = []byte("{}")
	}
	runLog.Succeed(string(details))
	if err := s.runLogs.Update(ctx, runLog); err != nil {
		slog.Warn("persisting run log result", slog.String("error", err.Error()))
	}

	s.publish(ctx, RunsTopic, RunCompletedEvent, report)

	slog.Info("maintenance generation run completed",
		slog.String("mode", string(mode)),
		slog.Int("created", report.Created),
		slog.Int("skipped", report.Skipped),
		slog.Int("errors", report.Errors))

	return report, nil
}

// run drives the batch. Failures to load the working set abort the run;
// everything downstream is isolated per candidate.
func (s *SimpleGenerationService) run(ctx context.Context, mode GenerationMode) (RunReport, error) {
	now := s.now()
	horizon := HorizonFor(mode, now)
	report := RunReport{Mode: mode, Timestamp: now}

	equipmentItems, err := s.equipment.FindAllActive(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("loading equipment: %w", err)
	}

	templates, err := s.templates.FindAllActive(ctx)
	if err != nil {
		return RunReport{}, fmt.Errorf("loading templates: %w", err)
	}

	matchedTemplates := make(map[shareddomain.ID]bool, len(templates))

	for _, equipment := range equipmentItems {
		matched := false

		for _, template := range templates {
			if !template.MatchesEquipment(equipment) {
				continue
			}
			matched = true
			matchedTemplates[template.ID] = true

			if !template.HasValidInterval() {
				report.Skipped++
				continue
			}

			baseline := equipment.ProjectionBaseline(now)
			candidates := ProjectDueDates(baseline, template.IntervalMonths, mode, horizon)

			for _, candidate := range candidates {
				s.processCandidate(ctx, equipment.ID, template, candidate, &report)
			}
		}

		if !matched {
			report.Skipped++
			report.EquipmentWithoutTemplate = append(report.EquipmentWithoutTemplate, equipment.ID.String())
		}
	}

	// Unmatched counterparts count once on either side: a template whose
	// category matches no equipment is a skip too.
	for _, template := range templates {
		if !matchedTemplates[template.ID] {
			report.Skipped++
		}
	}

	return report, nil
}

func (s *SimpleGenerationService) processCandidate(
	ctx context.Context,
	equipmentID shareddomain.ID,
	template maintenanceDomain.Template,
	candidate time.Time,
	report *RunReport,
) {
	exists, err := s.records.ExistsForDay(ctx, equipmentID, template.ID, candidate)
	if err != nil {
		slog.Error("duplicate check failed",
			slog.String("equipment_id", equipmentID.String()),
			slog.String("template_id", template.ID.String()),
			slog.Time("candidate", candidate),
			slog.String("error", err.Error()))
		report.Errors++
		return
	}

	if exists {
		report.Skipped++
		return
	}

	record, err := maintenanceDomain.NewRecordBuilder().
		WithEquipmentID(equipmentID).
		WithTemplateID(template.ID).
		WithDueDate(candidate).
		WithPerformedByID(template.ResponsiblePersonID).
		Build()
	if err != nil {
		report.Errors++
		return
	}

	err = s.records.Create(ctx, record)
	if errors.Is(err, ErrRecordDuplicate) {
		// A concurrent run beat us to this day. The store constraint is
		// the source of truth, so this is a skip, not an error.
		report.Skipped++
		return
	}
	if err != nil {
		slog.Error("creating maintenance record",
			slog.String("equipment_id", equipmentID.String()),
			slog.String("template_id", template.ID.String()),
			slog.Time("candidate", candidate),
			slog.String("error", err.Error()))
		report.Errors++
		return
	}

	report.Created++
	s.publish(ctx, RecordsTopic, RecordCreatedEvent, record)
}

func (s *SimpleGenerationService) ListRuns(ctx context.Context, limit int) ([]maintenanceDomain.RunLog, error) {
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.runLogs.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	return runs, nil
}

func (s *SimpleGenerationService) publish(ctx context.Context, topic async.BrokerTopicName, event string, value any) {
	if s.broker == nil {
		return
	}

	err := s.broker.Publish(ctx, topic, async.BrokerMessage{Event: event, Value: value})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing run event", slog.String("error", err.Error()))
	}
}
