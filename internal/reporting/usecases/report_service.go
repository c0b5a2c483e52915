package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"geraetewart-server/internal/infra/notification"
	settingsUsecases "geraetewart-server/internal/settings/usecases"
)

const (
	reportRowLimit = 50

	defaultDueSoonDays = 14
)

var ErrNoReportRecipients = errors.New("no report recipients configured")

// SummaryReport is the aggregated state of the inventory at one instant.
type SummaryReport struct {
	GeneratedAt       time.Time       `json:"generated_at"`
	EquipmentByStatus []StatusCount   `json:"equipment_by_status"`
	RecordsByStatus   []StatusCount   `json:"records_by_status"`
	Overdue           []RecordSummary `json:"overdue"`
	DueSoon           []RecordSummary `json:"due_soon"`
}

// ReportExporter renders a summary into an external format. Export
// returns the encoded document and its content type. Spreadsheet and
// PDF encoders plug in here.
type ReportExporter interface {
	Export(ctx context.Context, report SummaryReport) ([]byte, string, error)
}

// TextExporter encodes the summary as the same plain text used for
// email bodies.
type TextExporter struct{}

var _ ReportExporter = (*TextExporter)(nil)

func (e *TextExporter) Export(_ context.Context, report SummaryReport) ([]byte, string, error) {
	return []byte(RenderSummaryText(report)), "text/plain; charset=utf-8", nil
}

type ReportService interface {
	Summary(ctx context.Context) (SummaryReport, error)
	ExportSummary(ctx context.Context) ([]byte, string, error)
	EmailSummary(ctx context.Context) error
}

func NewReportService(
	repository ReportRepository,
	notifier notification.NotificationClient,
	settings settingsUsecases.SettingsProvider,
	exporter ReportExporter,
) *SimpleReportService {
	return &SimpleReportService{
		repository: repository,
		notifier:   notifier,
		settings:   settings,
		exporter:   exporter,
		now:        time.Now,
	}
}

var _ ReportService = (*SimpleReportService)(nil)

type SimpleReportService struct {
	repository ReportRepository
	notifier   notification.NotificationClient
	settings   settingsUsecases.SettingsProvider
	exporter   ReportExporter

	now func() time.Time
}

func (s *SimpleReportService) Summary(ctx context.Context) (SummaryReport, error) {
	asOf := s.now()

	equipmentCounts, err := s.repository.EquipmentStatusCounts(ctx)
	if err != nil {
		return SummaryReport{}, fmt.Errorf("equipment status counts: %w", err)
	}

	recordCounts, err := s.repository.RecordStatusCounts(ctx)
	if err != nil {
		return SummaryReport{}, fmt.Errorf("record status counts: %w", err)
	}

	overdue, err := s.repository.OverdueRecords(ctx, asOf, reportRowLimit)
	if err != nil {
		return SummaryReport{}, fmt.Errorf("overdue records: %w", err)
	}

	dueSoonDays := s.settings.GetInt(ctx, "report.due_soon_days", defaultDueSoonDays)
	dueSoon, err := s.repository.DueSoonRecords(ctx, asOf, dueSoonDays, reportRowLimit)
	if err != nil {
		return SummaryReport{}, fmt.Errorf("due soon records: %w", err)
	}

	return SummaryReport{
		GeneratedAt:       asOf,
		EquipmentByStatus: equipmentCounts,
		RecordsByStatus:   recordCounts,
		Overdue:           overdue,
		DueSoon:           dueSoon,
	}, nil
}

func (s *SimpleReportService) ExportSummary(ctx context.Context) ([]byte, string, error) {
	report, err := s.Summary(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("building summary: %w", err)
	}

	document, contentType, err := s.exporter.Export(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("exporting summary: %w", err)
	}

	return document, contentType, nil
}

func (s *SimpleReportService) EmailSummary(ctx context.Context) error {
	recipients := s.settings.ReportRecipients(ctx)
	if len(recipients) == 0 {
		return ErrNoReportRecipients
	}

	report, err := s.Summary(ctx)
	if err != nil {
		return fmt.Errorf("building summary: %w", err)
	}

	subject := fmt.Sprintf("Gerätewart Statusbericht %s", report.GeneratedAt.Format("2006-01-02"))
	body := RenderSummaryText(report)

	for _, recipient := range recipients {
		err := s.notifier.SendEmail(ctx, notification.EmailRequest{
			To:      recipient,
			Subject: subject,
			Body:    body,
		})
		if err != nil {
			slog.Error("sending report email",
				slog.String("recipient", recipient),
				slog.String("error", err.Error()))
			return fmt.Errorf("sending report email: %w", err)
		}
	}

	slog.Info("summary report emailed", slog.Int("recipients", len(recipients)))

	return nil
}

// RenderSummaryText formats a report as plain text for email bodies.
func RenderSummaryText(report SummaryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statusbericht vom %s\n\n", report.GeneratedAt.Format("02.01.2006"))

	b.WriteString("Geräte nach Status:\n")
	for _, count := range report.EquipmentByStatus {
		fmt.Fprintf(&b, "  %-12s %d\n", count.Status, count.Total)
	}

	b.WriteString("\nWartungen nach Status:\n")
	for _, count := range report.RecordsByStatus {
		fmt.Fprintf(&b, "  %-12s %d\n", count.Status, count.Total)
	}

	fmt.Fprintf(&b, "\nÜberfällige Wartungen (%d):\n", len(report.Overdue))
	for _, record := range report.Overdue {
		fmt.Fprintf(&b, "  %s - %s (fällig %s)\n",
			record.EquipmentName, record.TemplateName, record.DueDate.Format("02.01.2006"))
	}

	fmt.Fprintf(&b, "\nDemnächst fällig (%d):\n", len(report.DueSoon))
	for _, record := range report.DueSoon {
		fmt.Fprintf(&b, "  %s - %s (fällig %s)\n",
			record.EquipmentName, record.TemplateName, record.DueDate.Format("02.01.2006"))
	}

	return b.String()
}
