package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"geraetewart-server/internal/infra/async"
	"geraetewart-server/internal/infra/notification"
	maintenanceUsecases "geraetewart-server/internal/maintenance/usecases"
	settingsUsecases "geraetewart-server/internal/settings/usecases"
)

// EmailWorker listens for completed generation runs on the internal
// broker and mails the run summary to the configured recipients.
func NewEmailWorker(
	broker async.InternalBroker,
	notifier notification.NotificationClient,
	settings settingsUsecases.SettingsProvider,
) *EmailWorker {
	return &EmailWorker{
		broker:   broker,
		notifier: notifier,
		settings: settings,
	}
}

var _ async.Worker = &EmailWorker{}

type EmailWorker struct {
	broker   async.InternalBroker
	notifier notification.NotificationClient
	settings settingsUsecases.SettingsProvider
}

func (w *EmailWorker) Run(ctx context.Context, done func()) {
	slog.Info("email worker started")
	defer done()

	subscription, err := w.broker.Subscribe(maintenanceUsecases.RunsTopic)
	if err != nil {
		slog.Error("subscribing to run events", slog.String("error", err.Error()))
		return
	}
	defer w.broker.Unsubscribe(maintenanceUsecases.RunsTopic, subscription)

	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Info("email worker cancelled")
			wg.Wait()
			return
		case msg, ok := <-subscription.Receiver:
			if !ok {
				wg.Wait()
				return
			}
			if msg.Event != maintenanceUsecases.RunCompletedEvent {
				continue
			}

			report, ok := msg.Value.(maintenanceUsecases.RunReport)
			if !ok {
				slog.Warn("unexpected run event payload type")
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				w.notify(context.Background(), report)
			}()
		}
	}
}

func (w *EmailWorker) notify(ctx context.Context, report maintenanceUsecases.RunReport) {
	recipients := w.settings.ReportRecipients(ctx)
	if len(recipients) == 0 {
		slog.Debug("run summary email skipped, no recipients configured")
		return
	}

	subject := fmt.Sprintf("Wartungslauf %s: %d neu, %d übersprungen, %d Fehler",
		report.Timestamp.Format("02.01.2006"), report.Created, report.Skipped, report.Errors)
	body := renderRunSummary(report)

	for _, recipient := range recipients {
		err := w.notifier.SendEmail(ctx, notification.EmailRequest{
			To:      recipient,
			Subject: subject,
			Body:    body,
		})
		if err != nil {
			slog.Error("sending run summary email",
				slog.String("recipient", recipient),
				slog.String("error", err.Error()))
			continue
		}
	}

	slog.Info("run summary emailed",
		slog.Int("recipients", len(recipients)),
		slog.Int("created", report.Created))
}

func renderRunSummary(report maintenanceUsecases.RunReport) string {
	body := fmt.Sprintf(
		"Der Wartungslauf vom %s ist abgeschlossen.\n\nModus: %s\nNeue Wartungen: %d\nÜbersprungen: %d\nFehler: %d\n",
		report.Timestamp.Format("02.01.2006 15:04"),
		report.Mode, report.Created, report.Skipped, report.Errors)

	if len(report.EquipmentWithoutTemplate) > 0 {
		body += fmt.Sprintf("\nGeräte ohne passende Vorlage: %d\n", len(report.EquipmentWithoutTemplate))
		for _, id := range report.EquipmentWithoutTemplate {
			body += "  " + id + "\n"
		}
	}

	return body
}

func (w *EmailWorker) Shutdown() {
}
