package usecases_test

import (
	"context"
	"sync"
	"time"

	"geraetewart-server/internal/infra/async"
	"geraetewart-server/internal/infra/notification"
	maintenanceUsecases "geraetewart-server/internal/maintenance/usecases"
	"geraetewart-server/internal/notification/usecases"
	settingsUsecases "geraetewart-server/internal/settings/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification.EmailRequest
}

func (n *recordingNotifier) SendEmail(_ context.Context, request notification.EmailRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, request)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func (n *recordingNotifier) first() notification.EmailRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[0]
}

type staticSettings struct {
	recipients []string
}

func (s *staticSettings) GetString(_ context.Context, _, fallback string) string { return fallback }
func (s *staticSettings) GetStringSlice(_ context.Context, _ string) []string    { return nil }
func (s *staticSettings) GetBool(_ context.Context, _ string, fallback bool) bool {
	return fallback
}
func (s *staticSettings) GetInt(_ context.Context, _ string, fallback int) int { return fallback }
func (s *staticSettings) ReportSender(_ context.Context) string                { return "" }
func (s *staticSettings) ReportRecipients(_ context.Context) []string          { return s.recipients }
func (s *staticSettings) PreferencesFor(_ context.Context, _ shareddomain.ID) settingsUsecases.NotificationPreferences {
	return settingsUsecases.DefaultNotificationPreferences()
}

var _ = Describe("EmailWorker", func() {
	var (
		broker   *async.LocalBroker
		notifier *recordingNotifier
		settings *staticSettings
		worker   *usecases.EmailWorker
		cancel   context.CancelFunc
	)

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		notifier = &recordingNotifier{}
		settings = &staticSettings{recipients: []string{"wart@feuerwehr.de"}}
		worker = usecases.NewEmailWorker(broker, notifier, settings)

		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		go worker.Run(ctx, func() {})
	})

	AfterEach(func() {
		cancel()
		worker.Shutdown()
	})

	publishReport := func(report maintenanceUsecases.RunReport) {
		Eventually(func() error {
			return broker.Publish(context.Background(), maintenanceUsecases.RunsTopic, async.BrokerMessage{
				Event: maintenanceUsecases.RunCompletedEvent,
				Value: report,
			})
		}).Should(Succeed())
	}

	When("a run completes", func() {
		It("should email the summary to the configured recipients", func() {
			publishReport(maintenanceUsecases.RunReport{
				Mode:      maintenanceUsecases.GenerationModeAllMissing,
				Created:   4,
				Skipped:   1,
				Timestamp: time.Date(2024, 6, 1, 4, 0, 0, 0, time.UTC),
			})

			Eventually(notifier.count).Should(Equal(1))
			Expect(notifier.first().To).To(Equal("wart@feuerwehr.de"))
			Expect(notifier.first().Subject).To(ContainSubstring("4 neu"))
			Expect(notifier.first().Body).To(ContainSubstring("all_missing"))
		})
	})

	When("no recipients are configured", func() {
		BeforeEach(func() {
			settings.recipients = nil
		})

		It("should not send anything", func() {
			publishReport(maintenanceUsecases.RunReport{Created: 1})

			Consistently(notifier.count, 200*time.Millisecond).Should(BeZero())
		})
	})

	When("an unrelated event arrives", func() {
		It("should ignore it", func() {
			Eventually(func() error {
				return broker.Publish(context.Background(), maintenanceUsecases.RunsTopic, async.BrokerMessage{
					Event: "something_else",
				})
			}).Should(Succeed())

			Consistently(notifier.count, 200*time.Millisecond).Should(BeZero())
		})
	})
})
