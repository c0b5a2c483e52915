package usecases

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geraetewart-server/internal/infra/async"

	"github.com/robfig/cron/v3"
)

// GenerationWorker fires the bulk generation run on a cron schedule. The
// ticker drives evaluation; a run only happens once the schedule's next
// fire time has passed, so restarts never replay old slots.
func NewGenerationWorker(
	ticker *time.Ticker,
	schedule string,
	service GenerationService,
) (*GenerationWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	spec, err := parser.Parse(schedule)
	if err != nil {
		return nil, err
	}

	return &GenerationWorker{
		ticker:   ticker,
		spec:     spec,
		service:  service,
		lastEval: time.Now(),
	}, nil
}

var _ async.Worker = &GenerationWorker{}

type GenerationWorker struct {
	ticker   *time.Ticker
	spec     cron.Schedule
	service  GenerationService
	lastEval time.Time
}

func (w *GenerationWorker) Run(ctx context.Context, done func()) {
	slog.Info("generation worker started")
	defer done()
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Info("generation worker cancelled")
			wg.Wait()
			return
		case now := <-w.ticker.C:
			if !w.due(now) {
				continue
			}
			wg.Add(1)
			w.runOnce(context.Background(), wg.Done)
		}
	}
}

func (w *GenerationWorker) due(now time.Time) bool {
	next := w.spec.Next(w.lastEval)
	if next.After(now) {
		return false
	}
	w.lastEval = now
	return true
}

// RunOnce triggers a single bulk run outside the schedule, used at startup
// when an operator wants immediate catch-up.
func (w *GenerationWorker) RunOnce(ctx context.Context) {
	w.runOnce(ctx, func() {})
}

func (w *GenerationWorker) runOnce(ctx context.Context, done func()) {
	defer done()

	report, err := w.service.Generate(ctx, GenerationModeAllMissing)
	if err != nil {
		slog.Error("scheduled generation run failed", slog.Any("error", err))
		return
	}

	slog.Info("scheduled generation run finished",
		slog.Int("created", report.Created),
		slog.Int("skipped", report.Skipped),
		slog.Int("errors", report.Errors))
}

func (w *GenerationWorker) Shutdown() {
	w.ticker.Stop()
}
