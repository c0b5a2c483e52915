package httpapi

import (
	"log/slog"
	"net/http"

	"geraetewart-server/internal/infra/httpserver"
	"geraetewart-server/internal/maintenance/httpapi/internal"
	"geraetewart-server/internal/maintenance/usecases"
)

// GenerationController exposes the two invocation paths for due-date
// generation: an interactive trigger with a selectable mode, and the
// cron-transport job endpoint that always runs the bulk mode. Both call
// the same service.
func NewGenerationController(service usecases.GenerationService) *GenerationController {
	return &GenerationController{
		service: service,
	}
}

var _ httpserver.Controller = &GenerationController{}

type GenerationController struct {
	service usecases.GenerationService
}

func (c *GenerationController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/maintenance/generate", c.generate())
	router.Handle("POST /v1/jobs/maintenance-generation", c.runJob())
	router.Handle("GET /v1/maintenance/runs", c.listRuns())
}

func (c *GenerationController) generate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := usecases.GenerationMode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = usecases.GenerationModeNextOnly
		}
		if !mode.IsValid() {
			http.Error(w, "invalid mode: must be next_only or all_missing", http.StatusBadRequest)
			return
		}

		report, err := c.service.Generate(r.Context(), mode)
		if err != nil {
			slog.Error("maintenance generation failed", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGenerationResponse(report))
	}
}

func (c *GenerationController) runJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := c.service.Generate(r.Context(), usecases.GenerationModeAllMissing)
		if err != nil {
			slog.Error("maintenance generation job failed", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGenerationResponse(report))
	}
}

func (c *GenerationController) listRuns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if params := httpserver.ExtractPaginationParams(r); params.Limit > 0 {
			limit = params.Limit
		}

		runs, err := c.service.ListRuns(r.Context(), limit)
		if err != nil {
			slog.Error("listing generation runs", slog.String("error", err.Error()))
			http.Error(w, "failed to list generation runs", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.RunLogResponse, len(runs))
		for i, run := range runs {
			responses[i] = internal.ToRunLogResponse(run)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}
