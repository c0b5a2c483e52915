package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"geraetewart-server/internal/infra/httpserver"
	"geraetewart-server/internal/reporting/usecases"
)

func NewReportController(service usecases.ReportService) *ReportController {
	return &ReportController{
		service: service,
	}
}

var _ httpserver.Controller = &ReportController{}

type ReportController struct {
	service usecases.ReportService
}

func (c *ReportController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/reports/summary", c.summary())
	router.Handle("GET /v1/reports/summary/export", c.exportSummary())
	router.Handle("POST /v1/reports/email", c.emailSummary())
}

func (c *ReportController) summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := c.service.Summary(r.Context())
		if err != nil {
			slog.Error("building summary report", slog.String("error", err.Error()))
			http.Error(w, "failed to build summary report", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, report)
	}
}

func (c *ReportController) exportSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		document, contentType, err := c.service.ExportSummary(r.Context())
		if err != nil {
			slog.Error("exporting summary report", slog.String("error", err.Error()))
			http.Error(w, "failed to export summary report", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="statusbericht.txt"`)
		w.WriteHeader(http.StatusOK)
		w.Write(document)
	}
}

func (c *ReportController) emailSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.EmailSummary(r.Context())
		if err != nil {
			if errors.Is(err, usecases.ErrNoReportRecipients) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			slog.Error("emailing summary report", slog.String("error", err.Error()))
			http.Error(w, "failed to email summary report", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
