package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"geraetewart-server/internal/infra/httpserver"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	"geraetewart-server/internal/maintenance/httpapi/internal"
	"geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

const (
	createRecordErrMessage    = "failed to create maintenance record"
	getRecordErrMessage       = "failed to get maintenance record"
	updateRecordErrMessage    = "failed to update maintenance record"
	completeRecordErrMessage  = "failed to complete maintenance record"
	recordNotFoundErrMessage  = "maintenance record not found"
	recordDuplicateErrMessage = "a maintenance record already exists for that day"
)

func NewRecordController(service usecases.RecordService) *RecordController {
	return &RecordController{
		service: service,
	}
}

var _ httpserver.Controller = &RecordController{}

type RecordController struct {
	service usecases.RecordService
}

func (c *RecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/maintenance/records", c.listRecords())
	router.Handle("GET /v1/maintenance/records/{id}", c.getRecord())
	router.Handle("POST /v1/maintenance/records", c.createRecord())
	router.Handle("PUT /v1/maintenance/records/{id}", c.updateRecord())
	router.Handle("DELETE /v1/maintenance/records/{id}", c.deleteRecord())
	router.Handle("POST /v1/maintenance/records/{id}/start", c.startRecord())
	router.Handle("POST /v1/maintenance/records/{id}/complete", c.completeRecord())
}

func (c *RecordController) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		filter := usecases.RecordFilter{
			EquipmentID: shareddomain.ID(r.URL.Query().Get("equipment_id")),
			TemplateID:  shareddomain.ID(r.URL.Query().Get("template_id")),
			Status:      maintenanceDomain.RecordStatus(r.URL.Query().Get("status")),
		}

		if raw := r.URL.Query().Get("due_before"); raw != "" {
			dueBefore, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "invalid due_before timestamp", http.StatusBadRequest)
				return
			}
			filter.DueBefore = &dueBefore
		}

		records, total, err := c.service.ListRecords(r.Context(), filter, pagination)
		if err != nil {
			slog.Error("listing records", slog.String("error", err.Error()))
			http.Error(w, "failed to list maintenance records", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.RecordResponse, len(records))
		for i, record := range records {
			responses[i] = internal.ToRecordResponse(record)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *RecordController) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		record, err := c.service.GetRecord(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrRecordNotFound) {
				http.Error(w, recordNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting record", slog.String("error", err.Error()))
			http.Error(w, getRecordErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RecordCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createRecordErrMessage, http.StatusBadRequest)
			return
		}

		builder := maintenanceDomain.NewRecordBuilder().
			WithEquipmentID(shareddomain.ID(body.EquipmentID)).
			WithTemplateID(shareddomain.ID(body.TemplateID)).
			WithDueDate(body.DueDate).
			WithNotes(body.Notes)

		if body.PerformedByID != nil {
			personID := shareddomain.ID(*body.PerformedByID)
			builder = builder.WithPerformedByID(&personID)
		}

		record, err := builder.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateRecord(r.Context(), record)
		if err != nil {
			if errors.Is(err, usecases.ErrRecordDuplicate) {
				http.Error(w, recordDuplicateErrMessage, http.StatusConflict)
				return
			}
			slog.Error("creating record", slog.String("error", err.Error()))
			http.Error(w, createRecordErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) updateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.RecordUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateRecordErrMessage, http.StatusBadRequest)
			return
		}

		record, err := c.service.GetRecord(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrRecordNotFound) {
				http.Error(w, recordNotFoundErrMessage, http.StatusNotFound)
				return
			}
			http.Error(w, updateRecordErrMessage, http.StatusInternalServerError)
			return
		}

		if body.Status != nil {
			record.Status = maintenanceDomain.RecordStatus(*body.Status)
		}
		if body.Notes != nil {
			record.Notes = *body.Notes
		}

		err = c.service.UpdateRecord(r.Context(), record)
		if err != nil {
			slog.Error("updating record", slog.String("error", err.Error()))
			http.Error(w, updateRecordErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) deleteRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteRecord(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrRecordNotFound) {
				http.Error(w, recordNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting record", slog.String("error", err.Error()))
			http.Error(w, updateRecordErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *RecordController) startRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.StartRecord(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrRecordNotFound) {
				http.Error(w, recordNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("starting record", slog.String("error", err.Error()))
			http.Error(w, updateRecordErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *RecordController) completeRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.RecordCompleteRequest
		if r.ContentLength > 0 {
			if err := httpserver.DecodeJSONBody(r, &body); err != nil {
				http.Error(w, completeRecordErrMessage, http.StatusBadRequest)
				return
			}
		}

		performedAt := time.Now()
		if body.PerformedAt != nil {
			performedAt = *body.PerformedAt
		}

		var performedBy *shareddomain.ID
		if body.PerformedByID != nil {
			personID := shareddomain.ID(*body.PerformedByID)
			performedBy = &personID
		}

		err := c.service.CompleteRecord(r.Context(), shareddomain.ID(id), performedBy, performedAt)
		if err != nil {
			if errors.Is(err, usecases.ErrRecordNotFound) {
				http.Error(w, recordNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("completing record", slog.String("error", err.Error()))
			http.Error(w, completeRecordErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
