package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"geraetewart-server/internal/infra/httpserver"
	"geraetewart-server/internal/infra/utils"
	maintenanceDomain "geraetewart-server/internal/maintenance/domain"
	"geraetewart-server/internal/maintenance/httpapi/internal"
	"geraetewart-server/internal/maintenance/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

const (
	createTemplateErrMessage   = "failed to create maintenance template"
	getTemplateErrMessage      = "failed to get maintenance template"
	updateTemplateErrMessage   = "failed to update maintenance template"
	deleteTemplateErrMessage   = "failed to delete maintenance template"
	templateNotFoundErrMessage = "maintenance template not found"
)

func NewTemplateController(service usecases.TemplateService) *TemplateController {
	return &TemplateController{
		service: service,
	}
}

var _ httpserver.Controller = &TemplateController{}

type TemplateController struct {
	service usecases.TemplateService
}

func (c *TemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/maintenance/templates", c.listTemplates())
	router.Handle("GET /v1/maintenance/templates/{id}", c.getTemplate())
	router.Handle("POST /v1/maintenance/templates", c.createTemplate())
	router.Handle("PUT /v1/maintenance/templates/{id}", c.updateTemplate())
	router.Handle("DELETE /v1/maintenance/templates/{id}", c.deleteTemplate())
	router.Handle("POST /v1/maintenance/templates/{id}/activate", c.activateTemplate())
	router.Handle("POST /v1/maintenance/templates/{id}/deactivate", c.deactivateTemplate())
}

func (c *TemplateController) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		templates, total, err := c.service.ListTemplates(r.Context(), pagination)
		if err != nil {
			slog.Error("listing templates", slog.String("error", err.Error()))
			http.Error(w, "failed to list maintenance templates", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.TemplateResponse, len(templates))
		for i, template := range templates {
			responses[i] = internal.ToTemplateResponse(template)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *TemplateController) getTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		template, err := c.service.GetTemplate(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting template", slog.String("error", err.Error()))
			http.Error(w, getTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(template))
	}
}

func (c *TemplateController) createTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TemplateCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createTemplateErrMessage, http.StatusBadRequest)
			return
		}

		builder := maintenanceDomain.NewTemplateBuilder().
			WithName(body.Name).
			WithDescription(body.Description).
			WithIntervalMonths(body.IntervalMonths)

		if body.CategoryID != nil {
			builder = builder.WithCategoryID(shareddomain.ID(*body.CategoryID))
		}
		if body.ResponsiblePersonID != nil {
			builder = builder.WithResponsiblePersonID(shareddomain.ID(*body.ResponsiblePersonID))
		}

		template, err := builder.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateTemplate(r.Context(), template)
		if err != nil {
			slog.Error("creating template", slog.String("error", err.Error()))
			http.Error(w, createTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTemplateResponse(template))
	}
}

func (c *TemplateController) updateTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.TemplateUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateTemplateErrMessage, http.StatusBadRequest)
			return
		}

		template, err := c.service.GetTemplate(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
				return
			}
			http.Error(w, updateTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		if body.Name != nil {
			template.Name = shareddomain.Name(*body.Name)
		}
		if body.Description != nil {
			template.Description = shareddomain.Description(*body.Description)
		}
		if body.CategoryID != nil {
			categoryID := shareddomain.ID(*body.CategoryID)
			template.CategoryID = &categoryID
		}
		if body.IntervalMonths != nil {
			template.IntervalMonths = *body.IntervalMonths
		}
		if body.ResponsiblePersonID != nil {
			personID := shareddomain.ID(*body.ResponsiblePersonID)
			template.ResponsiblePersonID = &personID
		}
		template.UpdatedAt = utils.Time{Time: time.Now()}

		err = c.service.UpdateTemplate(r.Context(), template)
		if err != nil {
			if errors.Is(err, maintenanceDomain.ErrTemplateIntervalInvalid) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			slog.Error("updating template", slog.String("error", err.Error()))
			http.Error(w, updateTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(template))
	}
}

func (c *TemplateController) deleteTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteTemplate(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting template", slog.String("error", err.Error()))
			http.Error(w, deleteTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TemplateController) activateTemplate() http.HandlerFunc {
	return c.setActive(true)
}

func (c *TemplateController) deactivateTemplate() http.HandlerFunc {
	return c.setActive(false)
}

func (c *TemplateController) setActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var err error
		if active {
			err = c.service.ActivateTemplate(r.Context(), shareddomain.ID(id))
		} else {
			err = c.service.DeactivateTemplate(r.Context(), shareddomain.ID(id))
		}

		if err != nil {
			if errors.Is(err, usecases.ErrTemplateNotFound) {
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("toggling template", slog.String("error", err.Error()))
			http.Error(w, updateTemplateErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
