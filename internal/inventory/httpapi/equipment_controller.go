package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"geraetewart-server/internal/infra/httpserver"
	"geraetewart-server/internal/infra/utils"
	inventoryDomain "geraetewart-server/internal/inventory/domain"
	"geraetewart-server/internal/inventory/httpapi/internal"
	"geraetewart-server/internal/inventory/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

const (
	createEquipmentErrMessage   = "failed to create equipment"
	getEquipmentErrMessage      = "failed to get equipment"
	updateEquipmentErrMessage   = "failed to update equipment"
	deleteEquipmentErrMessage   = "failed to delete equipment"
	checkEquipmentErrMessage    = "failed to mark equipment checked"
	equipmentNotFoundErrMessage = "equipment not found"
)

func NewEquipmentController(service usecases.EquipmentService) *EquipmentController {
	return &EquipmentController{
		service: service,
	}
}

var _ httpserver.Controller = &EquipmentController{}

type EquipmentController struct {
	service usecases.EquipmentService
}

func (c *EquipmentController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/equipment", c.listEquipment())
	router.Handle("GET /v1/equipment/{id}", c.getEquipment())
	router.Handle("POST /v1/equipment", c.createEquipment())
	router.Handle("PUT /v1/equipment/{id}", c.updateEquipment())
	router.Handle("DELETE /v1/equipment/{id}", c.deleteEquipment())
	router.Handle("POST /v1/equipment/{id}/check", c.markChecked())
}

func (c *EquipmentController) listEquipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		filter := usecases.EquipmentFilter{
			CategoryID: shareddomain.ID(r.URL.Query().Get("category_id")),
			LocationID: shareddomain.ID(r.URL.Query().Get("location_id")),
			Status:     inventoryDomain.EquipmentStatus(r.URL.Query().Get("status")),
		}

		equipment, total, err := c.service.ListEquipment(r.Context(), filter, pagination)
		if err != nil {
			slog.Error("listing equipment", slog.String("error", err.Error()))
			http.Error(w, "failed to list equipment", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.EquipmentResponse, len(equipment))
		for i, item := range equipment {
			responses[i] = internal.ToEquipmentResponse(item)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *EquipmentController) getEquipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		equipment, err := c.service.GetEquipment(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrEquipmentNotFound) {
				http.Error(w, equipmentNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting equipment", slog.String("error", err.Error()))
			http.Error(w, getEquipmentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToEquipmentResponse(equipment)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *EquipmentController) createEquipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.EquipmentCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createEquipmentErrMessage, http.StatusBadRequest)
			return
		}

		builder := inventoryDomain.NewEquipmentBuilder().
			WithName(body.Name).
			WithInventoryNumber(body.InventoryNumber).
			WithNotes(body.Notes)

		if body.CategoryID != nil {
			builder = builder.WithCategoryID(shareddomain.ID(*body.CategoryID))
		}
		if body.LocationID != nil {
			builder = builder.WithLocationID(shareddomain.ID(*body.LocationID))
		}
		if body.Status != nil {
			builder = builder.WithStatus(inventoryDomain.EquipmentStatus(*body.Status))
		}
		if body.PurchaseDate != nil {
			builder = builder.WithPurchaseDate(*body.PurchaseDate)
		}
		if body.LastCheckDate != nil {
			builder = builder.WithLastCheckDate(*body.LastCheckDate)
		}

		equipment, err := builder.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateEquipment(r.Context(), equipment)
		if err != nil {
			slog.Error("creating equipment", slog.String("error", err.Error()))
			http.Error(w, createEquipmentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToEquipmentResponse(equipment)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *EquipmentController) updateEquipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.EquipmentUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateEquipmentErrMessage, http.StatusBadRequest)
			return
		}

		equipment, err := c.service.GetEquipment(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrEquipmentNotFound) {
				http.Error(w, equipmentNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting equipment for update", slog.String("error", err.Error()))
			http.Error(w, updateEquipmentErrMessage, http.StatusInternalServerError)
			return
		}

		if body.Name != nil {
			equipment.Name = shareddomain.Name(*body.Name)
		}
		if body.InventoryNumber != nil {
			equipment.InventoryNumber = *body.InventoryNumber
		}
		if body.CategoryID != nil {
			categoryID := shareddomain.ID(*body.CategoryID)
			equipment.CategoryID = &categoryID
		}
		if body.LocationID != nil {
			locationID := shareddomain.ID(*body.LocationID)
			equipment.LocationID = &locationID
		}
		if body.Status != nil {
			equipment.Status = inventoryDomain.EquipmentStatus(*body.Status)
		}
		if body.PurchaseDate != nil {
			purchased := utils.Time{Time: *body.PurchaseDate}
			equipment.PurchaseDate = &purchased
		}
		if body.Notes != nil {
			equipment.Notes = *body.Notes
		}
		equipment.UpdatedAt = utils.Time{Time: time.Now()}

		err = c.service.UpdateEquipment(r.Context(), equipment)
		if err != nil {
			slog.Error("updating equipment", slog.String("error", err.Error()))
			http.Error(w, updateEquipmentErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToEquipmentResponse(equipment)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *EquipmentController) deleteEquipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteEquipment(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrEquipmentNotFound) {
				http.Error(w, equipmentNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting equipment", slog.String("error", err.Error()))
			http.Error(w, deleteEquipmentErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *EquipmentController) markChecked() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		// The body is optional; without one the check is stamped now.
		var body internal.EquipmentCheckRequest
		if r.ContentLength > 0 {
			if err := httpserver.DecodeJSONBody(r, &body); err != nil {
				http.Error(w, checkEquipmentErrMessage, http.StatusBadRequest)
				return
			}
		}

		checkedAt := time.Now()
		if body.CheckedAt != nil {
			checkedAt = *body.CheckedAt
		}

		err := c.service.MarkEquipmentChecked(r.Context(), shareddomain.ID(id), checkedAt)
		if err != nil {
			if errors.Is(err, usecases.ErrEquipmentNotFound) {
				http.Error(w, equipmentNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("marking equipment checked", slog.String("error", err.Error()))
			http.Error(w, checkEquipmentErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
