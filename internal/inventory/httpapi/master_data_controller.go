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
	categoryNotFoundErrMessage = "category not found"
	locationNotFoundErrMessage = "location not found"
	personNotFoundErrMessage   = "person not found"
)

func NewMasterDataController(service usecases.MasterDataService) *MasterDataController {
	return &MasterDataController{
		service: service,
	}
}

var _ httpserver.Controller = &MasterDataController{}

type MasterDataController struct {
	service usecases.MasterDataService
}

func (c *MasterDataController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/categories", c.listCategories())
	router.Handle("POST /v1/categories", c.createCategory())
	router.Handle("PUT /v1/categories/{id}", c.updateCategory())
	router.Handle("DELETE /v1/categories/{id}", c.deleteCategory())

	router.Handle("GET /v1/locations", c.listLocations())
	router.Handle("POST /v1/locations", c.createLocation())
	router.Handle("PUT /v1/locations/{id}", c.updateLocation())
	router.Handle("DELETE /v1/locations/{id}", c.deleteLocation())

	router.Handle("GET /v1/persons", c.listPersons())
	router.Handle("GET /v1/persons/{id}", c.getPerson())
	router.Handle("POST /v1/persons", c.createPerson())
	router.Handle("PUT /v1/persons/{id}", c.updatePerson())
	router.Handle("DELETE /v1/persons/{id}", c.deletePerson())
}

func (c *MasterDataController) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := c.service.ListCategories(r.Context())
		if err != nil {
			slog.Error("listing categories", slog.String("error", err.Error()))
			http.Error(w, "failed to list categories", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.CategoryResponse, len(categories))
		for i, category := range categories {
			responses[i] = internal.ToCategoryResponse(category)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *MasterDataController) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CategoryCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to create category", http.StatusBadRequest)
			return
		}

		category, err := inventoryDomain.NewCategoryBuilder().
			WithName(body.Name).
			WithDescription(body.Description).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateCategory(r.Context(), category)
		if err != nil {
			slog.Error("creating category", slog.String("error", err.Error()))
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCategoryResponse(category))
	}
}

func (c *MasterDataController) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.CategoryUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to update category", http.StatusBadRequest)
			return
		}

		category, err := c.service.GetCategory(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCategoryNotFound) {
				http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
				return
			}
			http.Error(w, "failed to update category", http.StatusInternalServerError)
			return
		}

		if body.Name != nil {
			category.Name = shareddomain.Name(*body.Name)
		}
		if body.Description != nil {
			category.Description = shareddomain.Description(*body.Description)
		}
		category.UpdatedAt = utils.Time{Time: time.Now()}

		err = c.service.UpdateCategory(r.Context(), category)
		if err != nil {
			slog.Error("updating category", slog.String("error", err.Error()))
			http.Error(w, "failed to update category", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCategoryResponse(category))
	}
}

func (c *MasterDataController) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteCategory(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrCategoryNotFound) {
				http.Error(w, categoryNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting category", slog.String("error", err.Error()))
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *MasterDataController) listLocations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := c.service.ListLocations(r.Context())
		if err != nil {
			slog.Error("listing locations", slog.String("error", err.Error()))
			http.Error(w, "failed to list locations", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.LocationResponse, len(locations))
		for i, location := range locations {
			responses[i] = internal.ToLocationResponse(location)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *MasterDataController) createLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.LocationCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to create location", http.StatusBadRequest)
			return
		}

		location, err := inventoryDomain.NewLocationBuilder().
			WithName(body.Name).
			WithDescription(body.Description).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateLocation(r.Context(), location)
		if err != nil {
			slog.Error("creating location", slog.String("error", err.Error()))
			http.Error(w, "failed to create location", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToLocationResponse(location))
	}
}

func (c *MasterDataController) updateLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.LocationUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to update location", http.StatusBadRequest)
			return
		}

		location, err := c.service.GetLocation(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrLocationNotFound) {
				http.Error(w, locationNotFoundErrMessage, http.StatusNotFound)
				return
			}
			http.Error(w, "failed to update location", http.StatusInternalServerError)
			return
		}

		if body.Name != nil {
			location.Name = shareddomain.Name(*body.Name)
		}
		if body.Description != nil {
			location.Description = shareddomain.Description(*body.Description)
		}
		location.UpdatedAt = utils.Time{Time: time.Now()}

		err = c.service.UpdateLocation(r.Context(), location)
		if err != nil {
			slog.Error("updating location", slog.String("error", err.Error()))
			http.Error(w, "failed to update location", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToLocationResponse(location))
	}
}

func (c *MasterDataController) deleteLocation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteLocation(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrLocationNotFound) {
				http.Error(w, locationNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting location", slog.String("error", err.Error()))
			http.Error(w, "failed to delete location", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *MasterDataController) listPersons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		persons, err := c.service.ListPersons(r.Context())
		if err != nil {
			slog.Error("listing persons", slog.String("error", err.Error()))
			http.Error(w, "failed to list persons", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.PersonResponse, len(persons))
		for i, person := range persons {
			responses[i] = internal.ToPersonResponse(person)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *MasterDataController) getPerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		person, err := c.service.GetPerson(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrPersonNotFound) {
				http.Error(w, personNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting person", slog.String("error", err.Error()))
			http.Error(w, "failed to get person", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPersonResponse(person))
	}
}

func (c *MasterDataController) createPerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.PersonCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to create person", http.StatusBadRequest)
			return
		}

		person, err := inventoryDomain.NewPersonBuilder().
			WithName(body.Name).
			WithEmail(body.Email).
			WithPhone(body.Phone).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreatePerson(r.Context(), person)
		if err != nil {
			slog.Error("creating person", slog.String("error", err.Error()))
			http.Error(w, "failed to create person", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToPersonResponse(person))
	}
}

func (c *MasterDataController) updatePerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.PersonUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to update person", http.StatusBadRequest)
			return
		}

		person, err := c.service.GetPerson(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrPersonNotFound) {
				http.Error(w, personNotFoundErrMessage, http.StatusNotFound)
				return
			}
			http.Error(w, "failed to update person", http.StatusInternalServerError)
			return
		}

		if body.Name != nil {
			person.Name = shareddomain.Name(*body.Name)
		}
		if body.Email != nil {
			if err := utils.ValidateEmail(*body.Email); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			person.Email = shareddomain.Email(*body.Email)
		}
		if body.Phone != nil {
			person.Phone = *body.Phone
		}
		person.UpdatedAt = utils.Time{Time: time.Now()}

		err = c.service.UpdatePerson(r.Context(), person)
		if err != nil {
			slog.Error("updating person", slog.String("error", err.Error()))
			http.Error(w, "failed to update person", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPersonResponse(person))
	}
}

func (c *MasterDataController) deletePerson() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeletePerson(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrPersonNotFound) {
				http.Error(w, personNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting person", slog.String("error", err.Error()))
			http.Error(w, "failed to delete person", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
