package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"geraetewart-server/internal/infra/httpserver"
	"geraetewart-server/internal/infra/utils"
	missionsDomain "geraetewart-server/internal/missions/domain"
	"geraetewart-server/internal/missions/httpapi/internal"
	"geraetewart-server/internal/missions/usecases"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

const (
	createMissionErrMessage   = "failed to create mission"
	getMissionErrMessage      = "failed to get mission"
	updateMissionErrMessage   = "failed to update mission"
	deleteMissionErrMessage   = "failed to delete mission"
	missionNotFoundErrMessage = "mission not found"
)

func NewMissionController(service usecases.MissionService) *MissionController {
	return &MissionController{
		service: service,
	}
}

var _ httpserver.Controller = &MissionController{}

type MissionController struct {
	service usecases.MissionService
}

func (c *MissionController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/missions", c.listMissions())
	router.Handle("GET /v1/missions/{id}", c.getMission())
	router.Handle("POST /v1/missions", c.createMission())
	router.Handle("PUT /v1/missions/{id}", c.updateMission())
	router.Handle("DELETE /v1/missions/{id}", c.deleteMission())
}

func (c *MissionController) listMissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		filter := usecases.MissionFilter{
			Kind: missionsDomain.MissionKind(r.URL.Query().Get("kind")),
		}

		if raw := r.URL.Query().Get("from"); raw != "" {
			from, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "invalid from date", http.StatusBadRequest)
				return
			}
			filter.From = &from
		}
		if raw := r.URL.Query().Get("to"); raw != "" {
			to, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "invalid to date", http.StatusBadRequest)
				return
			}
			filter.To = &to
		}

		missions, total, err := c.service.ListMissions(r.Context(), filter, pagination)
		if err != nil {
			slog.Error("listing missions", slog.String("error", err.Error()))
			http.Error(w, "failed to list missions", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.MissionResponse, len(missions))
		for i, mission := range missions {
			responses[i] = internal.ToMissionResponse(mission)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *MissionController) getMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		mission, err := c.service.GetMission(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrMissionNotFound) {
				http.Error(w, missionNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting mission", slog.String("error", err.Error()))
			http.Error(w, getMissionErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToMissionResponse(mission))
	}
}

func (c *MissionController) createMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.MissionCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createMissionErrMessage, http.StatusBadRequest)
			return
		}

		builder := missionsDomain.NewMissionBuilder().
			WithTitle(body.Title).
			WithDescription(body.Description).
			WithDate(body.Date)

		if body.Kind != "" {
			builder = builder.WithKind(missionsDomain.MissionKind(body.Kind))
		}
		if body.LocationID != nil {
			builder = builder.WithLocationID(shareddomain.ID(*body.LocationID))
		}
		builder = builder.WithParticipantIDs(toIDs(body.ParticipantIDs)...)
		builder = builder.WithEquipmentIDs(toIDs(body.EquipmentIDs)...)

		mission, err := builder.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateMission(r.Context(), mission)
		if err != nil {
			slog.Error("creating mission", slog.String("error", err.Error()))
			http.Error(w, createMissionErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToMissionResponse(mission))
	}
}

func (c *MissionController) updateMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.MissionUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateMissionErrMessage, http.StatusBadRequest)
			return
		}

		mission, err := c.service.GetMission(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrMissionNotFound) {
				http.Error(w, missionNotFoundErrMessage, http.StatusNotFound)
				return
			}
			http.Error(w, updateMissionErrMessage, http.StatusInternalServerError)
			return
		}

		if body.Kind != nil {
			kind := missionsDomain.MissionKind(*body.Kind)
			if !kind.IsValid() {
				http.Error(w, missionsDomain.ErrMissionKindInvalid.Error(), http.StatusBadRequest)
				return
			}
			mission.Kind = kind
		}
		if body.Title != nil {
			mission.Title = *body.Title
		}
		if body.Description != nil {
			mission.Description = *body.Description
		}
		if body.Date != nil {
			mission.Date = utils.Time{Time: *body.Date}
		}
		if body.LocationID != nil {
			locationID := shareddomain.ID(*body.LocationID)
			mission.LocationID = &locationID
		}
		if body.ParticipantIDs != nil {
			mission.ParticipantIDs = toIDs(*body.ParticipantIDs)
		}
		if body.EquipmentIDs != nil {
			mission.EquipmentIDs = toIDs(*body.EquipmentIDs)
		}
		mission.UpdatedAt = utils.Time{Time: time.Now()}

		err = c.service.UpdateMission(r.Context(), mission)
		if err != nil {
			slog.Error("updating mission", slog.String("error", err.Error()))
			http.Error(w, updateMissionErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToMissionResponse(mission))
	}
}

func (c *MissionController) deleteMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteMission(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrMissionNotFound) {
				http.Error(w, missionNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting mission", slog.String("error", err.Error()))
			http.Error(w, deleteMissionErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toIDs(values []string) []shareddomain.ID {
	result := make([]shareddomain.ID, len(values))
	for i, value := range values {
		result[i] = shareddomain.ID(value)
	}
	return result
}
