package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"geraetewart-server/internal/infra/httpserver"
	settingsDomain "geraetewart-server/internal/settings/domain"
	"geraetewart-server/internal/settings/httpapi/internal"
	"geraetewart-server/internal/settings/usecases"
)

const (
	settingNotFoundErrMessage = "setting not found"
)

func NewSettingsController(service usecases.SettingsService) *SettingsController {
	return &SettingsController{
		service: service,
	}
}

var _ httpserver.Controller = &SettingsController{}

type SettingsController struct {
	service usecases.SettingsService
}

func (c *SettingsController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/settings", c.listSettings())
	router.Handle("GET /v1/settings/{key}", c.getSetting())
	router.Handle("PUT /v1/settings/{key}", c.putSetting())
	router.Handle("DELETE /v1/settings/{key}", c.deleteSetting())
}

func (c *SettingsController) listSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := c.service.ListSettings(r.Context())
		if err != nil {
			slog.Error("listing settings", slog.String("error", err.Error()))
			http.Error(w, "failed to list settings", http.StatusInternalServerError)
			return
		}

		responses := make([]internal.SettingResponse, len(settings))
		for i, setting := range settings {
			responses[i] = internal.ToSettingResponse(setting)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *SettingsController) getSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")

		setting, err := c.service.GetSetting(r.Context(), key)
		if err != nil {
			if errors.Is(err, usecases.ErrSettingNotFound) {
				http.Error(w, settingNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting setting", slog.String("error", err.Error()))
			http.Error(w, "failed to get setting", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSettingResponse(setting))
	}
}

func (c *SettingsController) putSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")

		var body internal.SettingUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, "failed to update setting", http.StatusBadRequest)
			return
		}

		setting, err := c.service.SetSetting(r.Context(), key, body.Value)
		if err != nil {
			if errors.Is(err, settingsDomain.ErrSettingKeyRequired) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			slog.Error("updating setting", slog.String("error", err.Error()))
			http.Error(w, "failed to update setting", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSettingResponse(setting))
	}
}

func (c *SettingsController) deleteSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")

		err := c.service.DeleteSetting(r.Context(), key)
		if err != nil {
			if errors.Is(err, usecases.ErrSettingNotFound) {
				http.Error(w, settingNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting setting", slog.String("error", err.Error()))
			http.Error(w, "failed to delete setting", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
