package internal

import (
	"time"

	settingsDomain "geraetewart-server/internal/settings/domain"
)

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingUpdateRequest struct {
	Value string `json:"value"`
}

func ToSettingResponse(setting settingsDomain.Setting) SettingResponse {
	return SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt.Time,
	}
}
