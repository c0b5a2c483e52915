package internal

import (
	"geraetewart-server/internal/infra/utils"
	settingsDomain "geraetewart-server/internal/settings/domain"
)

type Setting struct {
	Key       string     `json:"key" gorm:"primaryKey"`
	Value     string     `json:"value"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

func (m Setting) ToDomain() settingsDomain.Setting {
	return settingsDomain.Setting{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromSetting(value settingsDomain.Setting) Setting {
	return Setting{
		Key:       value.Key,
		Value:     value.Value,
		UpdatedAt: value.UpdatedAt,
	}
}
