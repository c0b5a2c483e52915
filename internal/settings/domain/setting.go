package domain

import (
	"errors"
	"time"

	"geraetewart-server/internal/infra/utils"
)

var ErrSettingKeyRequired = errors.New("setting key is required")

// Setting is one persisted configuration value. Keys are flat,
// dot-separated strings owned by the callers that read them.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt utils.Time
}

func NewSetting(key, value string) (Setting, error) {
	if key == "" {
		return Setting{}, ErrSettingKeyRequired
	}

	return Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: utils.Time{Time: time.Now()},
	}, nil
}
