package usecases

import (
	"context"
	"errors"

	settingsDomain "geraetewart-server/internal/settings/domain"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingRepository interface {
	Upsert(ctx context.Context, setting settingsDomain.Setting) error
	GetByKey(ctx context.Context, key string) (settingsDomain.Setting, error)
	FindAll(ctx context.Context) ([]settingsDomain.Setting, error)
	Delete(ctx context.Context, key string) error
}
