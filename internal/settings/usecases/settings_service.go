package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"geraetewart-server/internal/infra/cache"
	settingsDomain "geraetewart-server/internal/settings/domain"
	shareddomain "geraetewart-server/internal/shared_kernel/domain"
)

// Well-known setting keys. Callers read these through the typed
// accessors on SettingsProvider rather than spelling the keys inline.
const (
	KeyReportSender     = "report.sender"
	KeyReportRecipients = "report.recipients"

	notifyKeyPrefix = "notify."
)

const settingCacheTTL = 5 * time.Minute

// NotificationPreferences is the per-person due-soon email setting.
type NotificationPreferences struct {
	DueSoonEnabled bool
	DaysBefore     int
}

func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		DueSoonEnabled: true,
		DaysBefore:     14,
	}
}

// SettingsProvider is the read side handed to other contexts. Consumers
// depend on this interface, never on the store or the cache directly.
type SettingsProvider interface {
	GetString(ctx context.Context, key, fallback string) string
	GetStringSlice(ctx context.Context, key string) []string
	GetBool(ctx context.Context, key string, fallback bool) bool
	GetInt(ctx context.Context, key string, fallback int) int

	ReportSender(ctx context.Context) string
	ReportRecipients(ctx context.Context) []string
	PreferencesFor(ctx context.Context, personID shareddomain.ID) NotificationPreferences
}

// SettingsService is the write side used by the admin controller.
type SettingsService interface {
	SetSetting(ctx context.Context, key, value string) (settingsDomain.Setting, error)
	GetSetting(ctx context.Context, key string) (settingsDomain.Setting, error)
	ListSettings(ctx context.Context) ([]settingsDomain.Setting, error)
	DeleteSetting(ctx context.Context, key string) error
}

func NewSettingsService(repository SettingRepository, cache cache.Cache) *SimpleSettingsService {
	return &SimpleSettingsService{
		repository: repository,
		cache:      cache,
	}
}

var (
	_ SettingsProvider = (*SimpleSettingsService)(nil)
	_ SettingsService  = (*SimpleSettingsService)(nil)
)

type SimpleSettingsService struct {
	repository SettingRepository
	cache      cache.Cache
}

func (s *SimpleSettingsService) SetSetting(ctx context.Context, key, value string) (settingsDomain.Setting, error) {
	setting, err := settingsDomain.NewSetting(key, value)
	if err != nil {
		return settingsDomain.Setting{}, err
	}

	err = s.repository.Upsert(ctx, setting)
	if err != nil {
		slog.Error("storing setting", slog.String("key", key), slog.String("error", err.Error()))
		return settingsDomain.Setting{}, fmt.Errorf("storing setting: %w", err)
	}

	s.invalidate(ctx, key)

	slog.Info("setting updated", slog.String("key", key))

	return setting, nil
}

func (s *SimpleSettingsService) GetSetting(ctx context.Context, key string) (settingsDomain.Setting, error) {
	setting, err := s.repository.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return settingsDomain.Setting{}, ErrSettingNotFound
		}
		slog.Error("getting setting", slog.String("key", key), slog.String("error", err.Error()))
		return settingsDomain.Setting{}, fmt.Errorf("getting setting: %w", err)
	}

	return setting, nil
}

func (s *SimpleSettingsService) ListSettings(ctx context.Context) ([]settingsDomain.Setting, error) {
	settings, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing settings: %w", err)
	}

	return settings, nil
}

func (s *SimpleSettingsService) DeleteSetting(ctx context.Context, key string) error {
	err := s.repository.Delete(ctx, key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return ErrSettingNotFound
		}
		slog.Error("deleting setting", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("deleting setting: %w", err)
	}

	s.invalidate(ctx, key)

	return nil
}

func (s *SimpleSettingsService) GetString(ctx context.Context, key, fallback string) string {
	value, err := s.load(ctx, key)
	if err != nil {
		return fallback
	}
	return value
}

func (s *SimpleSettingsService) GetStringSlice(ctx context.Context, key string) []string {
	raw := s.GetString(ctx, key, "")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (s *SimpleSettingsService) GetBool(ctx context.Context, key string, fallback bool) bool {
	raw, err := s.load(ctx, key)
	if err != nil {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("setting is not a boolean", slog.String("key", key), slog.String("value", raw))
		return fallback
	}
	return value
}

func (s *SimpleSettingsService) GetInt(ctx context.Context, key string, fallback int) int {
	raw, err := s.load(ctx, key)
	if err != nil {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("setting is not an integer", slog.String("key", key), slog.String("value", raw))
		return fallback
	}
	return value
}

func (s *SimpleSettingsService) ReportSender(ctx context.Context) string {
	return s.GetString(ctx, KeyReportSender, "")
}

func (s *SimpleSettingsService) ReportRecipients(ctx context.Context) []string {
	return s.GetStringSlice(ctx, KeyReportRecipients)
}

func (s *SimpleSettingsService) PreferencesFor(ctx context.Context, personID shareddomain.ID) NotificationPreferences {
	defaults := DefaultNotificationPreferences()
	prefix := notifyKeyPrefix + personID.String()

	return NotificationPreferences{
		DueSoonEnabled: s.GetBool(ctx, prefix+".due_soon_enabled", defaults.DueSoonEnabled),
		DaysBefore:     s.GetInt(ctx, prefix+".days_before", defaults.DaysBefore),
	}
}

func (s *SimpleSettingsService) load(ctx context.Context, key string) (string, error) {
	if s.cache == nil {
		setting, err := s.repository.GetByKey(ctx, key)
		if err != nil {
			return "", err
		}
		return setting.Value, nil
	}

	value, err := s.cache.GetOrSet(ctx, cacheKey(key), settingCacheTTL, func() (any, error) {
		setting, err := s.repository.GetByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		return setting.Value, nil
	})
	if err != nil {
		return "", err
	}

	raw, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected cached value type for key %q", key)
	}
	return raw, nil
}

func (s *SimpleSettingsService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, cacheKey(key))
}

func cacheKey(key string) string {
	return "settings:" + key
}
