package wire

import (
	"fmt"

	"geraetewart-server/cmd/config"
	"geraetewart-server/internal/infra/cache"
	"geraetewart-server/internal/infra/notification"
	"geraetewart-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideORM(cfg config.AppConfig) (sql.ORM, error) {
	orm, err := sql.NewPosgreORM(cfg.Postgresql.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	return orm, nil
}

func provideDatabase(cfg config.AppConfig) (sql.Database, error) {
	database := sql.NewPosgreDatabase(cfg.Postgresql.URL)
	if err := database.Open(); err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}

	return database, nil
}

func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redisCache, nil
	}

	localCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating local cache: %w", err)
	}
	return localCache, nil
}

func provideNotificationClient(cfg config.AppConfig) notification.NotificationClient {
	return notification.NewMailerSendClient(notification.MailerSendConfig{
		APIKey:    cfg.Mail.APIKey,
		FromEmail: cfg.Mail.FromEmail,
		FromName:  cfg.Mail.FromName,
	})
}
