package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("geraetewart_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")

		viper.SetDefault("general.log_level", "info")
		viper.SetDefault("http.addr", ":3000")
		viper.SetDefault("scheduler.enabled", true)
		viper.SetDefault("scheduler.cron", "0 3 * * *")
		viper.SetDefault("scheduler.tick_interval", "1m")

		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			HTTP: HTTPConfig{
				Addr:           viper.GetString("http.addr"),
				AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Redis: RedisConfig{
				Enabled:  viper.GetBool("redis.enabled"),
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Mail: MailConfig{
				APIKey:    viper.GetString("mail.api_key"),
				FromEmail: viper.GetString("mail.from_email"),
				FromName:  viper.GetString("mail.from_name"),
			},
			Scheduler: SchedulerConfig{
				Enabled:      viper.GetBool("scheduler.enabled"),
				Cron:         viper.GetString("scheduler.cron"),
				TickInterval: viper.GetDuration("scheduler.tick_interval"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Postgresql PostgresqlConfig
	Redis      RedisConfig
	Mail       MailConfig
	Scheduler  SchedulerConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type MailConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type SchedulerConfig struct {
	Enabled      bool
	Cron         string
	TickInterval time.Duration
}
