package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/models"
	"github.com/alipala/mytacoai-mobile/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Env     string          `mapstructure:"env" validate:"oneof=development production staging"`
	API     APIConfig       `mapstructure:"api" validate:"required"`
	Hearts  HeartsConfig    `mapstructure:"hearts" validate:"required"`
	Supply  SupplyConfig    `mapstructure:"supply" validate:"required"`
	XP      models.XPConfig `mapstructure:"xp" validate:"required"`
	Session SessionConfig   `mapstructure:"session" validate:"required"`
	Storage StorageConfig   `mapstructure:"storage" validate:"required"`
	Bot     BotConfig       `mapstructure:"bot"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HeartsConfig struct {
	RequestTimeout   time.Duration `mapstructure:"request_timeout" validate:"min=1"`
	UndoTimeout      time.Duration `mapstructure:"undo_timeout" validate:"min=1"`
	AnalyticsTimeout time.Duration `mapstructure:"analytics_timeout" validate:"min=1"`
}

type SupplyConfig struct {
	Personalization bool          `mapstructure:"personalization"`
	DailyTimeout    time.Duration `mapstructure:"daily_timeout" validate:"min=1"`
	ByTypeTimeout   time.Duration `mapstructure:"by_type_timeout" validate:"min=1"`
	MaxRetries      int           `mapstructure:"max_retries" validate:"min=0,max=10"`
	RetryBaseDelay  time.Duration `mapstructure:"retry_base_delay" validate:"min=0"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" validate:"min=1"`
	BatchSize       int           `mapstructure:"batch_size" validate:"min=1,max=100"`
}

type SessionConfig struct {
	UndoWindow      time.Duration `mapstructure:"undo_window" validate:"min=1"`
	FinalizeTimeout time.Duration `mapstructure:"finalize_timeout" validate:"min=1"`
}

type StorageConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN        string `mapstructure:"dsn" validate:"required"`
	SessionKey string `mapstructure:"session_key" validate:"required"`
}

type BotConfig struct {
	Token         string `mapstructure:"token"`
	Language      string `mapstructure:"language" validate:"required"`
	Level         string `mapstructure:"level" validate:"required"`
	ChallengeType string `mapstructure:"challenge_type" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("api.timeout", 15*time.Second)

	v.SetDefault("hearts.request_timeout", 15*time.Second)
	v.SetDefault("hearts.undo_timeout", 3*time.Second)
	v.SetDefault("hearts.analytics_timeout", 5*time.Second)

	v.SetDefault("supply.personalization", true)
	v.SetDefault("supply.daily_timeout", 30*time.Second)
	v.SetDefault("supply.by_type_timeout", 15*time.Second)
	v.SetDefault("supply.max_retries", 2)
	v.SetDefault("supply.retry_base_delay", time.Second)
	v.SetDefault("supply.cache_ttl", 24*time.Hour)
	v.SetDefault("supply.batch_size", 10)

	v.SetDefault("xp.base_correct_xp", 10)
	v.SetDefault("xp.speed_bonus_xp", 5)
	v.SetDefault("xp.speed_bonus_threshold", 5)
	v.SetDefault("xp.max_combo_multiplier", 10)

	v.SetDefault("session.undo_window", 5*time.Second)
	v.SetDefault("session.finalize_timeout", 10*time.Second)

	v.SetDefault("storage.driver", "sqlite3")
	v.SetDefault("storage.dsn", "file:challenge_engine.db?_foreign_keys=on")
	v.SetDefault("storage.session_key", "active_challenge_session")

	v.SetDefault("bot.language", "es")
	v.SetDefault("bot.level", "beginner")
	v.SetDefault("bot.challenge_type", "daily")
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("api.base_url", "API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind API_BASE_URL: %w", err)
	}
	if err := v.BindEnv("api.token", "API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind API_TOKEN: %w", err)
	}
	if err := v.BindEnv("bot.token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("storage.driver", "DB_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_DRIVER: %w", err)
	}
	if err := v.BindEnv("storage.dsn", "DB_DSN"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_DSN: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
