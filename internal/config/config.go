package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"       validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"       validate:"required"`
	Gin         GinConfig         `yaml:"gin"          validate:"required"`
	RemoteStore RemoteStoreConfig `yaml:"remote_store"`
	Refresher   RefresherConfig   `yaml:"refresher"    validate:"required"`
	Telegram    TelegramConfig    `yaml:"telegram"`
	Omise       OmiseConfig       `yaml:"omise"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto wbf's logger levels.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// RemoteStoreConfig carries the two values the gateway needs. Neither is
// validated as required on purpose: a missing value must not crash startup,
// the gateway reports it on first use instead.
type RemoteStoreConfig struct {
	URL     string `yaml:"url"      env:"REMOTE_STORE_URL"      env-default:""`
	AnonKey string `yaml:"anon_key" env:"REMOTE_STORE_ANON_KEY" env-default:""`
}

type RefresherConfig struct {
	Interval time.Duration `yaml:"interval" env:"REFRESHER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type OmiseConfig struct {
	PublicKey string `yaml:"public_key" env:"OMISE_PUBLIC_KEY" env-default:""`
	SecretKey string `yaml:"secret_key" env:"OMISE_SECRET_KEY" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
