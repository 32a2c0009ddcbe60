package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Environment names. The service address set is selected by Env once at
// startup and never re-evaluated per request.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port       string        `env:"PORT,        default=8085"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Redis    RedisConfig
	Services ServicesConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ServicesConfig holds explicit per-service base URL overrides. An empty
// value means "use the address set selected by Env".
type ServicesConfig struct {
	UserURL         string `env:"USER_SERVICE_URL"`
	ProductURL      string `env:"PRODUCT_SERVICE_URL"`
	OrderURL        string `env:"ORDER_SERVICE_URL"`
	NotificationURL string `env:"NOTIFICATION_SERVICE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
