package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Wheel struct {
		// Время "прокрутки" перед показом победителя
		RevealDelay time.Duration `env:"WHEEL_REVEAL_DELAY" envDefault:"4s"`
		ExtraTurns  int           `env:"WHEEL_EXTRA_TURNS" envDefault:"5"`
		SpinLogSize int           `env:"WHEEL_SPIN_LOG_SIZE" envDefault:"100"`
		CacheTTL    time.Duration `env:"WHEEL_CACHE_TTL" envDefault:"30s"`
	}

	// Настройки клиента для wheelctl
	Client struct {
		BaseURL string        `env:"WHEELSPIN_API_URL" envDefault:"http://localhost:8080/api/v1"`
		Timeout time.Duration `env:"WHEELSPIN_API_TIMEOUT" envDefault:"10s"`
	}
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env может отсутствовать, в production переменные задаются напрямую
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Wheel.ExtraTurns < 1 {
		return nil, fmt.Errorf("invalid WHEEL_EXTRA_TURNS: %d", cfg.Wheel.ExtraTurns)
	}
	if cfg.Wheel.SpinLogSize < 1 {
		return nil, fmt.Errorf("invalid WHEEL_SPIN_LOG_SIZE: %d", cfg.Wheel.SpinLogSize)
	}
	if cfg.Wheel.RevealDelay < 0 {
		return nil, fmt.Errorf("invalid WHEEL_REVEAL_DELAY: %s", cfg.Wheel.RevealDelay)
	}

	return cfg, nil
}

// RedisAddr returns host:port of the configured Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
