package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration for the HTTP front-end.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"quizdesk"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Redis   Redis
	Upload  Upload
	Runtime Runtime
}

// Redis holds the ephemeral session-store configuration. When Addr is empty
// the server falls back to the in-memory store.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"20"`
	StateTTL time.Duration `env:"SESSION_STATE_TTL" envDefault:"2h"`
}

// Upload bounds question-set uploads.
type Upload struct {
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"1048576"`
}

// Runtime groups testing-flow defaults.
type Runtime struct {
	QuickTestQuestions int    `env:"QUICK_TEST_QUESTIONS" envDefault:"5"`
	ResultsDir         string `env:"RESULTS_DIR" envDefault:"."`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
