package config

import (
	"fmt"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Front ends.
const (
	UIConsole = "console"
	UIWeb     = "web"
)

// Score store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"` // "json" | "console"
	UI        string `env:"UI" env-default:"console"`

	HTTP    HTTP
	Scores  Scores
	Session Session
}

type HTTP struct {
	Host string `env:"HTTP_HOST" env-default:"127.0.0.1"`
	Port string `env:"PORT" env-default:"5175"`
}

type Scores struct {
	Backend    string `env:"SCORE_BACKEND" env-default:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"./data/guess.db"`
	RedisAddr  string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisKey   string `env:"REDIS_KEY" env-default:"guessnumber:best-score"`
}

type Session struct {
	Secret string        `env:"SESSION_SECRET" env-default:"dev_secret_change_me"`
	TTL    time.Duration `env:"SESSION_TTL" env-default:"24h"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	conf := &Config{}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (that *Config) validate() error {
	switch that.UI {
	case UIConsole, UIWeb:
	default:
		return fmt.Errorf("unknown UI %q", that.UI)
	}
	switch that.Scores.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown SCORE_BACKEND %q", that.Scores.Backend)
	}
	return nil
}

// Addr is the listen address of the web front end.
func (that *HTTP) Addr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
