package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultHTTPPort          = "8080"
	defaultGinMode           = "release"
	defaultLogValue          = true
	defaultSeedValue         = true
	defaultMaxConn           = "10"
	defaultLogFile           = "/app/logs/catalog.log"
	defaultShutdownTimeoutMS = 3000
)

var ErrMissingDatabase = errors.New("POSTGRES_HOST and POSTGRES_DB must be set")

type (
	Config struct {
		HTTP struct {
			Port            string        `env:"HTTP_PORT"`
			GinMode         string        `env:"GIN_MODE"`
			ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT_MS"`
		}

		PG struct {
			URL          string
			MigrationURL string
			Host         string `env:"POSTGRES_HOST"`
			Port         string `env:"POSTGRES_PORT"`
			DB           string `env:"POSTGRES_DB"`
			User         string `env:"POSTGRES_USER"`
			Password     string `env:"POSTGRES_PASSWORD"`
			MaxConn      string `env:"POSTGRES_MAX_CONN"`
		}

		Seed struct {
			Enabled bool `env:"SEED_ENABLED"`
		}

		Log struct {
			File          string `env:"LOG_FILE"`
			LogController bool   `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor bool   `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase    bool   `env:"LOG_USECASE_ENABLED"`
			LogDBRepo     bool   `env:"LOG_DB_REPO_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
			JaegerURL   string `env:"JAEGER_URL"`
		}
	}
)

// NewConfig reads the environment. A .env file in the working directory,
// when present, fills in variables that are not already set.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	if cfg.PG.Host == "" || cfg.PG.DB == "" {
		return nil, ErrMissingDatabase
	}

	var err error
	v := viper.New()

	if cfg.HTTP.Port, err = parseEnvString(v, "http_port", "HTTP_PORT", defaultHTTPPort); err != nil {
		return nil, err
	}

	if cfg.HTTP.GinMode, err = parseEnvString(v, "gin_mode", "GIN_MODE", defaultGinMode); err != nil {
		return nil, err
	}

	var shutdownMS int
	if shutdownMS, err = parseEnvInt(v, "shutdown_timeout", "SHUTDOWN_TIMEOUT_MS", defaultShutdownTimeoutMS); err != nil {
		return nil, err
	}
	cfg.HTTP.ShutdownTimeout = time.Duration(shutdownMS) * time.Millisecond

	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	cfg.PG.MigrationURL = postgresURL(cfg, url.Values{"sslmode": {"disable"}})
	cfg.PG.URL = postgresURL(cfg, url.Values{"sslmode": {"disable"}, "pool_max_conns": {cfg.PG.MaxConn}})

	if cfg.Seed.Enabled, err = parseEnvBool(v, "seed", "SEED_ENABLED", defaultSeedValue); err != nil {
		return nil, err
	}

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE", defaultLogFile); err != nil {
		return nil, err
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	cfg.Observability.MetricsPort = os.Getenv("METRICS_PORT")
	cfg.Observability.JaegerURL = os.Getenv("JAEGER_URL")

	return cfg, nil
}

func postgresURL(cfg *Config, query url.Values) string {
	host := cfg.PG.Host
	if cfg.PG.Port != "" {
		host = net.JoinHostPort(cfg.PG.Host, cfg.PG.Port)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.PG.User, cfg.PG.Password),
		Host:     host,
		Path:     "/" + cfg.PG.DB,
		RawQuery: query.Encode(),
	}

	return u.String()
}

func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTP.Port)
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
