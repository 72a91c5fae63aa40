package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var (
	ErrUnknownStorage  = errors.New("unknown storage backend")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrRedisAddrNotSet = errors.New("redis host or port is empty")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"REVERSI_LOG_LEVEL" env-default:"info"`
	Storage  string  `yaml:"storage" env:"REVERSI_STORAGE" env-default:"memory"`
	Redis    Redis   `yaml:"redis"`
	Display  Display `yaml:"display"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REVERSI_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REVERSI_REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REVERSI_REDIS_GAME_TTL" env-default:"24h"`
}

type Display struct {
	BlackMark string `yaml:"black-mark" env:"REVERSI_BLACK_MARK" env-default:"b"`
	WhiteMark string `yaml:"white-mark" env:"REVERSI_WHITE_MARK" env-default:"w"`
	HideHints bool   `yaml:"hide-hints" env:"REVERSI_HIDE_HINTS"`
}

// Load - reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.Storage {
	case StorageMemory:
		return nil
	case StorageRedis:
		if that.Redis.Host == "" || that.Redis.Port == "" {
			return ErrRedisAddrNotSet
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
