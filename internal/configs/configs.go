package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type Config struct {
	StorageDriver      constants.StorageDriver
	DatabaseDSN        string
	TasksFile          string
	RedisAddr          string
	RedisTasksKey      string
	SaveTimeoutSeconds int
}

func Load() (Config, error) {
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	saveTimeout, err := getEnvAsInt("SAVE_TIMEOUT_SECONDS", 5)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		StorageDriver:      constants.StorageDriver(getEnv("TASKS_STORAGE_DRIVER", string(constants.StorageSQLite))),
		DatabaseDSN:        getEnv("DATABASE_DSN", "data/tasks.db"),
		TasksFile:          getEnv("TASKS_FILE", "data/tasks.json"),
		RedisAddr:          fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisTasksKey:      getEnv("REDIS_TASKS_KEY", "tasks_snapshot"),
		SaveTimeoutSeconds: saveTimeout,
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) SaveTimeout() time.Duration {
	return time.Duration(c.SaveTimeoutSeconds) * time.Second
}

func validate(cfg Config) error {
	switch cfg.StorageDriver {
	case constants.StorageSQLite:
		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN must not be empty")
		}
	case constants.StorageFile:
		if cfg.TasksFile == "" {
			return errors.New("TASKS_FILE must not be empty")
		}
	case constants.StorageRedis:
		if cfg.RedisTasksKey == "" {
			return errors.New("REDIS_TASKS_KEY must not be empty")
		}
	default:
		return fmt.Errorf("TASKS_STORAGE_DRIVER must be one of sqlite, file, redis (got %q)", cfg.StorageDriver)
	}

	if cfg.SaveTimeoutSeconds <= 0 {
		return errors.New("SAVE_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
