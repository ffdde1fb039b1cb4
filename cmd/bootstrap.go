package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/joho/godotenv"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/constants"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

type closableStore interface {
	services.TaskStore
	Close() error
}

type application struct {
	cfg   config.Config
	store closableStore
}

func (a *application) close() {
	if err := a.store.Close(); err != nil {
		log.Printf("close storage: %v", err)
	}
}

func bootstrap() (*application, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	return &application{cfg: cfg, store: store}, nil
}

func openStore(cfg config.Config) (closableStore, error) {
	switch cfg.StorageDriver {
	case constants.StorageFile:
		return repository.NewFileTaskRepository(cfg.TasksFile), nil
	case constants.StorageRedis:
		client, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisTaskRepository(client, cfg.RedisTasksKey), nil
	default:
		db, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return repository.NewTaskRepository(db), nil
	}
}
