package config

import (
	"path/filepath"
	"testing"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"TASKS_STORAGE_DRIVER", "DATABASE_DSN", "TASKS_FILE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_TASKS_KEY", "SAVE_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StorageDriver != constants.StorageSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.StorageDriver)
	}
	if cfg.DatabaseDSN != "data/tasks.db" {
		t.Errorf("unexpected DSN %q", cfg.DatabaseDSN)
	}
	if cfg.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("unexpected redis addr %q", cfg.RedisAddr)
	}
	if cfg.SaveTimeout() != 5*time.Second {
		t.Errorf("unexpected save timeout %v", cfg.SaveTimeout())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TASKS_STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_TASKS_KEY", "mine")
	t.Setenv("SAVE_TIMEOUT_SECONDS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StorageDriver != constants.StorageRedis || cfg.RedisAddr != "cache:6380" || cfg.RedisTasksKey != "mine" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.SaveTimeout() != 2*time.Second {
		t.Errorf("unexpected save timeout %v", cfg.SaveTimeout())
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []map[string]string{
		{"TASKS_STORAGE_DRIVER": "postgres"},
		{"SAVE_TIMEOUT_SECONDS": "soon"},
		{"SAVE_TIMEOUT_SECONDS": "-1"},
	}

	for _, env := range cases {
		t.Run("", func(t *testing.T) {
			t.Setenv("TASKS_STORAGE_DRIVER", "")
			t.Setenv("SAVE_TIMEOUT_SECONDS", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %v", env)
			}
		})
	}
}

func TestNewDatabaseClient(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "tasks.db")

	db, err := NewDatabaseClient(dsn)
	if err != nil {
		t.Fatalf("NewDatabaseClient failed: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if !db.Migrator().HasTable("tasks") {
		t.Error("expected tasks table to be migrated")
	}
}
