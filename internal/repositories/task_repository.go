package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

// TaskRepository stores the task list in a sql table, one row per task.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save replaces every stored row with tasks inside a single transaction.
func (r *TaskRepository) Save(ctx context.Context, tasks []model.Task) error {
	records := withIDs(model.ToRecords(tasks))

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TaskRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

func (r *TaskRepository) Load(ctx context.Context) ([]model.Task, error) {
	var records []model.TaskRecord
	err := r.db.WithContext(ctx).Order("position asc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return model.FromRecords(records)
}

func (r *TaskRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withIDs(records []model.TaskRecord) []model.TaskRecord {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	return records
}
