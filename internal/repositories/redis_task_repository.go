package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/rueidis"

	model "task-tracker.com/task-tracker/internal/models"
)

// RedisTaskRepository keeps the whole task list as one JSON value.
type RedisTaskRepository struct {
	client rueidis.Client
	key    string
}

func NewRedisTaskRepository(client rueidis.Client, key string) *RedisTaskRepository {
	return &RedisTaskRepository{
		client: client,
		key:    key,
	}
}

func (r *RedisTaskRepository) Save(ctx context.Context, tasks []model.Task) error {
	payload, err := json.Marshal(withIDs(model.ToRecords(tasks)))
	if err != nil {
		return err
	}

	cmd := r.client.B().Set().Key(r.key).Value(rueidis.BinaryString(payload)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisTaskRepository) Load(ctx context.Context) ([]model.Task, error) {
	cmd := r.client.B().Get().Key(r.key).Build()
	payload, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []model.TaskRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}
	return model.FromRecords(sortByPosition(records))
}

func (r *RedisTaskRepository) Close() error {
	r.client.Close()
	return nil
}
