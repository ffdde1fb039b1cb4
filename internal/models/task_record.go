package model

import (
	"errors"
	"fmt"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// TaskRecord is the storage shape of a Task. The same struct is used as the
// sqlite row and as the JSON snapshot element.
type TaskRecord struct {
	ID          string             `gorm:"primaryKey;size:36" json:"id"`
	Position    int                `gorm:"not null;index" json:"position"`
	Kind        constants.TaskKind `gorm:"type:varchar(1);not null" json:"kind"`
	Description string             `gorm:"not null" json:"description"`
	Done        bool               `gorm:"not null" json:"done"`
	Due         *time.Time         `json:"due,omitempty"`
	From        *time.Time         `json:"from,omitempty"`
	To          *time.Time         `json:"to,omitempty"`
}

func (TaskRecord) TableName() string {
	return "tasks"
}

var ErrMalformedRecord = errors.New("malformed task record")

// ToRecord flattens a task; position is its 0-based place in the list.
func ToRecord(task Task, position int) TaskRecord {
	r := task.record()
	r.Position = position
	return r
}

func FromRecord(r TaskRecord) (Task, error) {
	var task Task

	switch r.Kind {
	case constants.KindToDo:
		task = NewToDo(r.Description)
	case constants.KindDeadline:
		if r.Due == nil {
			return nil, fmt.Errorf("%w: deadline %q has no due date", ErrMalformedRecord, r.Description)
		}
		task = NewDeadline(r.Description, *r.Due)
	case constants.KindEvent:
		if r.From == nil || r.To == nil {
			return nil, fmt.Errorf("%w: event %q has no duration", ErrMalformedRecord, r.Description)
		}
		task = NewEvent(r.Description, *r.From, *r.To)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformedRecord, r.Kind)
	}

	if r.Done {
		task.Mark()
	}
	return task, nil
}

// FromRecords rebuilds tasks in slice order.
func FromRecords(records []TaskRecord) ([]Task, error) {
	tasks := make([]Task, 0, len(records))
	for _, r := range records {
		task, err := FromRecord(r)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func ToRecords(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, 0, len(tasks))
	for i, task := range tasks {
		records = append(records, ToRecord(task, i))
	}
	return records
}
