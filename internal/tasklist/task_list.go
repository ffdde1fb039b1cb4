package tasklist

import (
	"fmt"
	"strings"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// TaskList holds tasks in insertion order. Indices are 0-based.
type TaskList struct {
	tasks []model.Task
}

func New(tasks ...model.Task) *TaskList {
	l := &TaskList{tasks: make([]model.Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

func (l *TaskList) Add(task model.Task) {
	l.tasks = append(l.tasks, task)
}

func (l *TaskList) Get(index int) (model.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.tasks[index], nil
}

func (l *TaskList) Delete(index int) (model.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}

	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

func (l *TaskList) Size() int {
	return len(l.tasks)
}

// Tasks returns a snapshot of the list; the slice is safe to keep.
func (l *TaskList) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// FindByKeyword returns tasks whose description contains keyword,
// case-sensitively, in list order.
func (l *TaskList) FindByKeyword(keyword string) []model.Task {
	var found []model.Task
	for _, task := range l.tasks {
		if strings.Contains(task.Description(), keyword) {
			found = append(found, task)
		}
	}
	return found
}

func (l *TaskList) checkIndex(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return fmt.Errorf("%w: %d (size %d)", apperrors.ErrIndexOutOfRange, index, len(l.tasks))
	}
	return nil
}
