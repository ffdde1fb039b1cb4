package model

import (
	"fmt"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// Task is one tracked item. The set of variants is closed: ToDo, Deadline
// and Event are the only implementations.
type Task interface {
	Kind() constants.TaskKind
	Description() string
	IsDone() bool
	Mark()
	Unmark()
	// Date reports the day a task falls on. Deadlines fall on their due
	// date, events on their start date, to-dos on none.
	Date() (time.Time, bool)
	String() string

	record() TaskRecord
}

type base struct {
	description string
	done        bool
}

func (b *base) Description() string { return b.description }
func (b *base) IsDone() bool        { return b.done }
func (b *base) Mark()               { b.done = true }
func (b *base) Unmark()             { b.done = false }

func (b *base) marker() string {
	if b.done {
		return "[X]"
	}
	return "[ ]"
}

type ToDo struct {
	base
}

func NewToDo(description string) *ToDo {
	return &ToDo{base: base{description: description}}
}

func (t *ToDo) Kind() constants.TaskKind { return constants.KindToDo }

func (t *ToDo) Date() (time.Time, bool) { return time.Time{}, false }

func (t *ToDo) String() string {
	return fmt.Sprintf("%s | %s %s", t.Kind(), t.marker(), t.description)
}

func (t *ToDo) record() TaskRecord {
	return TaskRecord{Kind: t.Kind(), Description: t.description, Done: t.done}
}

type Deadline struct {
	base
	due time.Time
}

func NewDeadline(description string, due time.Time) *Deadline {
	return &Deadline{base: base{description: description}, due: due}
}

func (d *Deadline) Kind() constants.TaskKind { return constants.KindDeadline }

func (d *Deadline) Due() time.Time { return d.due }

func (d *Deadline) Date() (time.Time, bool) { return d.due, true }

func (d *Deadline) String() string {
	return fmt.Sprintf("%s | %s %s | by: %s",
		d.Kind(), d.marker(), d.description, d.due.Format(constants.DisplayLayout))
}

func (d *Deadline) record() TaskRecord {
	due := d.due
	return TaskRecord{Kind: d.Kind(), Description: d.description, Done: d.done, Due: &due}
}

// Event spans from..to. The order of the two is not checked.
type Event struct {
	base
	from time.Time
	to   time.Time
}

func NewEvent(description string, from, to time.Time) *Event {
	return &Event{base: base{description: description}, from: from, to: to}
}

func (e *Event) Kind() constants.TaskKind { return constants.KindEvent }

func (e *Event) From() time.Time { return e.from }
func (e *Event) To() time.Time   { return e.to }

func (e *Event) Date() (time.Time, bool) { return e.from, true }

func (e *Event) String() string {
	return fmt.Sprintf("%s | %s %s | from: %s | to: %s",
		e.Kind(), e.marker(), e.description,
		e.from.Format(constants.DisplayLayout), e.to.Format(constants.DisplayLayout))
}

func (e *Event) record() TaskRecord {
	from, to := e.from, e.to
	return TaskRecord{Kind: e.Kind(), Description: e.description, Done: e.done, From: &from, To: &to}
}

// SameDay reports whether a and b share a calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
