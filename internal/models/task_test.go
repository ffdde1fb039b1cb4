package model

import (
	"errors"
	"testing"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

func TestTask_Rendering(t *testing.T) {
	due := time.Date(2024, 8, 28, 18, 0, 0, 0, time.UTC)
	from := time.Date(2024, 9, 1, 9, 30, 0, 0, time.UTC)
	to := time.Date(2024, 9, 2, 17, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		task Task
		want string
	}{
		{"todo", NewToDo("Buy milk"), "T | [ ] Buy milk"},
		{"deadline", NewDeadline("Submit report", due), "D | [ ] Submit report | by: Aug 28 2024 18:00"},
		{"event", NewEvent("Camp", from, to), "E | [ ] Camp | from: Sep 01 2024 09:30 | to: Sep 02 2024 17:00"},
	}

	for _, tc := range cases {
		if got := tc.task.String(); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestTask_MarkUnmark(t *testing.T) {
	task := NewDeadline("Submit report", time.Date(2024, 8, 28, 18, 0, 0, 0, time.UTC))
	before := task.String()

	task.Mark()
	if !task.IsDone() {
		t.Fatal("expected task to be done after Mark")
	}
	if got := task.String(); got != "D | [X] Submit report | by: Aug 28 2024 18:00" {
		t.Errorf("unexpected rendering after Mark: %q", got)
	}

	task.Unmark()
	if task.IsDone() {
		t.Fatal("expected task to be not done after Unmark")
	}
	if task.String() != before {
		t.Errorf("expected %q after Unmark, got %q", before, task.String())
	}
}

func TestTask_Date(t *testing.T) {
	due := time.Date(2024, 8, 28, 18, 0, 0, 0, time.UTC)
	from := time.Date(2024, 8, 30, 9, 0, 0, 0, time.UTC)
	to := time.Date(2024, 8, 28, 9, 0, 0, 0, time.UTC)

	if _, ok := NewToDo("x").Date(); ok {
		t.Error("todo should have no date")
	}
	if d, ok := NewDeadline("x", due).Date(); !ok || !d.Equal(due) {
		t.Errorf("deadline date: got %v %v", d, ok)
	}
	if d, ok := NewEvent("x", from, to).Date(); !ok || !d.Equal(from) {
		t.Errorf("event date should be its start, got %v %v", d, ok)
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	due := time.Date(2024, 8, 28, 18, 0, 0, 0, time.UTC)
	from := time.Date(2024, 9, 1, 9, 30, 0, 0, time.UTC)
	to := time.Date(2024, 9, 2, 17, 0, 0, 0, time.UTC)

	done := NewEvent("Camp", from, to)
	done.Mark()
	tasks := []Task{NewToDo("Buy milk"), NewDeadline("Submit report", due), done}

	records := ToRecords(tasks)
	for i, r := range records {
		if r.Position != i {
			t.Errorf("record %d has position %d", i, r.Position)
		}
	}

	restored, err := FromRecords(records)
	if err != nil {
		t.Fatalf("FromRecords failed: %v", err)
	}
	if len(restored) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(restored))
	}
	for i := range tasks {
		if restored[i].String() != tasks[i].String() {
			t.Errorf("task %d: expected %q, got %q", i, tasks[i].String(), restored[i].String())
		}
	}
}

func TestFromRecord_Malformed(t *testing.T) {
	records := []TaskRecord{
		{Kind: "X", Description: "unknown"},
		{Kind: constants.KindDeadline, Description: "no due"},
		{Kind: constants.KindEvent, Description: "no range"},
	}

	for _, r := range records {
		if _, err := FromRecord(r); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("record %+v: expected ErrMalformedRecord, got %v", r, err)
		}
	}
}
