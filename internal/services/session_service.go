package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/parser"
	"task-tracker.com/task-tracker/internal/tasklist"
)

var ErrLoadFailed = errors.New("could not load saved tasks")

type TaskStore interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}

type Console interface {
	parser.Sink
	ShowWelcome()
	ReadCommand(ctx context.Context) (string, error)
}

// SessionService owns the task list for one run of the tracker.
type SessionService struct {
	console        Console
	tasks          *tasklist.TaskList
	parser         *parser.Parser
	commandTimeout time.Duration
}

// NewSessionService loads the saved tasks. Stores report a missing snapshot
// as an empty list, so any load error means saved data exists but could not
// be read; the session refuses to start rather than overwrite it.
func NewSessionService(
	ctx context.Context,
	store TaskStore,
	console Console,
	commandTimeout time.Duration,
) (*SessionService, error) {
	tasks, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	list := tasklist.New(tasks...)

	return &SessionService{
		console:        console,
		tasks:          list,
		parser:         parser.New(list, console, store),
		commandTimeout: commandTimeout,
	}, nil
}

// Run reads and executes commands until bye, end of input or ctx is done.
func (s *SessionService) Run(ctx context.Context) error {
	s.console.ShowWelcome()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.console.ReadCommand(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if s.Execute(ctx, line) == parser.Exit {
			return nil
		}
	}
}

// Execute runs a single command line.
func (s *SessionService) Execute(ctx context.Context, line string) parser.Outcome {
	if s.commandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.commandTimeout)
		defer cancel()
	}
	return s.parser.Parse(ctx, line)
}

func (s *SessionService) Size() int {
	return s.tasks.Size()
}
