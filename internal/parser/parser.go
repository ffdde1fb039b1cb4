package parser

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/tasklist"
)

// Outcome tells the host loop whether to keep reading commands.
type Outcome int

const (
	Continue Outcome = iota
	Exit
)

// Sink receives one line of user-visible output per call.
type Sink interface {
	Show(message string)
}

// Storage replaces the saved state with the given tasks.
type Storage interface {
	Save(ctx context.Context, tasks []model.Task) error
}

type handler func(ctx context.Context, args string) (Outcome, error)

var eventDelimiter = regexp.MustCompile(` /from | /to `)

const deadlineDelimiter = " /by "

// Parser interprets command lines against a task list. Every successful
// mutation is saved before it is acknowledged; a failed save is reported but
// the in-memory change is kept.
type Parser struct {
	tasks    *tasklist.TaskList
	sink     Sink
	storage  Storage
	handlers map[string]handler
}

func New(tasks *tasklist.TaskList, sink Sink, storage Storage) *Parser {
	p := &Parser{
		tasks:   tasks,
		sink:    sink,
		storage: storage,
	}

	p.handlers = map[string]handler{
		"bye":      p.bye,
		"list":     continuing(p.list),
		"mark":     continuing(p.mark),
		"unmark":   continuing(p.unmark),
		"todo":     continuing(p.todo),
		"deadline": continuing(p.deadline),
		"event":    continuing(p.event),
		"delete":   continuing(p.delete),
		"on":       continuing(p.on),
		"find":     continuing(p.find),
	}

	return p
}

func continuing(fn func(ctx context.Context, args string) error) handler {
	return func(ctx context.Context, args string) (Outcome, error) {
		return Continue, fn(ctx, args)
	}
}

// Parse runs one command line. The keyword is everything before the first
// space and is matched case-sensitively.
func (p *Parser) Parse(ctx context.Context, line string) Outcome {
	commandType, args, _ := strings.Cut(line, " ")

	h, ok := p.handlers[commandType]
	if !ok {
		p.sink.Show(msgInvalidCommand)
		return Continue
	}

	outcome, err := h(ctx, args)
	if err != nil {
		p.report(err)
	}
	return outcome
}

func (p *Parser) report(err error) {
	if apperrors.KindOf(err) == apperrors.KindPersistence {
		log.Printf("save failed: %v", err)
	}
	p.sink.Show(apperrors.MessageOf(err))
}

func (p *Parser) bye(_ context.Context, _ string) (Outcome, error) {
	p.sink.Show(msgFarewell)
	return Exit, nil
}

func (p *Parser) list(_ context.Context, _ string) error {
	if p.tasks.Size() == 0 {
		p.sink.Show(msgNothingTracked)
		return nil
	}
	p.showNumbered(p.tasks.Tasks())
	return nil
}

func (p *Parser) mark(ctx context.Context, args string) error {
	task, err := p.taskAt(args)
	if err != nil {
		return withMessage(err, msgNeedMarkNumber)
	}

	task.Mark()
	if err := p.save(ctx); err != nil {
		return err
	}

	p.sink.Show(msgMarked)
	p.sink.Show(task.String())
	return nil
}

func (p *Parser) unmark(ctx context.Context, args string) error {
	task, err := p.taskAt(args)
	if err != nil {
		return withMessage(err, msgNeedUnmarkNum)
	}

	task.Unmark()
	if err := p.save(ctx); err != nil {
		return err
	}

	p.sink.Show(msgUnmarked)
	p.sink.Show(task.String())
	return nil
}

func (p *Parser) todo(ctx context.Context, args string) error {
	description := strings.TrimSpace(args)
	if description == "" {
		return apperrors.New(apperrors.KindParse, msgNeedDescription)
	}
	return p.add(ctx, model.NewToDo(description))
}

func (p *Parser) deadline(ctx context.Context, args string) error {
	parts := dropTrailingEmpty(strings.Split(args, deadlineDelimiter))
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return apperrors.New(apperrors.KindParse, msgNeedDeadline)
	}

	due, err := parseDateTime(parts[1])
	if err != nil {
		return err
	}

	return p.add(ctx, model.NewDeadline(strings.TrimSpace(parts[0]), due))
}

func (p *Parser) event(ctx context.Context, args string) error {
	parts := dropTrailingEmpty(eventDelimiter.Split(args, -1))
	if len(parts) < 3 || strings.TrimSpace(parts[0]) == "" {
		return apperrors.New(apperrors.KindParse, msgNeedDuration)
	}

	from, err := parseDateTime(parts[1])
	if err != nil {
		return err
	}
	to, err := parseDateTime(parts[2])
	if err != nil {
		return err
	}

	return p.add(ctx, model.NewEvent(strings.TrimSpace(parts[0]), from, to))
}

func (p *Parser) delete(ctx context.Context, args string) error {
	index, err := parseIndex(args)
	if err != nil {
		return withMessage(err, msgNeedDeleteNum)
	}

	removed, err := p.tasks.Delete(index)
	if err != nil {
		return withMessage(err, msgNeedDeleteNum)
	}

	if err := p.save(ctx); err != nil {
		return err
	}

	p.sink.Show(msgRemoved)
	p.sink.Show(removed.String())
	p.sink.Show(fmt.Sprintf(msgTrackingCount, p.tasks.Size()))
	return nil
}

func (p *Parser) on(_ context.Context, args string) error {
	date, err := time.Parse(constants.DateLayout, strings.TrimSpace(args))
	if err != nil {
		return apperrors.Wrap(apperrors.KindParse, msgNeedDate, err)
	}

	p.sink.Show(fmt.Sprintf(msgShowingOn, date.Format(constants.DisplayDateLayout)))

	found := false
	for _, task := range p.tasks.Tasks() {
		if d, ok := task.Date(); ok && model.SameDay(d, date) {
			p.sink.Show(task.String())
			found = true
		}
	}

	if !found {
		p.sink.Show(msgNothingOn)
	}
	return nil
}

func (p *Parser) find(_ context.Context, args string) error {
	keyword := strings.TrimSpace(args)
	if keyword == "" {
		return apperrors.New(apperrors.KindParse, msgNeedKeyword)
	}

	found := p.tasks.FindByKeyword(keyword)
	if len(found) == 0 {
		p.sink.Show(msgNothingFound)
		return nil
	}

	p.sink.Show(msgFound)
	p.showNumbered(found)
	return nil
}

func (p *Parser) add(ctx context.Context, task model.Task) error {
	p.tasks.Add(task)
	if err := p.save(ctx); err != nil {
		return err
	}

	p.sink.Show(msgAdded)
	p.sink.Show(task.String())
	return nil
}

func (p *Parser) save(ctx context.Context) error {
	if err := p.storage.Save(ctx, p.tasks.Tasks()); err != nil {
		return apperrors.Wrap(apperrors.KindPersistence, msgCouldNotSave, err)
	}
	return nil
}

func (p *Parser) taskAt(args string) (model.Task, error) {
	index, err := parseIndex(args)
	if err != nil {
		return nil, err
	}
	return p.tasks.Get(index)
}

func (p *Parser) showNumbered(tasks []model.Task) {
	for i, task := range tasks {
		p.sink.Show(fmt.Sprintf("%d. %s", i+1, task))
	}
}

// parseIndex turns a 1-based task number into a 0-based index. Range is
// checked by the task list.
func parseIndex(args string) (int, error) {
	n, err := strconv.Atoi(args)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindParse, "invalid task number", err)
	}
	return n - 1, nil
}

func parseDateTime(raw string) (time.Time, error) {
	t, err := time.Parse(constants.InputDateTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.KindParse, msgNeedDateTime, err)
	}
	return t, nil
}

// withMessage replaces the user-facing message of err, keeping its kind.
func withMessage(err error, message string) error {
	return apperrors.Wrap(apperrors.KindOf(err), message, err)
}

func dropTrailingEmpty(parts []string) []string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
