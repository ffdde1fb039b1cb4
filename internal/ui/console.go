package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const welcome = "Hello! I'm your task tracker.\nWhat can I do for you?"

type readResult struct {
	line string
	err  error
}

// Console reads command lines from in and writes messages to out.
type Console struct {
	reader *bufio.Reader
	out    io.Writer

	once    sync.Once
	results chan readResult
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (c *Console) Show(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *Console) ShowWelcome() {
	c.Show(welcome)
}

// ReadCommand returns the next line without its line ending. It returns
// io.EOF once the input is exhausted and ctx.Err() if ctx is done first.
// Lines have no length limit.
func (c *Console) ReadCommand(ctx context.Context) (string, error) {
	c.once.Do(c.startReading)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.results:
		if !ok {
			return "", io.EOF
		}
		return r.line, r.err
	}
}

// startReading moves blocking reads off the caller's goroutine. A read that
// is pending when the session stops is abandoned with the process.
func (c *Console) startReading() {
	c.results = make(chan readResult)

	go func() {
		defer close(c.results)
		for {
			line, err := c.reader.ReadString('\n')
			if line != "" {
				c.results <- readResult{line: strings.TrimRight(line, "\r\n")}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					c.results <- readResult{err: err}
				}
				return
			}
		}
	}()
}
