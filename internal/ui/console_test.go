package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestConsole_ReadCommand(t *testing.T) {
	ctx := context.Background()
	c := NewConsole(strings.NewReader("todo a\r\nlist\n\nbye"), io.Discard)

	want := []string{"todo a", "list", "", "bye"}
	for _, w := range want {
		got, err := c.ReadCommand(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != w {
			t.Errorf("expected %q, got %q", w, got)
		}
	}

	for i := 0; i < 2; i++ {
		if _, err := c.ReadCommand(ctx); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF, got %v", err)
		}
	}
}

func TestConsole_ReadCommandLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	c := NewConsole(strings.NewReader("todo "+long+"\nlist\n"), io.Discard)

	got, err := c.ReadCommand(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "todo "+long {
		t.Errorf("long line was truncated to %d bytes", len(got))
	}

	got, err = c.ReadCommand(context.Background())
	if err != nil || got != "list" {
		t.Errorf("expected next line %q, got %q (%v)", "list", got, err)
	}
}

func TestConsole_ReadCommandCancelled(t *testing.T) {
	in, writer := io.Pipe()
	defer writer.Close()
	c := NewConsole(in, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.ReadCommand(ctx)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadCommand still blocked after cancel")
	}
}

func TestConsole_Show(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)

	c.Show("1. T | [ ] a")
	c.Show("2. T | [X] b")

	if out.String() != "1. T | [ ] a\n2. T | [X] b\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
