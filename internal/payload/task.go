package payload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Result is the settled outcome of an asynchronous encode: either the
// stored text form plus the source file name, or a typed failure.
type Result struct {
	FileName string
	Text     string
	Err      error
}

// Task is an in-flight file encode. It never blocks its creator; callers
// observe completion through Wait or Done.
type Task struct {
	done   chan struct{}
	result Result
}

// StartEncode reads and encodes the file at path off the calling
// goroutine. Non-PDF paths settle with ErrInvalidType before any bytes are
// read, so callers can reject bad picks without touching the network.
func StartEncode(ctx context.Context, path string) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result = encodeFile(ctx, path)
	}()
	return t
}

// Done is closed once the task settles.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task settles or ctx is cancelled. Cancellation
// yields the context error; the abandoned encode finishes in the
// background and is discarded.
func (t *Task) Wait(ctx context.Context) Result {
	select {
	case <-t.done:
		return t.result
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

func encodeFile(ctx context.Context, path string) Result {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return Result{Err: ErrInvalidType}
	}
	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrRead, err)}
	}
	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}
	text, err := Encode(MimePDF, data)
	if err != nil {
		return Result{Err: err}
	}
	return Result{FileName: filepath.Base(path), Text: text}
}
