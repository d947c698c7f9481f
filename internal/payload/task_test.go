package payload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartEncodeRejectsNonPDFBeforeReading(t *testing.T) {
	task := StartEncode(context.Background(), filepath.Join(t.TempDir(), "resume.docx"))
	result := task.Wait(context.Background())
	if !errors.Is(result.Err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", result.Err)
	}
}

func TestStartEncodeReadsAndEncodes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my resume.pdf")
	content := []byte("%PDF-1.4\nfake resume bytes")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp pdf: %v", err)
	}

	task := StartEncode(context.Background(), path)
	result := task.Wait(context.Background())
	if result.Err != nil {
		t.Fatalf("encode: %v", result.Err)
	}
	if result.FileName != "my resume.pdf" {
		t.Fatalf("expected base name, got %q", result.FileName)
	}

	out, err := Decode(result.Text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out) != string(content) {
		t.Fatalf("round trip mismatch")
	}
}

func TestStartEncodeMissingFile(t *testing.T) {
	task := StartEncode(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	result := task.Wait(context.Background())
	if !errors.Is(result.Err, ErrRead) {
		t.Fatalf("expected ErrRead, got %v", result.Err)
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The task was started against a live context; only Wait is cancelled.
	task := StartEncode(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	result := task.Wait(ctx)
	if !errors.Is(result.Err, context.Canceled) {
		// The task may settle before the cancelled Wait is observed.
		if !errors.Is(result.Err, ErrRead) {
			t.Fatalf("expected context.Canceled or ErrRead, got %v", result.Err)
		}
	}

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatalf("abandoned task never settled")
	}
}
