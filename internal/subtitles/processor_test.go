package subtitles

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textprep/internal/batch"
	"textprep/internal/config"
	"textprep/internal/testsupport"
)

func newTestProcessor(t *testing.T, srtDir, outDir string, mutate func(*config.Subtitles)) (*Processor, *bytes.Buffer) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	cfg.Subtitles.Pattern = filepath.Join(srtDir, "*.srt")
	cfg.Subtitles.OutputDir = outDir
	if mutate != nil {
		mutate(&cfg.Subtitles)
	}
	logger, buf := testsupport.NewLogger(t)
	return NewProcessor(cfg.Subtitles, cfg.LockDir(), logger), buf
}

func writeSRT(t *testing.T, dir, name, content string) string {
	t.Helper()
	return testsupport.WriteFile(t, filepath.Join(dir, name), []byte(content))
}

func TestProcessorCleansMatchingFiles(t *testing.T) {
	srtDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "TXT")
	writeSRT(t, srtDir, "ep1.srt", "1\n00:00:01,000 --> 00:00:02,500\n<i>Hello</i> world\n")
	writeSRT(t, srtDir, "ep2.srt", "1\r\n00:00:01,000 --> 00:00:02,000\r\nkuæa\r\n")
	writeSRT(t, srtDir, "notes.txt", "ignored")

	proc, logs := newTestProcessor(t, srtDir, outDir, nil)
	summary, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Found != 2 || summary.Written != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.RunID == "" {
		t.Fatal("expected run id")
	}

	for name, want := range map[string]string{
		"ep1_clean.txt": "Hello world",
		"ep2_clean.txt": "kuća",
	} {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != want {
			t.Fatalf("%s = %q, want %q", name, got, want)
		}
	}
	if !strings.Contains(logs.String(), "cleaned file ep1.srt") {
		t.Fatalf("expected per-file log line, got %q", logs.String())
	}
}

func TestProcessorNoMatchesWritesNothing(t *testing.T) {
	srtDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "TXT")

	proc, logs := newTestProcessor(t, srtDir, outDir, nil)
	summary, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Found != 0 || summary.Processed() != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
	if !strings.Contains(logs.String(), "no subtitle files found") {
		t.Fatalf("expected notice, got %q", logs.String())
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Fatalf("output directory should not be created, stat err=%v", err)
	}
}

func TestProcessorCustomSuffixAndEmptyOutput(t *testing.T) {
	srtDir := t.TempDir()
	outDir := t.TempDir()
	writeSRT(t, srtDir, "blank.srt", "1\n00:00:01,000 --> 00:00:02,000\n\n")

	proc, _ := newTestProcessor(t, srtDir, outDir, func(c *config.Subtitles) { c.Suffix = ".flat" })
	summary, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Empty != 1 {
		t.Fatalf("expected one empty result, got %+v", summary)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "blank.flat.txt"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestProcessorStopsOnWriteFailureByDefault(t *testing.T) {
	srtDir := t.TempDir()
	outDir := t.TempDir()
	writeSRT(t, srtDir, "a.srt", "first")
	writeSRT(t, srtDir, "b.srt", "second")
	// A directory in place of the output makes the rename fail.
	if err := os.Mkdir(filepath.Join(outDir, "a_clean.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "a_clean.txt", "keep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	proc, _ := newTestProcessor(t, srtDir, outDir, nil)
	summary, err := proc.Run(context.Background())
	if err == nil {
		t.Fatal("expected batch to abort")
	}
	if summary.Failed != 1 || summary.Processed() != 1 {
		t.Fatalf("expected abort after first file, got %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(outDir, "b_clean.txt")); !os.IsNotExist(err) {
		t.Fatalf("second file should not be written, stat err=%v", err)
	}
}

func TestProcessorContinueOnError(t *testing.T) {
	srtDir := t.TempDir()
	outDir := t.TempDir()
	writeSRT(t, srtDir, "a.srt", "first")
	writeSRT(t, srtDir, "b.srt", "second")
	if err := os.Mkdir(filepath.Join(outDir, "a_clean.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "a_clean.txt", "keep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	proc, logs := newTestProcessor(t, srtDir, outDir, func(c *config.Subtitles) { c.ContinueOnError = true })
	summary, err := proc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Failed != 1 || summary.Written != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "b_clean.txt"))
	if err != nil || string(got) != "second" {
		t.Fatalf("expected second output, got %q err=%v", got, err)
	}
	if !strings.Contains(logs.String(), "event_type=subtitle_failed") {
		t.Fatalf("expected failure warning, got %q", logs.String())
	}
}

func TestProcessorHonorsCancellation(t *testing.T) {
	srtDir := t.TempDir()
	outDir := t.TempDir()
	writeSRT(t, srtDir, "a.srt", "first")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	proc, _ := newTestProcessor(t, srtDir, outDir, nil)
	summary, err := proc.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if summary.Found != 1 || summary.Processed() != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestProcessorRejectsConcurrentRun(t *testing.T) {
	srtDir := t.TempDir()
	outDir := t.TempDir()
	writeSRT(t, srtDir, "a.srt", "first")

	proc, _ := newTestProcessor(t, srtDir, outDir, nil)
	held, err := batch.AcquireLock(proc.lockDir, outDir)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer held.Release()

	if _, err := proc.Run(context.Background()); !errors.Is(err, batch.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}
