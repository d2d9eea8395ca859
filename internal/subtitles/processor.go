package subtitles

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"textprep/internal/batch"
	"textprep/internal/config"
	"textprep/internal/fileutil"
	"textprep/internal/logging"
)

const outputExt = ".txt"

// Processor cleans every subtitle file matching a glob into a text file.
type Processor struct {
	cfg     config.Subtitles
	lockDir string
	logger  *slog.Logger
}

// NewProcessor builds a subtitle batch processor. An empty lockDir uses the OS
// temp directory.
func NewProcessor(cfg config.Subtitles, lockDir string, logger *slog.Logger) *Processor {
	return &Processor{
		cfg:     cfg,
		lockDir: lockDir,
		logger:  logging.NewComponentLogger(logger, "srt"),
	}
}

// Run processes all matching files sequentially. No matches is not an error.
// A read or write failure stops the batch unless ContinueOnError is set, in
// which case it is recorded and the batch moves on.
func (p *Processor) Run(ctx context.Context) (batch.Summary, error) {
	start := time.Now()
	summary := batch.NewSummary(batch.NewRunID())
	logger := logging.WithRunID(p.logger, summary.RunID)

	files, err := discover(p.cfg.Pattern)
	if err != nil {
		return summary, err
	}
	if len(files) == 0 {
		logger.Info("no subtitle files found", logging.String("pattern", p.cfg.Pattern))
		summary.Elapsed = time.Since(start)
		return summary, nil
	}
	summary.Found = len(files)

	if err := fileutil.EnsureDir(p.cfg.OutputDir); err != nil {
		return summary, fmt.Errorf("prepare output directory: %w", err)
	}
	lock, err := batch.AcquireLock(p.lockDir, p.cfg.OutputDir)
	if err != nil {
		return summary, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	logger.Info("found subtitle files",
		logging.Int("count", len(files)),
		logging.String(logging.FieldOutput, p.cfg.OutputDir),
	)

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("batch interrupted",
				logging.String(logging.FieldEventType, "interrupted"),
				logging.Int("remaining", len(files)-i),
			)
			summary.Elapsed = time.Since(start)
			return summary, err
		}

		result := p.processFile(path)
		summary.Add(result)
		if result.Status == batch.StatusFailed {
			if !p.cfg.ContinueOnError {
				logger.Error("subtitle file failed; stopping batch",
					logging.String(logging.FieldEventType, "subtitle_failed"),
					logging.String(logging.FieldFile, path),
					logging.Error(result.Err),
				)
				summary.Elapsed = time.Since(start)
				return summary, fmt.Errorf("clean %s: %w", path, result.Err)
			}
			logger.Warn("subtitle file failed",
				logging.String(logging.FieldEventType, "subtitle_failed"),
				logging.String(logging.FieldFile, path),
				logging.Error(result.Err),
			)
			continue
		}
		logger.Info(fmt.Sprintf("[%d/%d] cleaned file %s", i+1, len(files), filepath.Base(path)),
			logging.String(logging.FieldOutput, result.Output),
			logging.Int("chars", result.Chars),
		)
	}

	summary.Elapsed = time.Since(start)
	logger.Info("subtitle batch complete",
		logging.Int("found", summary.Found),
		logging.Int("written", summary.Written),
		logging.Int("empty", summary.Empty),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func (p *Processor) processFile(path string) batch.FileResult {
	start := time.Now()
	output := batch.OutputPath(path, p.cfg.OutputDir, p.cfg.Suffix, outputExt)
	result := batch.FileResult{Input: path, Output: output}

	text, err := DecodeFile(path, p.cfg.Encoding, DecodeMode(p.cfg.DecodeErrors))
	if err != nil {
		result.Status = batch.StatusFailed
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	cleaned := Clean(text)
	if err := fileutil.WriteFileAtomic(output, []byte(cleaned), 0o644); err != nil {
		result.Status = batch.StatusFailed
		result.Err = fmt.Errorf("write output: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	result.Chars = len([]rune(cleaned))
	result.Status = batch.StatusWritten
	if cleaned == "" {
		result.Status = batch.StatusEmpty
	}
	result.Duration = time.Since(start)
	return result
}

// discover expands pattern and keeps regular files only.
func discover(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
	}
	files := matches[:0]
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, match)
	}
	return files, nil
}
