package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"textprep/internal/batch"
	"textprep/internal/config"
	"textprep/internal/fileutil"
	"textprep/internal/logging"
	"textprep/internal/textutil"
)

const outputExt = ".txt"

// Processor extracts every PDF in a folder into a text file.
type Processor struct {
	cfg       config.PDF
	lockDir   string
	extractor *Extractor
	logger    *slog.Logger
}

// NewProcessor builds a PDF batch processor. An empty lockDir uses the OS temp
// directory.
func NewProcessor(cfg config.PDF, lockDir string, logger *slog.Logger) *Processor {
	return &Processor{
		cfg:     cfg,
		lockDir: lockDir,
		extractor: NewExtractor(Options{
			PageSeparator:   cfg.PageSeparator,
			KeepPartialText: cfg.KeepPartialText,
		}, logger),
		logger: logging.NewComponentLogger(logger, "pdf"),
	}
}

// Run extracts each matching PDF in order. Unreadable PDFs still produce an
// empty output file; only a failed write marks a file as failed, and the batch
// always continues.
func (p *Processor) Run(ctx context.Context) (batch.Summary, error) {
	start := time.Now()
	summary := batch.NewSummary(batch.NewRunID())
	logger := logging.WithRunID(p.logger, summary.RunID)
	extractor := *p.extractor
	extractor.logger = logging.WithRunID(extractor.logger, summary.RunID)

	if err := fileutil.EnsureDir(p.cfg.OutputDir); err != nil {
		return summary, fmt.Errorf("prepare output directory: %w", err)
	}

	files, err := discover(p.cfg.InputDir, p.cfg.Pattern)
	if err != nil {
		return summary, err
	}
	if len(files) == 0 {
		logger.Info("no PDF files found", logging.String("input_dir", p.cfg.InputDir))
		summary.Elapsed = time.Since(start)
		return summary, nil
	}
	summary.Found = len(files)

	lock, err := batch.AcquireLock(p.lockDir, p.cfg.OutputDir)
	if err != nil {
		return summary, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	logger.Info("found PDF files",
		logging.Int("count", len(files)),
		logging.String("input_dir", p.cfg.InputDir),
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

		result := processFile(&extractor, path, p.cfg.OutputDir)
		summary.Add(result)
		if result.Status == batch.StatusFailed {
			logger.Error("failed to write text",
				logging.String(logging.FieldEventType, "pdf_write_failed"),
				logging.String(logging.FieldFile, path),
				logging.Error(result.Err),
			)
			continue
		}
		logger.Info(fmt.Sprintf("[%d/%d] saved text", i+1, len(files)),
			logging.String(logging.FieldFile, filepath.Base(path)),
			logging.String(logging.FieldOutput, result.Output),
			logging.Int("chars", result.Chars),
		)
	}

	summary.Elapsed = time.Since(start)
	logger.Info("pdf batch complete",
		logging.Int("found", summary.Found),
		logging.Int("written", summary.Written),
		logging.Int("empty", summary.Empty),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func processFile(extractor *Extractor, path, outDir string) batch.FileResult {
	start := time.Now()
	output := batch.OutputPath(path, outDir, "", outputExt)
	result := batch.FileResult{Input: path, Output: output}

	text, extractErr := extractor.extract(path)
	text = textutil.TrimSpace(text)

	if err := fileutil.WriteFileAtomic(output, []byte(text), 0o644); err != nil {
		result.Status = batch.StatusFailed
		result.Err = fmt.Errorf("write output: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	result.Err = extractErr
	result.Chars = len([]rune(text))
	result.Status = batch.StatusWritten
	if text == "" {
		result.Status = batch.StatusEmpty
	}
	result.Duration = time.Since(start)
	return result
}

// discover lists regular files in dir matching pattern, sorted by name.
func discover(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
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
	sort.Strings(files)
	return files, nil
}
