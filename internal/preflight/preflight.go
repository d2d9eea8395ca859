package preflight

import (
	"textprep/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every filesystem check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckDirectoryAccess("PDF input directory", cfg.PDF.InputDir),
		CheckWritableDirectory("PDF output directory", cfg.PDF.OutputDir),
		CheckPatternDirectory("Subtitle input directory", cfg.Subtitles.Pattern),
		CheckWritableDirectory("Subtitle output directory", cfg.Subtitles.OutputDir),
		CheckWritableDirectory("Lock directory", cfg.LockDir()),
	}
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
