package batch

import (
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of a single input file.
type Status string

const (
	// StatusWritten means non-empty text was written.
	StatusWritten Status = "written"
	// StatusEmpty means an output file was written but holds no text.
	StatusEmpty Status = "empty"
	// StatusFailed means the file could not be processed or written.
	StatusFailed Status = "failed"
)

// FileResult records what happened to one input.
type FileResult struct {
	Input    string
	Output   string
	Status   Status
	Chars    int
	Duration time.Duration
	Err      error
}

// Summary aggregates the results of a batch run.
type Summary struct {
	RunID   string
	Found   int
	Written int
	Empty   int
	Failed  int
	Results []FileResult
	Elapsed time.Duration
}

// NewSummary starts a summary for a run with the given id.
func NewSummary(runID string) Summary {
	return Summary{RunID: runID}
}

// Add appends a result and bumps the matching counter.
func (s *Summary) Add(result FileResult) {
	s.Results = append(s.Results, result)
	switch result.Status {
	case StatusWritten:
		s.Written++
	case StatusEmpty:
		s.Empty++
	case StatusFailed:
		s.Failed++
	}
}

// Processed is the number of inputs that reached an outcome.
func (s Summary) Processed() int {
	return len(s.Results)
}

// NewRunID returns a fresh identifier for a batch run.
func NewRunID() string {
	return uuid.NewString()
}
