package testsupport

import (
	"bytes"
	"log/slog"
	"testing"

	"textprep/internal/logging"
)

// NewLogger returns a console logger at info level and the buffer it writes to.
func NewLogger(t testing.TB) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return logger, &buf
}
