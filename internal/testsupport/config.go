package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"textprep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config whose folders live in a unique temp directory
// per test. The PDF and SRT input folders exist; TXT and the lock folder do
// not, so callers can observe their creation.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")
	cfgVal.PDF.InputDir = filepath.Join(base, "PDF")
	cfgVal.PDF.OutputDir = filepath.Join(base, "TXT")
	cfgVal.Subtitles.Pattern = filepath.Join(base, "SRT", "*.srt")
	cfgVal.Subtitles.OutputDir = filepath.Join(base, "TXT")

	for _, dir := range []string{cfgVal.PDF.InputDir, filepath.Join(base, "SRT")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithContinueOnError toggles per-file isolation in the subtitle pipeline.
func WithContinueOnError(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Subtitles.ContinueOnError = enabled
	}
}

// WithSubtitleSuffix overrides the cleaned subtitle file suffix.
func WithSubtitleSuffix(suffix string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Subtitles.Suffix = suffix
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.PDF.InputDir)
}

// SubtitleDir returns the folder matched by the generated subtitle pattern.
func SubtitleDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Subtitles.Pattern)
}

// WriteConfigFile marshals cfg into a TOML file under the base directory and
// returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "textprep-test.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
