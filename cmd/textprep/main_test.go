package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textprep/internal/config"
	"textprep/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	baseDir    string
	configPath string
	pdfDir     string
	srtDir     string
	outDir     string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Chdir(base)

	return &cliTestEnv{
		cfg:        cfg,
		baseDir:    base,
		configPath: testsupport.WriteConfigFile(t, cfg),
		pdfDir:     cfg.PDF.InputDir,
		srtDir:     testsupport.SubtitleDir(cfg),
		outDir:     cfg.PDF.OutputDir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, "")
}

func runCLIWithInput(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	testsupport.WriteFile(t, path, []byte(content))
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	return testsupport.ReadFile(t, path)
}

func TestSRTCommandCleansFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestFile(t, filepath.Join(env.srtDir, "ep1.srt"), "1\n00:00:01,000 --> 00:00:02,500\n<i>Hello</i>  world\n")

	out, stderr, err := runCLI(t, []string{"srt"}, env.configPath)
	if err != nil {
		t.Fatalf("srt: %v (stderr %q)", err, stderr)
	}
	requireContains(t, out, "ep1_clean.txt")
	requireContains(t, out, "Found 1, written 1, empty 0, failed 0")
	requireContains(t, stderr, "cleaned file ep1.srt")

	if got := readTestFile(t, filepath.Join(env.outDir, "ep1_clean.txt")); got != "Hello world" {
		t.Fatalf("cleaned output = %q", got)
	}
}

func TestSRTCommandFlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t)
	other := filepath.Join(env.baseDir, "other")
	if err := os.MkdirAll(other, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, filepath.Join(other, "movie.sub.srt"), "Dobar dan\n")
	custom := filepath.Join(env.baseDir, "custom")

	_, stderr, err := runCLI(t, []string{
		"srt",
		"--pattern", filepath.Join(other, "*.srt"),
		"--output", custom,
		"--suffix", "_flat",
		"--encoding", "cp1250",
	}, env.configPath)
	if err != nil {
		t.Fatalf("srt: %v (stderr %q)", err, stderr)
	}
	if got := readTestFile(t, filepath.Join(custom, "movie.sub_flat.txt")); got != "Dobar dan" {
		t.Fatalf("output = %q", got)
	}
}

func TestSRTCommandConfigContinuesAfterFailure(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithSubtitleSuffix("_flat"),
		testsupport.WithContinueOnError(true),
	)
	writeTestFile(t, filepath.Join(env.srtDir, "a.srt"), "first")
	writeTestFile(t, filepath.Join(env.srtDir, "b.srt"), "second")
	// A non-empty directory where a.srt's output belongs makes that write fail.
	writeTestFile(t, filepath.Join(env.outDir, "a_flat.txt", "blocker"), "")

	out, stderr, err := runCLI(t, []string{"srt"}, env.configPath)
	if err != nil {
		t.Fatalf("srt: %v (stderr %q)", err, stderr)
	}
	requireContains(t, out, "Found 2, written 1, empty 0, failed 1")
	requireContains(t, out, "[ERROR] 1 failed")
	if got := readTestFile(t, filepath.Join(env.outDir, "b_flat.txt")); got != "second" {
		t.Fatalf("b_flat.txt = %q", got)
	}

	_, _, err = runCLI(t, []string{"srt", "--continue-on-error=false"}, env.configPath)
	if err == nil {
		t.Fatal("expected the flag to restore stop-on-error")
	}
}

func TestSRTCommandNothingFound(t *testing.T) {
	env := setupCLITestEnv(t)

	out, stderr, err := runCLI(t, []string{"srt"}, env.configPath)
	if err != nil {
		t.Fatalf("srt: %v", err)
	}
	requireContains(t, stderr, "no subtitle files found")
	requireContains(t, out, "nothing to do")
	if _, err := os.Stat(env.outDir); !os.IsNotExist(err) {
		t.Fatalf("output folder should not exist, stat err=%v", err)
	}
}

func TestPDFCommandWritesEmptyFileForBrokenPDF(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestFile(t, filepath.Join(env.pdfDir, "broken.pdf"), "not a pdf")

	out, stderr, err := runCLI(t, []string{"pdf", "--log-format", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	requireContains(t, out, "broken.txt")
	requireContains(t, out, "produced no text")
	requireContains(t, stderr, `"event_type":"pdf_extract_failed"`)
	if got := readTestFile(t, filepath.Join(env.outDir, "broken.txt")); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestPDFCommandInputOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	books := filepath.Join(env.baseDir, "books")
	if err := os.MkdirAll(books, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, filepath.Join(books, "a.PDF"), "junk")

	_, stderr, err := runCLI(t, []string{"pdf", "--input", books, "--pattern", "*.PDF"}, env.configPath)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	requireContains(t, stderr, "found PDF files")
	if _, err := os.Stat(filepath.Join(env.outDir, "a.txt")); err != nil {
		t.Fatalf("expected a.txt: %v", err)
	}
}

func TestPDFCommandRejectsPatternWithSeparator(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"pdf", "--pattern", "sub/*.pdf"}, env.configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected config.ErrInvalid, got %v", err)
	}
}

func TestExtractCommandPrintsText(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.pdfDir, "book.pdf")
	testsupport.WriteFile(t, path, testsupport.BuildPDF("Chapter one"))

	out, _, err := runCLI(t, []string{"extract", path}, env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "Chapter one")
}

func TestExtractCommandFailsOnBrokenPDF(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.pdfDir, "broken.pdf")
	writeTestFile(t, path, "not a pdf")

	out, _, err := runCLI(t, []string{"extract", path}, env.configPath)
	if err == nil {
		t.Fatal("expected extraction error")
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestCleanCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.srtDir, "one.srt")
	writeTestFile(t, path, "1\n00:00:01,000 --> 00:00:02,000\nkuÄ‡a\n")

	out, _, err := runCLI(t, []string{"clean", path}, env.configPath)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if out != "kuća\n" {
		t.Fatalf("clean output = %q", out)
	}

	out, _, err = runCLIWithInput(t, []string{"clean", "-"}, env.configPath, "<b>Hi</b>\r\n  there")
	if err != nil {
		t.Fatalf("clean stdin: %v", err)
	}
	if out != "Hi there\n" {
		t.Fatalf("clean stdin output = %q", out)
	}
}

func TestCleanCommandShowTable(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"clean", "--show-table"}, env.configPath)
	if err != nil {
		t.Fatalf("clean --show-table: %v", err)
	}
	requireContains(t, out, "Corrupted")
	requireContains(t, out, `"Ä‡"`)
	requireContains(t, out, "20")
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "== Preflight ==")
	requireContains(t, out, "all checks passed")
	if strings.Contains(out, ansiGreen) {
		t.Fatalf("non-terminal output should not be coloured: %q", out)
	}

	if err := os.RemoveAll(env.pdfDir); err != nil {
		t.Fatal(err)
	}
	out, _, err = runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected check failure")
	}
	requireContains(t, out, "[ERROR]")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Config file present: yes")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"config", "show", "--log-level", "debug"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[subtitles]")
	requireContains(t, out, "level = 'debug'")
	requireContains(t, out, env.pdfDir)
}

func TestInvalidLogFormatFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"check", "--log-format", "xml"}, env.configPath); err == nil {
		t.Fatal("expected invalid log format to be rejected")
	}
}
