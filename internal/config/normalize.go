package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizePDF(); err != nil {
		return err
	}
	if err := c.normalizeSubtitles(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.LockDir = strings.TrimSpace(c.Paths.LockDir)
	if c.Paths.LockDir == "" {
		return nil
	}
	if c.Paths.LockDir, err = expandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePDF() error {
	var err error
	if strings.TrimSpace(c.PDF.InputDir) == "" {
		c.PDF.InputDir = defaultPDFInputDir
	}
	if c.PDF.InputDir, err = expandPath(strings.TrimSpace(c.PDF.InputDir)); err != nil {
		return fmt.Errorf("pdf.input_dir: %w", err)
	}
	if strings.TrimSpace(c.PDF.OutputDir) == "" {
		c.PDF.OutputDir = defaultPDFOutputDir
	}
	if c.PDF.OutputDir, err = expandPath(strings.TrimSpace(c.PDF.OutputDir)); err != nil {
		return fmt.Errorf("pdf.output_dir: %w", err)
	}
	c.PDF.Pattern = strings.TrimSpace(c.PDF.Pattern)
	if c.PDF.Pattern == "" {
		c.PDF.Pattern = defaultPDFPattern
	}
	return nil
}

func (c *Config) normalizeSubtitles() error {
	var err error
	if strings.TrimSpace(c.Subtitles.Pattern) == "" {
		c.Subtitles.Pattern = defaultSubtitlePattern
	}
	if c.Subtitles.Pattern, err = expandPath(strings.TrimSpace(c.Subtitles.Pattern)); err != nil {
		return fmt.Errorf("subtitles.pattern: %w", err)
	}
	if strings.TrimSpace(c.Subtitles.OutputDir) == "" {
		c.Subtitles.OutputDir = defaultSubtitleOutput
	}
	if c.Subtitles.OutputDir, err = expandPath(strings.TrimSpace(c.Subtitles.OutputDir)); err != nil {
		return fmt.Errorf("subtitles.output_dir: %w", err)
	}
	c.Subtitles.Suffix = strings.TrimSpace(c.Subtitles.Suffix)
	if c.Subtitles.Suffix == "" {
		c.Subtitles.Suffix = defaultSubtitleSuffix
	}
	c.Subtitles.Encoding = strings.ToLower(strings.TrimSpace(c.Subtitles.Encoding))
	if c.Subtitles.Encoding == "" {
		c.Subtitles.Encoding = defaultEncoding
	}
	// Canonicalize aliases (utf8, latin2, cp1250...) so the rest of the code
	// compares against one name. Unknown labels are left for Validate.
	if enc, lookupErr := htmlindex.Get(c.Subtitles.Encoding); lookupErr == nil {
		if name, nameErr := htmlindex.Name(enc); nameErr == nil {
			c.Subtitles.Encoding = name
		}
	}
	c.Subtitles.DecodeErrors = strings.ToLower(strings.TrimSpace(c.Subtitles.DecodeErrors))
	if c.Subtitles.DecodeErrors == "" {
		c.Subtitles.DecodeErrors = defaultDecodeErrors
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// Normalize re-applies defaults and path expansion after callers (CLI flag
// overrides) changed fields on a loaded config.
func (c *Config) Normalize() error {
	return c.normalize()
}
