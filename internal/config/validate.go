package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePDF(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePDF() error {
	if c.PDF.InputDir == "" {
		return fmt.Errorf("%w: pdf.input_dir must be set", ErrInvalid)
	}
	if c.PDF.OutputDir == "" {
		return fmt.Errorf("%w: pdf.output_dir must be set", ErrInvalid)
	}
	if c.PDF.Pattern == "" {
		return fmt.Errorf("%w: pdf.pattern must be set", ErrInvalid)
	}
	if strings.ContainsAny(c.PDF.Pattern, `/\`) {
		return fmt.Errorf("%w: pdf.pattern %q must be a file name pattern, not a path", ErrInvalid, c.PDF.Pattern)
	}
	if _, err := filepath.Match(c.PDF.Pattern, ""); err != nil {
		return fmt.Errorf("%w: pdf.pattern %q: %v", ErrInvalid, c.PDF.Pattern, err)
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	if c.Subtitles.Pattern == "" {
		return fmt.Errorf("%w: subtitles.pattern must be set", ErrInvalid)
	}
	if _, err := filepath.Match(c.Subtitles.Pattern, ""); err != nil {
		return fmt.Errorf("%w: subtitles.pattern %q: %v", ErrInvalid, c.Subtitles.Pattern, err)
	}
	if c.Subtitles.OutputDir == "" {
		return fmt.Errorf("%w: subtitles.output_dir must be set", ErrInvalid)
	}
	if strings.ContainsAny(c.Subtitles.Suffix, `/\`) {
		return fmt.Errorf("%w: subtitles.suffix %q must not contain path separators", ErrInvalid, c.Subtitles.Suffix)
	}
	if _, err := htmlindex.Get(c.Subtitles.Encoding); err != nil {
		return fmt.Errorf("%w: subtitles.encoding %q is not a known charset", ErrInvalid, c.Subtitles.Encoding)
	}
	switch c.Subtitles.DecodeErrors {
	case DecodeIgnore, DecodeReplace:
	default:
		return fmt.Errorf("%w: subtitles.decode_errors must be %q or %q, got %q", ErrInvalid, DecodeIgnore, DecodeReplace, c.Subtitles.DecodeErrors)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn or error, got %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
