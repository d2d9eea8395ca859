package pdftext

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"textprep/internal/logging"
)

// document is an open PDF whose pages can be read in order.
type document interface {
	NumPage() int
	// PageText returns the text of page i (1-based). skip is true for
	// null pages.
	PageText(i int) (text string, skip bool, err error)
	Close() error
}

type openFunc func(path string) (document, error)

// pdfDocument reads pages through github.com/ledongthuc/pdf, sharing one font
// cache across pages.
type pdfDocument struct {
	file   *os.File
	reader *pdf.Reader
	fonts  map[string]*pdf.Font
}

func openPDF(path string) (document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	return &pdfDocument{file: f, reader: r, fonts: make(map[string]*pdf.Font)}, nil
}

func (d *pdfDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) PageText(i int) (string, bool, error) {
	p := d.reader.Page(i)
	if p.V.IsNull() {
		return "", true, nil
	}
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}
	text, err := p.GetPlainText(d.fonts)
	if err != nil {
		return "", false, err
	}
	return text, false, nil
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}

// Options configures an Extractor.
type Options struct {
	// PageSeparator is inserted between the text of consecutive pages.
	PageSeparator string
	// KeepPartialText keeps the pages read before a failure instead of
	// discarding the whole document.
	KeepPartialText bool
}

// Extractor pulls plain text out of PDF files.
type Extractor struct {
	opts   Options
	logger *slog.Logger
	open   openFunc
}

// NewExtractor returns an Extractor backed by github.com/ledongthuc/pdf.
func NewExtractor(opts Options, logger *slog.Logger) *Extractor {
	return &Extractor{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "pdf"),
		open:   openPDF,
	}
}

// Extract returns the text of every page of path, or an empty string when the
// document cannot be read. Failures are logged, never returned.
func (e *Extractor) Extract(path string) string {
	text, _ := e.extract(path)
	return text
}

// ExtractFile returns the text of every page of path. On failure the error is
// returned together with whatever text was recovered, subject to
// KeepPartialText.
func (e *Extractor) ExtractFile(path string) (string, error) {
	text, err := e.readPages(path)
	if err != nil && !e.opts.KeepPartialText {
		text = ""
	}
	return text, err
}

func (e *Extractor) extract(path string) (string, error) {
	text, err := e.ExtractFile(path)
	if err != nil {
		e.logger.Warn("pdf extraction failed",
			logging.String(logging.FieldEventType, "pdf_extract_failed"),
			logging.String(logging.FieldFile, path),
			logging.Error(err),
			logging.Bool("partial_text_kept", e.opts.KeepPartialText && text != ""),
		)
	}
	return text, err
}

// readPages walks pages 1..N and always returns the text gathered so far.
func (e *Extractor) readPages(path string) (text string, err error) {
	var pages []string
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
		text = strings.Join(pages, e.opts.PageSeparator)
	}()

	doc, err := e.open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = doc.Close() }()

	for i := 1; i <= doc.NumPage(); i++ {
		pageText, skip, pageErr := doc.PageText(i)
		if pageErr != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, pageErr)
		}
		if skip {
			continue
		}
		pages = append(pages, pageText)
	}
	return "", nil
}
