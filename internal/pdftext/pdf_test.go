package pdftext

import (
	"errors"
	"path/filepath"
	"testing"

	"textprep/internal/testsupport"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	return testsupport.WriteFile(t, filepath.Join(dir, name), data)
}

// fakeDocument serves canned page texts. Empty entries are null pages.
type fakeDocument struct {
	pages    []string
	failPage int
	panicAt  int
	closed   bool
}

func (d *fakeDocument) NumPage() int { return len(d.pages) }

func (d *fakeDocument) PageText(i int) (string, bool, error) {
	if i == d.panicAt {
		panic("malformed xref")
	}
	if i == d.failPage {
		return "", false, errors.New("bad content stream")
	}
	if d.pages[i-1] == "" {
		return "", true, nil
	}
	return d.pages[i-1], false, nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

func openFake(doc *fakeDocument) openFunc {
	return func(string) (document, error) { return doc, nil }
}
