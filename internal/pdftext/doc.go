// Package pdftext extracts the embedded text layer of PDF files.
//
// Extractor reads one document page by page through github.com/ledongthuc/pdf
// and never lets a damaged file stop a batch: open errors, page errors and
// parser panics all degrade to "no text". Processor runs the extractor over a
// folder and writes one trimmed .txt file per PDF.
package pdftext
