// Command textprep prepares plain-text corpora from PDF books and SRT
// subtitles.
//
// Subcommands cover the two batch pipelines (pdf, srt), their single-file
// counterparts (extract, clean), a filesystem preflight (check) and
// configuration helpers (config init|validate|show).
package main
