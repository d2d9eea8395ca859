// Package subtitles turns SRT subtitle files into flat, readable text.
//
// Clean strips cue numbers with their timing lines and drops markup tags. It
// then repairs a fixed list of mis-decoded Central European characters and
// joins the remaining dialogue into a single whitespace-normalized line.
// Decode reads raw subtitle bytes leniently in a configurable charset, and
// Processor runs the whole thing over every file matching a glob.
package subtitles
