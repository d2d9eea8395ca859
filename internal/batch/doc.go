// Package batch holds the plumbing shared by the PDF and subtitle pipelines:
// output naming, per-file results and run summaries, run identifiers, and the
// advisory lock that keeps two runs from writing into the same output folder.
package batch
