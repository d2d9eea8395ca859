// Package preflight provides readiness checks for the filesystem paths textprep
// depends on.
//
// RunAll is used by the CLI "textprep check" command to report, before any
// batch runs, whether the input folders can be read and the output and lock
// folders can be written or created. Each check returns a Result rather than
// an error so the command can show every problem at once.
package preflight
