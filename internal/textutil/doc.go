// Package textutil provides whitespace and line-boundary helpers shared by the
// PDF and subtitle pipelines.
//
// Both pipelines trim and split text with the same rules: a wider whitespace
// set than unicode.IsSpace, and universal line boundaries (\r, \r\n, \n, form
// feeds, NEL, U+2028/U+2029 and the ASCII separators). Keeping them in one
// place means "blank line" and "trimmed" mean the same thing everywhere.
package textutil
