package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpaceClass is a regexp character class matching exactly the runes IsSpace
// accepts. It can be embedded in larger patterns.
const SpaceClass = `[\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]`

// IsSpace reports whether r is whitespace: unicode.IsSpace plus the ASCII
// information separators U+001C..U+001F, which subtitle exports from old
// authoring tools use as blanks.
func IsSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

// TrimSpace removes leading and trailing runes matched by IsSpace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// isLineBreak reports line boundary runes other than \r, which is handled
// separately because \r\n counts as a single break.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// SplitLines splits s on universal line boundaries: \n, \r, \r\n, \v, \f,
// the file/group/record separators, NEL, and the Unicode line and paragraph
// separators. Line breaks are not included in the result and a trailing
// break does not produce an empty final line.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '\r':
			lines = append(lines, s[start:i])
			i += size
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
		case isLineBreak(r):
			lines = append(lines, s[start:i])
			i += size
			start = i
		default:
			i += size
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
