package subtitles

import (
	"regexp"
	"strings"

	"textprep/internal/textutil"
)

const sp = textutil.SpaceClass

var (
	timingBlockPattern = regexp.MustCompile(
		`\p{Nd}+` + sp + `*\n` +
			`\p{Nd}{2}:\p{Nd}{2}:\p{Nd}{2},\p{Nd}{3}` + sp + `-->` + sp +
			`\p{Nd}{2}:\p{Nd}{2}:\p{Nd}{2},\p{Nd}{3}`)
	markupPattern     = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(sp + `+`)
)

// Repair maps one corrupted character sequence to its replacement.
type Repair struct {
	From string
	To   string
}

// repairTable is applied in order. The two-rune sequences starting with "Ã"
// must be replaced before the bare "Ã", and "Â" is dropped last.
var repairTable = []Repair{
	{"æ", "ć"},
	{"è", "č"},
	{"ê", "š"},
	{"ð", "đ"},
	{"ò", "š"},
	{"ø", "ž"},
	{"ý", "ž"},
	{"û", "đ"},
	{"ã", "ć"},
	{"ñ", "ń"},
	{"œ", "đ"},
	{"Å¡", "š"},
	{"Å¾", "ž"},
	{"Ä‡", "ć"},
	{"Ä\uFFFD", "č"},
	{"Ã³", "ó"},
	{"Ã¨", "č"},
	{"Ã¦", "ć"},
	{"Ã", "č"},
	{"Â", ""},
}

// RepairTable returns a copy of the ordered character repair table.
func RepairTable() []Repair {
	out := make([]Repair, len(repairTable))
	copy(out, repairTable)
	return out
}

// Clean converts raw subtitle text into a single line of dialogue. Cue
// numbers with their timing lines and markup tags are removed, known
// mis-decoded characters are repaired, and whitespace is collapsed.
func Clean(text string) string {
	text = timingBlockPattern.ReplaceAllLiteralString(text, "")
	text = markupPattern.ReplaceAllLiteralString(text, "")
	for _, r := range repairTable {
		text = strings.ReplaceAll(text, r.From, r.To)
	}

	lines := textutil.SplitLines(text)
	kept := lines[:0]
	for _, line := range lines {
		if line = textutil.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	text = strings.Join(kept, " ")

	text = whitespacePattern.ReplaceAllLiteralString(text, " ")
	return textutil.TrimSpace(text)
}
