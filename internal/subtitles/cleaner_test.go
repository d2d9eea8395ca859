package subtitles

import (
	"strings"
	"testing"
)

func TestCleanRemovesTimingBlocks(t *testing.T) {
	got := Clean("1\n00:00:01,000 --> 00:00:02,500\nHello world")
	if got != "Hello world" {
		t.Fatalf("Clean = %q, want %q", got, "Hello world")
	}
}

func TestCleanStripsMarkupAndCollapsesSpaces(t *testing.T) {
	got := Clean("<i>Hello</i>  World")
	if got != "Hello World" {
		t.Fatalf("Clean = %q, want %q", got, "Hello World")
	}
}

func TestCleanRepairsCorruptedSequences(t *testing.T) {
	got := Clean("Ä‡")
	if got != "ć" {
		t.Fatalf("Clean = %q, want %q", got, "ć")
	}
	if strings.Contains(got, "Ä‡") {
		t.Fatalf("corrupted sequence survived: %q", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full srt document",
			in: "1\n00:00:01,000 --> 00:00:04,000\n<i>Zdravo, kako si?</i>\n\n" +
				"2\n00:00:05,000 --> 00:00:07,250\nDobro sam, hvala.\n- Idemo kuæi.\n",
			want: "Zdravo, kako si? Dobro sam, hvala. - Idemo kući.",
		},
		{
			name: "crlf document",
			in:   "1\r\n00:00:01,000 --> 00:00:02,000\r\nFirst\r\n\r\n",
			want: "First",
		},
		{
			name: "ordered repairs",
			in:   "Ã¨ovjek Ã³ Ã¦ Ã Â",
			want: "čovjek ó ć č",
		},
		{
			name: "replacement character sequence",
			in:   "kuÄ\uFFFDa",
			want: "kuča",
		},
		{
			name: "padding before timing line",
			in:   "12  \n00:01:02,003 --> 00:01:05,000\nLine",
			want: "Line",
		},
		{
			name: "unicode whitespace",
			in:   "text\x1fmore\u2028next\u00a0end",
			want: "text more next end",
		},
		{
			name: "unterminated tag kept",
			in:   "a<b",
			want: "a<b",
		},
		{
			name: "arrow without spaces is not a timing line",
			in:   "1\n00:00:01,000-->00:00:02,000\nx",
			want: "1 00:00:01,000-->00:00:02,000 x",
		},
		{
			name: "non-ascii decimal digits",
			in:   "١\n٠٠:٠٠:٠١,٠٠٠ --> ٠٠:٠٠:٠٢,٠٠٠\nArabic digits",
			want: "Arabic digits",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "only timing",
			in:   "1\n00:00:01,000 --> 00:00:02,000\n\n",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"1\n00:00:01,000 --> 00:00:02,500\nHello world",
		"<b>Šta</b> radiš?\n\n2\n00:00:03,000 --> 00:00:04,000\nNišta   posebno.",
		"Ã¨ovjek  i  Ä‡ao",
		"čćđšž ČĆĐŠŽ",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Fatalf("Clean not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCleanDroppedCircumflexCanExposeRepairKey(t *testing.T) {
	// Â is removed after Å¡ is replaced, so "ÅÂ¡" leaves a fresh Å¡ behind.
	once := Clean("ÅÂ¡")
	if once != "Å¡" {
		t.Fatalf("Clean = %q, want %q", once, "Å¡")
	}
	if twice := Clean(once); twice != "š" {
		t.Fatalf("second Clean = %q, want %q", twice, "š")
	}
}

func TestRepairTable(t *testing.T) {
	table := RepairTable()
	if len(table) != 20 {
		t.Fatalf("expected 20 repairs, got %d", len(table))
	}
	if table[0] != (Repair{From: "æ", To: "ć"}) {
		t.Fatalf("unexpected first entry: %+v", table[0])
	}
	if last := table[len(table)-1]; last != (Repair{From: "Â", To: ""}) {
		t.Fatalf("unexpected last entry: %+v", last)
	}

	index := func(from string) int {
		for i, r := range table {
			if r.From == from {
				return i
			}
		}
		return -1
	}
	for _, prefixed := range []string{"Ã³", "Ã¨", "Ã¦"} {
		if index(prefixed) > index("Ã") {
			t.Fatalf("%q must be repaired before the bare Ã", prefixed)
		}
	}

	table[0].To = "x"
	if RepairTable()[0].To != "ć" {
		t.Fatal("RepairTable must return a copy")
	}
}
