package capture

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Stats
	}{
		{"mixed", "a b\nc", Stats{Lines: 2, Words: 3, Chars: 5}},
		{"empty", "", Stats{}},
		{"trailing newline", "foo\n", Stats{Lines: 1, Words: 1, Chars: 4}},
		{"lone newline", "\n", Stats{Lines: 1, Words: 0, Chars: 1}},
		{"blank line inside", "a\n\nb", Stats{Lines: 3, Words: 2, Chars: 4}},
		{"crlf", "x\r\ny", Stats{Lines: 2, Words: 2, Chars: 4}},
		{"tabs and spaces", " \tone  two\t", Stats{Lines: 1, Words: 2, Chars: 11}},
		{"multibyte", "héllo", Stats{Lines: 1, Words: 1, Chars: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Measure(tt.text); got != tt.want {
				t.Errorf("Measure(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStatsString(t *testing.T) {
	got := Measure("a b\nc").String()
	want := "[2 lines, 3 words, 5 chars, pasted from clipboard]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Measure depends only on the paste's own text.
func TestMeasureIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		other := rapid.String().Draw(t, "other")

		first := Measure(text)
		Measure(other)
		second := Measure(text)

		if first != second {
			t.Fatalf("Measure(%q) changed between calls: %+v then %+v", text, first, second)
		}
		if first.Chars != len(text) {
			t.Fatalf("Chars = %d, want byte length %d", first.Chars, len(text))
		}
		if first.Words != len(strings.Fields(text)) {
			t.Fatalf("Words = %d, want %d", first.Words, len(strings.Fields(text)))
		}
		if text == "" && first.Lines != 0 {
			t.Fatalf("empty text reported %d lines", first.Lines)
		}
	})
}
