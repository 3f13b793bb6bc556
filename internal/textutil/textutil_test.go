package textutil_test

import (
	"testing"

	"brandstudio/internal/textutil"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long text gets ellipsis", "hello world", 5, "hello..."},
		{"zero limit", "hello", 0, ""},
		{"multibyte runes", "héllo wörld", 5, "héllo..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.Truncate(tc.text, tc.limit); got != tc.want {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.text, tc.limit, got, tc.want)
			}
		})
	}
}

func TestExcerptCollapsesWhitespace(t *testing.T) {
	got := textutil.Excerpt("one\n\ttwo   three\n", 100)
	if got != "one two three" {
		t.Fatalf("unexpected excerpt: %q", got)
	}
}
