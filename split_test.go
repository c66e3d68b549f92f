package strs

import (
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"blank", Split("x y z", ' '), []string{"x", "y", "z"}},
		{"leading and trailing bar", Split("|x|y|", '|'), []string{"", "x", "y"}},
		{"string delimiter", Split("xooy", "oo"), []string{"x", "y"}},
		{"one split", SplitN("xooy", 'o', 1), []string{"x", "oy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSplitEdgeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	tests := []struct {
		name  string
		input string
		sep   string
		n     int
		want  []string
	}{
		{"empty source", "", ",", 0, []string{""}},
		{"not found", "abc", ",", 0, []string{"abc"}},
		{"only delimiter", ",", ",", 0, []string{""}},
		{"two delimiters", ",,", ",", 0, []string{"", ""}},
		{"inner empty segments", "a,,b", ",", 0, []string{"a", "", "b"}},
		{"single trailing empty dropped", "a,b,", ",", 0, []string{"a", "b"}},
		{"second trailing empty kept", "a,b,,", ",", 0, []string{"a", "b", ""}},
		{"limit keeps delimiters in rest", "a,b,c,d", ",", 2, []string{"a", "b", "c,d"}},
		{"limit larger than splits", "a,b", ",", 5, []string{"a", "b"}},
		{"negative limit is unlimited", "a,b,c", ",", -1, []string{"a", "b", "c"}},
		{"limit with empty rest", "a,", ",", 1, []string{"a"}},
		{"multi-char no overlap", "aaaa", "aa", 0, []string{"", ""}},
		{"multi-char partial match", "xoxooy", "oo", 0, []string{"xox", "y"}},
		{"empty delimiter", "a,b", "", 0, []string{"a,b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitN(tt.input, tt.sep, tt.n)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitN(%q, %q, %d) = %q; want %q", tt.input, tt.sep, tt.n, got, tt.want)
			}
		})
	}
}

func TestSplitDelimiterKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	want := []string{"a", "b", "c"}
	if got := Split("a;b;c", byte(';')); !slices.Equal(got, want) {
		t.Errorf("byte delimiter: got %q", got)
	}
	if got := Split("a;b;c", ';'); !slices.Equal(got, want) {
		t.Errorf("rune delimiter: got %q", got)
	}
	if got := Split("a;b;c", ";"); !slices.Equal(got, want) {
		t.Errorf("string delimiter: got %q", got)
	}
	if got := Split("a→b→c", '→'); !slices.Equal(got, want) {
		t.Errorf("multi-byte rune delimiter: got %q", got)
	}
	if got := Split("abc", rune(-1)); !slices.Equal(got, []string{"abc"}) {
		t.Errorf("invalid rune delimiter: got %q", got)
	}
}

func TestSplitBytesBehavesLikeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	input := []byte("|x|y|")
	got := Split(input, '|')
	if !slices.Equal(got, Split(string(input), '|')) {
		t.Fatalf("split of bytes differs from split of string: %q", got)
	}
	input[1] = 'X' // results must not share memory with the input
	if got[1] != "x" {
		t.Errorf("segment changed with input, is %q", got[1])
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	for _, s := range []string{"", "a", "a b", " a  b ", "  ", "x y z"} {
		parts := Split(s, ' ')
		joined := strings.Join(parts, " ")
		if strings.HasSuffix(s, " ") {
			// a single trailing empty segment is dropped
			if joined+" " != s {
				t.Errorf("join(split(%q)) = %q, expected one trailing blank less", s, joined)
			}
			continue
		}
		if joined != s {
			t.Errorf("join(split(%q)) = %q", s, joined)
		}
	}
}
