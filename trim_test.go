package strs

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTrimExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{"default", Trim(" xx\r\n"), "xx"},
		{"both", TrimAny("abxxa", "ab", Both), "xx"},
		{"left", TrimAny("abxxa", "ab", Left), "xxa"},
		{"right", TrimAny("abxxa", "ab", Right), "abxx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("got %q; want %q", tt.result, tt.expected)
			}
		})
	}
}

func TestTrimAnyCharacterSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	if r := TrimAny("--x--", byte('-'), Both); r != "x" {
		t.Errorf("byte set: got %q", r)
	}
	if r := TrimAny("--x--", '-', Left); r != "x--" {
		t.Errorf("rune set: got %q", r)
	}
	if r := TrimAny("»x«", "»«", Both); r != "x" {
		t.Errorf("multi-byte set: got %q", r)
	}
	if r := TrimAny("éxé", byte(0xa9), Right); r != "éxé"[:len("éxé")-1] {
		t.Errorf("byte set must not be decoded as rune: got %q", r)
	}
	if r := TrimAny(" x ", "", Both); r != " x " {
		t.Errorf("empty set: got %q", r)
	}
	if r := TrimAny("axa", "a", Direction('?')); r != "x" {
		t.Errorf("unknown direction: got %q", r)
	}
}

func TestTrimEdgeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\r\n ", ""},
		{"nothing to trim", "x y", "x y"},
		{"inner whitespace kept", "\tx \n y\t", "x \n y"},
		{"other space not trimmed", "\vx\f", "\vx\f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := Trim(tt.input); r != tt.expected {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, r, tt.expected)
			}
		})
	}
}

func TestTrimIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	for _, s := range []string{"", " ", " a ", "\r\na\tb\r\n", "abc", "  x  y  "} {
		once := Trim(s)
		if twice := Trim(once); twice != once {
			t.Errorf("Trim(Trim(%q)) = %q, Trim(%q) = %q", s, twice, s, once)
		}
	}
}

func TestTrimBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	input := []byte("  abc  ")
	r := Trim(input)
	input[2] = 'X'
	if r != "abc" {
		t.Errorf("result changed with input, is %q", r)
	}
}
