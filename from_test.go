package strs

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{"bool", From(true), "true"},
		{"int", From(-42), "-42"},
		{"int8", From(int8(math.MinInt8)), "-128"},
		{"int64", From(int64(math.MaxInt64)), "9223372036854775807"},
		{"uint64", From(uint64(math.MaxUint64)), "18446744073709551615"},
		{"rune", From('x'), "120"},
		{"float", From(3.25), "3.25"},
		{"float shortest", From(0.1), "0.1"},
		{"float32", From(float32(0.1)), "0.1"},
		{"float exponent", From(1e21), "1e+21"},
		{"string", From("abc"), "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("got %q; want %q", tt.result, tt.expected)
			}
		})
	}
}

func TestAppendFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	b := []byte("n=")
	b = AppendFrom(b, uint16(7))
	b = AppendFrom(b, ",")
	b = AppendFrom(b, false)
	if string(b) != "n=7,false" {
		t.Errorf("AppendFrom produced %q", b)
	}
}

func TestCat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strs")
	defer teardown()
	//
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{"none", Cat(), ""},
		{"string and int", Cat("hello ", 23), "hello 23"},
		{"address", Cat("127.0.0.1", ":", 7777), "127.0.0.1:7777"},
		{"bytes and float", Cat([]byte("pi~"), 3.14), "pi~3.14"},
		{"error", Cat("failed: ", errors.New("boom")), "failed: boom"},
		{"stringer", Cat(1500 * time.Millisecond), "1.5s"},
		{"nil", Cat(nil), "<nil>"},
		{"other", Cat([]int{1, 2}), "[1 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("got %q; want %q", tt.result, tt.expected)
			}
		})
	}
}
