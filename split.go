package strs

import (
	"strings"
	"unicode/utf8"
)

// Split splits a string at every occurrence of a delimiter.
// It is a shortcut for SplitN(s, sep, 0).
func Split[S Text, D Delimiter](s S, sep D) []string {
	return SplitN(s, sep, 0)
}

// SplitN splits a string at occurrences of a delimiter, performing at most n
// splits. The delimiter may be a single byte, a rune or a string; a string
// delimiter has to match exactly. For n <= 0 the number of splits is unlimited.
// After n splits, the rest of s becomes the last segment, including any
// delimiters it may contain:
//
//	SplitN("xooy", 'o', 1)   =>   [ "x", "oy" ]
//
// Empty segments at the start and in the middle of s are retained, whereas a
// single empty segment at the end is dropped:
//
//	Split("|x|y|", '|')      =>   [ "", "x", "y" ]
//
// Splitting an empty string results in one empty segment. An empty or invalid
// delimiter never matches, resulting in s as the only segment.
func SplitN[S Text, D Delimiter](s S, sep D, n int) []string {
	src := owned(s)
	delim, ok := delimiterString(sep)
	if !ok {
		tracer().Debugf("split: delimiter %q is not valid, will not split", delim)
		return []string{src}
	}
	parts := make([]string, 0, 8)
	from := 0
	for n <= 0 || len(parts) < n {
		i := strings.Index(src[from:], delim)
		if i < 0 {
			break
		}
		parts = append(parts, src[from:from+i])
		from += i + len(delim)
	}
	if from < len(src) || len(parts) == 0 {
		parts = append(parts, src[from:])
	}
	return parts
}

// delimiterString returns the byte sequence to search for. A byte delimiter is
// taken literally, even if it is not a valid UTF-8 sequence on its own; a rune
// is encoded as UTF-8.
func delimiterString[D Delimiter](sep D) (string, bool) {
	switch d := any(sep).(type) {
	case byte:
		return string([]byte{d}), true
	case rune:
		if !utf8.ValidRune(d) {
			return "", false
		}
		return string(d), true
	case string:
		return d, d != ""
	}
	return "", false
}
