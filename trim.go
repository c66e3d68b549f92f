package strs

import (
	"strings"
)

// Direction selects the side(s) of a string to trim.
type Direction byte

// Directions for TrimAny. Other values are treated as Both.
const (
	Left  Direction = 'l'
	Right Direction = 'r'
	Both  Direction = 'b'
)

// Whitespace is the default set of characters removed by Trim.
const Whitespace = " \t\r\n"

// Trim removes leading and trailing spaces, tabs, carriage returns and
// newlines from s.
func Trim[S Text](s S) string {
	return TrimAny(s, Whitespace, Both)
}

// TrimAny removes the longest runs of characters contained in set from the
// start and/or end of s, as selected by dir:
//
//	TrimAny("abxxa", "ab", Both)    =>   "xx"
//	TrimAny("abxxa", "ab", Left)    =>   "xxa"
//	TrimAny("abxxa", "ab", Right)   =>   "abxx"
//
// A byte set trims exactly that byte, whereas runes and strings are handled
// as sets of UTF-8 characters. An empty set leaves s unchanged.
func TrimAny[S Text, D Delimiter](s S, set D, dir Direction) string {
	src := string(s)
	if dir != Left && dir != Right && dir != Both {
		tracer().Debugf("trim: unknown direction %q, trimming both sides", byte(dir))
		dir = Both
	}
	var left, right func(string) string
	switch c := any(set).(type) {
	case byte:
		left = func(x string) string {
			for len(x) > 0 && x[0] == c {
				x = x[1:]
			}
			return x
		}
		right = func(x string) string {
			for len(x) > 0 && x[len(x)-1] == c {
				x = x[:len(x)-1]
			}
			return x
		}
	default:
		cutset, ok := delimiterString(set)
		if !ok {
			return owned(s)
		}
		left = func(x string) string { return strings.TrimLeft(x, cutset) }
		right = func(x string) string { return strings.TrimRight(x, cutset) }
	}
	if dir != Right {
		src = left(src)
	}
	if dir != Left {
		src = right(src)
	}
	return strings.Clone(src)
}
