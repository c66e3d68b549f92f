package strs

import "strings"

// Replace replaces occurrences of sub in s by to, returning a new string.
// Matches are found from left to right and do not overlap. At most n
// occurrences will be replaced, where n <= 0 means all of them:
//
//	Replace("xooxoox", "oo", "ee", 0)   =>   "xeexeex"
//	Replace("xooxoox", "oo", "ee", 1)   =>   "xeexoox"
//
// An empty sub does not match anything and s is returned unchanged.
func Replace[S Text](s S, sub, to string, n int) string {
	src := owned(s)
	if sub == "" {
		tracer().Debugf("replace: empty substring, nothing to replace")
		return src
	}
	if n <= 0 {
		n = -1
	}
	return strings.Replace(src, sub, to, n)
}
