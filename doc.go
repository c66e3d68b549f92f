/*
Package strs offers a small set of string helpers for libraries which have
to take texts apart and put them together again.

Splitting, Replacing and Trimming

Split and SplitN cut a string at a delimiter, which may be a single byte, a
rune or a string:

	strs.Split("x y z", ' ')     // => [ "x", "y", "z" ]
	strs.Split("|x|y|", '|')     // => [ "", "x", "y" ]
	strs.Split("xooy", "oo")     // => [ "x", "y" ]
	strs.SplitN("xooy", 'o', 1)  // => [ "x", "oy" ]

Leading and inner empty segments are kept, a single trailing empty segment is
not. Replace and TrimAny work in the same fashion:

	strs.Replace("xooxoox", "oo", "ee", 1)    // => "xeexoox"
	strs.Trim(" xx\r\n")                      // => "xx"
	strs.TrimAny("abxxa", "ab", strs.Left)    // => "xxa"

All operations accept strings as well as byte slices and never hand out
results sharing memory with a caller's byte slice.

Conversions

Parse functions return a value together with an error, which wraps either
ErrInvalidFormat or ErrOutOfRange. Clients who prefer a zero value as a
usable default may use a Converter, which remembers the last error code
(OK, EINVAL or ERANGE) much like errno does in C:

	var c strs.Converter
	n := strs.ToInt32(&c, "99999999999999")   // n == 0, c.Errno() == strs.ERANGE

Debug Output

Dbg renders values for diagnostic output. Strings are quoted, pairs are
printed as key:value, lists as [a,b] and sets and maps as {a,b}:

	strs.Dbg(strs.List[int]{1, 2, 3})           // => [1,2,3]
	strs.Dbg(strs.Pair[int, string]{1, "a"})    // => 1:"a"
	strs.Dbg(map[string][]int{"x": {1, 2}})     // => {"x":[1,2]}

Debug output is not escaped and is not meant to be parsed again.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package strs

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strs'
func tracer() tracing.Trace {
	return tracing.Select("strs")
}

// Text is the set of types all operations of this package accept as input.
type Text interface {
	~string | ~[]byte
}

// Delimiter is the set of types usable as a delimiter or as a set of
// characters: a single byte, a single rune or a string of characters.
type Delimiter interface {
	byte | rune | string
}

// StrError is an error type for the strs module
type StrError string

func (e StrError) Error() string {
	return string(e)
}

// ErrInvalidFormat is flagged whenever an input does not match the grammar
// of the conversion's target type.
const ErrInvalidFormat = StrError("invalid format")

// ErrOutOfRange is flagged whenever an input is well-formed, but its value
// cannot be represented by the conversion's target type.
const ErrOutOfRange = StrError("value out of range")

// ErrInvalidArgument is flagged whenever function parameters are invalid.
const ErrInvalidArgument = StrError("invalid argument")

// owned returns a string copy of s which does not share memory with s.
func owned[S Text](s S) string {
	if b, ok := any(s).([]byte); ok {
		return string(b)
	}
	return strings.Clone(string(s))
}
