/*
Package textfile loads UTF-8 text files as lines of text.

Lines are split with package strs, thus a final line terminator does not
produce an empty last line.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strs'
func tracer() tracing.Trace {
	return tracing.Select("strs")
}
