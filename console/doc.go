/*
Package console prints debug renderings of values to a terminal.

Debug output of nested containers quickly gets longer than a terminal line.
Package console prints one labelled value per line, colors label and value
differently, and cuts off values exceeding the terminal's width:

	console.Dump("args", strs.List[string]{"-v", "--out", "x.txt"})

will print

	args = ["-v","--out","x.txt"]

Widths are measured in fixed-width positions ('en's), following UAX#11
(East Asian Width), and values are never cut within a grapheme (UAX#29).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'strs'
func tracer() tracing.Trace {
	return tracing.Select("strs")
}
