package console

/*
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

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/strs"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Part denotes a part of an output line, used to select a color.
type Part int

// Parts of an output line
const (
	Label    Part = iota // label of a value
	Value                // debug rendering of a value
	Ellipsis             // marker for a value which has been cut off
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth int            // maximum line length in 'en's; 0 for unlimited
	Context   *uax11.Context // context for East Asian ambiguous widths
}

// Printer prints debug representations of values, one per line.
//
// A Printer may be used from more than one goroutine, but lines written
// concurrently to the same io.Writer may interleave.
type Printer struct {
	config *Config
	colors map[Part]*color.Color
}

// NewPrinter creates a printer for output to a console with a fixed-width font.
//
// If config is nil, a heuristic will create a config from the current terminal's
// properties. colors is a map from the parts of an output line to colors.
// It may contain just a subset of the parts; parts without a color are printed
// plain. If colors is nil, a default palette is used.
func NewPrinter(config *Config, colors map[Part]*color.Color) *Printer {
	setupGraphemes()
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	p := &Printer{config: config, colors: colors}
	if p.colors == nil {
		p.colors = makeDefaultPalette()
	}
	return p
}

func makeDefaultPalette() map[Part]*color.Color {
	palette := map[Part]*color.Color{
		Label:    color.New(color.FgBlue),
		Ellipsis: color.New(color.FgRed),
	}
	return palette
}

var defaultPrinter struct {
	once    sync.Once
	printer *Printer
}

// Dump prints a labelled value to stdout, using a printer configured from the
// terminal's properties.
func Dump(label string, v any) error {
	defaultPrinter.once.Do(func() {
		defaultPrinter.printer = NewPrinter(nil, nil)
	})
	return defaultPrinter.printer.Dump(os.Stdout, label, v)
}

// Dump writes a line
//
//	label = <debug format of v>
//
// to w. Values too long for the configured line width are cut off and marked
// with an ellipsis. An empty label omits the "label = " prefix. A label too
// long to leave room for the value is cut off as well, with the value shrinking
// to a single ellipsis. Line widths below 5 cannot be honoured for labelled
// values.
func (p *Printer) Dump(w io.Writer, label string, v any) error {
	if w == nil {
		return strs.ErrInvalidArgument
	}
	ctx := p.context()
	out := errWriter{w: w}
	room := p.config.LineWidth
	if label != "" {
		labelCut := false
		if room > 0 && width(label, ctx)+len(separator)+1 > room {
			label, labelCut = Truncate(label, room-len(separator)-1, ctx)
		}
		out.print(p.colors[Label], label)
		room -= width(label, ctx) + len(separator)
		if labelCut {
			out.print(p.colors[Ellipsis], ellipsis)
			room -= width(ellipsis, ctx)
		}
		out.print(nil, separator)
	}
	text := strs.Dbg(v)
	cut := false
	if p.config.LineWidth > 0 {
		text, cut = Truncate(text, max(room, 1), ctx)
	}
	out.print(p.colors[Value], text)
	if cut {
		out.print(p.colors[Ellipsis], ellipsis)
	}
	out.print(nil, "\n")
	return out.err
}

func (p *Printer) context() *uax11.Context {
	if p.config.Context == nil {
		return uax11.LatinContext
	}
	return p.config.Context
}

// errWriter remembers the first error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) print(c *color.Color, s string) {
	if ew.err != nil || s == "" {
		return
	}
	if c != nil {
		_, ew.err = c.Fprint(ew.w, s)
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// --- Truncation ------------------------------------------------------------

const (
	ellipsis  = "…"
	separator = " = "
)

var graphemeSetup sync.Once

func setupGraphemes() {
	graphemeSetup.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
}

func width(s string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// Truncate cuts off s so that s plus an ellipsis fit into maxWidth fixed-width
// positions. It reports whether s had to be cut. Truncate never splits a
// grapheme cluster. If ctx is nil, uax11.LatinContext is used.
//
// The ellipsis itself is not appended to the result.
func Truncate(s string, maxWidth int, ctx *uax11.Context) (string, bool) {
	setupGraphemes()
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, ctx) <= maxWidth {
		return s, false
	}
	room := maxWidth - width(ellipsis, ctx)
	var b strings.Builder
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := width(g, ctx)
		if gw > room {
			break
		}
		room -= gw
		b.WriteString(g)
	}
	return b.String(), true
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 0 // not a terminal, do not cut values
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
