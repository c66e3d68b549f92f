/*
Package html extracts plain text from HTML, ready for splitting and trimming
with package strs.

	text, err := html.TextFromHTML(strings.NewReader("<p>Hello <b>World</b></p>"))
	// text == "Hello World"

Layout and styling are not interpreted.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/strs"
	"golang.org/x/net/html"
)

func tracer() tracing.Trace {
	return tracing.Select("strs")
}

// InnerText returns the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// Every text node is trimmed of whitespace; non-empty texts are joined by
// a single blank.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", strs.ErrInvalidArgument
	}
	var texts []string
	texts = collectText(n, texts)
	return strings.Join(texts, " "), nil
}

func collectText(n *html.Node, texts []string) []string {
	if n.Type == html.TextNode {
		if t := strs.Trim(n.Data); t != "" {
			texts = append(texts, t)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		texts = collectText(c, texts)
	}
	return texts
}

// TextFromHTML returns the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (string, error) {
	if input == nil {
		return "", strs.ErrInvalidArgument
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("cannot parse HTML fragment: %v", err)
		return "", err
	}
	var texts []string
	for _, n := range nodes {
		texts = collectText(n, texts)
	}
	tracer().Debugf("extracted %d text nodes from HTML", len(texts))
	return strings.Join(texts, " "), nil
}
