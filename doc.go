/*
Package htmlxot parses HTML into a namespace-aware document tree.

Parsing HTML is done by the HTML5 parser of golang.org/x/net/html, which
follows the WHATWG tree construction rules. Its result is converted into a
xot.Xot, a generic document tree with interned names and namespaces, which
clients may then inspect, transform or serialize as XML:

	x := xot.New()
	doc, err := htmlxot.ParseHTML(x, "<h1>Hello <em>World</em></h1>")
	if err != nil {
		...
	}
	s, _ := x.ToString(doc)
	// <html xmlns="http://www.w3.org/1999/xhtml"><head></head><body><h1>Hello ...

HTML elements are put into the XHTML namespace, SVG and MathML content
into their respective namespaces.

# Parse Errors

HTML parsers recover from every syntax error. Before parsing, the input is
scanned for parse errors; by default, finding any aborts parsing with a
*ParseError listing all of them. Use WithDiagnostics(DiagnosticsIgnore) for
lenient parsing.

# Fragments

By default the input is parsed as a complete document, getting an <html>
element even if the input does not mention it. WithMode(ModeFragment)
parses the input as the content of a <body> (or another element set with
WithFragmentContext) instead. A document holds a single root, so the
result is rooted at the first element or text node of the fragment, and
later top-level nodes are dropped.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlxot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlxot'.
func tracer() tracing.Trace {
	return tracing.Select("htmlxot")
}
