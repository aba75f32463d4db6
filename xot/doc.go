/*
Package xot implements a namespace-aware generic document tree.

A Xot owns every node it creates. Clients never hold nodes directly but
refer to them through compact Node handles, and names are interned into
NameID and NamespaceID handles, so comparing two names is comparing two
integers.

# Node Kinds

There are four kinds of nodes: documents, elements, text and comments.
A document has at most one element child, its document element. Text and
comment nodes are leaves. Processing instructions, doctypes and the like
are not modeled.

	x := xot.New()
	doc := x.NewDocument()
	ns := x.AddNamespace("http://www.w3.org/1999/xhtml")
	p := x.NewElement(x.AddName("p", ns))
	_ = x.Append(doc, p)
	_ = x.Append(p, x.NewText("Hello"))

Append validates the structure and reports violations as errors. It does
not merge adjacent text nodes; builders which care about that (like the
HTML converter) do so themselves.

# Concurrency

A Xot is not safe for concurrent mutation. Readers may share a Xot once it
is no longer modified.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package xot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlxot.xot'.
func tracer() tracing.Trace {
	return tracing.Select("htmlxot.xot")
}
