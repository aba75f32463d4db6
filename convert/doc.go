/*
Package convert translates an HTML parse tree into a Xot document tree.

The source tree is a tree of *html.Node, as produced by golang.org/x/net/html.
Its node model is loose: names carry short namespace keys, a parent may
have adjacent text children, and nothing prevents a tree built by hand from
sharing or cycling nodes. The target is a xot.Xot with interned names and
namespaces.

A Converter walks the source tree with an explicit work list, so deep
trees do not grow the goroutine stack. It maps node kinds as follows:

	source         target
	----------------------------------------------------------
	document       none, children go to the target parent
	doctype        none
	element        element, namespace and attributes resolved
	text           text, merged into a preceding text sibling
	comment        comment
	raw, error     none

Every source node is visited at most once per conversion. Revisited nodes
(shared subtrees or cycles) are skipped silently.

Fragments are rooted at their first top-level element or text node, see
ConvertFragment. ConvertDocument falls back to the same rule if a source
document converts to an empty document.

Errors from the Xot during conversion are programming errors of this
package and panic.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package convert

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlxot.convert'.
func tracer() tracing.Trace {
	return tracing.Select("htmlxot.convert")
}
