package convert

import (
	"github.com/npillmayer/htmlxot/xot"
	"golang.org/x/net/html"
)

// ConvertDocument converts a source document into a new Xot document and
// returns it.
//
// If the converted document turns out empty, the source is treated as a
// fragment: the first element or text node directly below src becomes the
// root of a new document, which is returned instead. If there is no such
// node, the empty document is returned. Fragments with more than one root
// keep the first one only.
func (c *Converter) ConvertDocument(src *html.Node) xot.Node {
	doc := c.x.NewDocument()
	c.Convert(src, doc)
	if _, ok := c.x.FirstChild(doc); ok {
		return doc
	}
	return c.resolveFragmentRoot(src, doc)
}

func (c *Converter) resolveFragmentRoot(src *html.Node, empty xot.Node) xot.Node {
	c.guard.clear()
	if src == nil {
		return empty
	}
	for _, ch := range siblingChain(src.FirstChild) {
		if ch.Type != html.ElementNode && ch.Type != html.TextNode {
			continue
		}
		tracer().Infof("document is empty, re-rooting at %s", describe(ch))
		doc := c.x.NewDocument()
		c.Convert(ch, doc)
		return doc
	}
	tracer().Debugf("no fragment root found, document stays empty")
	return empty
}

// ConvertFragment converts a parsed fragment, i.e. the top-level nodes
// below src, into a new Xot document and returns it. The document is rooted
// at the first element or text node among them, like an empty document in
// ConvertDocument; the other top-level nodes are dropped. Without such a
// node the returned document is empty.
func (c *Converter) ConvertFragment(src *html.Node) xot.Node {
	return c.resolveFragmentRoot(src, c.x.NewDocument())
}
