package convert

import (
	"fmt"

	"github.com/npillmayer/htmlxot/source"
	"github.com/npillmayer/htmlxot/xot"
	"golang.org/x/net/html"
)

// Converter converts HTML parse trees into a Xot. A Converter holds its
// Xot exclusively while converting and must not be shared between
// goroutines.
type Converter struct {
	x     *xot.Xot
	ns    *namespaceInterner
	guard *identityGuard
}

// New creates a converter targeting x. The well-known namespaces of HTML
// (XHTML, MathML, SVG, XLink, XML, XMLNS) are interned into x right away.
func New(x *xot.Xot) *Converter {
	return &Converter{
		x:     x,
		ns:    newNamespaceInterner(x),
		guard: newIdentityGuard(),
	}
}

// frame is an entry of the work list: a source node and the target node to
// hang its conversion onto.
type frame struct {
	src    *html.Node
	parent xot.Node
}

// Convert converts the source tree rooted at src and appends the result to
// parent. If src is a document node, its children are appended to parent
// directly.
//
// Convert panics if the Xot rejects a node, which means the source tree
// maps to a structure a Xot cannot hold, e.g. a second element directly
// below a document.
func (c *Converter) Convert(src *html.Node, parent xot.Node) {
	defer func() {
		tracer().Debugf("visited %d source nodes", c.guard.size())
		c.guard.clear()
	}()
	if src == nil {
		return
	}
	stack := []frame{{src: src, parent: parent}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !c.guard.markIfNew(f.src) {
			if t, ok := c.guard.lookup(f.src); ok {
				tracer().Debugf("skipping revisited %s, converted to node %d", describe(f.src), t)
			} else {
				tracer().Debugf("skipping revisited %s", describe(f.src))
			}
			continue
		}
		target, container := c.convertNode(f.src, f.parent)
		if target == xot.NoNode {
			continue
		}
		c.guard.record(f.src, target)
		if !container {
			continue
		}
		children := siblingChain(f.src.FirstChild)
		for i := len(children) - 1; i >= 0; i-- { // LIFO: push in reverse
			stack = append(stack, frame{src: children[i], parent: target})
		}
	}
}

// convertNode produces (or re-uses) the target node for n. It returns
// xot.NoNode for source nodes without a counterpart. container tells if the
// children of n are to be converted below target.
func (c *Converter) convertNode(n *html.Node, parent xot.Node) (target xot.Node, container bool) {
	switch n.Type {
	case html.DocumentNode:
		return parent, true
	case html.ElementNode:
		return c.element(n, parent), true
	case html.TextNode:
		return c.text(n, parent), false
	case html.CommentNode:
		comment := c.x.NewComment(n.Data)
		c.mustAppend(parent, comment, n)
		return comment, false
	}
	// doctype, raw and error nodes have no counterpart
	tracer().Debugf("dropping %s", describe(n))
	return xot.NoNode, false
}

type resolvedAttr struct {
	name  xot.NameID
	value string
}

func (c *Converter) element(n *html.Node, parent xot.Node) xot.Node {
	uri, local := source.ElementName(n)
	name := c.x.AddName(local, c.ns.intern(uri))
	el := c.x.NewElement(name)
	c.mustAppend(parent, el, n)
	if len(n.Attr) == 0 {
		return el
	}
	// all names are resolved before the first attribute is inserted
	resolved := make([]resolvedAttr, len(n.Attr))
	for i, a := range n.Attr {
		uri, local := source.AttributeName(a)
		resolved[i] = resolvedAttr{
			name:  c.x.AddName(local, c.ns.intern(uri)),
			value: a.Val,
		}
	}
	attrs := c.x.AttributesMut(el)
	if attrs == nil {
		c.fail(n, fmt.Errorf("no attribute storage for element %d", el))
	}
	for _, a := range resolved {
		attrs.Insert(a.name, a.value)
	}
	return el
}

// text appends the content of n to the last child of parent, if that is a
// text node. Otherwise a new text node is created.
func (c *Converter) text(n *html.Node, parent xot.Node) xot.Node {
	if last, ok := c.x.LastChild(parent); ok {
		if t, ok := c.x.TextMut(last); ok {
			tracer().Debugf("merging text %q into text node %d", n.Data, last)
			t.Append(n.Data)
			return last
		}
	}
	txt := c.x.NewText(n.Data)
	c.mustAppend(parent, txt, n)
	return txt
}

func (c *Converter) mustAppend(parent, child xot.Node, src *html.Node) {
	if err := c.x.Append(parent, child); err != nil {
		c.fail(src, err)
	}
}

func (c *Converter) fail(src *html.Node, err error) {
	err = fmt.Errorf("converting %s: %w", describe(src), err)
	tracer().Errorf("%v", err)
	panic(err)
}

// siblingChain collects first and its following siblings. It stops at the
// first node repeating within the chain.
func siblingChain(first *html.Node) []*html.Node {
	var chain []*html.Node
	seen := make(map[*html.Node]struct{})
	for n := first; n != nil; n = n.NextSibling {
		if _, ok := seen[n]; ok {
			tracer().Infof("sibling chain loops back to %s", describe(n))
			break
		}
		seen[n] = struct{}{}
		chain = append(chain, n)
	}
	return chain
}

func describe(n *html.Node) string {
	switch n.Type {
	case html.DocumentNode:
		return "document node"
	case html.DoctypeNode:
		return fmt.Sprintf("doctype %q", n.Data)
	case html.ElementNode:
		return fmt.Sprintf("element <%s>", n.Data)
	case html.TextNode:
		return "text node"
	case html.CommentNode:
		return "comment node"
	case html.RawNode:
		return "raw node"
	}
	return fmt.Sprintf("node of type %d", n.Type)
}
