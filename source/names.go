package source

import (
	"github.com/npillmayer/htmlxot/xot"
	"golang.org/x/net/html"
)

// ElementName returns namespace URI and local name of an element node.
// HTML elements are in the XHTML namespace.
func ElementName(n *html.Node) (uri, local string) {
	switch n.Namespace {
	case "":
		return xot.HTMLNamespace, n.Data
	case "svg":
		return xot.SVGNamespace, n.Data
	case "math":
		return xot.MathMLNamespace, n.Data
	}
	return n.Namespace, n.Data
}

// AttributeName returns namespace URI and local name of an attribute.
// Unprefixed attributes, including a plain "xmlns", have no namespace.
func AttributeName(a html.Attribute) (uri, local string) {
	switch a.Namespace {
	case "":
		return "", a.Key
	case "xlink":
		return xot.XLinkNamespace, a.Key
	case "xml":
		return xot.XMLNamespace, a.Key
	case "xmlns":
		return xot.XMLNSNamespace, a.Key
	}
	return a.Namespace, a.Key
}
