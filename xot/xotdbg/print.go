package xotdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/htmlxot/xot"
	tp "github.com/xlab/treeprint"
)

var nsLabels = map[string]string{
	xot.HTMLNamespace:   "html",
	xot.SVGNamespace:    "svg",
	xot.MathMLNamespace: "math",
	xot.XLinkNamespace:  "xlink",
	xot.XMLNamespace:    "xml",
	xot.XMLNSNamespace:  "xmlns",
}

// Print lists the subtree at n as an indented tree.
//
//	#document
//	└── html:html
//	    ├── html:head
//	    └── html:body
//	        └── "Hello"
func Print(x *xot.Xot, n xot.Node) string {
	printer := tp.NewWithRoot(Label(x, n))
	type entry struct {
		node   xot.Node
		branch tp.Tree
	}
	stack := []entry{{n, printer}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := x.Children(top.node)
		branches := make([]entry, len(children))
		for i, ch := range children {
			if len(x.Children(ch)) == 0 {
				top.branch.AddNode(Label(x, ch))
				continue
			}
			branches[i] = entry{ch, top.branch.AddBranch(Label(x, ch))}
		}
		for i := len(branches) - 1; i >= 0; i-- {
			if branches[i].branch != nil {
				stack = append(stack, branches[i])
			}
		}
	}
	return printer.String()
}

// Label is a short description of a node.
func Label(x *xot.Xot, n xot.Node) string {
	switch x.Kind(n) {
	case xot.DocumentKind:
		return "#document"
	case xot.ElementKind:
		e, _ := x.Element(n)
		var sb strings.Builder
		sb.WriteString(QName(x, e.Name()))
		e.Attributes().Each(func(name xot.NameID, value string) {
			fmt.Fprintf(&sb, " %s=%q", QName(x, name), value)
		})
		return sb.String()
	case xot.TextKind:
		s, _ := x.TextStr(n)
		return shortText(s)
	case xot.CommentKind:
		s, _ := x.CommentStr(n)
		return "<!--" + shorten(s) + "-->"
	}
	return fmt.Sprintf("invalid node %d", n)
}

// QName prints a name with a short label for its namespace, if any.
func QName(x *xot.Xot, name xot.NameID) string {
	ns := x.NamespaceForName(name)
	if ns == xot.NoNamespace {
		return x.LocalName(name)
	}
	uri := x.NamespaceURI(ns)
	if label, ok := nsLabels[uri]; ok {
		return label + ":" + x.LocalName(name)
	}
	return "{" + uri + "}" + x.LocalName(name)
}

func shortText(s string) string {
	return fmt.Sprintf("%q", shorten(s))
}

func shorten(s string) string {
	if r := []rune(s); len(r) > 24 {
		return string(r[:24]) + "…"
	}
	return s
}
