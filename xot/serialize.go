package xot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var conventionalPrefixes = map[string]string{
	XLinkNamespace: "xlink",
	XMLNamespace:   "xml",
	XMLNSNamespace: "xmlns",
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", "\"", "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;")
)

// nsScope is the namespace context of an element during serialization.
// Scopes are copied on write, children share their parent's maps until
// they declare something themselves.
type nsScope struct {
	defaultNS NamespaceID
	prefixes  map[NamespaceID]string
	used      map[string]bool
}

func (s nsScope) declare(ns NamespaceID, prefix string) nsScope {
	prefixes := make(map[NamespaceID]string, len(s.prefixes)+1)
	used := make(map[string]bool, len(s.used)+1)
	for k, v := range s.prefixes {
		prefixes[k] = v
	}
	for k := range s.used {
		used[k] = true
	}
	prefixes[ns] = prefix
	used[prefix] = true
	return nsScope{defaultNS: s.defaultNS, prefixes: prefixes, used: used}
}

type serializer struct {
	x       *Xot
	w       *bufio.Writer
	counter int
}

type serFrame struct {
	node  Node
	scope nsScope
	close bool // emit the end tag of node
}

// Serialize writes the subtree at n as XML.
//
// Namespace declarations are derived from element and attribute names:
// an element whose namespace differs from its parent's gets a default
// namespace declaration, namespaced attributes get a prefix (xlink, xml and
// xmlns by convention, generated nsN otherwise). Namespace declarations
// present as ordinary attributes are not written, the serializer declares
// what it needs.
//
// Comments are adjusted to be well-formed: a space separates consecutive
// hyphens and follows a trailing hyphen. Element and attribute names which
// are not XML names (e.g. "a:b" from HTML) make Serialize fail with
// ErrInvalidName.
func (x *Xot) Serialize(w io.Writer, n Node) error {
	if x.tn(n) == nil {
		return ErrInvalidNode
	}
	s := &serializer{x: x, w: bufio.NewWriter(w)}
	root := nsScope{defaultNS: NoNamespace}
	stack := []serFrame{{node: n, scope: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.close {
			e, _ := x.Element(top.node)
			s.w.WriteString("</" + x.LocalName(e.name) + ">")
			continue
		}
		switch x.Kind(top.node) {
		case DocumentKind:
			children := x.Children(top.node)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, serFrame{node: children[i], scope: top.scope})
			}
		case TextKind:
			txt, _ := x.TextStr(top.node)
			textEscaper.WriteString(s.w, txt)
		case CommentKind:
			c, _ := x.CommentStr(top.node)
			s.w.WriteString("<!--" + commentText(c) + "-->")
		case ElementKind:
			scope, err := s.startTag(top.node, top.scope)
			if err != nil {
				return err
			}
			children := x.Children(top.node)
			if len(children) == 0 {
				s.w.WriteString("/>")
				continue
			}
			s.w.WriteString(">")
			stack = append(stack, serFrame{node: top.node, scope: scope, close: true})
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, serFrame{node: children[i], scope: scope})
			}
		}
	}
	return s.w.Flush()
}

// ToString serializes the subtree at n into a string.
func (x *Xot) ToString(n Node) (string, error) {
	var sb strings.Builder
	if err := x.Serialize(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (s *serializer) startTag(n Node, scope nsScope) (nsScope, error) {
	e, _ := s.x.Element(n)
	if local := s.x.LocalName(e.name); !IsNCName(local) {
		return scope, fmt.Errorf("element name %q: %w", local, ErrInvalidName)
	}
	ns := s.x.NamespaceForName(e.name)
	var decls []string
	if ns != scope.defaultNS {
		decls = append(decls, fmt.Sprintf(` xmlns="%s"`, attrEscaper.Replace(s.x.NamespaceURI(ns))))
		scope.defaultNS = ns
	}
	var attrs []string
	var bad error
	e.attrs.Each(func(name NameID, value string) {
		ans := s.x.NamespaceForName(name)
		local := s.x.LocalName(name)
		if bad != nil || isNamespaceDeclaration(s.x, ans, local) {
			return
		}
		if !IsNCName(local) {
			bad = fmt.Errorf("attribute name %q: %w", local, ErrInvalidName)
			return
		}
		qname := local
		if ans != NoNamespace {
			prefix, ok := scope.prefixes[ans]
			if !ok {
				prefix = s.newPrefix(ans, scope)
				scope = scope.declare(ans, prefix)
				if prefix != "xml" {
					decls = append(decls, fmt.Sprintf(` xmlns:%s="%s"`, prefix,
						attrEscaper.Replace(s.x.NamespaceURI(ans))))
				}
			}
			qname = prefix + ":" + local
		}
		attrs = append(attrs, fmt.Sprintf(` %s="%s"`, qname, attrEscaper.Replace(value)))
	})
	if bad != nil {
		return scope, bad
	}
	s.w.WriteString("<" + s.x.LocalName(e.name)) // elements always use the default namespace
	for _, d := range decls {
		s.w.WriteString(d)
	}
	for _, a := range attrs {
		s.w.WriteString(a)
	}
	return scope, nil
}

// commentText makes c usable as XML comment content, which must neither
// contain "--" nor end with "-".
func commentText(c string) string {
	for strings.Contains(c, "--") {
		c = strings.ReplaceAll(c, "--", "- -")
	}
	if strings.HasSuffix(c, "-") {
		c += " "
	}
	return c
}

func (s *serializer) newPrefix(ns NamespaceID, scope nsScope) string {
	if p, ok := conventionalPrefixes[s.x.NamespaceURI(ns)]; ok && !scope.used[p] {
		return p
	}
	for {
		s.counter++
		p := fmt.Sprintf("ns%d", s.counter)
		if !scope.used[p] {
			return p
		}
	}
}

func isNamespaceDeclaration(x *Xot, ns NamespaceID, local string) bool {
	if ns == NoNamespace {
		return local == "xmlns"
	}
	return x.NamespaceURI(ns) == XMLNSNamespace
}
