package xot

import (
	"errors"
	"fmt"

	"github.com/npillmayer/htmlxot/tree"
)

// Errors reported by structural operations.
var (
	ErrInvalidNode           = errors.New("invalid node handle")
	ErrNotContainer          = errors.New("node cannot have children")
	ErrDocumentChild         = errors.New("document node cannot be a child")
	ErrDocumentElementExists = errors.New("document already has a document element")
	ErrAlreadyAttached       = errors.New("node already has a parent")
	ErrCycle                 = errors.New("node cannot become its own descendant")
	ErrNotDocument           = errors.New("node is not a document")
	ErrNoDocumentElement     = errors.New("document has no document element")
	ErrInvalidName           = errors.New("not a valid XML name")
)

// Node is a handle for a node owned by a Xot.
type Node int32

// NoNode is the invalid node handle.
const NoNode Node = -1

// Xot owns nodes, namespaces and names.
type Xot struct {
	nodes      []*tree.Node[*Value]
	namespaces []string
	nsLookup   map[string]NamespaceID
	names      []nameKey
	nameLookup map[nameKey]NameID
}

// New creates an empty Xot. Its namespace table contains NoNamespace only.
func New() *Xot {
	x := &Xot{
		nsLookup:   make(map[string]NamespaceID),
		nameLookup: make(map[nameKey]NameID),
	}
	x.AddNamespace("")
	return x
}

func (x *Xot) tn(n Node) *tree.Node[*Value] {
	if n < 0 || int(n) >= len(x.nodes) {
		return nil
	}
	return x.nodes[n]
}

func (x *Xot) handle(t *tree.Node[*Value]) Node {
	if t == nil {
		return NoNode
	}
	return t.Payload.self
}

func (x *Xot) newNode(v *Value) Node {
	v.self = Node(len(x.nodes))
	x.nodes = append(x.nodes, tree.NewNode(v))
	return v.self
}

// Len returns the number of nodes ever created in x, attached or not.
func (x *Xot) Len() int {
	return len(x.nodes)
}

// --- Creation --------------------------------------------------------------

// NewDocument creates a new, empty document node.
func (x *Xot) NewDocument() Node {
	return x.newNode(&Value{kind: DocumentKind})
}

// NewElement creates a new element node without attributes or children.
func (x *Xot) NewElement(name NameID) Node {
	return x.newNode(&Value{
		kind:    ElementKind,
		element: &Element{name: name, attrs: newAttributes()},
	})
}

// NewText creates a new text node.
func (x *Xot) NewText(s string) Node {
	return x.newNode(&Value{kind: TextKind, text: newText(s)})
}

// NewComment creates a new comment node.
func (x *Xot) NewComment(s string) Node {
	return x.newNode(&Value{kind: CommentKind, comment: s})
}

// --- Structure -------------------------------------------------------------

// Append adds child as the last child of parent.
//
// Only documents and elements take children. A document node cannot be
// appended anywhere, a document takes at most one element child, and
// child must not already be attached.
func (x *Xot) Append(parent, child Node) error {
	p, c := x.tn(parent), x.tn(child)
	if p == nil || c == nil {
		return fmt.Errorf("append %d to %d: %w", child, parent, ErrInvalidNode)
	}
	pk, ck := p.Payload.kind, c.Payload.kind
	if pk != DocumentKind && pk != ElementKind {
		return fmt.Errorf("append to %s node: %w", pk, ErrNotContainer)
	}
	if ck == DocumentKind {
		return ErrDocumentChild
	}
	if c.Parent() != nil {
		return fmt.Errorf("append node %d: %w", child, ErrAlreadyAttached)
	}
	if p == c || c.ChildCount() > 0 { // a leaf cannot be an ancestor of parent
		for anc := p; anc != nil; anc = anc.Parent() {
			if anc == c {
				return ErrCycle
			}
		}
	}
	if pk == DocumentKind && ck == ElementKind {
		if _, err := x.DocumentElement(parent); err == nil {
			return ErrDocumentElementExists
		}
	}
	p.AddChild(c)
	return nil
}

// Detach removes node from its parent. Detaching a root is a no-op.
func (x *Xot) Detach(node Node) error {
	t := x.tn(node)
	if t == nil {
		return ErrInvalidNode
	}
	t.Isolate()
	return nil
}

// Kind returns the kind of a node, or 0 for invalid handles.
func (x *Xot) Kind(n Node) Kind {
	if t := x.tn(n); t != nil {
		return t.Payload.kind
	}
	return 0
}

// IsDocument is true for document nodes.
func (x *Xot) IsDocument(n Node) bool { return x.Kind(n) == DocumentKind }

// IsElement is true for element nodes.
func (x *Xot) IsElement(n Node) bool { return x.Kind(n) == ElementKind }

// IsText is true for text nodes.
func (x *Xot) IsText(n Node) bool { return x.Kind(n) == TextKind }

// IsComment is true for comment nodes.
func (x *Xot) IsComment(n Node) bool { return x.Kind(n) == CommentKind }

// Parent returns the parent of n.
func (x *Xot) Parent(n Node) (Node, bool) {
	t := x.tn(n)
	if t == nil || t.Parent() == nil {
		return NoNode, false
	}
	return x.handle(t.Parent()), true
}

// FirstChild returns the first child of n.
func (x *Xot) FirstChild(n Node) (Node, bool) {
	t := x.tn(n)
	if t == nil {
		return NoNode, false
	}
	ch, ok := t.FirstChild()
	return x.handle(ch), ok
}

// LastChild returns the last child of n.
func (x *Xot) LastChild(n Node) (Node, bool) {
	t := x.tn(n)
	if t == nil {
		return NoNode, false
	}
	ch, ok := t.LastChild()
	return x.handle(ch), ok
}

// NextSibling returns the sibling following n.
func (x *Xot) NextSibling(n Node) (Node, bool) {
	t := x.tn(n)
	if t == nil {
		return NoNode, false
	}
	sib, ok := t.NextSibling()
	return x.handle(sib), ok
}

// PreviousSibling returns the sibling preceding n.
func (x *Xot) PreviousSibling(n Node) (Node, bool) {
	t := x.tn(n)
	if t == nil {
		return NoNode, false
	}
	sib, ok := t.PrevSibling()
	return x.handle(sib), ok
}

// Children returns the children of n in order.
func (x *Xot) Children(n Node) []Node {
	t := x.tn(n)
	if t == nil {
		return nil
	}
	children := t.Children()
	handles := make([]Node, len(children))
	for i, ch := range children {
		handles[i] = x.handle(ch)
	}
	return handles
}

// Descendants returns n and all nodes below it in document order.
func (x *Xot) Descendants(n Node) []Node {
	var nodes []Node
	_ = tree.Walk(x.tn(n), func(t *tree.Node[*Value], _ int) (bool, error) {
		nodes = append(nodes, t.Payload.self)
		return true, nil
	})
	return nodes
}

// DocumentElement returns the single element child of a document node.
func (x *Xot) DocumentElement(doc Node) (Node, error) {
	t := x.tn(doc)
	if t == nil {
		return NoNode, ErrInvalidNode
	}
	if t.Payload.kind != DocumentKind {
		return NoNode, ErrNotDocument
	}
	for _, ch := range t.Children() {
		if ch.Payload.kind == ElementKind {
			return ch.Payload.self, nil
		}
	}
	return NoNode, ErrNoDocumentElement
}

// Root returns the topmost ancestor of n (n itself if it is unattached).
func (x *Xot) Root(n Node) Node {
	t := x.tn(n)
	if t == nil {
		return NoNode
	}
	for t.Parent() != nil {
		t = t.Parent()
	}
	return t.Payload.self
}

// --- Node content ----------------------------------------------------------

// Element returns the element part of an element node.
func (x *Xot) Element(n Node) (*Element, bool) {
	if t := x.tn(n); t != nil && t.Payload.kind == ElementKind {
		return t.Payload.element, true
	}
	return nil, false
}

// AttributesMut returns the attribute storage of an element node for
// mutation, or nil for other nodes.
func (x *Xot) AttributesMut(n Node) *Attributes {
	if e, ok := x.Element(n); ok {
		return e.attrs
	}
	return nil
}

// Attributes returns the attributes of an element node, or nil for other
// nodes. Callers must not modify them; use AttributesMut for that.
func (x *Xot) Attributes(n Node) *Attributes {
	return x.AttributesMut(n)
}

// TextMut returns the mutable content of a text node.
func (x *Xot) TextMut(n Node) (*Text, bool) {
	if t := x.tn(n); t != nil && t.Payload.kind == TextKind {
		return t.Payload.text, true
	}
	return nil, false
}

// TextStr returns the content of a text node.
func (x *Xot) TextStr(n Node) (string, bool) {
	if t, ok := x.TextMut(n); ok {
		return t.Get(), true
	}
	return "", false
}

// CommentStr returns the content of a comment node.
func (x *Xot) CommentStr(n Node) (string, bool) {
	if t := x.tn(n); t != nil && t.Payload.kind == CommentKind {
		return t.Payload.comment, true
	}
	return "", false
}

// TextContent concatenates all text below n in document order.
func (x *Xot) TextContent(n Node) string {
	var s []byte
	for _, d := range x.Descendants(n) {
		if txt, ok := x.TextStr(d); ok {
			s = append(s, txt...)
		}
	}
	return string(s)
}
