package xot

import "strings"

// Kind classifies the nodes of a Xot.
type Kind uint8

const (
	DocumentKind Kind = iota + 1
	ElementKind
	TextKind
	CommentKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "document"
	case ElementKind:
		return "element"
	case TextKind:
		return "text"
	case CommentKind:
		return "comment"
	}
	return "invalid"
}

// Value is the payload of a node in the underlying tree.
type Value struct {
	kind    Kind
	self    Node
	element *Element
	text    *Text
	comment string
}

// Kind returns the kind of node carrying this value.
func (v *Value) Kind() Kind {
	return v.kind
}

// --- Elements --------------------------------------------------------------

// Element is the element-specific part of an element node.
type Element struct {
	name  NameID
	attrs *Attributes
}

// Name returns the element's name.
func (e *Element) Name() NameID {
	return e.name
}

// SetName renames the element.
func (e *Element) SetName(name NameID) {
	e.name = name
}

// Attributes returns the element's attributes.
func (e *Element) Attributes() *Attributes {
	return e.attrs
}

// Attributes is an insertion-ordered map from attribute names to values.
type Attributes struct {
	order  []NameID
	values map[NameID]string
}

func newAttributes() *Attributes {
	return &Attributes{values: make(map[NameID]string)}
}

// Insert sets the value for name. A name already present keeps its
// position and gets the new value.
func (a *Attributes) Insert(name NameID, value string) {
	if _, ok := a.values[name]; !ok {
		a.order = append(a.order, name)
	}
	a.values[name] = value
}

// Get returns the value for name.
func (a *Attributes) Get(name NameID) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Remove deletes name from the attributes.
func (a *Attributes) Remove(name NameID) {
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.order)
}

// Names returns the attribute names in insertion order.
func (a *Attributes) Names() []NameID {
	names := make([]NameID, len(a.order))
	copy(names, a.order)
	return names
}

// Each calls f for every attribute in insertion order.
func (a *Attributes) Each(f func(name NameID, value string)) {
	for _, n := range a.order {
		f(n, a.values[n])
	}
}

// --- Text ------------------------------------------------------------------

// Text is the mutable content of a text node.
type Text struct {
	buf strings.Builder
}

func newText(s string) *Text {
	t := &Text{}
	t.buf.WriteString(s)
	return t
}

// Get returns the current content.
func (t *Text) Get() string {
	return t.buf.String()
}

// Set replaces the content.
func (t *Text) Set(s string) {
	t.buf.Reset()
	t.buf.WriteString(s)
}

// Append adds s at the end of the content.
func (t *Text) Append(s string) {
	t.buf.WriteString(s)
}

// Len returns the length of the content in bytes.
func (t *Text) Len() int {
	return t.buf.Len()
}
