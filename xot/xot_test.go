package xot

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceInterning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlxot.xot")
	defer teardown()
	//
	x := New()
	if x.NoNamespace() != NoNamespace || x.NamespaceURI(NoNamespace) != "" {
		t.Fatalf("expected NoNamespace to denote the empty URI")
	}
	html := x.AddNamespace(HTMLNamespace)
	if html == NoNamespace {
		t.Error("expected a fresh namespace id for XHTML")
	}
	if again := x.AddNamespace(HTMLNamespace); again != html {
		t.Errorf("expected interning to be idempotent, got %d and %d", html, again)
	}
	if id := x.AddNamespace(""); id != NoNamespace {
		t.Errorf("expected empty URI to map to NoNamespace, got %d", id)
	}
	if x.NamespaceCount() != 2 {
		t.Errorf("expected 2 namespaces, have %d", x.NamespaceCount())
	}
	if _, ok := x.Namespace(SVGNamespace); ok {
		t.Error("did not expect SVG namespace to be known")
	}
}

func TestNameInterning(t *testing.T) {
	x := New()
	html := x.AddNamespace(HTMLNamespace)
	p1 := x.AddName("p", html)
	p2 := x.AddName("p", html)
	p3 := x.AddName("p", NoNamespace)
	assert.Equal(t, p1, p2)
	assert.NotEqual(t, p1, p3)
	assert.Equal(t, "p", x.LocalName(p3))
	assert.Equal(t, html, x.NamespaceForName(p1))
	assert.Equal(t, NoNamespace, x.NamespaceForName(p3))
	found, ok := x.Name("p", html)
	assert.True(t, ok)
	assert.Equal(t, p1, found)
}

func TestAppendStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlxot.xot")
	defer teardown()
	//
	x := New()
	doc := x.NewDocument()
	root := x.NewElement(x.AddName("root", NoNamespace))
	require.NoError(t, x.Append(doc, root))
	txt := x.NewText("hello")
	require.NoError(t, x.Append(root, txt))
	//
	err := x.Append(doc, x.NewElement(x.AddName("second", NoNamespace)))
	assert.True(t, errors.Is(err, ErrDocumentElementExists), "got %v", err)
	err = x.Append(txt, x.NewComment("c"))
	assert.True(t, errors.Is(err, ErrNotContainer), "got %v", err)
	err = x.Append(root, x.NewDocument())
	assert.True(t, errors.Is(err, ErrDocumentChild), "got %v", err)
	err = x.Append(root, txt)
	assert.True(t, errors.Is(err, ErrAlreadyAttached), "got %v", err)
	err = x.Append(root, Node(4711))
	assert.True(t, errors.Is(err, ErrInvalidNode), "got %v", err)
	//
	inner := x.NewElement(x.AddName("inner", NoNamespace))
	require.NoError(t, x.Append(root, inner))
	require.NoError(t, x.Detach(root))
	err = x.Append(inner, root)
	assert.True(t, errors.Is(err, ErrCycle), "got %v", err)
}

func TestNavigation(t *testing.T) {
	x := New()
	doc := x.NewDocument()
	root := x.NewElement(x.AddName("root", NoNamespace))
	a := x.NewText("a")
	c := x.NewComment("c")
	b := x.NewElement(x.AddName("b", NoNamespace))
	require.NoError(t, x.Append(doc, root))
	for _, ch := range []Node{a, c, b} {
		require.NoError(t, x.Append(root, ch))
	}
	de, err := x.DocumentElement(doc)
	require.NoError(t, err)
	assert.Equal(t, root, de)
	first, ok := x.FirstChild(root)
	assert.True(t, ok)
	assert.Equal(t, a, first)
	last, ok := x.LastChild(root)
	assert.True(t, ok)
	assert.Equal(t, b, last)
	next, _ := x.NextSibling(a)
	assert.Equal(t, c, next)
	prev, _ := x.PreviousSibling(b)
	assert.Equal(t, c, prev)
	parent, _ := x.Parent(c)
	assert.Equal(t, root, parent)
	assert.Equal(t, doc, x.Root(b))
	assert.Equal(t, []Node{doc, root, a, c, b}, x.Descendants(doc))
	assert.True(t, x.IsText(a))
	assert.True(t, x.IsComment(c))
	assert.True(t, x.IsElement(b))
	assert.True(t, x.IsDocument(doc))
	_, ok = x.LastChild(b)
	assert.False(t, ok)
	_, err = x.DocumentElement(root)
	assert.True(t, errors.Is(err, ErrNotDocument))
	_, err = x.DocumentElement(x.NewDocument())
	assert.True(t, errors.Is(err, ErrNoDocumentElement))
}

func TestTextAndAttributes(t *testing.T) {
	x := New()
	txt := x.NewText("Hello")
	tm, ok := x.TextMut(txt)
	require.True(t, ok)
	tm.Append(", ")
	tm.Append("World")
	s, _ := x.TextStr(txt)
	assert.Equal(t, "Hello, World", s)
	tm.Set("reset")
	assert.Equal(t, 5, tm.Len())
	//
	el := x.NewElement(x.AddName("div", NoNamespace))
	attrs := x.AttributesMut(el)
	require.NotNil(t, attrs)
	id, class := x.AddName("id", NoNamespace), x.AddName("class", NoNamespace)
	attrs.Insert(id, "one")
	attrs.Insert(class, "c")
	attrs.Insert(id, "two")
	assert.Equal(t, []NameID{id, class}, attrs.Names())
	v, _ := attrs.Get(id)
	assert.Equal(t, "two", v)
	attrs.Remove(id)
	assert.Equal(t, 1, attrs.Len())
	assert.Nil(t, x.AttributesMut(txt))
}

func TestTextContent(t *testing.T) {
	x := New()
	p := x.NewElement(x.AddName("p", NoNamespace))
	b := x.NewElement(x.AddName("b", NoNamespace))
	require.NoError(t, x.Append(p, x.NewText("a ")))
	require.NoError(t, x.Append(p, b))
	require.NoError(t, x.Append(b, x.NewText("bold")))
	require.NoError(t, x.Append(p, x.NewComment("skip")))
	require.NoError(t, x.Append(p, x.NewText(" z")))
	assert.Equal(t, "a bold z", x.TextContent(p))
}
