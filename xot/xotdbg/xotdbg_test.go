package xotdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/htmlxot/xot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) (*xot.Xot, xot.Node) {
	t.Helper()
	x := xot.New()
	html := x.AddNamespace(xot.HTMLNamespace)
	doc := x.NewDocument()
	body := x.NewElement(x.AddName("body", html))
	p := x.NewElement(x.AddName("p", html))
	x.AttributesMut(p).Insert(x.AddName("class", xot.NoNamespace), "intro")
	for _, step := range [][2]xot.Node{
		{doc, body}, {body, p}, {p, x.NewText("Hello")}, {body, x.NewComment("note")},
	} {
		require.NoError(t, x.Append(step[0], step[1]))
	}
	return x, doc
}

func TestPrint(t *testing.T) {
	x, doc := buildTree(t)
	out := Print(x, doc)
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "#document", lines[0])
	assert.Contains(t, lines[1], "html:body")
	assert.Contains(t, lines[2], `html:p class="intro"`)
	assert.Contains(t, lines[3], `"Hello"`)
	assert.Contains(t, lines[4], "<!--note-->")
}

func TestLabelShortensText(t *testing.T) {
	x := xot.New()
	txt := x.NewText(strings.Repeat("x", 40))
	assert.Equal(t, `"`+strings.Repeat("x", 24)+`…"`, Label(x, txt))
	custom := x.AddNamespace("urn:c")
	assert.Equal(t, "{urn:c}e", QName(x, x.AddName("e", custom)))
}

func TestToGraphViz(t *testing.T) {
	x, doc := buildTree(t)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(x, doc, &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 4, strings.Count(dot, "->"), "one edge per non-root node")
	assert.Contains(t, dot, `label="html:body" shape=ellipse`)
}

func TestYAML(t *testing.T) {
	x, doc := buildTree(t)
	body, err := x.DocumentElement(doc)
	require.NoError(t, err)
	out, err := YAML(x, body)
	require.NoError(t, err)
	t.Logf("\n%s", out)
	var tree map[string]any
	require.NoError(t, yaml.Unmarshal(out, &tree))
	assert.Equal(t, "html:body", tree["element"])
	children, ok := tree["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 2)
	p := children[0].(map[string]any)
	assert.Equal(t, "html:p", p["element"])
	assert.Equal(t, map[string]any{"class": "intro"}, p["attributes"])
	assert.Equal(t, map[string]any{"comment": "note"}, children[1])
	_, err = YAML(x, xot.NoNode)
	assert.ErrorIs(t, err, xot.ErrInvalidNode)
}
