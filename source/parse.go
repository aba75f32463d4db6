package source

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultContext is the context element for fragment parsing if none is
// given.
const DefaultContext = "body"

// ParseDocument parses input as a complete HTML document. Scripting is
// disabled, i.e. the content of <noscript> is parsed as markup.
//
// The parser completes missing structure, so the result always has an
// <html> element with <head> and <body>.
func ParseDocument(input []byte) (*html.Node, error) {
	doc, err := html.ParseWithOptions(bytes.NewReader(input), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML document: %w", err)
	}
	return doc, nil
}

// ParseFragment parses input as the content of an element named context
// (DefaultContext if empty). The resulting top-level nodes are placed under
// a synthetic document node, which is returned.
//
// An empty input results in a document node without children.
func ParseFragment(input []byte, context string) (*html.Node, error) {
	context = strings.ToLower(strings.TrimSpace(context))
	if context == "" {
		context = DefaultContext
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     context,
		DataAtom: atom.Lookup([]byte(context)),
	}
	nodes, err := html.ParseFragmentWithOptions(bytes.NewReader(input), ctx,
		html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML fragment in <%s>: %w", context, err)
	}
	doc := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes { // nodes are detached
		doc.AppendChild(n)
	}
	tracer().Debugf("fragment in <%s> has %d top-level nodes", context, len(nodes))
	return doc, nil
}
