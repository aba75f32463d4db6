package htmlxot

import (
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htmlxot/convert"
	"github.com/npillmayer/htmlxot/source"
	"github.com/npillmayer/htmlxot/xot"
	"golang.org/x/net/html"
)

// ParseHTML parses markup and converts it into a document node of x, which
// is returned.
//
// If the input does not produce any element, text or comment (e.g., an empty
// fragment) the document node is returned without children. Errors are
// of type *ParseError.
func ParseHTML(x *xot.Xot, markup string, opts ...Option) (xot.Node, error) {
	return parse(x, []byte(markup), applyOptions(opts))
}

// ParseHTMLReader reads all of r and parses it like ParseHTML. A failing
// reader results in a *ParseError of kind ErrRead.
func ParseHTMLReader(x *xot.Xot, r io.Reader, opts ...Option) (xot.Node, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return xot.NoNode, &ParseError{Kind: ErrRead, Cause: err}
	}
	return parse(x, input, applyOptions(opts))
}

// ParseHTMLSelection parses markup and converts the first element matching
// a CSS selector, together with its subtree. The element becomes the
// document element of a new document node, which is returned.
func ParseHTMLSelection(x *xot.Xot, markup string, selector string, opts ...Option) (xot.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return xot.NoNode, fmt.Errorf("%w %q: %w", ErrSelector, selector, err)
	}
	src, err := parseSource([]byte(markup), applyOptions(opts))
	if err != nil {
		return xot.NoNode, err
	}
	match := cascadia.Query(src, sel)
	if match == nil {
		return xot.NoNode, fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}
	tracer().Debugf("selector %q matches <%s>", selector, match.Data)
	doc := x.NewDocument()
	convert.New(x).Convert(match, doc)
	return doc, nil
}

func parse(x *xot.Xot, input []byte, s settings) (xot.Node, error) {
	src, err := parseSource(input, s)
	if err != nil {
		return xot.NoNode, err
	}
	if s.mode == ModeFragment {
		return convert.New(x).ConvertFragment(src), nil
	}
	return convert.New(x).ConvertDocument(src), nil
}

// parseSource checks input for parse errors and parses it. Nothing here
// touches the target Xot.
func parseSource(input []byte, s settings) (*html.Node, error) {
	if s.diagnostics == DiagnosticsStrict {
		if diags := source.Diagnose(input); len(diags) > 0 {
			tracer().Infof("input has %d parse errors", len(diags))
			return nil, &ParseError{Kind: ErrDiagnostics, Diagnostics: diags}
		}
	}
	tracer().Debugf("parsing %d bytes in %s mode", len(input), s.mode)
	var src *html.Node
	var err error
	if s.mode == ModeFragment {
		src, err = source.ParseFragment(input, s.context)
	} else {
		src, err = source.ParseDocument(input)
	}
	if err != nil {
		return nil, &ParseError{Kind: ErrRead, Cause: err}
	}
	return src, nil
}
