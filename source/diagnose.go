package source

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Error codes as named by the HTML5 tokenization rules.
const (
	UnexpectedNullCharacter                = "unexpected-null-character"
	DuplicateAttribute                     = "duplicate-attribute"
	EndTagWithAttributes                   = "end-tag-with-attributes"
	UnexpectedQuestionMarkInsteadOfTagName = "unexpected-question-mark-instead-of-tag-name"
)

// Diagnostic is a parse error found in the input. Line and Column are
// 1-based, columns count runes.
type Diagnostic struct {
	Code   string
	Line   int
	Column int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Code)
}

type position struct {
	line, column int
}

func (p *position) advance(b []byte) {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r == '\n' {
			p.line++
			p.column = 1
		} else {
			p.column++
		}
	}
}

// Diagnose tokenizes input and reports the parse errors it detects, in
// input order. The parser recovers from all of them, so they do not change
// the resulting tree. Diagnose does not detect every error of the
// HTML5 standard.
//
// The tokenizer has no tree context. It treats the content of <noscript>
// as raw text, whereas ParseDocument parses it as markup, so errors inside
// <noscript> go unreported.
func Diagnose(input []byte) []Diagnostic {
	var diags []Diagnostic
	report := func(code string, p position) {
		diags = append(diags, Diagnostic{Code: code, Line: p.line, Column: p.column})
	}
	z := html.NewTokenizer(bytes.NewReader(input))
	pos := position{line: 1, column: 1}
	for {
		tt := z.Next()
		raw := z.Raw()
		start := pos
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				tracer().Errorf("tokenizer stopped: %v", z.Err())
			}
			tracer().Debugf("input scanned, %d diagnostics", len(diags))
			return diags
		case html.StartTagToken, html.SelfClosingTagToken:
			if hasDuplicateAttribute(z) {
				report(DuplicateAttribute, start)
			}
		case html.EndTagToken:
			if endTagHasAttributes(raw) {
				report(EndTagWithAttributes, start)
			}
		case html.CommentToken:
			if bytes.HasPrefix(raw, []byte("<?")) {
				report(UnexpectedQuestionMarkInsteadOfTagName, start)
			}
		}
		// NUL characters are reported where they occur, after any
		// diagnostic for the token as a whole
		at := start
		rest := raw
		for {
			i := bytes.IndexByte(rest, 0)
			if i < 0 {
				break
			}
			at.advance(rest[:i])
			report(UnexpectedNullCharacter, at)
			at.advance(rest[i : i+1])
			rest = rest[i+1:]
		}
		pos.advance(raw)
	}
}

func hasDuplicateAttribute(z *html.Tokenizer) bool {
	_, more := z.TagName()
	seen := make(map[string]bool)
	dup := false
	for more {
		var key []byte
		key, _, more = z.TagAttr()
		if seen[string(key)] {
			dup = true
		}
		seen[string(key)] = true
	}
	return dup
}

// endTagHasAttributes checks the raw text of an end tag ("</p class=x>")
// for anything after the tag name. The tokenizer drops attributes of end
// tags, so they have to be found in the raw bytes.
func endTagHasAttributes(raw []byte) bool {
	rest := bytes.TrimPrefix(raw, []byte("</"))
	i := bytes.IndexAny(rest, " \t\n\r\f/>")
	if i < 0 {
		return false
	}
	rest = bytes.TrimRight(rest[i:], ">")
	rest = bytes.Trim(rest, " \t\n\r\f/")
	return len(rest) > 0
}
