package htmlxot

import "github.com/npillmayer/htmlxot/source"

// Mode selects how input is parsed.
type Mode int

const (
	// ModeDocument parses input as a complete HTML document.
	ModeDocument Mode = iota
	// ModeFragment parses input as the content of a context element.
	ModeFragment
)

func (m Mode) String() string {
	if m == ModeFragment {
		return "fragment"
	}
	return "document"
}

// DiagnosticsPolicy decides what happens if the input contains parse errors.
type DiagnosticsPolicy int

const (
	// DiagnosticsStrict reports parse errors and does not build a tree.
	DiagnosticsStrict DiagnosticsPolicy = iota
	// DiagnosticsIgnore builds a tree regardless of parse errors.
	DiagnosticsIgnore
)

type settings struct {
	mode        Mode
	diagnostics DiagnosticsPolicy
	context     string
}

func defaultSettings() settings {
	return settings{
		mode:        ModeDocument,
		diagnostics: DiagnosticsStrict,
		context:     source.DefaultContext,
	}
}

// Option is a type to configure parsing.
// Multiple options may be passed to the parsing functions.
type Option struct {
	config func(settings) settings
}

// WithMode sets the parse mode. Default is ModeDocument.
func WithMode(mode Mode) Option {
	return Option{config: func(s settings) settings {
		s.mode = mode
		return s
	}}
}

// WithDiagnostics sets the policy for parse errors. Default is
// DiagnosticsStrict.
func WithDiagnostics(policy DiagnosticsPolicy) Option {
	return Option{config: func(s settings) settings {
		s.diagnostics = policy
		return s
	}}
}

// WithFragmentContext sets the tag name of the element whose content a
// fragment is parsed as. It is effective in ModeFragment only.
// Default is "body".
//
// Use it like this:
//
//	doc, err := htmlxot.ParseHTML(x, "<tr><td>1</td></tr>",
//	    htmlxot.WithMode(htmlxot.ModeFragment), htmlxot.WithFragmentContext("tbody"))
func WithFragmentContext(tag string) Option {
	return Option{config: func(s settings) settings {
		if tag != "" {
			s.context = tag
		}
		return s
	}}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, option := range opts {
		if option.config != nil {
			s = option.config(s)
		}
	}
	return s
}
