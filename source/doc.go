/*
Package source wraps the HTML5 parser of golang.org/x/net/html.

The parser itself is a black box to this module. Package source selects
how it is invoked (full document or fragment), translates its short
namespace keys into namespace URIs, and scans the raw input for parse
errors the parser recovers from silently.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package source

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlxot.source'.
func tracer() tracing.Trace {
	return tracing.Select("htmlxot.source")
}
