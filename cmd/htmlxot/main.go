/*
Command htmlxot converts HTML into a namespace-aware document tree and
prints it as XML, as a tree listing, as YAML or as a GraphViz diagram.

	htmlxot [-fragment] [-lenient] [-select selector] [-tree|-yaml|-dot] [files]

Without files, input is read from stdin. Parse errors are listed on stderr
and abort the conversion, unless -lenient is given.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
