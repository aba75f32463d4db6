/*
Package xotdbg implements helpers to debug a Xot document tree.

Trees may be printed as an indented listing (Print), as a GraphViz
diagram (ToGraphViz) or as a YAML structure (YAML).

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package xotdbg
