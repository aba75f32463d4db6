package xotdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/htmlxot/xot"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	Name  string
	Kind  xot.Kind
	Label string
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for the subtree at n. The diagram is in
// GraphViz (DOT) format. Elements are drawn as ellipses, text and comments
// as boxes.
func ToGraphViz(x *xot.Xot, n xot.Node, w io.Writer) error {
	tmpl, err := template.New("xot").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("xotnode").Funcs(
		template.FuncMap{
			"isElement": func(k xot.Kind) bool { return k == xot.ElementKind || k == xot.DocumentKind },
		}).Parse(xotNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("xotedge").Parse(xotEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	for _, d := range x.Descendants(n) {
		nd := node{Name: nodeName(d), Kind: x.Kind(d), Label: dotLabel(x, d)}
		if err = gparams.NodeTmpl.Execute(w, nd); err != nil {
			return err
		}
		if p, ok := x.Parent(d); ok && d != n {
			if err = gparams.EdgeTmpl.Execute(w, edge{nodeName(p), nd.Name}); err != nil {
				return err
			}
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(n xot.Node) string {
	return fmt.Sprintf("node%05d", n)
}

func dotLabel(x *xot.Xot, n xot.Node) string {
	var s string
	switch x.Kind(n) {
	case xot.ElementKind:
		e, _ := x.Element(n)
		s = QName(x, e.Name())
	case xot.TextKind:
		t, _ := x.TextStr(n)
		s = `"` + shorten(t) + `"`
	default:
		s = Label(x, n)
	}
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const xotNodeTmpl = `{{ if isElement .Kind }}
{{ .Name }}	[ label={{ .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const xotEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
