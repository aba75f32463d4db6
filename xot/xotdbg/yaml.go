package xotdbg

import (
	"github.com/goccy/go-yaml"
	"github.com/npillmayer/htmlxot/xot"
)

// YAML renders the subtree at n as a YAML document. Every node becomes a
// mapping, keyed by its kind:
//
//	element: html:p
//	attributes:
//	  class: intro
//	children:
//	- text: Hello
func YAML(x *xot.Xot, n xot.Node) ([]byte, error) {
	if x.Kind(n) == 0 {
		return nil, xot.ErrInvalidNode
	}
	return yaml.Marshal(yamlNode(x, n))
}

func yamlNode(x *xot.Xot, n xot.Node) yaml.MapSlice {
	var m yaml.MapSlice
	switch x.Kind(n) {
	case xot.DocumentKind:
		m = yaml.MapSlice{{Key: "document", Value: int(n)}}
	case xot.ElementKind:
		e, _ := x.Element(n)
		m = yaml.MapSlice{{Key: "element", Value: QName(x, e.Name())}}
		if e.Attributes().Len() > 0 {
			var attrs yaml.MapSlice
			e.Attributes().Each(func(name xot.NameID, value string) {
				attrs = append(attrs, yaml.MapItem{Key: QName(x, name), Value: value})
			})
			m = append(m, yaml.MapItem{Key: "attributes", Value: attrs})
		}
	case xot.TextKind:
		s, _ := x.TextStr(n)
		return yaml.MapSlice{{Key: "text", Value: s}}
	case xot.CommentKind:
		s, _ := x.CommentStr(n)
		return yaml.MapSlice{{Key: "comment", Value: s}}
	}
	children := x.Children(n)
	if len(children) > 0 {
		list := make([]yaml.MapSlice, len(children))
		for i, ch := range children {
			list[i] = yamlNode(x, ch)
		}
		m = append(m, yaml.MapItem{Key: "children", Value: list})
	}
	return m
}
