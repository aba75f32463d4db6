package convert

import "github.com/npillmayer/htmlxot/xot"

var seedNamespaces = [...]string{
	xot.HTMLNamespace,
	xot.MathMLNamespace,
	xot.SVGNamespace,
	xot.XLinkNamespace,
	xot.XMLNamespace,
	xot.XMLNSNamespace,
}

// namespaceInterner maps namespace URIs to namespace IDs of a Xot,
// remembering what it has seen.
type namespaceInterner struct {
	x     *xot.Xot
	cache map[string]xot.NamespaceID
}

func newNamespaceInterner(x *xot.Xot) *namespaceInterner {
	ni := &namespaceInterner{
		x:     x,
		cache: make(map[string]xot.NamespaceID, len(seedNamespaces)),
	}
	for _, uri := range seedNamespaces {
		ni.cache[uri] = x.AddNamespace(uri)
	}
	return ni
}

// intern returns the namespace ID for uri. The empty URI is NoNamespace
// and never enters the cache.
func (ni *namespaceInterner) intern(uri string) xot.NamespaceID {
	if uri == "" {
		return ni.x.NoNamespace()
	}
	if id, ok := ni.cache[uri]; ok {
		return id
	}
	id := ni.x.AddNamespace(uri)
	ni.cache[uri] = id
	return id
}
