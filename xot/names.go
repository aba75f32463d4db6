package xot

// Well-known namespace URIs.
const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	XLinkNamespace  = "http://www.w3.org/1999/xlink"
	XMLNamespace    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace  = "http://www.w3.org/2000/xmlns/"
)

// NamespaceID identifies a namespace URI within a Xot.
type NamespaceID uint32

// NoNamespace is the namespace of names without a namespace URI.
const NoNamespace NamespaceID = 0

// NameID identifies a (local name, namespace) pair within a Xot.
type NameID uint32

type nameKey struct {
	local string
	ns    NamespaceID
}

// NoNamespace returns the identifier for "no namespace".
func (x *Xot) NoNamespace() NamespaceID {
	return NoNamespace
}

// AddNamespace interns a namespace URI and returns its identifier.
// Adding the same URI twice returns the same identifier. The empty URI
// is NoNamespace.
func (x *Xot) AddNamespace(uri string) NamespaceID {
	if id, ok := x.nsLookup[uri]; ok {
		return id
	}
	id := NamespaceID(len(x.namespaces))
	x.namespaces = append(x.namespaces, uri)
	x.nsLookup[uri] = id
	tracer().Debugf("xot: new namespace #%d = %q", id, uri)
	return id
}

// Namespace looks up the identifier of an already interned namespace URI.
func (x *Xot) Namespace(uri string) (NamespaceID, bool) {
	id, ok := x.nsLookup[uri]
	return id, ok
}

// NamespaceURI returns the URI for a namespace identifier, or "" for
// unknown identifiers.
func (x *Xot) NamespaceURI(ns NamespaceID) string {
	if int(ns) >= len(x.namespaces) {
		return ""
	}
	return x.namespaces[ns]
}

// NamespaceCount returns the number of interned namespaces, including
// NoNamespace.
func (x *Xot) NamespaceCount() int {
	return len(x.namespaces)
}

// AddName interns a local name within a namespace.
func (x *Xot) AddName(local string, ns NamespaceID) NameID {
	key := nameKey{local: local, ns: ns}
	if id, ok := x.nameLookup[key]; ok {
		return id
	}
	id := NameID(len(x.names))
	x.names = append(x.names, key)
	x.nameLookup[key] = id
	return id
}

// Name looks up an already interned name.
func (x *Xot) Name(local string, ns NamespaceID) (NameID, bool) {
	id, ok := x.nameLookup[nameKey{local: local, ns: ns}]
	return id, ok
}

// LocalName returns the local part of a name.
func (x *Xot) LocalName(name NameID) string {
	if int(name) >= len(x.names) {
		return ""
	}
	return x.names[name].local
}

// NamespaceForName returns the namespace part of a name.
func (x *Xot) NamespaceForName(name NameID) NamespaceID {
	if int(name) >= len(x.names) {
		return NoNamespace
	}
	return x.names[name].ns
}
