package convert

import (
	"github.com/npillmayer/htmlxot/xot"
	"golang.org/x/net/html"
)

// identityGuard remembers source nodes by pointer identity, together with
// the target node they were converted to (if any).
type identityGuard struct {
	visited map[*html.Node]xot.Node
}

func newIdentityGuard() *identityGuard {
	return &identityGuard{visited: make(map[*html.Node]xot.Node)}
}

// markIfNew marks n as visited. It returns false if n has been marked before.
func (g *identityGuard) markIfNew(n *html.Node) bool {
	if _, ok := g.visited[n]; ok {
		return false
	}
	g.visited[n] = xot.NoNode
	return true
}

func (g *identityGuard) record(n *html.Node, target xot.Node) {
	g.visited[n] = target
}

func (g *identityGuard) lookup(n *html.Node) (xot.Node, bool) {
	target, ok := g.visited[n]
	if !ok || target == xot.NoNode {
		return xot.NoNode, false
	}
	return target, true
}

func (g *identityGuard) size() int {
	return len(g.visited)
}

func (g *identityGuard) clear() {
	clear(g.visited)
}
