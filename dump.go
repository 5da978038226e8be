package iptrie

import "strings"

// Dump renders both trees as described in §4.3:
//
//	IPv4 Tree:
//	<lines for v4>
//
//	IPv6 Tree:
//	<lines for v6>
//
// Each tree is walked pre-order (left before right) starting below the
// root sentinel, which is never itself emitted. The only fixture in the
// source material constrains a single branch with two children to render
// as "-X" then "|-Y"/"|-Z"; this implementation generalizes that to
// arbitrary depth as: depth 1 (a direct child of the root) gets a bare
// "-", every deeper node gets a flat "|-" regardless of how deep it is —
// there is no cumulative nesting indicator beyond that first level.
func (e *Engine) Dump() string {
	var b strings.Builder
	b.WriteString("IPv4 Tree:\n")
	dumpSubtree(&b, e.v4)
	b.WriteString("\n")
	b.WriteString("IPv6 Tree:\n")
	dumpSubtree(&b, e.v6)
	return b.String()
}

func dumpSubtree(b *strings.Builder, t *trie) {
	if t == nil {
		return
	}
	dumpNode(b, t.root.left, 1)
	dumpNode(b, t.root.right, 1)
}

func dumpNode(b *strings.Builder, n *node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(dumpPrefix(depth))
	b.WriteString(n.networkString())
	b.WriteString("\n")
	dumpNode(b, n.left, depth+1)
	dumpNode(b, n.right, depth+1)
}

func dumpPrefix(depth int) string {
	if depth <= 1 {
		return "-"
	}
	return "|-"
}
