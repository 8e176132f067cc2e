package flex

import (
	"fmt"
	"strings"
)

// printTree writes a recursive debug dump of node's computed layout to the
// active Logger at LogDebug, invoking each visited node's PrintFunc (if
// any) for owner-supplied extra detail. Intended for ad hoc debugging, not
// machine-readable output.
func printTree(node *Node) {
	var b strings.Builder
	writeNode(&b, node, 0)
	logf(node, LogDebug, "%s", b.String())
}

func writeNode(b *strings.Builder, node *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	l := node.layout

	fmt.Fprintf(b, "%s<node layout=\"width: %g; height: %g; top: %g; left: %g;\"", indent,
		l.Dimensions[dimWidth], l.Dimensions[dimHeight], l.Position[EdgeTop], l.Position[EdgeLeft])

	if node.print != nil {
		fmt.Fprintf(b, " extra=\"")
		node.print(node)
		fmt.Fprintf(b, "\"")
	}

	if node.children.Count() == 0 {
		fmt.Fprintf(b, " />\n")
		return
	}

	fmt.Fprintf(b, ">\n")
	for i := 0; i < node.children.Count(); i++ {
		writeNode(b, node.children.At(i), depth+1)
	}
	fmt.Fprintf(b, "%s</node>\n", indent)
}
