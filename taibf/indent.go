package taibf

import (
	"bufio"
	"io"
	"strings"
)

const IndentStep = 4

// Indent writes one run per line, nesting loop bodies by IndentStep spaces.
// Loop ends line up with their loop begins.
func Indent(w io.Writer, root *Node) error {
	bw := bufio.NewWriter(w)
	indent(bw, root, 0)
	return bw.Flush()
}

func indent(w *bufio.Writer, root *Node, level int) {
	for node := range root.Walk() {
		if node.Op == OpNone {
			continue
		}
		if node.Op == OpLoopEnd {
			level--
		}
		w.WriteString(strings.Repeat(" ", level*IndentStep))
		w.WriteString(strings.Repeat(string(node.Op.Symbol()), node.Count))
		w.WriteByte('\n')
		if node.Op == OpLoopBegin && node.Loop != nil {
			indent(w, node.Loop, level+1)
		}
	}
}
